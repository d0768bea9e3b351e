package services_test

import (
	"context"
	"testing"

	"github.com/attendly/attendly-api/internal/db"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stripe/stripe-go/v82"
	"go.uber.org/mock/gomock"
)

func TestChargeSucceeded_EnrichesLedgerDetailsFromIntent(t *testing.T) {
	f := newRouterFixture(t)
	payment := paymentFixture(db.PaymentStatusPending)

	f.querier.EXPECT().
		GetPaymentByIntentID(gomock.Any(), pgtype.Text{String: "pi_123", Valid: true}).
		Return(payment, nil).
		Times(1)

	// The payload carries the balance transaction as a bare id and no
	// transfer; the intent refetch supplies both expanded.
	f.processor.EXPECT().
		GetPaymentIntent(gomock.Any(), "pi_123").
		Return(&stripe.PaymentIntent{
			ID: "pi_123",
			LatestCharge: &stripe.Charge{
				ID:                 "ch_123",
				BalanceTransaction: &stripe.BalanceTransaction{ID: "txn_1"},
				Transfer:           &stripe.Transfer{ID: "tr_1"},
			},
		}, nil).
		Times(1)

	f.querier.EXPECT().
		UpdatePaymentChargeDetails(gomock.Any(), db.UpdatePaymentChargeDetailsParams{
			ID:                   payment.ID,
			StripeChargeID:       pgtype.Text{String: "ch_123", Valid: true},
			BalanceTransactionID: pgtype.Text{String: "txn_1", Valid: true},
			TransferID:           pgtype.Text{String: "tr_1", Valid: true},
		}).
		Return(payment, nil).
		Times(1)

	f.querier.EXPECT().
		UpdatePaymentStatus(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.UpdatePaymentStatusParams) (db.Payment, error) {
			assert.Equal(t, db.PaymentStatusPaid, arg.Status)
			assert.True(t, arg.PaidAt.Valid)

			updated := payment
			updated.Status = db.PaymentStatusPaid
			return updated, nil
		}).
		Times(1)

	expectSettlementRefresh(f, payment)

	result := f.router.Handle(context.Background(),
		makeEvent("evt_20", "charge.succeeded", `{"id":"ch_123","payment_intent":{"id":"pi_123"},"amount":5000,"currency":"usd","balance_transaction":"txn_1"}`))

	assert.True(t, result.Success)
	assert.Equal(t, payment.ID.String(), result.PaymentID)
}

func TestChargeSucceeded_IntentRefetchFailureDegradesToPayloadDetails(t *testing.T) {
	f := newRouterFixture(t)
	payment := paymentFixture(db.PaymentStatusPending)

	f.querier.EXPECT().
		GetPaymentByIntentID(gomock.Any(), pgtype.Text{String: "pi_123", Valid: true}).
		Return(payment, nil).
		Times(1)

	f.processor.EXPECT().
		GetPaymentIntent(gomock.Any(), "pi_123").
		Return(nil, assert.AnError).
		Times(1)

	f.querier.EXPECT().
		UpdatePaymentChargeDetails(gomock.Any(), db.UpdatePaymentChargeDetailsParams{
			ID:                   payment.ID,
			StripeChargeID:       pgtype.Text{String: "ch_123", Valid: true},
			BalanceTransactionID: pgtype.Text{String: "txn_1", Valid: true},
		}).
		Return(payment, nil).
		Times(1)

	f.querier.EXPECT().
		UpdatePaymentStatus(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.UpdatePaymentStatusParams) (db.Payment, error) {
			updated := payment
			updated.Status = arg.Status
			return updated, nil
		}).
		Times(1)

	expectSettlementRefresh(f, payment)

	result := f.router.Handle(context.Background(),
		makeEvent("evt_21", "charge.succeeded", `{"id":"ch_123","payment_intent":{"id":"pi_123"},"amount":5000,"currency":"usd","balance_transaction":"txn_1"}`))

	assert.True(t, result.Success)
}

func TestChargeSucceeded_NoRefetchWhenLedgerAlreadyRecorded(t *testing.T) {
	f := newRouterFixture(t)
	payment := paymentFixture(db.PaymentStatusPaid)
	payment.TransferID = pgtype.Text{String: "tr_1", Valid: true}
	payment.BalanceTransactionID = pgtype.Text{String: "txn_1", Valid: true}

	f.querier.EXPECT().
		GetPaymentByIntentID(gomock.Any(), pgtype.Text{String: "pi_123", Valid: true}).
		Return(payment, nil).
		Times(1)

	f.querier.EXPECT().
		UpdatePaymentChargeDetails(gomock.Any(), gomock.Any()).
		Return(payment, nil).
		Times(1)

	// No GetPaymentIntent expectation: a redelivery with the ledger already on
	// record must not call the processor.
	result := f.router.Handle(context.Background(),
		makeEvent("evt_22", "charge.succeeded", `{"id":"ch_123","payment_intent":{"id":"pi_123"},"amount":5000,"currency":"usd"}`))

	assert.True(t, result.Success)
	assert.Equal(t, 1, f.audit.count("duplicate_processing_prevented"))
}

func TestChargeFailed_PromotesToFailed(t *testing.T) {
	f := newRouterFixture(t)
	payment := paymentFixture(db.PaymentStatusPending)

	f.querier.EXPECT().
		GetPaymentByIntentID(gomock.Any(), pgtype.Text{String: "pi_123", Valid: true}).
		Return(payment, nil).
		Times(1)

	f.querier.EXPECT().
		UpdatePaymentStatus(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.UpdatePaymentStatusParams) (db.Payment, error) {
			assert.Equal(t, db.PaymentStatusFailed, arg.Status)
			assert.False(t, arg.PaidAt.Valid)

			updated := payment
			updated.Status = db.PaymentStatusFailed
			return updated, nil
		}).
		Times(1)

	result := f.router.Handle(context.Background(),
		makeEvent("evt_23", "charge.failed", `{"id":"ch_123","payment_intent":{"id":"pi_123"},"failure_message":"card_declined"}`))

	assert.True(t, result.Success)
}
