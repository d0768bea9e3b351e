package services_test

import (
	"context"
	"testing"

	"github.com/attendly/attendly-api/internal/db"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestPaymentIntentSucceeded_PromotesToPaid(t *testing.T) {
	f := newRouterFixture(t)
	payment := paymentFixture(db.PaymentStatusPending)

	f.querier.EXPECT().
		GetPaymentByIntentID(gomock.Any(), pgtype.Text{String: "pi_123", Valid: true}).
		Return(payment, nil).
		Times(1)

	f.querier.EXPECT().
		UpdatePaymentStatus(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.UpdatePaymentStatusParams) (db.Payment, error) {
			assert.Equal(t, payment.ID, arg.ID)
			assert.Equal(t, db.PaymentStatusPaid, arg.Status)
			assert.True(t, arg.PaidAt.Valid)
			assert.Equal(t, "evt_10", arg.LastWebhookEventID.String)
			assert.True(t, arg.LastProcessedAt.Valid)

			updated := payment
			updated.Status = db.PaymentStatusPaid
			return updated, nil
		}).
		Times(1)

	expectSettlementRefresh(f, payment)

	result := f.router.Handle(context.Background(),
		makeEvent("evt_10", "payment_intent.succeeded", `{"id":"pi_123","amount":5000,"currency":"usd"}`))

	assert.True(t, result.Success)
	assert.Equal(t, payment.ID.String(), result.PaymentID)
}

func TestPaymentIntentSucceeded_DuplicateDeliveryIsIdempotent(t *testing.T) {
	f := newRouterFixture(t)
	payment := paymentFixture(db.PaymentStatusPaid)

	f.querier.EXPECT().
		GetPaymentByIntentID(gomock.Any(), pgtype.Text{String: "pi_123", Valid: true}).
		Return(payment, nil).
		Times(1)

	// No UpdatePaymentStatus expectation: a second delivery must not write.
	result := f.router.Handle(context.Background(),
		makeEvent("evt_11", "payment_intent.succeeded", `{"id":"pi_123","amount":5000,"currency":"usd"}`))

	assert.True(t, result.Success)
	assert.Equal(t, 1, f.audit.count("duplicate_processing_prevented"))
}

func TestPaymentIntentSucceeded_LateDeliveryNeverRegressesRefunded(t *testing.T) {
	f := newRouterFixture(t)
	payment := paymentFixture(db.PaymentStatusRefunded)

	f.querier.EXPECT().
		GetPaymentByIntentID(gomock.Any(), pgtype.Text{String: "pi_123", Valid: true}).
		Return(payment, nil).
		Times(1)

	result := f.router.Handle(context.Background(),
		makeEvent("evt_12", "payment_intent.succeeded", `{"id":"pi_123","amount":5000,"currency":"usd"}`))

	assert.True(t, result.Success)
	assert.Equal(t, 1, f.audit.count("duplicate_processing_prevented"))
}

func TestPaymentIntentSucceeded_AmountMismatchIsTerminal(t *testing.T) {
	f := newRouterFixture(t)
	payment := paymentFixture(db.PaymentStatusPending)

	f.querier.EXPECT().
		GetPaymentByIntentID(gomock.Any(), pgtype.Text{String: "pi_123", Valid: true}).
		Return(payment, nil).
		Times(1)

	result := f.router.Handle(context.Background(),
		makeEvent("evt_13", "payment_intent.succeeded", `{"id":"pi_123","amount":4200,"currency":"usd"}`))

	assert.False(t, result.Success)
	assert.True(t, result.Terminal)
	assert.Equal(t, "amount_currency_mismatch", result.Reason)
	assert.Equal(t, 1, f.audit.count("amount_currency_mismatch"))
}

func TestPaymentIntentSucceeded_CurrencyMismatchIsTerminal(t *testing.T) {
	f := newRouterFixture(t)
	payment := paymentFixture(db.PaymentStatusPending)

	f.querier.EXPECT().
		GetPaymentByIntentID(gomock.Any(), pgtype.Text{String: "pi_123", Valid: true}).
		Return(payment, nil).
		Times(1)

	result := f.router.Handle(context.Background(),
		makeEvent("evt_14", "payment_intent.succeeded", `{"id":"pi_123","amount":5000,"currency":"eur"}`))

	assert.False(t, result.Success)
	assert.True(t, result.Terminal)
	assert.Equal(t, "amount_currency_mismatch", result.Reason)
}

func TestPaymentIntentSucceeded_MismatchCheckSkippedWhenEventOmitsValues(t *testing.T) {
	f := newRouterFixture(t)
	payment := paymentFixture(db.PaymentStatusPending)

	f.querier.EXPECT().
		GetPaymentByIntentID(gomock.Any(), pgtype.Text{String: "pi_123", Valid: true}).
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
		makeEvent("evt_15", "payment_intent.succeeded", `{"id":"pi_123"}`))

	assert.True(t, result.Success)
	assert.Equal(t, 0, f.audit.count("amount_currency_mismatch"))
}

func TestPaymentIntentFailed_PromotesToFailed(t *testing.T) {
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
		makeEvent("evt_16", "payment_intent.payment_failed", `{"id":"pi_123"}`))

	assert.True(t, result.Success)
}

func TestPaymentIntentFailed_DoesNotRegressPaid(t *testing.T) {
	f := newRouterFixture(t)
	payment := paymentFixture(db.PaymentStatusPaid)

	f.querier.EXPECT().
		GetPaymentByIntentID(gomock.Any(), pgtype.Text{String: "pi_123", Valid: true}).
		Return(payment, nil).
		Times(1)

	result := f.router.Handle(context.Background(),
		makeEvent("evt_17", "payment_intent.payment_failed", `{"id":"pi_123"}`))

	assert.True(t, result.Success)
	assert.Equal(t, 1, f.audit.count("duplicate_processing_prevented"))
}

func TestCheckoutSessionCompleted_RecordsSessionWithoutStatusChange(t *testing.T) {
	f := newRouterFixture(t)
	payment := paymentFixture(db.PaymentStatusPending)

	f.querier.EXPECT().
		GetPaymentByIntentID(gomock.Any(), pgtype.Text{String: "pi_123", Valid: true}).
		Return(payment, nil).
		Times(1)

	f.querier.EXPECT().
		UpdatePaymentCheckoutSession(gomock.Any(), db.UpdatePaymentCheckoutSessionParams{
			ID:                      payment.ID,
			StripeCheckoutSessionID: pgtype.Text{String: "cs_123", Valid: true},
			StripePaymentIntentID:   pgtype.Text{String: "pi_123", Valid: true},
		}).
		Return(payment, nil).
		Times(1)

	result := f.router.Handle(context.Background(),
		makeEvent("evt_18", "checkout.session.completed", `{"id":"cs_123","payment_intent":{"id":"pi_123"}}`))

	assert.True(t, result.Success)
	assert.Equal(t, 1, f.audit.count("checkout_session_recorded"))
}

func TestCheckoutSessionExpired_FallsBackThroughLegacySessionLookup(t *testing.T) {
	f := newRouterFixture(t)
	payment := paymentFixture(db.PaymentStatusPending)

	f.querier.EXPECT().
		GetPaymentByCheckoutSessionID(gomock.Any(), pgtype.Text{String: "cs_old", Valid: true}).
		Return(db.Payment{}, errNoRows()).
		Times(1)
	f.querier.EXPECT().
		GetPaymentByLegacySessionID(gomock.Any(), pgtype.Text{String: "cs_old", Valid: true}).
		Return(payment, nil).
		Times(1)

	f.querier.EXPECT().
		UpdatePaymentStatus(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.UpdatePaymentStatusParams) (db.Payment, error) {
			assert.Equal(t, db.PaymentStatusFailed, arg.Status)

			updated := payment
			updated.Status = db.PaymentStatusFailed
			return updated, nil
		}).
		Times(1)

	result := f.router.Handle(context.Background(),
		makeEvent("evt_19", "checkout.session.expired", `{"id":"cs_old"}`))

	assert.True(t, result.Success)
}
