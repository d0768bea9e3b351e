package services_test

import (
	"context"
	"testing"

	stripeclient "github.com/attendly/attendly-api/internal/client/stripe"
	"github.com/attendly/attendly-api/internal/db"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stripe/stripe-go/v82"
	"go.uber.org/mock/gomock"
)

func disputedPaymentFixture(reversed int64) db.Payment {
	payment := paymentFixture(db.PaymentStatusPaid)
	payment.TransferID = pgtype.Text{String: "tr_1", Valid: true}
	payment.TransferReversedAmountCents = reversed
	return payment
}

func TestDisputeCreated_ReversesTransferWithDeterministicKey(t *testing.T) {
	f := newRouterFixture(t)
	payment := disputedPaymentFixture(0)

	f.querier.EXPECT().
		GetPaymentByChargeID(gomock.Any(), pgtype.Text{String: "ch_123", Valid: true}).
		Return(payment, nil).
		Times(1)

	f.querier.EXPECT().
		UpsertDispute(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.UpsertDisputeParams) (db.Dispute, error) {
			assert.Equal(t, "dp_1", arg.StripeDisputeID)
			assert.Equal(t, int64(5000), arg.AmountCents)
			assert.True(t, arg.PaymentID.Valid)
			return db.Dispute{StripeDisputeID: "dp_1"}, nil
		}).
		Times(1)

	f.querier.EXPECT().
		GetPayment(gomock.Any(), payment.ID).
		Return(payment, nil).
		Times(1)

	f.processor.EXPECT().
		ReverseTransfer(gomock.Any(), stripeclient.ReverseTransferParams{
			TransferID:     "tr_1",
			AmountCents:    5000,
			IdempotencyKey: "dispute-reversal-dp_1",
		}).
		Return(&stripe.TransferReversal{ID: "trr_1"}, nil).
		Times(1)

	f.querier.EXPECT().
		UpdatePaymentTransferReversal(gomock.Any(), db.UpdatePaymentTransferReversalParams{
			ID:                          payment.ID,
			ExpectedReversedAmountCents: 0,
			TransferReversedAmountCents: 5000,
			TransferReversalID:          pgtype.Text{String: "trr_1", Valid: true},
		}).
		Return(int64(1), nil).
		Times(1)

	expectSettlementRefresh(f, payment)

	result := f.router.Handle(context.Background(),
		makeEvent("evt_30", "charge.dispute.created", `{"id":"dp_1","amount":5000,"currency":"usd","charge":"ch_123","status":"needs_response","reason":"fraudulent"}`))

	assert.True(t, result.Success)
	assert.Equal(t, payment.ID.String(), result.PaymentID)
}

func TestDisputeCreated_RedeliveryDoesNotReverseTwice(t *testing.T) {
	f := newRouterFixture(t)
	payment := disputedPaymentFixture(5000)

	f.querier.EXPECT().
		GetPaymentByChargeID(gomock.Any(), pgtype.Text{String: "ch_123", Valid: true}).
		Return(payment, nil).
		Times(1)

	f.querier.EXPECT().
		UpsertDispute(gomock.Any(), gomock.Any()).
		Return(db.Dispute{StripeDisputeID: "dp_1"}, nil).
		Times(1)

	f.querier.EXPECT().
		GetPayment(gomock.Any(), payment.ID).
		Return(payment, nil).
		Times(1)

	expectSettlementRefresh(f, payment)

	// The full disputed amount is already reversed; no processor call happens.
	result := f.router.Handle(context.Background(),
		makeEvent("evt_31", "charge.dispute.created", `{"id":"dp_1","amount":5000,"currency":"usd","charge":"ch_123","status":"needs_response"}`))

	assert.True(t, result.Success)
	assert.Equal(t, 1, f.audit.count("duplicate_processing_prevented"))
}

func TestDisputeCreated_ConcurrentDeliveryLosesConditionalWrite(t *testing.T) {
	f := newRouterFixture(t)
	payment := disputedPaymentFixture(0)

	f.querier.EXPECT().
		GetPaymentByChargeID(gomock.Any(), pgtype.Text{String: "ch_123", Valid: true}).
		Return(payment, nil).
		Times(1)

	f.querier.EXPECT().
		UpsertDispute(gomock.Any(), gomock.Any()).
		Return(db.Dispute{StripeDisputeID: "dp_1"}, nil).
		Times(1)

	f.querier.EXPECT().
		GetPayment(gomock.Any(), payment.ID).
		Return(payment, nil).
		Times(1)

	f.processor.EXPECT().
		ReverseTransfer(gomock.Any(), gomock.Any()).
		Return(&stripe.TransferReversal{ID: "trr_1"}, nil).
		Times(1)

	f.querier.EXPECT().
		UpdatePaymentTransferReversal(gomock.Any(), gomock.Any()).
		Return(int64(0), nil).
		Times(1)

	expectSettlementRefresh(f, payment)

	result := f.router.Handle(context.Background(),
		makeEvent("evt_32", "charge.dispute.created", `{"id":"dp_1","amount":5000,"currency":"usd","charge":"ch_123","status":"needs_response"}`))

	assert.True(t, result.Success)
	assert.Equal(t, 1, f.audit.count("concurrent_reversal_detected"))
}

func TestDisputeCreated_WithoutTransferIsAcknowledged(t *testing.T) {
	f := newRouterFixture(t)
	payment := paymentFixture(db.PaymentStatusPaid)

	f.querier.EXPECT().
		GetPaymentByChargeID(gomock.Any(), pgtype.Text{String: "ch_123", Valid: true}).
		Return(payment, nil).
		Times(1)

	f.querier.EXPECT().
		UpsertDispute(gomock.Any(), gomock.Any()).
		Return(db.Dispute{StripeDisputeID: "dp_1"}, nil).
		Times(1)

	f.querier.EXPECT().
		GetPayment(gomock.Any(), payment.ID).
		Return(payment, nil).
		Times(1)

	expectSettlementRefresh(f, payment)

	result := f.router.Handle(context.Background(),
		makeEvent("evt_33", "charge.dispute.created", `{"id":"dp_1","amount":5000,"currency":"usd","charge":"ch_123","status":"needs_response"}`))

	assert.True(t, result.Success)
	assert.Equal(t, 1, f.audit.count("dispute_without_transfer"))
}

func TestDisputeFundsReinstated_ReTransfersReversedAmount(t *testing.T) {
	f := newRouterFixture(t)
	payment := disputedPaymentFixture(5000)

	f.querier.EXPECT().
		GetPaymentByChargeID(gomock.Any(), pgtype.Text{String: "ch_123", Valid: true}).
		Return(payment, nil).
		Times(1)

	f.querier.EXPECT().
		UpsertDispute(gomock.Any(), gomock.Any()).
		Return(db.Dispute{StripeDisputeID: "dp_1"}, nil).
		Times(1)

	f.querier.EXPECT().
		GetPayment(gomock.Any(), payment.ID).
		Return(payment, nil).
		Times(1)

	f.processor.EXPECT().
		GetCharge(gomock.Any(), "ch_123").
		Return(&stripe.Charge{
			ID:            "ch_123",
			Transfer:      &stripe.Transfer{ID: "tr_1", Destination: &stripe.Account{ID: "acct_1"}},
			TransferGroup: "event_42",
		}, nil).
		Times(1)

	f.processor.EXPECT().
		CreateTransfer(gomock.Any(), stripeclient.CreateTransferParams{
			AmountCents:    5000,
			Currency:       "usd",
			Destination:    "acct_1",
			TransferGroup:  "event_42",
			IdempotencyKey: "dispute-retransfer-dp_1",
		}).
		Return(&stripe.Transfer{ID: "tr_2"}, nil).
		Times(1)

	f.querier.EXPECT().
		ResetPaymentTransferReversal(gomock.Any(), payment.ID).
		DoAndReturn(func(_ context.Context, id interface{}) (db.Payment, error) {
			updated := payment
			updated.TransferReversedAmountCents = 0
			updated.TransferReversalID = pgtype.Text{}
			return updated, nil
		}).
		Times(1)

	expectSettlementRefresh(f, payment)

	result := f.router.Handle(context.Background(),
		makeEvent("evt_34", "charge.dispute.funds_reinstated", `{"id":"dp_1","amount":5000,"currency":"usd","charge":"ch_123","status":"warning_closed"}`))

	assert.True(t, result.Success)
}

func TestDisputeClosedWon_RedeliveryDoesNotReTransferTwice(t *testing.T) {
	f := newRouterFixture(t)
	payment := disputedPaymentFixture(0)

	f.querier.EXPECT().
		GetPaymentByChargeID(gomock.Any(), pgtype.Text{String: "ch_123", Valid: true}).
		Return(payment, nil).
		Times(1)

	f.querier.EXPECT().
		UpsertDispute(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.UpsertDisputeParams) (db.Dispute, error) {
			assert.True(t, arg.ClosedAt.Valid)
			return db.Dispute{StripeDisputeID: "dp_1"}, nil
		}).
		Times(1)

	f.querier.EXPECT().
		GetPayment(gomock.Any(), payment.ID).
		Return(payment, nil).
		Times(1)

	expectSettlementRefresh(f, payment)

	// Nothing was reversed, so there is nothing to send back.
	result := f.router.Handle(context.Background(),
		makeEvent("evt_35", "charge.dispute.closed", `{"id":"dp_1","amount":5000,"currency":"usd","charge":"ch_123","status":"won"}`))

	assert.True(t, result.Success)
	assert.Equal(t, 1, f.audit.count("duplicate_processing_prevented"))
}

func TestDisputeUpdated_RecordsStateAndRefreshesSettlement(t *testing.T) {
	f := newRouterFixture(t)
	payment := disputedPaymentFixture(5000)

	f.querier.EXPECT().
		GetPaymentByChargeID(gomock.Any(), pgtype.Text{String: "ch_123", Valid: true}).
		Return(payment, nil).
		Times(1)

	f.querier.EXPECT().
		UpsertDispute(gomock.Any(), gomock.Any()).
		Return(db.Dispute{StripeDisputeID: "dp_1"}, nil).
		Times(1)

	// No funds move, but the snapshot still refreshes once the branch is done.
	expectSettlementRefresh(f, payment)

	result := f.router.Handle(context.Background(),
		makeEvent("evt_36", "charge.dispute.updated", `{"id":"dp_1","amount":5000,"currency":"usd","charge":"ch_123","status":"under_review"}`))

	assert.True(t, result.Success)
}
