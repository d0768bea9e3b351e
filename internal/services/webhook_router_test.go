package services_test

import (
	"context"
	"testing"

	"github.com/attendly/attendly-api/internal/db"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestWebhookRouter_UnknownEventTypeIsAcknowledged(t *testing.T) {
	f := newRouterFixture(t)

	result := f.router.Handle(context.Background(), makeEvent("evt_1", "customer.created", `{}`))

	assert.True(t, result.Success)
	assert.False(t, result.Terminal)
	assert.Equal(t, "evt_1", result.EventID)
	assert.Equal(t, 1, f.audit.count("unhandled_event_type"))
}

func TestWebhookRouter_SuccessfulProcessingWritesReceipt(t *testing.T) {
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
		makeEvent("evt_5", "payment_intent.succeeded", `{"id":"pi_123","amount":5000,"currency":"usd"}`))

	assert.True(t, result.Success)
	assert.Equal(t, 1, f.audit.count("processed"))
	entry := f.audit.entries[len(f.audit.entries)-1]
	assert.Equal(t, "processed", entry.EventType)
	assert.Equal(t, "evt_5", entry.Details["event_id"])
	assert.Equal(t, "payment_intent.succeeded", entry.Details["event_type"])
	assert.Equal(t, payment.ID.String(), entry.Details["payment_id"])
}

func TestWebhookRouter_RetryableFailureWritesNoReceipt(t *testing.T) {
	f := newRouterFixture(t)

	f.querier.EXPECT().
		GetPaymentByIntentID(gomock.Any(), pgtype.Text{String: "pi_123", Valid: true}).
		Return(db.Payment{}, assert.AnError).
		Times(1)

	result := f.router.Handle(context.Background(),
		makeEvent("evt_6", "payment_intent.succeeded", `{"id":"pi_123","amount":5000,"currency":"usd"}`))

	assert.False(t, result.Success)
	assert.Equal(t, 0, f.audit.count("processed"))
}

func TestWebhookRouter_TransientLookupFailureIsRetryable(t *testing.T) {
	f := newRouterFixture(t)

	f.querier.EXPECT().
		GetPaymentByIntentID(gomock.Any(), pgtype.Text{String: "pi_123", Valid: true}).
		Return(db.Payment{}, assert.AnError).
		Times(1)

	result := f.router.Handle(context.Background(),
		makeEvent("evt_2", "payment_intent.succeeded", `{"id":"pi_123","amount":5000,"currency":"usd"}`))

	assert.False(t, result.Success)
	assert.False(t, result.Terminal)
	assert.NotEmpty(t, result.Error)
	assert.Equal(t, 1, f.audit.count("webhook_handler_failure"))
}

func TestWebhookRouter_MissingPaymentIsAcknowledged(t *testing.T) {
	f := newRouterFixture(t)

	f.querier.EXPECT().
		GetPaymentByIntentID(gomock.Any(), pgtype.Text{String: "pi_missing", Valid: true}).
		Return(db.Payment{}, errNoRows()).
		Times(1)

	result := f.router.Handle(context.Background(),
		makeEvent("evt_3", "payment_intent.succeeded", `{"id":"pi_missing","amount":5000,"currency":"usd"}`))

	assert.True(t, result.Success)
	assert.Equal(t, 1, f.audit.count("payment_record_not_found"))
}

func TestWebhookRouter_MalformedPayloadIsRetryable(t *testing.T) {
	f := newRouterFixture(t)

	result := f.router.Handle(context.Background(),
		makeEvent("evt_4", "payment_intent.succeeded", `{"id":`))

	assert.False(t, result.Success)
	assert.False(t, result.Terminal)
	assert.Equal(t, 1, f.audit.count("webhook_handler_failure"))
}
