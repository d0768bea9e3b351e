package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/attendly/attendly-api/internal/db"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stripe/stripe-go/v82"
	"go.uber.org/zap"
)

// handlePaymentIntentSucceeded promotes a payment to paid. An amount or
// currency disagreement between the stored expectation and processor truth is
// a fraud/bug signal and produces a terminal failure that must not be
// retried.
func (r *WebhookRouter) handlePaymentIntentSucceeded(ctx context.Context, event Event) (ProcessingResult, error) {
	var intent stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
		return ProcessingResult{}, fmt.Errorf("failed to unmarshal %s data: %w", event.Type, err)
	}

	chargeID := ""
	if intent.LatestCharge != nil {
		chargeID = intent.LatestCharge.ID
	}

	payment, err := r.locatePayment(ctx, intent.ID, chargeID, intent.Metadata)
	if err != nil {
		return ProcessingResult{}, err
	}
	if payment == nil {
		return r.ackMissingPayment(ctx, event), nil
	}

	if mismatch := r.checkAmountCurrency(ctx, event, payment, intent.Amount, string(intent.Currency)); mismatch != nil {
		return *mismatch, nil
	}

	if !ShouldWrite(payment.Status, db.PaymentStatusPaid) {
		return r.ackDuplicate(ctx, event, payment, db.PaymentStatusPaid), nil
	}

	now := pgtype.Timestamptz{Time: time.Now(), Valid: true}
	updated, err := r.queries.UpdatePaymentStatus(ctx, db.UpdatePaymentStatusParams{
		ID:                 payment.ID,
		Status:             db.PaymentStatusPaid,
		PaidAt:             now,
		LastWebhookEventID: pgtype.Text{String: event.ID, Valid: true},
		LastProcessedAt:    now,
	})
	if err != nil {
		return ProcessingResult{}, fmt.Errorf("failed to mark payment paid: %w", err)
	}

	r.logger.Info("Payment marked paid",
		zap.String("payment_id", updated.ID.String()),
		zap.String("event_id", event.ID))

	r.triggerSettlementSnapshot(ctx, &updated)

	return ProcessingResult{Success: true, PaymentID: updated.ID.String()}, nil
}

// handlePaymentIntentFailed promotes a payment to failed. Failure events do
// not carry a charged amount, so there is no mismatch check.
func (r *WebhookRouter) handlePaymentIntentFailed(ctx context.Context, event Event) (ProcessingResult, error) {
	var intent stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
		return ProcessingResult{}, fmt.Errorf("failed to unmarshal %s data: %w", event.Type, err)
	}

	chargeID := ""
	if intent.LatestCharge != nil {
		chargeID = intent.LatestCharge.ID
	}

	payment, err := r.locatePayment(ctx, intent.ID, chargeID, intent.Metadata)
	if err != nil {
		return ProcessingResult{}, err
	}
	if payment == nil {
		return r.ackMissingPayment(ctx, event), nil
	}

	if !ShouldWrite(payment.Status, db.PaymentStatusFailed) {
		return r.ackDuplicate(ctx, event, payment, db.PaymentStatusFailed), nil
	}

	now := pgtype.Timestamptz{Time: time.Now(), Valid: true}
	updated, err := r.queries.UpdatePaymentStatus(ctx, db.UpdatePaymentStatusParams{
		ID:                 payment.ID,
		Status:             db.PaymentStatusFailed,
		LastWebhookEventID: pgtype.Text{String: event.ID, Valid: true},
		LastProcessedAt:    now,
	})
	if err != nil {
		return ProcessingResult{}, fmt.Errorf("failed to mark payment failed: %w", err)
	}

	failureMessage := ""
	if intent.LastPaymentError != nil {
		failureMessage = intent.LastPaymentError.Msg
	}
	r.logger.Info("Payment marked failed",
		zap.String("payment_id", updated.ID.String()),
		zap.String("event_id", event.ID),
		zap.String("failure_message", failureMessage))

	return ProcessingResult{Success: true, PaymentID: updated.ID.String()}, nil
}

// handleCheckoutSessionCompleted records the checkout-session id and, when
// present, the payment-intent id for later correlation. It deliberately does
// not touch status; status transitions are driven exclusively by
// payment-intent and charge events so there is a single source of truth.
func (r *WebhookRouter) handleCheckoutSessionCompleted(ctx context.Context, event Event) (ProcessingResult, error) {
	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		return ProcessingResult{}, fmt.Errorf("failed to unmarshal %s data: %w", event.Type, err)
	}

	intentID := ""
	if session.PaymentIntent != nil {
		intentID = session.PaymentIntent.ID
	}

	payment, err := r.locatePayment(ctx, intentID, "", session.Metadata)
	if err != nil {
		return ProcessingResult{}, err
	}
	if payment == nil {
		payment, err = r.locatePaymentBySession(ctx, session.ID, session.Metadata)
		if err != nil {
			return ProcessingResult{}, err
		}
	}
	if payment == nil {
		return r.ackMissingPayment(ctx, event), nil
	}

	params := db.UpdatePaymentCheckoutSessionParams{
		ID:                      payment.ID,
		StripeCheckoutSessionID: pgtype.Text{String: session.ID, Valid: true},
	}
	if intentID != "" {
		params.StripePaymentIntentID = pgtype.Text{String: intentID, Valid: true}
	}

	updated, err := r.queries.UpdatePaymentCheckoutSession(ctx, params)
	if err != nil {
		return ProcessingResult{}, fmt.Errorf("failed to record checkout session: %w", err)
	}

	r.audit.LogSecurityEvent(ctx, "checkout_session_recorded", map[string]interface{}{
		"event_id":   event.ID,
		"payment_id": updated.ID.String(),
		"session_id": session.ID,
	})

	return ProcessingResult{Success: true, PaymentID: updated.ID.String()}, nil
}

// handleCheckoutSessionExpired promotes a payment to failed. Expiry can reach
// a payment before any payment-intent id has been recorded, so resolution
// goes through the session-first locator order.
func (r *WebhookRouter) handleCheckoutSessionExpired(ctx context.Context, event Event) (ProcessingResult, error) {
	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		return ProcessingResult{}, fmt.Errorf("failed to unmarshal %s data: %w", event.Type, err)
	}

	payment, err := r.locatePaymentBySession(ctx, session.ID, session.Metadata)
	if err != nil {
		return ProcessingResult{}, err
	}
	if payment == nil {
		return r.ackMissingPayment(ctx, event), nil
	}

	if !ShouldWrite(payment.Status, db.PaymentStatusFailed) {
		return r.ackDuplicate(ctx, event, payment, db.PaymentStatusFailed), nil
	}

	now := pgtype.Timestamptz{Time: time.Now(), Valid: true}
	updated, err := r.queries.UpdatePaymentStatus(ctx, db.UpdatePaymentStatusParams{
		ID:                 payment.ID,
		Status:             db.PaymentStatusFailed,
		LastWebhookEventID: pgtype.Text{String: event.ID, Valid: true},
		LastProcessedAt:    now,
	})
	if err != nil {
		return ProcessingResult{}, fmt.Errorf("failed to mark payment failed after session expiry: %w", err)
	}

	r.logger.Info("Payment marked failed after checkout session expiry",
		zap.String("payment_id", updated.ID.String()),
		zap.String("event_id", event.ID))

	return ProcessingResult{Success: true, PaymentID: updated.ID.String()}, nil
}

// checkAmountCurrency enforces the stored amount/currency expectation against
// processor truth. The check only applies when both sides actually carry a
// value. A mismatch is terminal: retrying cannot fix a disagreement about how
// much money changed hands.
func (r *WebhookRouter) checkAmountCurrency(ctx context.Context, event Event, payment *db.Payment, eventAmount int64, eventCurrency string) *ProcessingResult {
	amountMismatch := payment.AmountCents > 0 && eventAmount > 0 && payment.AmountCents != eventAmount
	currencyMismatch := payment.Currency != "" && eventCurrency != "" && !strings.EqualFold(payment.Currency, eventCurrency)
	if !amountMismatch && !currencyMismatch {
		return nil
	}

	r.audit.LogSuspiciousActivity(ctx, "amount_currency_mismatch", map[string]interface{}{
		"event_id":          event.ID,
		"event_type":        event.Type,
		"payment_id":        payment.ID.String(),
		"expected_amount":   payment.AmountCents,
		"event_amount":      eventAmount,
		"expected_currency": payment.Currency,
		"event_currency":    eventCurrency,
	})

	return &ProcessingResult{
		Success:   false,
		Terminal:  true,
		Reason:    "amount_currency_mismatch",
		Error:     fmt.Sprintf("event %s disagrees with stored amount/currency for payment %s", event.ID, payment.ID),
		PaymentID: payment.ID.String(),
	}
}
