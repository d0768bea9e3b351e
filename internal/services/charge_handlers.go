package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/attendly/attendly-api/internal/db"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stripe/stripe-go/v82"
	"go.uber.org/zap"
)

// handleChargeSucceeded promotes a payment to paid and captures the ledger
// identifiers the charge carries (balance transaction, transfer, application
// fee). Identifier capture is best-effort: a failure there degrades to a
// status-only update rather than blocking the transition.
func (r *WebhookRouter) handleChargeSucceeded(ctx context.Context, event Event) (ProcessingResult, error) {
	var charge stripe.Charge
	if err := json.Unmarshal(event.Data.Raw, &charge); err != nil {
		return ProcessingResult{}, fmt.Errorf("failed to unmarshal %s data: %w", event.Type, err)
	}

	intentID := ""
	if charge.PaymentIntent != nil {
		intentID = charge.PaymentIntent.ID
	}

	payment, err := r.locatePayment(ctx, intentID, charge.ID, charge.Metadata)
	if err != nil {
		return ProcessingResult{}, err
	}
	if payment == nil {
		return r.ackMissingPayment(ctx, event), nil
	}

	if mismatch := r.checkAmountCurrency(ctx, event, payment, charge.Amount, string(charge.Currency)); mismatch != nil {
		return *mismatch, nil
	}

	r.recordChargeDetails(ctx, payment, r.enrichChargeLedger(ctx, payment, &charge, intentID))

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

	r.logger.Info("Payment marked paid from charge",
		zap.String("payment_id", updated.ID.String()),
		zap.String("event_id", event.ID),
		zap.String("charge_id", charge.ID))

	r.triggerSettlementSnapshot(ctx, &updated)

	return ProcessingResult{Success: true, PaymentID: updated.ID.String()}, nil
}

// handleChargeFailed promotes a payment to failed.
func (r *WebhookRouter) handleChargeFailed(ctx context.Context, event Event) (ProcessingResult, error) {
	var charge stripe.Charge
	if err := json.Unmarshal(event.Data.Raw, &charge); err != nil {
		return ProcessingResult{}, fmt.Errorf("failed to unmarshal %s data: %w", event.Type, err)
	}

	intentID := ""
	if charge.PaymentIntent != nil {
		intentID = charge.PaymentIntent.ID
	}

	payment, err := r.locatePayment(ctx, intentID, charge.ID, charge.Metadata)
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

	r.logger.Info("Payment marked failed from charge",
		zap.String("payment_id", updated.ID.String()),
		zap.String("event_id", event.ID),
		zap.String("charge_id", charge.ID),
		zap.String("failure_message", charge.FailureMessage))

	return ProcessingResult{Success: true, PaymentID: updated.ID.String()}, nil
}

// enrichChargeLedger fills in ledger identifiers the webhook payload omits.
// charge.succeeded payloads carry balance_transaction as a bare id and often
// no transfer at all, so the intent is refetched with both expanded. Skipped
// when the payload, or the payment row, already carries them. Best-effort: on
// any shortfall the payload's own fields stand.
func (r *WebhookRouter) enrichChargeLedger(ctx context.Context, payment *db.Payment, charge *stripe.Charge, intentID string) *stripe.Charge {
	if charge.Transfer != nil && charge.BalanceTransaction != nil {
		return charge
	}
	if payment.TransferID.Valid && payment.BalanceTransactionID.Valid {
		return charge
	}
	if intentID == "" {
		return charge
	}

	intent, err := r.processor.GetPaymentIntent(ctx, intentID)
	if err != nil {
		r.logger.Warn("Ledger detail refetch failed, using payload fields",
			zap.String("payment_intent_id", intentID),
			zap.String("charge_id", charge.ID),
			zap.Error(err))
		return charge
	}
	if intent.LatestCharge == nil || intent.LatestCharge.ID != charge.ID {
		return charge
	}

	enriched := intent.LatestCharge
	if enriched.ApplicationFee == nil {
		enriched.ApplicationFee = charge.ApplicationFee
	}
	return enriched
}

// recordChargeDetails persists the ledger identifiers a charge carries. The
// query COALESCEs each column, so identifiers already on record are never
// clobbered by a redelivery. Errors are logged and swallowed.
func (r *WebhookRouter) recordChargeDetails(ctx context.Context, payment *db.Payment, charge *stripe.Charge) {
	params := db.UpdatePaymentChargeDetailsParams{ID: payment.ID}
	if charge.ID != "" {
		params.StripeChargeID = pgtype.Text{String: charge.ID, Valid: true}
	}
	if charge.BalanceTransaction != nil {
		params.BalanceTransactionID = pgtype.Text{String: charge.BalanceTransaction.ID, Valid: true}
	}
	if charge.Transfer != nil {
		params.TransferID = pgtype.Text{String: charge.Transfer.ID, Valid: true}
	}
	if charge.ApplicationFee != nil {
		params.ApplicationFeeID = pgtype.Text{String: charge.ApplicationFee.ID, Valid: true}
	}

	if _, err := r.queries.UpdatePaymentChargeDetails(ctx, params); err != nil {
		r.logger.Warn("Failed to record charge details",
			zap.String("payment_id", payment.ID.String()),
			zap.String("charge_id", charge.ID),
			zap.Error(err))
	}
}
