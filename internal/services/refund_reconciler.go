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

// handleRefundEvent reconciles refund state by recomputation rather than by
// accumulation. Whatever the delivery order, the handler refetches the charge
// from the processor and rewrites the stored totals from the authoritative
// cumulative amount_refunded, so processing any refund event twice, or out of
// order, converges on the same record.
func (r *WebhookRouter) handleRefundEvent(ctx context.Context, event Event) (ProcessingResult, error) {
	chargeID, intentID, refund, err := extractRefundReference(event)
	if err != nil {
		return ProcessingResult{}, err
	}

	payment, err := r.locatePayment(ctx, intentID, chargeID, refundMetadata(refund))
	if err != nil {
		return ProcessingResult{}, err
	}
	if payment == nil {
		return r.ackMissingPayment(ctx, event), nil
	}

	if chargeID == "" && payment.StripeChargeID.Valid {
		chargeID = payment.StripeChargeID.String
	}
	if chargeID == "" {
		// Nothing to recompute against; a record this early in its life has
		// no refunds to reconcile.
		r.audit.LogSecurityEvent(ctx, "refund_event_without_charge", map[string]interface{}{
			"event_id":   event.ID,
			"payment_id": payment.ID.String(),
		})
		return ProcessingResult{Success: true, PaymentID: payment.ID.String()}, nil
	}

	charge, err := r.processor.GetCharge(ctx, chargeID)
	if err != nil {
		return ProcessingResult{}, fmt.Errorf("failed to refetch charge for refund reconciliation: %w", err)
	}

	refundedTotal := charge.AmountRefunded
	feeRefundedTotal, feeRefundID := r.reconcileFeeRefunds(ctx, payment, charge)

	targetStatus := r.resolveRefundStatus(ctx, event, payment, refund, refundedTotal)

	if targetStatus == payment.Status &&
		refundedTotal == payment.RefundedAmountCents &&
		feeRefundedTotal == payment.FeeRefundedAmountCents {
		r.audit.LogSecurityEvent(ctx, "duplicate_processing_prevented", map[string]interface{}{
			"event_id":   event.ID,
			"event_type": event.Type,
			"payment_id": payment.ID.String(),
		})
		return ProcessingResult{Success: true, PaymentID: payment.ID.String()}, nil
	}

	now := pgtype.Timestamptz{Time: time.Now(), Valid: true}
	updated, err := r.queries.UpdatePaymentRefundTotals(ctx, db.UpdatePaymentRefundTotalsParams{
		ID:                     payment.ID,
		Status:                 targetStatus,
		RefundedAmountCents:    refundedTotal,
		FeeRefundedAmountCents: feeRefundedTotal,
		FeeRefundID:            feeRefundID,
		LastWebhookEventID:     pgtype.Text{String: event.ID, Valid: true},
		LastProcessedAt:        now,
	})
	if err != nil {
		return ProcessingResult{}, fmt.Errorf("failed to write reconciled refund totals: %w", err)
	}

	r.logger.Info("Refund totals reconciled",
		zap.String("payment_id", updated.ID.String()),
		zap.String("event_id", event.ID),
		zap.Int64("refunded_amount_cents", refundedTotal),
		zap.Int64("fee_refunded_amount_cents", feeRefundedTotal),
		zap.String("status", string(targetStatus)))

	if targetStatus != payment.Status {
		r.triggerSettlementSnapshot(ctx, &updated)
	}

	return ProcessingResult{Success: true, PaymentID: updated.ID.String()}, nil
}

// resolveRefundStatus computes the post-reconciliation status. Fully refunded
// charges move to refunded. A refund that later fails or is canceled can pull
// a refunded payment back to paid; this is the only demotion the engine
// performs, and it is driven by recomputed processor truth, not by the event
// alone.
func (r *WebhookRouter) resolveRefundStatus(ctx context.Context, event Event, payment *db.Payment, refund *stripe.Refund, refundedTotal int64) db.PaymentStatus {
	fullyRefunded := payment.AmountCents > 0 && refundedTotal >= payment.AmountCents

	refundDead := event.Type == "refund.failed"
	if refund != nil && (refund.Status == stripe.RefundStatusFailed || refund.Status == stripe.RefundStatusCanceled) {
		refundDead = true
	}

	if refundDead && !fullyRefunded && payment.Status == db.PaymentStatusRefunded {
		r.audit.LogSecurityEvent(ctx, "refund_reversal_demotion", map[string]interface{}{
			"event_id":              event.ID,
			"event_type":            event.Type,
			"payment_id":            payment.ID.String(),
			"refunded_amount_cents": refundedTotal,
			"amount_cents":          payment.AmountCents,
		})
		return db.PaymentStatusPaid
	}

	if fullyRefunded && ShouldWrite(payment.Status, db.PaymentStatusRefunded) {
		return db.PaymentStatusRefunded
	}
	if fullyRefunded && payment.Status == db.PaymentStatusRefunded {
		return db.PaymentStatusRefunded
	}

	return payment.Status
}

// reconcileFeeRefunds recomputes the refunded platform-fee total. Listing fee
// refunds is best-effort: on any failure the stored totals are kept so a flaky
// secondary lookup never blocks the primary reconciliation.
func (r *WebhookRouter) reconcileFeeRefunds(ctx context.Context, payment *db.Payment, charge *stripe.Charge) (int64, pgtype.Text) {
	applicationFeeID := ""
	if payment.ApplicationFeeID.Valid {
		applicationFeeID = payment.ApplicationFeeID.String
	} else if charge.ApplicationFee != nil {
		applicationFeeID = charge.ApplicationFee.ID
	}
	if applicationFeeID == "" {
		return payment.FeeRefundedAmountCents, payment.FeeRefundID
	}

	feeRefunds, err := r.processor.ListFeeRefunds(ctx, applicationFeeID)
	if err != nil {
		r.logger.Warn("Failed to list fee refunds, keeping stored totals",
			zap.String("payment_id", payment.ID.String()),
			zap.String("application_fee_id", applicationFeeID),
			zap.Error(err))
		return payment.FeeRefundedAmountCents, payment.FeeRefundID
	}

	var total int64
	latestID := payment.FeeRefundID
	var latestCreated int64
	for _, feeRefund := range feeRefunds {
		total += feeRefund.Amount
		if feeRefund.Created >= latestCreated {
			latestCreated = feeRefund.Created
			latestID = pgtype.Text{String: feeRefund.ID, Valid: true}
		}
	}
	return total, latestID
}

// extractRefundReference pulls the charge and intent ids out of the event
// payload, which is a charge object for charge.refunded and a refund object
// for refund.updated / refund.failed.
func extractRefundReference(event Event) (chargeID, intentID string, refund *stripe.Refund, err error) {
	if event.Type == "charge.refunded" {
		var charge stripe.Charge
		if err := json.Unmarshal(event.Data.Raw, &charge); err != nil {
			return "", "", nil, fmt.Errorf("failed to unmarshal %s data: %w", event.Type, err)
		}
		if charge.PaymentIntent != nil {
			intentID = charge.PaymentIntent.ID
		}
		return charge.ID, intentID, nil, nil
	}

	var re stripe.Refund
	if err := json.Unmarshal(event.Data.Raw, &re); err != nil {
		return "", "", nil, fmt.Errorf("failed to unmarshal %s data: %w", event.Type, err)
	}
	if re.Charge != nil {
		chargeID = re.Charge.ID
	}
	if re.PaymentIntent != nil {
		intentID = re.PaymentIntent.ID
	}
	return chargeID, intentID, &re, nil
}

func refundMetadata(refund *stripe.Refund) map[string]string {
	if refund == nil {
		return nil
	}
	return refund.Metadata
}
