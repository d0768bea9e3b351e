package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	stripeclient "github.com/attendly/attendly-api/internal/client/stripe"
	"github.com/attendly/attendly-api/internal/db"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stripe/stripe-go/v82"
	"go.uber.org/zap"
)

// handleDisputeEvent records dispute lifecycle state and moves organizer
// funds. A freshly created dispute claws the disputed amount back from the
// organizer's transfer; a dispute resolved in our favor sends it out again.
// Both movements carry idempotency keys derived from the dispute id, and the
// local bookkeeping write is conditional on the amount it read, so concurrent
// deliveries cannot double-move money.
func (r *WebhookRouter) handleDisputeEvent(ctx context.Context, event Event) (ProcessingResult, error) {
	var dispute stripe.Dispute
	if err := json.Unmarshal(event.Data.Raw, &dispute); err != nil {
		return ProcessingResult{}, fmt.Errorf("failed to unmarshal %s data: %w", event.Type, err)
	}

	chargeID := ""
	if dispute.Charge != nil {
		chargeID = dispute.Charge.ID
	}
	intentID := ""
	if dispute.PaymentIntent != nil {
		intentID = dispute.PaymentIntent.ID
	}

	payment, err := r.locatePayment(ctx, intentID, chargeID, dispute.Metadata)
	if err != nil {
		return ProcessingResult{}, err
	}

	if err := r.recordDispute(ctx, event, &dispute, payment, chargeID, intentID); err != nil {
		return ProcessingResult{}, err
	}

	if payment == nil {
		return r.ackMissingPayment(ctx, event), nil
	}

	var result ProcessingResult
	switch {
	case event.Type == "charge.dispute.created":
		result, err = r.reverseDisputedFunds(ctx, event, &dispute, payment)
	case event.Type == "charge.dispute.funds_reinstated",
		event.Type == "charge.dispute.closed" && dispute.Status == stripe.DisputeStatusWon:
		result, err = r.reinstateDisputedFunds(ctx, event, &dispute, payment, chargeID)
	default:
		r.logger.Info("Dispute state recorded",
			zap.String("event_id", event.ID),
			zap.String("dispute_id", dispute.ID),
			zap.String("dispute_status", string(dispute.Status)))
		result = ProcessingResult{Success: true, PaymentID: payment.ID.String()}
	}
	if err != nil {
		return ProcessingResult{}, err
	}

	// Every dispute branch can change what the organizer is owed, so the
	// snapshot is refreshed unconditionally once the branch completes.
	r.triggerSettlementSnapshot(ctx, payment)

	return result, nil
}

// recordDispute upserts the dispute row. Every dispute event refreshes the
// record regardless of whether funds move.
func (r *WebhookRouter) recordDispute(ctx context.Context, event Event, dispute *stripe.Dispute, payment *db.Payment, chargeID, intentID string) error {
	params := db.UpsertDisputeParams{
		StripeDisputeID: dispute.ID,
		AmountCents:     dispute.Amount,
		Currency:        string(dispute.Currency),
		Status:          string(dispute.Status),
	}
	if payment != nil {
		params.PaymentID = pgtype.UUID{Bytes: payment.ID, Valid: true}
	}
	if chargeID != "" {
		params.StripeChargeID = pgtype.Text{String: chargeID, Valid: true}
	}
	if intentID != "" {
		params.StripePaymentIntentID = pgtype.Text{String: intentID, Valid: true}
	}
	if dispute.Reason != "" {
		params.Reason = pgtype.Text{String: string(dispute.Reason), Valid: true}
	}
	if dispute.EvidenceDetails != nil && dispute.EvidenceDetails.DueBy > 0 {
		params.EvidenceDueBy = pgtype.Timestamptz{Time: time.Unix(dispute.EvidenceDetails.DueBy, 0), Valid: true}
	}
	if event.Type == "charge.dispute.closed" {
		params.ClosedAt = pgtype.Timestamptz{Time: time.Now(), Valid: true}
	}

	if _, err := r.queries.UpsertDispute(ctx, params); err != nil {
		return fmt.Errorf("failed to upsert dispute %s: %w", dispute.ID, err)
	}
	return nil
}

// reverseDisputedFunds pulls the disputed amount back from the organizer's
// transfer. The payment row is re-read immediately before deciding how much
// remains to reverse, and the bookkeeping write only lands if the reversed
// amount is still what was read, so a racing duplicate delivery observes zero
// rows updated instead of reversing twice.
func (r *WebhookRouter) reverseDisputedFunds(ctx context.Context, event Event, dispute *stripe.Dispute, located *db.Payment) (ProcessingResult, error) {
	payment, err := r.queries.GetPayment(ctx, located.ID)
	if err != nil {
		return ProcessingResult{}, fmt.Errorf("failed to re-read payment before reversal: %w", err)
	}

	if !payment.TransferID.Valid {
		// No organizer transfer exists yet, so there is nothing to claw back.
		r.audit.LogSecurityEvent(ctx, "dispute_without_transfer", map[string]interface{}{
			"event_id":   event.ID,
			"dispute_id": dispute.ID,
			"payment_id": payment.ID.String(),
		})
		return ProcessingResult{Success: true, PaymentID: payment.ID.String()}, nil
	}

	toReverse := dispute.Amount - payment.TransferReversedAmountCents
	if toReverse <= 0 {
		r.audit.LogSecurityEvent(ctx, "duplicate_processing_prevented", map[string]interface{}{
			"event_id":   event.ID,
			"event_type": event.Type,
			"payment_id": payment.ID.String(),
			"dispute_id": dispute.ID,
		})
		return ProcessingResult{Success: true, PaymentID: payment.ID.String()}, nil
	}

	reversal, err := r.processor.ReverseTransfer(ctx, stripeclient.ReverseTransferParams{
		TransferID:     payment.TransferID.String,
		AmountCents:    toReverse,
		IdempotencyKey: "dispute-reversal-" + dispute.ID,
	})
	if err != nil {
		r.logger.Error("Transfer reversal failed",
			zap.String("event_id", event.ID),
			zap.String("dispute_id", dispute.ID),
			zap.String("payment_id", payment.ID.String()),
			zap.String("transfer_id", payment.TransferID.String),
			zap.Int64("amount_cents", toReverse),
			zap.Error(err))
		return ProcessingResult{}, fmt.Errorf("failed to reverse transfer for dispute %s: %w", dispute.ID, err)
	}

	rows, err := r.queries.UpdatePaymentTransferReversal(ctx, db.UpdatePaymentTransferReversalParams{
		ID:                          payment.ID,
		ExpectedReversedAmountCents: payment.TransferReversedAmountCents,
		TransferReversedAmountCents: payment.TransferReversedAmountCents + toReverse,
		TransferReversalID:          pgtype.Text{String: reversal.ID, Valid: true},
	})
	if err != nil {
		return ProcessingResult{}, fmt.Errorf("failed to record transfer reversal: %w", err)
	}
	if rows == 0 {
		// A concurrent delivery won the write. The processor-side reversal is
		// idempotent under the shared key, so funds moved exactly once.
		r.audit.LogSecurityEvent(ctx, "concurrent_reversal_detected", map[string]interface{}{
			"event_id":   event.ID,
			"dispute_id": dispute.ID,
			"payment_id": payment.ID.String(),
		})
		return ProcessingResult{Success: true, PaymentID: payment.ID.String()}, nil
	}

	r.logger.Info("Disputed funds reversed",
		zap.String("event_id", event.ID),
		zap.String("dispute_id", dispute.ID),
		zap.String("payment_id", payment.ID.String()),
		zap.String("reversal_id", reversal.ID),
		zap.Int64("amount_cents", toReverse))

	return ProcessingResult{Success: true, PaymentID: payment.ID.String()}, nil
}

// reinstateDisputedFunds sends previously reversed funds back to the
// organizer after a dispute resolves in our favor.
func (r *WebhookRouter) reinstateDisputedFunds(ctx context.Context, event Event, dispute *stripe.Dispute, located *db.Payment, chargeID string) (ProcessingResult, error) {
	payment, err := r.queries.GetPayment(ctx, located.ID)
	if err != nil {
		return ProcessingResult{}, fmt.Errorf("failed to re-read payment before reinstatement: %w", err)
	}

	if payment.TransferReversedAmountCents <= 0 {
		r.audit.LogSecurityEvent(ctx, "duplicate_processing_prevented", map[string]interface{}{
			"event_id":   event.ID,
			"event_type": event.Type,
			"payment_id": payment.ID.String(),
			"dispute_id": dispute.ID,
		})
		return ProcessingResult{Success: true, PaymentID: payment.ID.String()}, nil
	}

	if chargeID == "" && payment.StripeChargeID.Valid {
		chargeID = payment.StripeChargeID.String
	}
	if chargeID == "" {
		return ProcessingResult{}, fmt.Errorf("cannot reinstate funds for dispute %s: no charge on record", dispute.ID)
	}

	charge, err := r.processor.GetCharge(ctx, chargeID)
	if err != nil {
		return ProcessingResult{}, fmt.Errorf("failed to refetch charge for reinstatement: %w", err)
	}
	if charge.Transfer == nil || charge.Transfer.Destination == nil {
		return ProcessingResult{}, fmt.Errorf("cannot reinstate funds for dispute %s: charge %s has no transfer destination", dispute.ID, chargeID)
	}

	transfer, err := r.processor.CreateTransfer(ctx, stripeclient.CreateTransferParams{
		AmountCents:    payment.TransferReversedAmountCents,
		Currency:       payment.Currency,
		Destination:    charge.Transfer.Destination.ID,
		TransferGroup:  charge.TransferGroup,
		IdempotencyKey: "dispute-retransfer-" + dispute.ID,
	})
	if err != nil {
		r.logger.Error("Funds reinstatement transfer failed",
			zap.String("event_id", event.ID),
			zap.String("dispute_id", dispute.ID),
			zap.String("payment_id", payment.ID.String()),
			zap.Int64("amount_cents", payment.TransferReversedAmountCents),
			zap.Error(err))
		return ProcessingResult{}, fmt.Errorf("failed to re-transfer funds for dispute %s: %w", dispute.ID, err)
	}

	updated, err := r.queries.ResetPaymentTransferReversal(ctx, payment.ID)
	if err != nil {
		return ProcessingResult{}, fmt.Errorf("failed to clear transfer reversal state: %w", err)
	}

	r.logger.Info("Disputed funds reinstated",
		zap.String("event_id", event.ID),
		zap.String("dispute_id", dispute.ID),
		zap.String("payment_id", updated.ID.String()),
		zap.String("transfer_id", transfer.ID))

	return ProcessingResult{Success: true, PaymentID: updated.ID.String()}, nil
}
