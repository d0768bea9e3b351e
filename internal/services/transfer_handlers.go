package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/attendly/attendly-api/internal/db"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stripe/stripe-go/v82"
	"go.uber.org/zap"
)

// handleTransferEvent keeps payout records in step with organizer transfers.
// transfer.created completes the payout, transfer.reversed fails it, and
// transfer.updated is informational only.
func (r *WebhookRouter) handleTransferEvent(ctx context.Context, event Event) (ProcessingResult, error) {
	var transfer stripe.Transfer
	if err := json.Unmarshal(event.Data.Raw, &transfer); err != nil {
		return ProcessingResult{}, fmt.Errorf("failed to unmarshal %s data: %w", event.Type, err)
	}

	payout, err := r.locatePayout(ctx, transfer.ID, transfer.TransferGroup)
	if err != nil {
		return ProcessingResult{}, err
	}
	if payout == nil {
		r.audit.LogSecurityEvent(ctx, "payout_record_not_found", map[string]interface{}{
			"event_id":       event.ID,
			"event_type":     event.Type,
			"transfer_id":    transfer.ID,
			"transfer_group": transfer.TransferGroup,
		})
		return ProcessingResult{Success: true}, nil
	}

	switch event.Type {
	case "transfer.created":
		return r.completePayout(ctx, event, payout, &transfer)
	case "transfer.reversed":
		return r.failPayout(ctx, event, payout, &transfer)
	default:
		r.logger.Info("Transfer update observed",
			zap.String("event_id", event.ID),
			zap.String("transfer_id", transfer.ID),
			zap.String("payout_id", payout.ID.String()))
		return ProcessingResult{Success: true, PayoutID: payout.ID.String()}, nil
	}
}

func (r *WebhookRouter) completePayout(ctx context.Context, event Event, payout *db.Payout, transfer *stripe.Transfer) (ProcessingResult, error) {
	if payout.Status == db.PayoutStatusCompleted {
		r.audit.LogSecurityEvent(ctx, "duplicate_processing_prevented", map[string]interface{}{
			"event_id":   event.ID,
			"event_type": event.Type,
			"payout_id":  payout.ID.String(),
		})
		return ProcessingResult{Success: true, PayoutID: payout.ID.String()}, nil
	}

	updated, err := r.queries.UpdatePayoutStatus(ctx, db.UpdatePayoutStatusParams{
		ID:     payout.ID,
		Status: db.PayoutStatusCompleted,
	})
	if err != nil {
		return ProcessingResult{}, fmt.Errorf("failed to mark payout completed: %w", err)
	}

	r.logger.Info("Payout completed",
		zap.String("event_id", event.ID),
		zap.String("payout_id", updated.ID.String()),
		zap.String("transfer_id", transfer.ID))

	return ProcessingResult{Success: true, PayoutID: updated.ID.String()}, nil
}

func (r *WebhookRouter) failPayout(ctx context.Context, event Event, payout *db.Payout, transfer *stripe.Transfer) (ProcessingResult, error) {
	if payout.Status == db.PayoutStatusFailed {
		r.audit.LogSecurityEvent(ctx, "duplicate_processing_prevented", map[string]interface{}{
			"event_id":   event.ID,
			"event_type": event.Type,
			"payout_id":  payout.ID.String(),
		})
		return ProcessingResult{Success: true, PayoutID: payout.ID.String()}, nil
	}

	reason := fmt.Sprintf("transfer %s reversed (%d of %d cents)", transfer.ID, transfer.AmountReversed, transfer.Amount)
	updated, err := r.queries.UpdatePayoutStatus(ctx, db.UpdatePayoutStatusParams{
		ID:            payout.ID,
		Status:        db.PayoutStatusFailed,
		FailureReason: pgtype.Text{String: reason, Valid: true},
	})
	if err != nil {
		return ProcessingResult{}, fmt.Errorf("failed to mark payout failed: %w", err)
	}

	r.logger.Warn("Payout failed after transfer reversal",
		zap.String("event_id", event.ID),
		zap.String("payout_id", updated.ID.String()),
		zap.String("transfer_id", transfer.ID),
		zap.Int64("amount_reversed_cents", transfer.AmountReversed))

	return ProcessingResult{Success: true, PayoutID: updated.ID.String()}, nil
}

// locatePayout resolves a payout by transfer id first, then by transfer
// group, which is how a payout created before the transfer existed is found.
func (r *WebhookRouter) locatePayout(ctx context.Context, transferID, transferGroup string) (*db.Payout, error) {
	if transferID != "" {
		payout, err := r.queries.GetPayoutByTransferID(ctx, pgtype.Text{String: transferID, Valid: true})
		if err == nil {
			return &payout, nil
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("failed to look up payout by transfer id: %w", err)
		}
	}

	if transferGroup != "" {
		payout, err := r.queries.GetPayoutByTransferGroup(ctx, pgtype.Text{String: transferGroup, Valid: true})
		if err == nil {
			return &payout, nil
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("failed to look up payout by transfer group: %w", err)
		}
	}

	return nil, nil
}
