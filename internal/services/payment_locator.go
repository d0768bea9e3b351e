package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/attendly/attendly-api/internal/db"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// locatePayment resolves the local payment referenced by an event, trying the
// processor payment-intent id first, then the charge id, then the correlation
// id embedded in the event's metadata. A nil payment with nil error means no
// record matched; retrying a delivery cannot create the record, so callers
// acknowledge instead of failing.
func (r *WebhookRouter) locatePayment(ctx context.Context, intentID, chargeID string, metadata map[string]string) (*db.Payment, error) {
	if intentID != "" {
		payment, err := r.queries.GetPaymentByIntentID(ctx, pgtype.Text{String: intentID, Valid: true})
		if err == nil {
			return &payment, nil
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("failed to look up payment by intent id: %w", err)
		}
	}

	if chargeID != "" {
		payment, err := r.queries.GetPaymentByChargeID(ctx, pgtype.Text{String: chargeID, Valid: true})
		if err == nil {
			return &payment, nil
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("failed to look up payment by charge id: %w", err)
		}
	}

	return r.locatePaymentByMetadata(ctx, metadata)
}

// locatePaymentBySession resolves the payment for checkout-session events,
// which can reach a payment before any payment-intent id has been recorded.
// Order: checkout-session id, legacy session id, metadata correlation id.
func (r *WebhookRouter) locatePaymentBySession(ctx context.Context, sessionID string, metadata map[string]string) (*db.Payment, error) {
	if sessionID != "" {
		payment, err := r.queries.GetPaymentByCheckoutSessionID(ctx, pgtype.Text{String: sessionID, Valid: true})
		if err == nil {
			return &payment, nil
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("failed to look up payment by checkout session id: %w", err)
		}

		payment, err = r.queries.GetPaymentByLegacySessionID(ctx, pgtype.Text{String: sessionID, Valid: true})
		if err == nil {
			return &payment, nil
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("failed to look up payment by legacy session id: %w", err)
		}
	}

	return r.locatePaymentByMetadata(ctx, metadata)
}

func (r *WebhookRouter) locatePaymentByMetadata(ctx context.Context, metadata map[string]string) (*db.Payment, error) {
	correlationID, ok := metadata[metadataPaymentIDKey]
	if !ok || correlationID == "" {
		return nil, nil
	}

	paymentID, err := uuid.Parse(correlationID)
	if err != nil {
		// A malformed correlation id cannot be resolved by retrying.
		return nil, nil
	}

	payment, err := r.queries.GetPayment(ctx, paymentID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to look up payment by correlation id: %w", err)
	}
	return &payment, nil
}

// ackMissingPayment logs the no-matching-record branch and acknowledges the
// event.
func (r *WebhookRouter) ackMissingPayment(ctx context.Context, event Event) ProcessingResult {
	r.audit.LogSecurityEvent(ctx, "payment_record_not_found", map[string]interface{}{
		"event_id":   event.ID,
		"event_type": event.Type,
	})
	return ProcessingResult{Success: true}
}

// ackDuplicate logs the rank-gate rejection and acknowledges the event.
func (r *WebhookRouter) ackDuplicate(ctx context.Context, event Event, payment *db.Payment, target db.PaymentStatus) ProcessingResult {
	r.audit.LogSecurityEvent(ctx, "duplicate_processing_prevented", map[string]interface{}{
		"event_id":       event.ID,
		"event_type":     event.Type,
		"payment_id":     payment.ID.String(),
		"current_status": string(payment.Status),
		"target_status":  string(target),
	})
	return ProcessingResult{Success: true, PaymentID: payment.ID.String()}
}
