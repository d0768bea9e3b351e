package services

import (
	"context"

	"github.com/attendly/attendly-api/internal/audit"
	stripeclient "github.com/attendly/attendly-api/internal/client/stripe"
	"github.com/attendly/attendly-api/internal/db"
	"go.uber.org/zap"
)

// WebhookRouter dispatches processor events to per-type handlers and
// normalizes their outcomes into a uniform ProcessingResult. It is the single
// place that decides whether a failed delivery is retryable.
type WebhookRouter struct {
	queries   db.Querier
	processor stripeclient.ProcessorClient
	audit     audit.Sink
	logger    *zap.Logger
}

// NewWebhookRouter creates a router with injected dependencies so the engine
// is testable without process-wide state.
func NewWebhookRouter(queries db.Querier, processor stripeclient.ProcessorClient, auditSink audit.Sink, logger *zap.Logger) *WebhookRouter {
	return &WebhookRouter{
		queries:   queries,
		processor: processor,
		audit:     auditSink,
		logger:    logger,
	}
}

// Handle processes one webhook event. It never panics outward and never
// returns an error: transient handler failures surface as a retryable result,
// terminal data-integrity failures as a terminal one, and every expected
// no-op condition (unknown type, missing record, stale delivery) as success.
func (r *WebhookRouter) Handle(ctx context.Context, event Event) ProcessingResult {
	result, err := r.dispatch(ctx, event)
	if err != nil {
		r.audit.LogSuspiciousActivity(ctx, "webhook_handler_failure", map[string]interface{}{
			"event_id":   event.ID,
			"event_type": event.Type,
			"message":    err.Error(),
		})
		return ProcessingResult{
			Success: false,
			Error:   err.Error(),
			EventID: event.ID,
		}
	}

	result.EventID = event.ID
	if result.Success {
		// Receipt row: every successfully handled delivery leaves a trace, not
		// just the anomalous ones.
		r.audit.LogSecurityEvent(ctx, "processed", map[string]interface{}{
			"event_id":   event.ID,
			"event_type": event.Type,
			"payment_id": result.PaymentID,
		})
	}
	return result
}

func (r *WebhookRouter) dispatch(ctx context.Context, event Event) (ProcessingResult, error) {
	switch event.Type {
	case "payment_intent.succeeded":
		return r.handlePaymentIntentSucceeded(ctx, event)
	case "payment_intent.payment_failed", "payment_intent.canceled":
		return r.handlePaymentIntentFailed(ctx, event)
	case "checkout.session.completed":
		return r.handleCheckoutSessionCompleted(ctx, event)
	case "checkout.session.expired":
		return r.handleCheckoutSessionExpired(ctx, event)
	case "charge.succeeded":
		return r.handleChargeSucceeded(ctx, event)
	case "charge.failed":
		return r.handleChargeFailed(ctx, event)
	case "charge.refunded", "refund.updated", "refund.failed":
		return r.handleRefundEvent(ctx, event)
	case "charge.dispute.created", "charge.dispute.updated", "charge.dispute.closed", "charge.dispute.funds_reinstated":
		return r.handleDisputeEvent(ctx, event)
	case "transfer.created", "transfer.updated", "transfer.reversed":
		return r.handleTransferEvent(ctx, event)
	default:
		// New processor event types must never block redelivery of events we
		// do understand; acknowledge and move on.
		r.audit.LogSecurityEvent(ctx, "unhandled_event_type", map[string]interface{}{
			"event_id":   event.ID,
			"event_type": event.Type,
		})
		return ProcessingResult{Success: true}, nil
	}
}
