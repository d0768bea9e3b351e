package audit

import (
	"context"
	"encoding/json"

	"github.com/attendly/attendly-api/internal/db"
	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/zap"
)

// Severity values recorded on audit rows.
const (
	severityInfo       = "info"
	severitySuspicious = "suspicious"
)

// Sink receives audit entries from the reconciliation engine. Routine,
// expected branches (duplicate prevented, no matching record, processed) go
// through LogSecurityEvent; LogSuspiciousActivity is reserved for escaped or
// unexpected failures. Both are best-effort and never return an error.
type Sink interface {
	LogSecurityEvent(ctx context.Context, eventType string, details map[string]interface{})
	LogSuspiciousActivity(ctx context.Context, eventType string, details map[string]interface{})
}

// Recorder persists audit entries as webhook_events rows and mirrors them to
// the structured log.
type Recorder struct {
	queries db.Querier
	logger  *zap.Logger
}

// NewRecorder creates an audit recorder backed by the record store.
func NewRecorder(queries db.Querier, logger *zap.Logger) *Recorder {
	return &Recorder{
		queries: queries,
		logger:  logger,
	}
}

var _ Sink = (*Recorder)(nil)

// LogSecurityEvent records a routine audit entry.
func (r *Recorder) LogSecurityEvent(ctx context.Context, eventType string, details map[string]interface{}) {
	r.record(ctx, eventType, severityInfo, details)
	r.logger.Info("Audit event", zap.String("audit_type", eventType), zap.Any("details", details))
}

// LogSuspiciousActivity records an audit entry for an escaped or unexpected
// failure.
func (r *Recorder) LogSuspiciousActivity(ctx context.Context, eventType string, details map[string]interface{}) {
	r.record(ctx, eventType, severitySuspicious, details)
	r.logger.Warn("Suspicious activity", zap.String("audit_type", eventType), zap.Any("details", details))
}

func (r *Recorder) record(ctx context.Context, eventType, severity string, details map[string]interface{}) {
	eventDetails, err := json.Marshal(details)
	if err != nil {
		r.logger.Error("Failed to marshal audit details",
			zap.String("audit_type", eventType),
			zap.Error(err))
		eventDetails = []byte("{}")
	}

	var webhookEventID pgtype.Text
	if id, ok := details["event_id"].(string); ok && id != "" {
		webhookEventID = pgtype.Text{String: id, Valid: true}
	}

	params := db.CreateWebhookEventParams{
		EntityType:     "payment_webhook",
		EventType:      eventType,
		Severity:       severity,
		EventDetails:   eventDetails,
		WebhookEventID: webhookEventID,
	}
	if msg, ok := details["message"].(string); ok && msg != "" {
		params.EventMessage = pgtype.Text{String: msg, Valid: true}
	}

	// Audit persistence must never block event processing.
	if _, err := r.queries.CreateWebhookEvent(ctx, params); err != nil {
		r.logger.Error("Failed to persist audit event",
			zap.String("audit_type", eventType),
			zap.Error(err))
	}
}
