package services

import (
	"context"

	"github.com/attendly/attendly-api/internal/db"
	"go.uber.org/zap"
)

// triggerSettlementSnapshot refreshes the settlement rollup for the event the
// payment belongs to. It is strictly best-effort: the payment record is the
// source of truth and the rollup can always be rebuilt, so no failure on this
// path is allowed to fail the webhook.
func (r *WebhookRouter) triggerSettlementSnapshot(ctx context.Context, payment *db.Payment) {
	attendance, err := r.queries.GetAttendance(ctx, payment.AttendanceID)
	if err != nil {
		r.logger.Warn("Settlement refresh skipped: attendance lookup failed",
			zap.String("payment_id", payment.ID.String()),
			zap.String("attendance_id", payment.AttendanceID.String()),
			zap.Error(err))
		return
	}

	event, err := r.queries.GetEvent(ctx, attendance.EventID)
	if err != nil {
		r.logger.Warn("Settlement refresh skipped: event lookup failed",
			zap.String("payment_id", payment.ID.String()),
			zap.String("event_id", attendance.EventID.String()),
			zap.Error(err))
		return
	}

	if err := r.queries.RefreshEventSettlement(ctx, event.ID); err != nil {
		r.logger.Warn("Settlement refresh failed",
			zap.String("payment_id", payment.ID.String()),
			zap.String("event_id", event.ID.String()),
			zap.Error(err))
		return
	}

	r.logger.Debug("Settlement refreshed",
		zap.String("payment_id", payment.ID.String()),
		zap.String("event_id", event.ID.String()),
		zap.String("event_name", event.Name))
}
