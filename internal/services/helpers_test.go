package services_test

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	stripeclient "github.com/attendly/attendly-api/internal/client/stripe"
	"github.com/attendly/attendly-api/internal/db"
	"github.com/attendly/attendly-api/internal/logger"
	"github.com/attendly/attendly-api/internal/mocks"
	"github.com/attendly/attendly-api/internal/services"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func init() {
	logger.InitLogger("test")
}

// recordedAuditEntry is one call captured by recordingSink.
type recordedAuditEntry struct {
	EventType  string
	Suspicious bool
	Details    map[string]interface{}
}

// recordingSink captures audit calls so tests can assert on what was logged
// without a database.
type recordingSink struct {
	mu      sync.Mutex
	entries []recordedAuditEntry
}

func (s *recordingSink) LogSecurityEvent(_ context.Context, eventType string, details map[string]interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, recordedAuditEntry{EventType: eventType, Details: details})
}

func (s *recordingSink) LogSuspiciousActivity(_ context.Context, eventType string, details map[string]interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, recordedAuditEntry{EventType: eventType, Suspicious: true, Details: details})
}

func (s *recordingSink) count(eventType string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, e := range s.entries {
		if e.EventType == eventType {
			n++
		}
	}
	return n
}

type routerFixture struct {
	router    *services.WebhookRouter
	querier   *mocks.MockQuerier
	processor *mocks.MockProcessorClient
	audit     *recordingSink
}

func newRouterFixture(t *testing.T) *routerFixture {
	t.Helper()
	querier := mocks.NewMockQuerierForTest(t)
	processor := mocks.NewMockProcessorClientForTest(t)
	sink := &recordingSink{}

	return &routerFixture{
		router:    services.NewWebhookRouter(querier, processor, sink, zap.NewNop()),
		querier:   querier,
		processor: processor,
		audit:     sink,
	}
}

func makeEvent(id, eventType, payload string) services.Event {
	return services.Event{
		ID:   id,
		Type: eventType,
		Data: services.EventData{Raw: json.RawMessage(payload)},
	}
}

func paymentFixture(status db.PaymentStatus) db.Payment {
	return db.Payment{
		ID:                    uuid.New(),
		AttendanceID:          uuid.New(),
		AmountCents:           5000,
		Currency:              "usd",
		Status:                status,
		StripePaymentIntentID: pgtype.Text{String: "pi_123", Valid: true},
		StripeChargeID:        pgtype.Text{String: "ch_123", Valid: true},
	}
}

// expectSettlementRefresh wires the best-effort settlement chain for a
// payment whose status just changed.
func expectSettlementRefresh(f *routerFixture, payment db.Payment) {
	attendanceID := payment.AttendanceID
	eventID := uuid.New()
	f.querier.EXPECT().
		GetAttendance(gomock.Any(), attendanceID).
		Return(db.Attendance{ID: attendanceID, EventID: eventID}, nil).
		Times(1)
	f.querier.EXPECT().
		GetEvent(gomock.Any(), eventID).
		Return(db.Event{ID: eventID, Name: "Test Event"}, nil).
		Times(1)
	f.querier.EXPECT().
		RefreshEventSettlement(gomock.Any(), eventID).
		Return(nil).
		Times(1)
}

func errNoRows() error {
	return pgx.ErrNoRows
}

var _ stripeclient.ProcessorClient = (*mocks.MockProcessorClient)(nil)
