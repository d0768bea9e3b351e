package services_test

import (
	"testing"

	"github.com/attendly/attendly-api/internal/db"
	"github.com/attendly/attendly-api/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestStatusRank_Ordering(t *testing.T) {
	assert.Less(t, services.StatusRank(db.PaymentStatusPending), services.StatusRank(db.PaymentStatusFailed))
	assert.Less(t, services.StatusRank(db.PaymentStatusFailed), services.StatusRank(db.PaymentStatusPaid))
	assert.Less(t, services.StatusRank(db.PaymentStatusPaid), services.StatusRank(db.PaymentStatusRefunded))
}

func TestStatusRank_UnknownStatusRanksBelowPending(t *testing.T) {
	assert.Less(t, services.StatusRank(db.PaymentStatus("bogus")), services.StatusRank(db.PaymentStatusPending))
}

func TestShouldWrite(t *testing.T) {
	tests := []struct {
		name    string
		current db.PaymentStatus
		target  db.PaymentStatus
		want    bool
	}{
		{"pending to paid", db.PaymentStatusPending, db.PaymentStatusPaid, true},
		{"pending to failed", db.PaymentStatusPending, db.PaymentStatusFailed, true},
		{"failed to paid recovers", db.PaymentStatusFailed, db.PaymentStatusPaid, true},
		{"paid to refunded", db.PaymentStatusPaid, db.PaymentStatusRefunded, true},
		{"paid to paid is a no-op", db.PaymentStatusPaid, db.PaymentStatusPaid, false},
		{"paid to failed never regresses", db.PaymentStatusPaid, db.PaymentStatusFailed, false},
		{"refunded to paid never regresses", db.PaymentStatusRefunded, db.PaymentStatusPaid, false},
		{"refunded to pending never regresses", db.PaymentStatusRefunded, db.PaymentStatusPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, services.ShouldWrite(tt.current, tt.target))
		})
	}
}

func TestCanPromote_AcceptsEqualStatus(t *testing.T) {
	assert.True(t, services.CanPromote(db.PaymentStatusPaid, db.PaymentStatusPaid))
	assert.False(t, services.CanPromote(db.PaymentStatusPaid, db.PaymentStatusFailed))
	assert.True(t, services.CanPromote(db.PaymentStatusPending, db.PaymentStatusRefunded))
}
