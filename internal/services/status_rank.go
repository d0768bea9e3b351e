package services

import "github.com/attendly/attendly-api/internal/db"

// statusRank defines the total order over payment statuses. Promotion only
// ever moves up this order; the single sanctioned demotion (refunded back to
// paid when a refund is later reversed) bypasses the rank gate explicitly in
// the refund reconciler.
var statusRank = map[db.PaymentStatus]int{
	db.PaymentStatusPending:  0,
	db.PaymentStatusFailed:   1,
	db.PaymentStatusPaid:     2,
	db.PaymentStatusRefunded: 3,
}

// StatusRank returns the rank of a status. Unknown statuses rank below
// pending so they can never overwrite a known state.
func StatusRank(status db.PaymentStatus) int {
	if rank, ok := statusRank[status]; ok {
		return rank
	}
	return -1
}

// CanPromote reports whether a transition from current to target is
// acceptable. Equal statuses are acceptable as an idempotent no-op; callers
// use ShouldWrite to skip the redundant write.
func CanPromote(current, target db.PaymentStatus) bool {
	return StatusRank(target) > StatusRank(current) || current == target
}

// ShouldWrite reports whether the transition is a strict promotion that
// actually needs a write. Every status-mutating handler consults this before
// touching the record; out-of-order and duplicate deliveries fail the check
// and are acknowledged without mutation.
func ShouldWrite(current, target db.PaymentStatus) bool {
	return StatusRank(target) > StatusRank(current)
}
