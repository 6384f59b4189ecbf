package vote

import (
	"time"

	"github.com/google/uuid"
)

type Reason string

const (
	ReasonDuplicate Reason = "duplicate"
	ReasonLimit     Reason = "limit"
)

// Record is one vote row as seen by the evaluator.
type Record struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	ProductID uuid.UUID
	CreatedAt time.Time
}

// Decision is the outcome of an eligibility check.
type Decision struct {
	CanVote   bool
	Reason    Reason
	Remaining int
}

func allowed() Decision {
	return Decision{CanVote: true}
}

func rejected(reason Reason, remaining int) Decision {
	return Decision{CanVote: false, Reason: reason, Remaining: remaining}
}

// Evaluate decides whether a vote for productID at time now is allowed,
// given the user's existing vote records. Pure and non-mutating.
//
// Records strictly older than the window are ignored entirely; a record
// created exactly at the window boundary still counts as recent. The
// duplicate check runs before the limit check, so re-voting an
// already-voted product reports "duplicate" even when the user is also
// at or over the limit.
func Evaluate(records []Record, productID uuid.UUID, now time.Time, limit int, window time.Duration) Decision {
	start := WindowStart(now, window)

	recent := 0
	for _, r := range records {
		if r.CreatedAt.Before(start) {
			continue
		}
		if r.ProductID == productID {
			return rejected(ReasonDuplicate, 0)
		}
		recent++
	}

	if recent >= limit {
		return rejected(ReasonLimit, 0)
	}
	return allowed()
}
