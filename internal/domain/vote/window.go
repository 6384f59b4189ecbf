package vote

import "time"

// DefaultWindow is the rolling eligibility window. Votes older than this are
// inert: they stay in the table as history but count for nothing.
const DefaultWindow = 30 * 24 * time.Hour

// DefaultLimit is the number of votes a user may cast inside one window.
const DefaultLimit = 2

// WindowStart returns the inclusive lower bound of the recent-votes window.
// Every call site (recent-votes query, evaluator) must derive its bound from
// here, or duplicate/limit detection drifts apart.
func WindowStart(now time.Time, window time.Duration) time.Time {
	return now.Add(-window)
}
