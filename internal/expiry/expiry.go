// Package expiry derives the freshness status of an inventory item from its
// expiry date.
package expiry

import "time"

// Status is the freshness bucket of an item relative to today.
type Status string

const (
	StatusExpired Status = "expired"
	StatusSoon    Status = "soon"
	StatusFresh   Status = "fresh"
	StatusUnknown Status = "unknown"
)

// soonThresholdDays is the window in which an item counts as expiring soon.
const soonThresholdDays = 3

// Compute returns the status of an expiry date and the number of whole days
// remaining (negative when already expired). daysLeft is nil when no expiry
// date is tracked.
func Compute(expiry *time.Time, today time.Time) (Status, *int) {
	if expiry == nil {
		return StatusUnknown, nil
	}

	days := daysBetween(today, *expiry)
	switch {
	case days < 0:
		return StatusExpired, &days
	case days <= soonThresholdDays:
		return StatusSoon, &days
	default:
		return StatusFresh, &days
	}
}

// Urgent reports whether a status means the item should be used up now.
func Urgent(s Status) bool {
	return s == StatusExpired || s == StatusSoon
}

func daysBetween(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f).Hours() / 24)
}
