// Package classifier partitions a user's bookings into the two groups
// the profile page renders: active (upcoming, still awaiting an outcome)
// and history (past, or resolved to a terminal status).
package classifier

import (
	"time"

	"drivedesk/pkg/model"
)

// IsActive reports whether a booking belongs in the active group:
// its date has not passed (inclusive of the boundary instant) and its
// status is still open. A cancelled or completed booking is never
// active, no matter how far in the future its date is; an open booking
// whose date has passed is no longer active either.
func IsActive(b model.Booking, now time.Time) bool {
	return !b.BookingDate.Before(now) && model.KindOfStatus(b.Status).Open()
}

// Classify splits bookings into active and history at a single instant.
// The partition is total and stable: every booking lands in exactly one
// group, and each group preserves the input order. Callers must capture
// now once per collection so the boundary is consistent across it.
func Classify(bookings []model.Booking, now time.Time) (active, history []model.Booking) {
	active = make([]model.Booking, 0, len(bookings))
	history = make([]model.Booking, 0, len(bookings))

	for _, b := range bookings {
		if IsActive(b, now) {
			active = append(active, b)
		} else {
			history = append(history, b)
		}
	}

	return active, history
}
