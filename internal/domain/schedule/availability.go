package schedule

import (
	"time"

	"github.com/serenetouch/booking-api/internal/models"
)

// Available reports whether the requested date/slot is bookable given
// the weekly working hours and the blocked-date list for that day.
//
// The slot is unavailable when the weekday is explicitly disabled, when
// the day carries an all-day block, or when a partial block names the
// requested slot. A weekday with no configured row counts as open so a
// fresh install does not reject every booking.
//
// Pure function of its inputs: no side effects, always returns.
func Available(
	hours []models.WorkingHours,
	blocked []models.BlockedDate,
	date time.Time,
	slot string,
) bool {

	weekday := int(date.Weekday())

	for _, wh := range hours {
		if wh.Weekday == weekday && !wh.Enabled {
			return false
		}
	}

	for _, bd := range blocked {
		if !sameDay(bd.Date, date) {
			continue
		}
		if bd.AllDay {
			return false
		}
		for _, blockedSlot := range bd.TimeSlots.Data() {
			if blockedSlot == slot {
				return false
			}
		}
	}

	return true
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
