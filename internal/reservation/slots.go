package reservation

import (
	"time"

	"github.com/shizukanami/salon-booking-backend/internal/schedule"
)

// SlotIntervalMinutes is the granularity of the booking grid.
const SlotIntervalMinutes = 30

// SlotCandidates enumerates bookable start times for one day.
//
// Candidates run on a 30-minute grid from open to (exclusive) close,
// expressed as minutes since midnight. A candidate survives if it does not
// start in the past, its end does not run past closing (ending exactly at
// close is allowed), and it does not overlap a non-cancelled reservation
// under the half-open interval test.
//
// The result is advisory: it reflects the reservation set at read time.
// Book re-runs these checks at commit time.
func SlotCandidates(win schedule.Window, date time.Time, durationMinutes int, now time.Time, existing []*Reservation) []time.Time {
	if win.Closed || durationMinutes <= 0 {
		return nil
	}

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())

	var slots []time.Time
	for m := win.OpenMinutes; m < win.CloseMinutes; m += SlotIntervalMinutes {
		if m+durationMinutes > win.CloseMinutes {
			continue
		}

		start := dayStart.Add(time.Duration(m) * time.Minute)
		if start.Before(now) {
			continue
		}

		end := start.Add(time.Duration(durationMinutes) * time.Minute)
		if overlapsAny(start, end, existing) {
			continue
		}

		slots = append(slots, start)
	}
	return slots
}

// ValidateStart is the commit-time counterpart of SlotCandidates for a
// single start time: window closed, starting in the past, starting before
// open or running past close all reject with ErrSlotConflict. The overlap
// check is not done here; it runs inside the storage transaction so it is
// atomic with the insert.
func ValidateStart(win schedule.Window, start time.Time, durationMinutes int, now time.Time) error {
	if win.Closed {
		return ErrSlotConflict
	}
	if start.Before(now) {
		return ErrSlotConflict
	}

	dayStart := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	startMinutes := int(start.Sub(dayStart) / time.Minute)

	if startMinutes < win.OpenMinutes {
		return ErrSlotConflict
	}
	if startMinutes+durationMinutes > win.CloseMinutes {
		return ErrSlotConflict
	}
	return nil
}

func overlapsAny(start, end time.Time, existing []*Reservation) bool {
	for _, r := range existing {
		if r.Status == StatusCancelled {
			continue
		}
		if start.Before(r.EndTime) && end.After(r.StartTime) {
			return true
		}
	}
	return false
}
