package reservation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shizukanami/salon-booking-backend/internal/schedule"
)

var testDay = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

func at(hour, minute int) time.Time {
	return time.Date(2025, 6, 2, hour, minute, 0, 0, time.UTC)
}

func reserved(start, end time.Time) *Reservation {
	return &Reservation{StartTime: start, EndTime: end, Status: StatusConfirmed}
}

func TestSlotCandidatesDefaultWindow(t *testing.T) {
	win := schedule.DefaultWindow()
	// Well before the target day so the past filter stays out of the way.
	now := testDay.Add(-24 * time.Hour)

	t.Run("empty calendar, 60-minute course", func(t *testing.T) {
		slots := SlotCandidates(win, testDay, 60, now, nil)
		require.NotEmpty(t, slots)

		assert.Equal(t, at(10, 0), slots[0])
		// Ending exactly at close is allowed, so 17:00 is the last start.
		assert.Equal(t, at(17, 0), slots[len(slots)-1])
		assert.Len(t, slots, 15)
	})

	t.Run("30-minute course can start at 17:30", func(t *testing.T) {
		slots := SlotCandidates(win, testDay, 30, now, nil)
		require.NotEmpty(t, slots)
		assert.Equal(t, at(17, 30), slots[len(slots)-1])
	})

	t.Run("booking 10:00-11:00 blocks overlapping starts", func(t *testing.T) {
		existing := []*Reservation{reserved(at(10, 0), at(11, 0))}

		slots := SlotCandidates(win, testDay, 60, now, existing)
		require.NotEmpty(t, slots)

		assert.NotContains(t, slots, at(10, 0))
		assert.NotContains(t, slots, at(10, 30))
		// Back-to-back is fine under half-open intervals.
		assert.Equal(t, at(11, 0), slots[0])
	})

	t.Run("cancelled reservations do not block", func(t *testing.T) {
		existing := []*Reservation{
			{StartTime: at(10, 0), EndTime: at(11, 0), Status: StatusCancelled},
		}

		slots := SlotCandidates(win, testDay, 60, now, existing)
		require.NotEmpty(t, slots)
		assert.Equal(t, at(10, 0), slots[0])
	})

	t.Run("past starts are filtered", func(t *testing.T) {
		slots := SlotCandidates(win, testDay, 60, at(12, 15), nil)
		require.NotEmpty(t, slots)
		assert.Equal(t, at(12, 30), slots[0])
	})
}

func TestSlotCandidatesEdgeWindows(t *testing.T) {
	now := testDay.Add(-24 * time.Hour)

	t.Run("closed day yields nothing", func(t *testing.T) {
		win := schedule.Window{Closed: true}
		assert.Empty(t, SlotCandidates(win, testDay, 60, now, nil))
	})

	t.Run("course longer than the whole window", func(t *testing.T) {
		win := schedule.Window{OpenMinutes: 600, CloseMinutes: 660}
		assert.Empty(t, SlotCandidates(win, testDay, 90, now, nil))
	})

	t.Run("course exactly filling the window", func(t *testing.T) {
		win := schedule.Window{OpenMinutes: 600, CloseMinutes: 660}
		slots := SlotCandidates(win, testDay, 60, now, nil)
		require.Len(t, slots, 1)
		assert.Equal(t, at(10, 0), slots[0])
	})
}

func TestValidateStart(t *testing.T) {
	win := schedule.DefaultWindow()
	now := testDay.Add(-24 * time.Hour)

	tests := []struct {
		name     string
		win      schedule.Window
		start    time.Time
		duration int
		now      time.Time
		wantErr  error
	}{
		{"valid opening slot", win, at(10, 0), 60, now, nil},
		{"valid closing slot", win, at(17, 0), 60, now, nil},
		{"closed day", schedule.Window{Closed: true}, at(10, 0), 60, now, ErrSlotConflict},
		{"before opening", win, at(9, 30), 60, now, ErrSlotConflict},
		{"runs past closing", win, at(17, 30), 60, now, ErrSlotConflict},
		{"in the past", win, at(10, 0), 60, at(12, 0), ErrSlotConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStart(tt.win, tt.start, tt.duration, tt.now)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
