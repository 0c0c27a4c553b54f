package schedule

import (
	"fmt"
	"net/http"
	"time"

	"github.com/shizukanami/salon-booking-backend/internal/pkg/apperror"
)

var (
	ErrInvalidDate   = apperror.New(http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
	ErrInvalidClock  = apperror.New(http.StatusBadRequest, "invalid time, expected HH:MM")
	ErrInvalidWindow = apperror.New(http.StatusBadRequest, "close_time must be after open_time")
)

// Default business hours applied to any date without a stored override.
const (
	DefaultOpenMinutes  = 10 * 60 // 10:00
	DefaultCloseMinutes = 18 * 60 // 18:00
)

// DateFormat is the wire format for calendar dates.
const DateFormat = "2006-01-02"

// Window is a single day's business hours. Open and close are expressed as
// minutes since midnight so slot arithmetic never touches wall-clock types.
type Window struct {
	OpenMinutes  int
	CloseMinutes int
	Closed       bool
}

// DefaultWindow returns the fallback window for dates without an override.
func DefaultWindow() Window {
	return Window{OpenMinutes: DefaultOpenMinutes, CloseMinutes: DefaultCloseMinutes}
}

// Override is a stored per-date deviation from the default window.
type Override struct {
	Date   time.Time // date only, normalized to midnight
	Window Window
}

// ParseClock converts "HH:MM" (or "HH:MM:SS") to minutes since midnight.
func ParseClock(s string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, ErrInvalidClock
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, ErrInvalidClock
	}
	return h*60 + m, nil
}

// FormatClock converts minutes since midnight back to "HH:MM".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ParseDate parses a YYYY-MM-DD wire date in the given location.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	d, err := time.ParseInLocation(DateFormat, s, loc)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return d, nil
}
