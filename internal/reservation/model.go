package reservation

import (
	"net/http"
	"time"

	"github.com/shizukanami/salon-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound           = apperror.New(http.StatusNotFound, "reservation not found")
	ErrSlotConflict       = apperror.New(http.StatusConflict, "time slot is not available")
	ErrInsufficientPoints = apperror.New(http.StatusPaymentRequired, "not enough points for this course")
	ErrInvalidTimeRange   = apperror.New(http.StatusBadRequest, "start time must fall on a 30-minute boundary")
	ErrPermissionDenied   = apperror.New(http.StatusForbidden, "permission denied")
	ErrPastCancellation   = apperror.New(http.StatusForbidden, "past reservations can only be cancelled by an admin")
	ErrAlreadyCancelled   = apperror.New(http.StatusConflict, "reservation is already cancelled")
)

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// Reservation is a fixed-duration appointment on the single salon calendar.
// The interval [StartTime, EndTime) is frozen at booking time from the
// course duration; cancelled is a terminal status.
type Reservation struct {
	ID          string
	UserID      string
	UserName    string // display name joined from users, email as fallback
	CourseID    string
	CourseTitle string
	StartTime   time.Time
	EndTime     time.Time
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Filter defines parameters for listing reservations.
type Filter struct {
	UserID        string
	Status        Status
	StartTimeFrom *time.Time
	StartTimeTo   *time.Time
	Page          int
	PageSize      int
}
