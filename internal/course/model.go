package course

import (
	"net/http"
	"time"

	"github.com/shizukanami/salon-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound        = apperror.New(http.StatusNotFound, "course not found")
	ErrTitleRequired   = apperror.New(http.StatusBadRequest, "title is required")
	ErrInvalidPrice    = apperror.New(http.StatusBadRequest, "price_points must be zero or positive")
	ErrInvalidDuration = apperror.New(http.StatusBadRequest, "duration_minutes must be positive")
)

// Course is a bookable salon menu item, paid for with points.
// Price and duration are read at booking time; a reservation freezes the
// duration into its start/end interval but not the price.
type Course struct {
	ID              string
	Title           string
	Description     string
	PricePoints     int
	DurationMinutes int
	CreatedAt       time.Time
}

// Filter defines parameters for listing courses.
type Filter struct {
	Keyword  string
	Page     int
	PageSize int
}
