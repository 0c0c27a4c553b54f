package notification

import (
	"net/http"
	"time"

	"github.com/shizukanami/salon-booking-backend/internal/pkg/apperror"
)

var ErrNotFound = apperror.New(http.StatusNotFound, "notification not found")

// Notification is one line in the admin inbox, written when a user cancels
// a reservation.
type Notification struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
