package user

import (
	"net/http"
	"time"

	"github.com/shizukanami/salon-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound           = apperror.New(http.StatusNotFound, "user not found")
	ErrEmailAlreadyUsed   = apperror.New(http.StatusConflict, "email already used")
	ErrInvalidCredentials = apperror.New(http.StatusUnauthorized, "invalid email or password")
	ErrEmailRequired      = apperror.New(http.StatusBadRequest, "email is required")
	ErrPasswordTooShort   = apperror.New(http.StatusBadRequest, "password is too short")
)

// User is a salon customer profile: login identity plus the cached point
// balance. current_points is a running total of the user's ledger entries
// and is only mutated together with a ledger append (same transaction).
type User struct {
	ID            string // UUID
	Email         string
	PasswordHash  string
	DisplayName   *string
	CurrentPoints int
	AdminNotes    *string
	IsAdmin       bool
	CreatedAt     time.Time
}

// Filter defines filter options for listing users (admin screen).
type Filter struct {
	Email       string
	DisplayName string

	Page     int
	PageSize int
}
