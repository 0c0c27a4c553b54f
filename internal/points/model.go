package points

import (
	"net/http"
	"time"

	"github.com/shizukanami/salon-booking-backend/internal/pkg/apperror"
)

var (
	ErrInvalidAmount = apperror.New(http.StatusBadRequest, "amount must not be zero")
	ErrChargeAmount  = apperror.New(http.StatusBadRequest, "unsupported charge amount")
	ErrBalanceFloor  = apperror.New(http.StatusConflict, "adjustment would make balance negative")
)

// LedgerEntry is one append-only balance movement. Negative amounts are
// charges, positive amounts are refunds, top-ups and grants.
type LedgerEntry struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Amount      int       `json:"amount"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// ChargeAmounts are the purchase presets users can top up with.
var ChargeAmounts = []int{1000, 5000, 10000}
