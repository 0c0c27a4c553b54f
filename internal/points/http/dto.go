package http

import (
	"time"

	"github.com/shizukanami/salon-booking-backend/internal/points"
)

type ChargeRequest struct {
	Amount int `json:"amount" binding:"required"`
}

type AdjustRequest struct {
	Amount      int    `json:"amount" binding:"required"`
	Description string `json:"description" binding:"max=200"`
}

type BalanceResponse struct {
	CurrentPoints int `json:"current_points"`
	LedgerSum     int `json:"ledger_sum"`
}

type LedgerEntryResponse struct {
	ID          string    `json:"id"`
	Amount      int       `json:"amount"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewLedgerEntryResponse(e *points.LedgerEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		ID:          e.ID,
		Amount:      e.Amount,
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
	}
}
