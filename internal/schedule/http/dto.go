package http

import (
	"github.com/shizukanami/salon-booking-backend/internal/schedule"
)

// ListOverridesRequest defines the date range for the weekly calendar view.
type ListOverridesRequest struct {
	From string `form:"from" binding:"required"`
	To   string `form:"to" binding:"required"`
}

type OverrideResponse struct {
	Date      string `json:"date"`
	OpenTime  string `json:"open_time"`
	CloseTime string `json:"close_time"`
	IsClosed  bool   `json:"is_closed"`
}

func NewOverrideResponse(o *schedule.Override) OverrideResponse {
	return OverrideResponse{
		Date:      o.Date.Format(schedule.DateFormat),
		OpenTime:  schedule.FormatClock(o.Window.OpenMinutes),
		CloseTime: schedule.FormatClock(o.Window.CloseMinutes),
		IsClosed:  o.Window.Closed,
	}
}

type UpsertOverrideRequest struct {
	Date      string `json:"date" binding:"required"`
	OpenTime  string `json:"open_time" binding:"required"`
	CloseTime string `json:"close_time" binding:"required"`
	IsClosed  bool   `json:"is_closed"`
}
