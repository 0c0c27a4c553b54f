package http

import (
	"time"

	"github.com/shizukanami/salon-booking-backend/internal/reservation"
	"github.com/shizukanami/salon-booking-backend/internal/schedule"
)

type CreateReservationRequest struct {
	CourseID  string    `json:"course_id" binding:"required,uuid"`
	StartTime time.Time `json:"start_time" binding:"required"`
}

type RescheduleRequest struct {
	StartTime time.Time `json:"start_time" binding:"required"`
}

type ListReservationsRequest struct {
	Status        string     `form:"status" binding:"omitempty,oneof=confirmed cancelled"`
	UserID        string     `form:"user_id" binding:"omitempty,uuid"`
	StartTimeFrom *time.Time `form:"start_time_from" time_format:"2006-01-02T15:04:05Z07:00"`
	StartTimeTo   *time.Time `form:"start_time_to" time_format:"2006-01-02T15:04:05Z07:00"`
	Page          int        `form:"page,default=1" binding:"omitempty,min=1"`
	PageSize      int        `form:"page_size,default=20" binding:"omitempty,min=1,max=100"`
}

type SlotsRequest struct {
	Date string `form:"date" binding:"required"`
}

type ReservationResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	UserName    string    `json:"user_name"`
	CourseID    string    `json:"course_id"`
	CourseTitle string    `json:"course_title"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewReservationResponse(r *reservation.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:          r.ID,
		UserID:      r.UserID,
		UserName:    r.UserName,
		CourseID:    r.CourseID,
		CourseTitle: r.CourseTitle,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		Status:      string(r.Status),
		CreatedAt:   r.CreatedAt,
	}
}

type SlotsResponse struct {
	Date      string      `json:"date"`
	IsClosed  bool        `json:"is_closed"`
	OpenTime  string      `json:"open_time,omitempty"`
	CloseTime string      `json:"close_time,omitempty"`
	Slots     []time.Time `json:"slots"`
}

func NewSlotsResponse(date time.Time, win schedule.Window, slots []time.Time) SlotsResponse {
	resp := SlotsResponse{
		Date:     date.Format(schedule.DateFormat),
		IsClosed: win.Closed,
		Slots:    slots,
	}
	if resp.Slots == nil {
		resp.Slots = []time.Time{}
	}
	if !win.Closed {
		resp.OpenTime = schedule.FormatClock(win.OpenMinutes)
		resp.CloseTime = schedule.FormatClock(win.CloseMinutes)
	}
	return resp
}
