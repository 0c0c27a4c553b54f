package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shizukanami/salon-booking-backend/internal/auth"
	"github.com/shizukanami/salon-booking-backend/internal/pkg/request"
	"github.com/shizukanami/salon-booking-backend/internal/pkg/response"
	"github.com/shizukanami/salon-booking-backend/internal/reservation"
	"github.com/shizukanami/salon-booking-backend/internal/schedule"
)

type Handler struct {
	service reservation.Service
}

func NewHandler(service reservation.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	res, err := h.service.Book(c.Request.Context(), auth.GetUserID(c), req.CourseID, req.StartTime)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewReservationResponse(res))
}

// ListMine returns the caller's own reservations.
func (h *Handler) ListMine(c *gin.Context) {
	var req ListReservationsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query", "details": err.Error()})
		return
	}

	filter := reservation.Filter{
		UserID:        auth.GetUserID(c),
		Status:        reservation.Status(req.Status),
		StartTimeFrom: req.StartTimeFrom,
		StartTimeTo:   req.StartTimeTo,
		Page:          req.Page,
		PageSize:      req.PageSize,
	}

	h.list(c, filter)
}

// ListAll returns any user's reservations, for the admin calendar.
func (h *Handler) ListAll(c *gin.Context) {
	var req ListReservationsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query", "details": err.Error()})
		return
	}

	filter := reservation.Filter{
		UserID:        req.UserID,
		Status:        reservation.Status(req.Status),
		StartTimeFrom: req.StartTimeFrom,
		StartTimeTo:   req.StartTimeTo,
		Page:          req.Page,
		PageSize:      req.PageSize,
	}

	h.list(c, filter)
}

func (h *Handler) list(c *gin.Context, filter reservation.Filter) {
	reservations, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]ReservationResponse, len(reservations))
	for i, r := range reservations {
		items[i] = NewReservationResponse(r)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, filter.Page, filter.PageSize, total))
}

func (h *Handler) Get(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	res, err := h.service.GetByID(c.Request.Context(), req.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	if res.UserID != auth.GetUserID(c) {
		response.Error(c, reservation.ErrPermissionDenied)
		return
	}

	c.JSON(http.StatusOK, NewReservationResponse(res))
}

// AdminGet returns any reservation by ID, without the ownership check.
func (h *Handler) AdminGet(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	res, err := h.service.GetByID(c.Request.Context(), req.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewReservationResponse(res))
}

func (h *Handler) Cancel(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	if err := h.service.Cancel(c.Request.Context(), req.ID, auth.GetUserID(c), false); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) AdminCancel(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	if err := h.service.Cancel(c.Request.Context(), req.ID, auth.GetUserID(c), true); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) Reschedule(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var req RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	res, err := h.service.Reschedule(c.Request.Context(), uri.ID, req.StartTime)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewReservationResponse(res))
}

// Slots lists open start times for a course on a date.
func (h *Handler) Slots(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var req SlotsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query", "details": err.Error()})
		return
	}

	date, err := schedule.ParseDate(req.Date, time.Local)
	if err != nil {
		response.Error(c, schedule.ErrInvalidDate)
		return
	}

	slots, win, err := h.service.ListSlots(c.Request.Context(), uri.ID, date)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewSlotsResponse(date, win, slots))
}
