package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shizukanami/salon-booking-backend/internal/pkg/response"
	"github.com/shizukanami/salon-booking-backend/internal/schedule"
)

type Handler struct {
	service schedule.Service
}

func NewHandler(service schedule.Service) *Handler {
	return &Handler{service: service}
}

// List returns stored overrides within [from, to] for the admin calendar.
// Dates without an override use the default window and are not listed.
func (h *Handler) List(c *gin.Context) {
	var req ListOverridesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query", "details": err.Error()})
		return
	}

	from, err := schedule.ParseDate(req.From, time.Local)
	if err != nil {
		response.Error(c, err)
		return
	}
	to, err := schedule.ParseDate(req.To, time.Local)
	if err != nil {
		response.Error(c, err)
		return
	}

	overrides, err := h.service.ListRange(c.Request.Context(), from, to)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]OverrideResponse, len(overrides))
	for i, o := range overrides {
		items[i] = NewOverrideResponse(o)
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

// Upsert creates or replaces the override for a date.
func (h *Handler) Upsert(c *gin.Context) {
	var req UpsertOverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	date, err := schedule.ParseDate(req.Date, time.Local)
	if err != nil {
		response.Error(c, err)
		return
	}

	o, err := h.service.Upsert(c.Request.Context(), schedule.UpsertRequest{
		Date:      date,
		OpenTime:  req.OpenTime,
		CloseTime: req.CloseTime,
		IsClosed:  req.IsClosed,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewOverrideResponse(o))
}

// Delete removes the override for a date, reverting it to the default window.
func (h *Handler) Delete(c *gin.Context) {
	date, err := schedule.ParseDate(c.Param("date"), time.Local)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), date); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
