package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shizukanami/salon-booking-backend/internal/notification"
	"github.com/shizukanami/salon-booking-backend/internal/pkg/request"
	"github.com/shizukanami/salon-booking-backend/internal/pkg/response"
)

type Handler struct {
	service notification.Service
}

func NewHandler(service notification.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	var req ListNotificationsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query", "details": err.Error()})
		return
	}

	notifications, err := h.service.ListLatest(c.Request.Context(), req.Limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]NotificationResponse, len(notifications))
	for i, n := range notifications {
		items[i] = NewNotificationResponse(n)
	}

	c.JSON(http.StatusOK, items)
}

func (h *Handler) Delete(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), req.ID); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
