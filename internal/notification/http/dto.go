package http

import (
	"time"

	"github.com/shizukanami/salon-booking-backend/internal/notification"
)

type ListNotificationsRequest struct {
	Limit int `form:"limit,default=5" binding:"omitempty,min=1,max=50"`
}

type NotificationResponse struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

func NewNotificationResponse(n *notification.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		Message:   n.Message,
		CreatedAt: n.CreatedAt,
	}
}
