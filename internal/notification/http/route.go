package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	admin := g.Group("/admin/notifications")
	admin.Use(authMiddleware, adminMiddleware)
	{
		admin.GET("", h.List)
		admin.DELETE("/:id", h.Delete)
	}
}
