package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	// Public: slot lookup works without login so visitors can browse.
	g.GET("/courses/:id/slots", h.Slots)

	group := g.Group("/reservations")
	group.Use(authMiddleware)
	{
		group.POST("", h.Create)
		group.GET("", h.ListMine)
		group.GET("/:id", h.Get)
		group.DELETE("/:id", h.Cancel)
	}

	admin := g.Group("/admin/reservations")
	admin.Use(authMiddleware, adminMiddleware)
	{
		admin.GET("", h.ListAll)
		admin.GET("/:id", h.AdminGet)
		admin.PATCH("/:id", h.Reschedule)
		admin.DELETE("/:id", h.AdminCancel)
	}
}
