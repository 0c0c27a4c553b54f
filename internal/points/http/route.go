package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	me := g.Group("")
	me.Use(authMiddleware)
	{
		me.GET("/me/points", h.Balance)
		me.GET("/me/points/history", h.History)
		me.POST("/points/charge", h.Charge)
	}

	admin := g.Group("/admin/users")
	admin.Use(authMiddleware, adminMiddleware)
	{
		admin.POST("/:id/points", h.Adjust)
		admin.GET("/:id/ledger", h.UserHistory)
	}
}
