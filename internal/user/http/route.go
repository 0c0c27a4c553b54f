package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all user-related routes (including Auth).
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware, authRateLimit gin.HandlerFunc) {
	// Public Routes
	authGroup := g.Group("/auth")
	authGroup.Use(authRateLimit)
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
	}

	// Authenticated Routes
	g.GET("/me", authMiddleware, h.Me)
	g.PATCH("/me", authMiddleware, h.UpdateMe)

	// Admin Routes
	usersGroup := g.Group("/admin/users")
	usersGroup.Use(authMiddleware, adminMiddleware)
	{
		usersGroup.GET("", h.List)
		usersGroup.GET("/:id", h.Get)
		usersGroup.PATCH("/:id/notes", h.UpdateNotes)
	}
}
