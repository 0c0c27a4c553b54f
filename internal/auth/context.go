package auth

import "github.com/gin-gonic/gin"

// Gin context keys populated by AuthRequired.
const (
	ctxUserIDKey    = "authUserID"
	ctxUserEmailKey = "authUserEmail"
)

// GetUserID returns the authenticated user's ID, or "" before AuthRequired ran.
func GetUserID(c *gin.Context) string {
	return c.GetString(ctxUserIDKey)
}

// GetUserEmail returns the authenticated user's email, or "" before AuthRequired ran.
func GetUserEmail(c *gin.Context) string {
	return c.GetString(ctxUserEmailKey)
}
