package http

import (
	"time"

	"github.com/shizukanami/salon-booking-backend/internal/pkg/request"
	"github.com/shizukanami/salon-booking-backend/internal/user"
)

// ListUsersRequest defines query parameters for the admin member list.
type ListUsersRequest struct {
	request.ListParams
	Email       string `form:"email"`
	DisplayName string `form:"display_name"`
}

// UserResponse is the shape of user data returned in API responses.
type UserResponse struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	DisplayName   *string   `json:"display_name"`
	CurrentPoints int       `json:"current_points"`
	IsAdmin       bool      `json:"is_admin"`
	CreatedAt     time.Time `json:"created_at"`
}

// AdminUserResponse additionally exposes the admin-only notes field.
type AdminUserResponse struct {
	UserResponse
	AdminNotes *string `json:"admin_notes"`
}

// NewUserResponse converts domain user.User to UserResponse used by the API.
func NewUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:            u.ID,
		Email:         u.Email,
		DisplayName:   u.DisplayName,
		CurrentPoints: u.CurrentPoints,
		IsAdmin:       u.IsAdmin,
		CreatedAt:     u.CreatedAt,
	}
}

// NewAdminUserResponse converts domain user.User for admin screens.
func NewAdminUserResponse(u *user.User) AdminUserResponse {
	return AdminUserResponse{
		UserResponse: NewUserResponse(u),
		AdminNotes:   u.AdminNotes,
	}
}

// RegisterRequest defines the payload for user registration.
type RegisterRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	DisplayName string `json:"display_name"`
}

// LoginRequest defines the payload for user login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse returns the token and user info.
type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

// UpdateMeRequest defines the self-service profile update payload.
type UpdateMeRequest struct {
	DisplayName string `json:"display_name" binding:"required,max=100"`
}

// UpdateNotesRequest defines the admin notes ("karte") update payload.
type UpdateNotesRequest struct {
	Notes string `json:"notes"`
}
