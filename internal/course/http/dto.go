package http

import (
	"time"

	"github.com/shizukanami/salon-booking-backend/internal/course"
	"github.com/shizukanami/salon-booking-backend/internal/pkg/request"
)

// ListCoursesRequest defines query parameters for listing courses.
type ListCoursesRequest struct {
	request.ListParams
	Keyword string `form:"keyword"`
}

type CourseResponse struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	PricePoints     int       `json:"price_points"`
	DurationMinutes int       `json:"duration_minutes"`
	CreatedAt       time.Time `json:"created_at"`
}

func NewCourseResponse(c *course.Course) CourseResponse {
	return CourseResponse{
		ID:              c.ID,
		Title:           c.Title,
		Description:     c.Description,
		PricePoints:     c.PricePoints,
		DurationMinutes: c.DurationMinutes,
		CreatedAt:       c.CreatedAt,
	}
}

type CreateCourseRequest struct {
	Title           string `json:"title" binding:"required"`
	Description     string `json:"description"`
	PricePoints     int    `json:"price_points" binding:"min=0"`
	DurationMinutes int    `json:"duration_minutes" binding:"required,min=1"`
}

type UpdateCourseRequest struct {
	Title           *string `json:"title"`
	Description     *string `json:"description"`
	PricePoints     *int    `json:"price_points"`
	DurationMinutes *int    `json:"duration_minutes"`
}
