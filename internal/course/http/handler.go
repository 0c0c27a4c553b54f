package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shizukanami/salon-booking-backend/internal/course"
	"github.com/shizukanami/salon-booking-backend/internal/pkg/request"
	"github.com/shizukanami/salon-booking-backend/internal/pkg/response"
)

type Handler struct {
	service course.Service
}

func NewHandler(service course.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	var req ListCoursesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query", "details": err.Error()})
		return
	}

	filter := course.Filter{
		Keyword:  req.Keyword,
		Page:     req.Page,
		PageSize: req.PageSize,
	}

	courses, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]CourseResponse, len(courses))
	for i, cs := range courses {
		items[i] = NewCourseResponse(cs)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, req.Page, req.PageSize, total))
}

func (h *Handler) Get(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	cs, err := h.service.GetByID(c.Request.Context(), req.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewCourseResponse(cs))
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	cs, err := h.service.Create(c.Request.Context(), course.CreateRequest{
		Title:           req.Title,
		Description:     req.Description,
		PricePoints:     req.PricePoints,
		DurationMinutes: req.DurationMinutes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewCourseResponse(cs))
}

func (h *Handler) Update(c *gin.Context) {
	var uriReq request.ByIDRequest
	if err := c.ShouldBindUri(&uriReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var req UpdateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	cs, err := h.service.Update(c.Request.Context(), uriReq.ID, course.UpdateRequest{
		Title:           req.Title,
		Description:     req.Description,
		PricePoints:     req.PricePoints,
		DurationMinutes: req.DurationMinutes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewCourseResponse(cs))
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
