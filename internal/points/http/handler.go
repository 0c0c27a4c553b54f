package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shizukanami/salon-booking-backend/internal/auth"
	"github.com/shizukanami/salon-booking-backend/internal/pkg/request"
	"github.com/shizukanami/salon-booking-backend/internal/pkg/response"
	"github.com/shizukanami/salon-booking-backend/internal/points"
)

type Handler struct {
	service points.Service
}

func NewHandler(service points.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Charge(c *gin.Context) {
	var req ChargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	userID := auth.GetUserID(c)
	if err := h.service.Charge(c.Request.Context(), userID, req.Amount); err != nil {
		response.Error(c, err)
		return
	}

	h.balance(c, userID)
}

func (h *Handler) Balance(c *gin.Context) {
	h.balance(c, auth.GetUserID(c))
}

func (h *Handler) balance(c *gin.Context, userID string) {
	current, sum, err := h.service.Balance(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, BalanceResponse{CurrentPoints: current, LedgerSum: sum})
}

func (h *Handler) History(c *gin.Context) {
	var params request.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query", "details": err.Error()})
		return
	}

	h.history(c, auth.GetUserID(c), params)
}

func (h *Handler) Adjust(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var req AdjustRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	if err := h.service.Adjust(c.Request.Context(), uri.ID, req.Amount, req.Description); err != nil {
		response.Error(c, err)
		return
	}

	h.balance(c, uri.ID)
}

func (h *Handler) UserHistory(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var params request.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query", "details": err.Error()})
		return
	}

	h.history(c, uri.ID, params)
}

func (h *Handler) history(c *gin.Context, userID string, params request.ListParams) {
	entries, total, err := h.service.History(c.Request.Context(), userID, params.Page, params.PageSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]LedgerEntryResponse, len(entries))
	for i, e := range entries {
		items[i] = NewLedgerEntryResponse(e)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, params.Page, params.PageSize, total))
}
