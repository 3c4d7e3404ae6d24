// Package handler provides the HTTP handlers for the sweets feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"sweetshop_backend/internal/feature/sweets/domain/entity"
	"sweetshop_backend/internal/feature/sweets/transport/http/dto"
	"sweetshop_backend/internal/feature/sweets/usecase"
)

// SweetUsecase defines the usecase for sweet operations.
// Following Go convention, the interface is defined by the consumer (handler),
// not the provider (usecase).
type SweetUsecase interface {
	CreateSweet(ctx context.Context, name, description string, price float64, quantity int) (*entity.Sweet, error)
	GetSweet(ctx context.Context, id uint) (*entity.Sweet, error)
	UpdateSweet(ctx context.Context, id uint, name, description string, price float64, quantity int) (*entity.Sweet, error)
	DeleteSweet(ctx context.Context, id uint) error
	ListSweets(ctx context.Context) ([]entity.Sweet, error)
	Purchase(ctx context.Context, id uint, quantity int) (*usecase.PurchaseResult, error)
	Restock(ctx context.Context, id uint, quantity int) (*entity.Sweet, error)
}

// SweetHandler handles HTTP requests for sweet operations.
type SweetHandler struct {
	uc SweetUsecase
}

// NewSweetHandler creates a new SweetHandler instance.
func NewSweetHandler(uc SweetUsecase) *SweetHandler {
	return &SweetHandler{uc: uc}
}

// idParam parses the :id path parameter. A non-numeric ID is reported as 404
// rather than 400: the resource addressed by it cannot exist.
func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return 0, false
	}
	return uint(id), true
}

// List handles GET /api/sweets.
func (h *SweetHandler) List(c *gin.Context) {
	sweets, err := h.uc.ListSweets(c.Request.Context())
	if err != nil {
		slog.Error("list sweets failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, sweets)
}

// Get handles GET /api/sweets/:id.
func (h *SweetHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	sweet, err := h.uc.GetSweet(c.Request.Context(), id)
	if err != nil {
		h.renderError(c, err, "get sweet")
		return
	}
	c.JSON(http.StatusOK, sweet)
}

// Create handles POST /api/sweets.
func (h *SweetHandler) Create(c *gin.Context) {
	var req dto.SweetReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	sweet, err := h.uc.CreateSweet(c.Request.Context(), req.Name, req.Description, req.Price, req.Quantity)
	if err != nil {
		h.renderError(c, err, "create sweet")
		return
	}
	c.JSON(http.StatusCreated, sweet)
}

// Update handles PUT /api/sweets/:id.
func (h *SweetHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req dto.SweetReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	sweet, err := h.uc.UpdateSweet(c.Request.Context(), id, req.Name, req.Description, req.Price, req.Quantity)
	if err != nil {
		h.renderError(c, err, "update sweet")
		return
	}
	c.JSON(http.StatusOK, sweet)
}

// Delete handles DELETE /api/sweets/:id. Admin only (enforced by middleware).
func (h *SweetHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.uc.DeleteSweet(c.Request.Context(), id); err != nil {
		h.renderError(c, err, "delete sweet")
		return
	}
	c.Status(http.StatusNoContent)
}

// Purchase handles POST /api/sweets/:id/purchase.
func (h *SweetHandler) Purchase(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req dto.QuantityReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	result, err := h.uc.Purchase(c.Request.Context(), id, req.Quantity)
	if err != nil {
		h.renderError(c, err, "purchase sweet")
		return
	}
	c.JSON(http.StatusOK, result)
}

// Restock handles POST /api/sweets/:id/restock. Admin only (enforced by
// middleware).
func (h *SweetHandler) Restock(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req dto.QuantityReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	sweet, err := h.uc.Restock(c.Request.Context(), id, req.Quantity)
	if err != nil {
		h.renderError(c, err, "restock sweet")
		return
	}
	c.JSON(http.StatusOK, sweet)
}

// renderError maps usecase errors to transport responses.
func (h *SweetHandler) renderError(c *gin.Context, err error, op string) {
	switch {
	case errors.Is(err, usecase.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrSweetNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "sweet not found"})
	case errors.Is(err, usecase.ErrInsufficientStock):
		c.JSON(http.StatusConflict, gin.H{"error": "insufficient stock"})
	default:
		slog.Error(op+" failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
