// Package handler provides the HTTP handlers for the inventory feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"sweetshop_backend/internal/feature/inventory/domain/entity"
	"sweetshop_backend/internal/feature/inventory/transport/http/dto"
	"sweetshop_backend/internal/feature/inventory/usecase"
)

// InventoryUsecase defines the usecase for inventory operations.
// Following Go convention, the interface is defined by the consumer (handler),
// not the provider (usecase).
type InventoryUsecase interface {
	CreateItem(ctx context.Context, name, description string, price float64, quantity int) (*entity.Item, error)
	GetItem(ctx context.Context, id uint) (*entity.Item, error)
	UpdateItem(ctx context.Context, id uint, name, description string, price float64, quantity int) (*entity.Item, error)
	DeleteItem(ctx context.Context, id uint) error
	ListItems(ctx context.Context) ([]entity.Item, error)
}

// InventoryHandler handles HTTP requests for inventory operations.
type InventoryHandler struct {
	uc InventoryUsecase
}

// NewInventoryHandler creates a new InventoryHandler instance.
func NewInventoryHandler(uc InventoryUsecase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return 0, false
	}
	return uint(id), true
}

// List handles GET /api/inventory.
func (h *InventoryHandler) List(c *gin.Context) {
	items, err := h.uc.ListItems(c.Request.Context())
	if err != nil {
		slog.Error("list items failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// Get handles GET /api/inventory/:id.
func (h *InventoryHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	item, err := h.uc.GetItem(c.Request.Context(), id)
	if err != nil {
		h.renderError(c, err, "get item")
		return
	}
	c.JSON(http.StatusOK, item)
}

// Create handles POST /api/inventory.
func (h *InventoryHandler) Create(c *gin.Context) {
	var req dto.ItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	item, err := h.uc.CreateItem(c.Request.Context(), req.Name, req.Description, req.Price, req.Quantity)
	if err != nil {
		h.renderError(c, err, "create item")
		return
	}
	c.JSON(http.StatusCreated, item)
}

// Update handles PUT /api/inventory/:id.
func (h *InventoryHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req dto.ItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	item, err := h.uc.UpdateItem(c.Request.Context(), id, req.Name, req.Description, req.Price, req.Quantity)
	if err != nil {
		h.renderError(c, err, "update item")
		return
	}
	c.JSON(http.StatusOK, item)
}

// Delete handles DELETE /api/inventory/:id.
func (h *InventoryHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.uc.DeleteItem(c.Request.Context(), id); err != nil {
		h.renderError(c, err, "delete item")
		return
	}
	c.Status(http.StatusNoContent)
}

// renderError maps usecase errors to transport responses.
func (h *InventoryHandler) renderError(c *gin.Context, err error, op string) {
	switch {
	case errors.Is(err, usecase.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
	default:
		slog.Error(op+" failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
