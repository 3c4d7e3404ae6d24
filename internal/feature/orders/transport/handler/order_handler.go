// Package handler provides the HTTP handlers for the orders feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"sweetshop_backend/internal/feature/orders/domain/entity"
	"sweetshop_backend/internal/feature/orders/transport/http/dto"
	"sweetshop_backend/internal/feature/orders/usecase"
)

// OrderUsecase defines the usecase for order operations.
// Following Go convention, the interface is defined by the consumer (handler),
// not the provider (usecase).
type OrderUsecase interface {
	CreateOrder(ctx context.Context, customerName string, totalAmount float64) (*entity.Order, error)
	GetOrder(ctx context.Context, id uint) (*entity.Order, error)
	ListOrders(ctx context.Context) ([]entity.Order, error)
	DeleteOrder(ctx context.Context, id uint) error
}

// OrderHandler handles HTTP requests for order operations.
type OrderHandler struct {
	uc OrderUsecase
}

// NewOrderHandler creates a new OrderHandler instance.
func NewOrderHandler(uc OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return 0, false
	}
	return uint(id), true
}

// List handles GET /api/orders.
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.uc.ListOrders(c.Request.Context())
	if err != nil {
		slog.Error("list orders failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, orders)
}

// Get handles GET /api/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	order, err := h.uc.GetOrder(c.Request.Context(), id)
	if err != nil {
		h.renderError(c, err, "get order")
		return
	}
	c.JSON(http.StatusOK, order)
}

// Create handles POST /api/orders.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.OrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	order, err := h.uc.CreateOrder(c.Request.Context(), req.CustomerName, req.TotalAmount)
	if err != nil {
		h.renderError(c, err, "create order")
		return
	}
	c.JSON(http.StatusCreated, order)
}

// Delete handles DELETE /api/orders/:id.
func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.uc.DeleteOrder(c.Request.Context(), id); err != nil {
		h.renderError(c, err, "delete order")
		return
	}
	c.Status(http.StatusNoContent)
}

// renderError maps usecase errors to transport responses.
func (h *OrderHandler) renderError(c *gin.Context, err error, op string) {
	switch {
	case errors.Is(err, usecase.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
	default:
		slog.Error(op+" failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
