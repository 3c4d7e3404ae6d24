package usecase

import (
	"context"
	"fmt"

	"sweetshop_backend/internal/feature/orders/domain/entity"
)

// OrderRepository abstracts the persistence layer for orders.
// Following Go convention, the interface is defined by the consumer (usecase),
// not the provider (adapters).
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	FindByID(ctx context.Context, id uint) (*entity.Order, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]entity.Order, error)
}

// OrderUsecase provides business logic for order operations.
type OrderUsecase struct {
	repo OrderRepository
}

// NewOrderUsecase creates a new OrderUsecase with the given repository.
func NewOrderUsecase(r OrderRepository) *OrderUsecase {
	return &OrderUsecase{repo: r}
}

// CreateOrder validates and persists a new order.
func (u *OrderUsecase) CreateOrder(ctx context.Context, customerName string, totalAmount float64) (*entity.Order, error) {
	if customerName == "" {
		return nil, fmt.Errorf("%w: customer name cannot be empty", ErrValidation)
	}
	if totalAmount < 0 {
		return nil, fmt.Errorf("%w: total amount must be greater than or equal to 0", ErrValidation)
	}
	order := &entity.Order{
		CustomerName: customerName,
		TotalAmount:  totalAmount,
	}
	if err := u.repo.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// GetOrder returns the order with the given ID.
func (u *OrderUsecase) GetOrder(ctx context.Context, id uint) (*entity.Order, error) {
	return u.repo.FindByID(ctx, id)
}

// ListOrders returns all orders.
func (u *OrderUsecase) ListOrders(ctx context.Context) ([]entity.Order, error) {
	return u.repo.List(ctx)
}

// DeleteOrder removes the order with the given ID.
func (u *OrderUsecase) DeleteOrder(ctx context.Context, id uint) error {
	return u.repo.Delete(ctx, id)
}
