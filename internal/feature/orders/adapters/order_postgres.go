// Package adapters provides the repository implementations for the orders feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"sweetshop_backend/internal/feature/orders/domain/entity"
	"sweetshop_backend/internal/feature/orders/usecase"
)

// orderPostgres is the GORM implementation of the OrderRepository interface.
type orderPostgres struct {
	db *gorm.DB
}

var _ usecase.OrderRepository = (*orderPostgres)(nil)

// NewOrderRepository creates a new orderPostgres instance with the given DB
// connection.
func NewOrderRepository(db *gorm.DB) *orderPostgres {
	return &orderPostgres{db: db}
}

// Create inserts the order into the database.
func (r *orderPostgres) Create(ctx context.Context, o *entity.Order) error {
	return r.db.WithContext(ctx).Create(o).Error
}

// FindByID retrieves an order by ID.
// It returns usecase.ErrOrderNotFound when the order does not exist.
func (r *orderPostgres) FindByID(ctx context.Context, id uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&o).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrOrderNotFound
		}
		return nil, err
	}
	return &o, nil
}

// Delete removes the order with the given ID.
// It returns usecase.ErrOrderNotFound when nothing was deleted.
func (r *orderPostgres) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.Order{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrOrderNotFound
	}
	return nil
}

// List returns all orders, most recent first.
func (r *orderPostgres) List(ctx context.Context) ([]entity.Order, error) {
	var orders []entity.Order
	if err := r.db.WithContext(ctx).Order("id DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}
