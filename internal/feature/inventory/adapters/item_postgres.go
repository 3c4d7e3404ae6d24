// Package adapters provides the repository implementations for the inventory feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"sweetshop_backend/internal/feature/inventory/domain/entity"
	"sweetshop_backend/internal/feature/inventory/usecase"
)

// itemPostgres is the GORM implementation of the ItemRepository interface.
type itemPostgres struct {
	db *gorm.DB
}

var _ usecase.ItemRepository = (*itemPostgres)(nil)

// NewItemRepository creates a new itemPostgres instance with the given DB
// connection.
func NewItemRepository(db *gorm.DB) *itemPostgres {
	return &itemPostgres{db: db}
}

// Create inserts the item into the database.
func (r *itemPostgres) Create(ctx context.Context, item *entity.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// FindByID retrieves an item by ID.
// It returns usecase.ErrItemNotFound when the item does not exist.
func (r *itemPostgres) FindByID(ctx context.Context, id uint) (*entity.Item, error) {
	var item entity.Item
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrItemNotFound
		}
		return nil, err
	}
	return &item, nil
}

// Update saves the full record.
func (r *itemPostgres) Update(ctx context.Context, item *entity.Item) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// Delete removes the item with the given ID.
// It returns usecase.ErrItemNotFound when nothing was deleted.
func (r *itemPostgres) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.Item{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrItemNotFound
	}
	return nil
}

// List returns all items ordered by ID.
func (r *itemPostgres) List(ctx context.Context) ([]entity.Item, error) {
	var items []entity.Item
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
