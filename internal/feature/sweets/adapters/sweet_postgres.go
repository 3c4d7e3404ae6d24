// Package adapters provides the repository implementations for the sweets feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"sweetshop_backend/internal/feature/sweets/domain/entity"
	"sweetshop_backend/internal/feature/sweets/usecase"
)

// sweetPostgres is the GORM implementation of the SweetRepository interface.
type sweetPostgres struct {
	db *gorm.DB
}

var _ usecase.SweetRepository = (*sweetPostgres)(nil)

// NewSweetRepository creates a new sweetPostgres instance with the given DB
// connection.
func NewSweetRepository(db *gorm.DB) *sweetPostgres {
	return &sweetPostgres{db: db}
}

// Create inserts the sweet into the database.
func (r *sweetPostgres) Create(ctx context.Context, s *entity.Sweet) error {
	return r.db.WithContext(ctx).Create(s).Error
}

// FindByID retrieves a sweet by ID.
// It returns usecase.ErrSweetNotFound when the sweet does not exist.
func (r *sweetPostgres) FindByID(ctx context.Context, id uint) (*entity.Sweet, error) {
	var s entity.Sweet
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrSweetNotFound
		}
		return nil, err
	}
	return &s, nil
}

// Update saves the full record.
func (r *sweetPostgres) Update(ctx context.Context, s *entity.Sweet) error {
	return r.db.WithContext(ctx).Save(s).Error
}

// Delete removes the sweet with the given ID.
// It returns usecase.ErrSweetNotFound when nothing was deleted.
func (r *sweetPostgres) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.Sweet{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrSweetNotFound
	}
	return nil
}

// List returns all sweets ordered by ID.
func (r *sweetPostgres) List(ctx context.Context) ([]entity.Sweet, error) {
	var sweets []entity.Sweet
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&sweets).Error; err != nil {
		return nil, err
	}
	return sweets, nil
}

// AdjustStock applies delta to the sweet's quantity in a single guarded
// UPDATE, so a concurrent purchase can never drive the stock negative.
func (r *sweetPostgres) AdjustStock(ctx context.Context, id uint, delta int) (*entity.Sweet, error) {
	res := r.db.WithContext(ctx).
		Model(&entity.Sweet{}).
		Where("id = ? AND quantity + ? >= 0", id, delta).
		UpdateColumn("quantity", gorm.Expr("quantity + ?", delta))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		// Distinguish a missing sweet from an out-of-stock one.
		if _, err := r.FindByID(ctx, id); err != nil {
			return nil, err
		}
		return nil, usecase.ErrInsufficientStock
	}
	return r.FindByID(ctx, id)
}
