package usecase

import (
	"context"
	"fmt"

	"sweetshop_backend/internal/feature/inventory/domain/entity"
)

// ItemRepository abstracts the persistence layer for inventory items.
// Following Go convention, the interface is defined by the consumer (usecase),
// not the provider (adapters).
type ItemRepository interface {
	Create(ctx context.Context, item *entity.Item) error
	FindByID(ctx context.Context, id uint) (*entity.Item, error)
	Update(ctx context.Context, item *entity.Item) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]entity.Item, error)
}

// InventoryUsecase provides business logic for inventory operations.
type InventoryUsecase struct {
	repo ItemRepository
}

// NewInventoryUsecase creates a new InventoryUsecase with the given repository.
func NewInventoryUsecase(r ItemRepository) *InventoryUsecase {
	return &InventoryUsecase{repo: r}
}

func validateItem(name string, price float64, quantity int) error {
	if name == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrValidation)
	}
	if price < 0 {
		return fmt.Errorf("%w: price must be greater than or equal to 0", ErrValidation)
	}
	if quantity < 0 {
		return fmt.Errorf("%w: quantity must be greater than or equal to 0", ErrValidation)
	}
	return nil
}

// CreateItem validates and persists a new inventory item.
func (u *InventoryUsecase) CreateItem(ctx context.Context, name, description string, price float64, quantity int) (*entity.Item, error) {
	if err := validateItem(name, price, quantity); err != nil {
		return nil, err
	}
	item := &entity.Item{
		Name:        name,
		Description: description,
		Price:       price,
		Quantity:    quantity,
	}
	if err := u.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// GetItem returns the item with the given ID.
func (u *InventoryUsecase) GetItem(ctx context.Context, id uint) (*entity.Item, error) {
	return u.repo.FindByID(ctx, id)
}

// UpdateItem overwrites the mutable fields of an existing item.
func (u *InventoryUsecase) UpdateItem(ctx context.Context, id uint, name, description string, price float64, quantity int) (*entity.Item, error) {
	if err := validateItem(name, price, quantity); err != nil {
		return nil, err
	}
	item, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	item.Name = name
	item.Description = description
	item.Price = price
	item.Quantity = quantity
	if err := u.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteItem removes the item with the given ID.
func (u *InventoryUsecase) DeleteItem(ctx context.Context, id uint) error {
	return u.repo.Delete(ctx, id)
}

// ListItems returns all inventory items.
func (u *InventoryUsecase) ListItems(ctx context.Context) ([]entity.Item, error) {
	return u.repo.List(ctx)
}
