package usecase

import (
	"context"
	"fmt"

	"sweetshop_backend/internal/feature/sweets/domain/entity"
)

// SweetRepository abstracts the persistence layer for sweets.
// Following Go convention, the interface is defined by the consumer (usecase),
// not the provider (adapters).
type SweetRepository interface {
	Create(ctx context.Context, sweet *entity.Sweet) error
	FindByID(ctx context.Context, id uint) (*entity.Sweet, error)
	Update(ctx context.Context, sweet *entity.Sweet) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]entity.Sweet, error)

	// AdjustStock atomically applies delta to the sweet's quantity and
	// returns the updated record. It returns ErrInsufficientStock when the
	// adjustment would drive the quantity negative, and ErrSweetNotFound
	// when the sweet does not exist.
	AdjustStock(ctx context.Context, id uint, delta int) (*entity.Sweet, error)
}

// PurchaseResult describes a completed purchase of a sweet.
type PurchaseResult struct {
	SweetID     uint    `json:"sweetId"`
	SweetName   string  `json:"sweetName"`
	Quantity    int     `json:"quantity"`
	TotalAmount float64 `json:"totalAmount"`
}

// SweetUsecase provides business logic for sweet operations.
type SweetUsecase struct {
	repo SweetRepository
}

// NewSweetUsecase creates a new SweetUsecase with the given repository.
func NewSweetUsecase(r SweetRepository) *SweetUsecase {
	return &SweetUsecase{repo: r}
}

func validateSweet(name string, price float64, quantity int) error {
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

// CreateSweet validates and persists a new sweet.
func (u *SweetUsecase) CreateSweet(ctx context.Context, name, description string, price float64, quantity int) (*entity.Sweet, error) {
	if err := validateSweet(name, price, quantity); err != nil {
		return nil, err
	}
	sweet := &entity.Sweet{
		Name:        name,
		Description: description,
		Price:       price,
		Quantity:    quantity,
	}
	if err := u.repo.Create(ctx, sweet); err != nil {
		return nil, err
	}
	return sweet, nil
}

// GetSweet returns the sweet with the given ID.
func (u *SweetUsecase) GetSweet(ctx context.Context, id uint) (*entity.Sweet, error) {
	return u.repo.FindByID(ctx, id)
}

// UpdateSweet overwrites the mutable fields of an existing sweet.
func (u *SweetUsecase) UpdateSweet(ctx context.Context, id uint, name, description string, price float64, quantity int) (*entity.Sweet, error) {
	if err := validateSweet(name, price, quantity); err != nil {
		return nil, err
	}
	sweet, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	sweet.Name = name
	sweet.Description = description
	sweet.Price = price
	sweet.Quantity = quantity
	if err := u.repo.Update(ctx, sweet); err != nil {
		return nil, err
	}
	return sweet, nil
}

// DeleteSweet removes the sweet with the given ID.
func (u *SweetUsecase) DeleteSweet(ctx context.Context, id uint) error {
	return u.repo.Delete(ctx, id)
}

// ListSweets returns all sweets.
func (u *SweetUsecase) ListSweets(ctx context.Context) ([]entity.Sweet, error) {
	return u.repo.List(ctx)
}

// Purchase deducts quantity units from stock and returns the resulting
// charge. The deduction is atomic in the repository, so two concurrent
// purchases can never oversell the same units.
func (u *SweetUsecase) Purchase(ctx context.Context, id uint, quantity int) (*PurchaseResult, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be greater than 0", ErrValidation)
	}
	sweet, err := u.repo.AdjustStock(ctx, id, -quantity)
	if err != nil {
		return nil, err
	}
	return &PurchaseResult{
		SweetID:     sweet.ID,
		SweetName:   sweet.Name,
		Quantity:    quantity,
		TotalAmount: sweet.Price * float64(quantity),
	}, nil
}

// Restock adds quantity units to stock and returns the updated sweet.
func (u *SweetUsecase) Restock(ctx context.Context, id uint, quantity int) (*entity.Sweet, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be greater than 0", ErrValidation)
	}
	return u.repo.AdjustStock(ctx, id, quantity)
}
