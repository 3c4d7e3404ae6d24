// Package usecase implements the business logic for the sweets feature.
package usecase

import "errors"

var (
	// ErrValidation is returned when a sweet's fields fail validation.
	ErrValidation = errors.New("validation failed")

	// ErrSweetNotFound is returned when no sweet exists with the given ID.
	ErrSweetNotFound = errors.New("sweet not found")

	// ErrInsufficientStock is returned when a purchase asks for more units
	// than are in stock.
	ErrInsufficientStock = errors.New("insufficient stock")
)
