// Package usecase implements the business logic for the inventory feature.
package usecase

import "errors"

var (
	// ErrValidation is returned when an item's fields fail validation.
	ErrValidation = errors.New("validation failed")

	// ErrItemNotFound is returned when no item exists with the given ID.
	ErrItemNotFound = errors.New("item not found")
)
