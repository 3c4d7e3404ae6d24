// Package usecase implements the business logic for the orders feature.
package usecase

import "errors"

var (
	// ErrValidation is returned when an order's fields fail validation.
	ErrValidation = errors.New("validation failed")

	// ErrOrderNotFound is returned when no order exists with the given ID.
	ErrOrderNotFound = errors.New("order not found")
)
