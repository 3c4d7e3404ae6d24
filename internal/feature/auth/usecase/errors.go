// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrValidation is returned when a required registration field is
	// missing or does not meet the password policy. It wraps a message
	// naming the offending field.
	ErrValidation = errors.New("validation failed")

	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to register an email
	// that already has an account.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidCredentials is returned for every failed login. A missing
	// account and a wrong password deliberately produce the same error so
	// callers cannot enumerate registered emails.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
