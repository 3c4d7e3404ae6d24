package usecase

import (
	"context"
	"errors"
	"fmt"

	"sweetshop_backend/internal/feature/auth/domain/entity"
	"sweetshop_backend/internal/platform/password"
)

// minPasswordLength is the minimum accepted password length.
const minPasswordLength = 8

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention, the interface is defined by the consumer (usecase),
// not the provider (adapters).
type UserRepository interface {
	// Create persists a new user. It returns ErrEmailAlreadyExists when the
	// store's unique email constraint rejects the insert.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves the user with the given email address.
	// It returns ErrUserNotFound when no such user exists.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves the user with the given ID.
	// It returns ErrUserNotFound when no such user exists.
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// TokenIssuer creates signed access tokens for authenticated users.
// Defined here by the consumer; implemented by platform/jwt.
type TokenIssuer interface {
	Issue(subject string, role entity.Role) (string, error)
}

// PasswordHasher hashes and verifies passwords.
// Defined here by the consumer; implemented by platform/password.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, hashed string) bool
}

// LoginResult is the outcome of a successful login.
type LoginResult struct {
	Token   string
	Subject string
	Role    entity.Role
}

// authUsecase implements the authentication business logic.
type authUsecase struct {
	users  UserRepository
	tokens TokenIssuer
	hasher PasswordHasher
}

// NewAuthUsecase creates a new authUsecase instance.
func NewAuthUsecase(users UserRepository, tokens TokenIssuer, hasher PasswordHasher) *authUsecase {
	return &authUsecase{
		users:  users,
		tokens: tokens,
		hasher: hasher,
	}
}

// Register creates a new user with a hashed password and the default USER
// role, and returns the persisted record.
//
// The FindByEmail pre-check is a fast path; the store's unique index is the
// authoritative guard against two concurrent registrations with the same
// email, and its rejection also surfaces as ErrEmailAlreadyExists.
func (u *authUsecase) Register(ctx context.Context, email, plain, name string) (*entity.User, error) {
	if email == "" {
		return nil, fmt.Errorf("%w: email cannot be empty", ErrValidation)
	}
	if plain == "" {
		return nil, fmt.Errorf("%w: password cannot be empty", ErrValidation)
	}
	if name == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", ErrValidation)
	}
	if len(plain) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters long", ErrValidation, minPasswordLength)
	}

	if _, err := u.users.FindByEmail(ctx, email); err == nil {
		return nil, ErrEmailAlreadyExists
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	hashed, err := u.hasher.Hash(plain)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Email:    email,
		Name:     name,
		Password: hashed,
		Role:     entity.RoleUser,
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login authenticates a user and returns a signed access token on success.
//
// A missing account and a mismatched password both return
// ErrInvalidCredentials, and the password comparison runs against a dummy
// hash when the user does not exist so the two failures take comparable
// time. The token is issued only after both lookup and verification succeed.
func (u *authUsecase) Login(ctx context.Context, email, plain string) (*LoginResult, error) {
	user, err := u.users.FindByEmail(ctx, email)

	hashed := password.DummyHash
	if err == nil {
		hashed = user.Password
	}

	match := u.hasher.Verify(plain, hashed)
	if err != nil || !match {
		return nil, ErrInvalidCredentials
	}

	role := user.Role
	if !role.Valid() {
		role = entity.RoleUser
	}

	token, err := u.tokens.Issue(user.Email, role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &LoginResult{
		Token:   token,
		Subject: user.Email,
		Role:    role,
	}, nil
}
