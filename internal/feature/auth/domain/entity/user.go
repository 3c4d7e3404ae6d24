// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered user in the system.
// It contains authentication credentials and metadata for user management.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey" json:"id"`

	// Email is the user's email address used for authentication.
	// It must be unique across all users; the unique index is the
	// authoritative guard against concurrent duplicate registrations.
	Email string `gorm:"uniqueIndex;size:255;not null" json:"email"`

	// Name is the user's display name.
	Name string `gorm:"size:255;not null" json:"name"`

	// Password is the bcrypt hash of the user's password.
	// It is never serialized to clients and never stores plaintext.
	Password string `gorm:"size:255;not null" json:"-"`

	// Role determines what the user is authorized to do.
	// Defaults to RoleUser when unset.
	Role Role `gorm:"size:32;not null;default:USER" json:"role"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time `json:"updatedAt"`
}
