// Package entity defines the domain entities for the account feature.
package entity

import "time"

// User represents a registered storefront customer.
// It is the single persisted record of the account flow: identity,
// credential hash and the in-flight password-reset token all live here.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Name is the user's display name.
	Name string `gorm:"size:255;not null"`

	// Email is the user's email address used as the login key.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Password is the bcrypt hash of the user's password.
	// This should never store plaintext passwords.
	Password string `gorm:"size:255;not null"`

	// ResetToken holds the most recently issued password-reset token.
	// It is nil except between a reset request and its completion;
	// issuing a new token supersedes any previous one.
	ResetToken *string `gorm:"size:512"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}
