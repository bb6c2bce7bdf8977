// Package usecase implements the business logic for the account feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailTaken is returned when attempting to register or change to an
	// email address that already belongs to another account.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials is returned when an email/password pair does not
	// authenticate. It deliberately covers both the unknown-email and the
	// wrong-password case so callers cannot tell which check failed.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrCurrentPasswordRequired is returned when a password change is
	// requested without supplying the current password.
	ErrCurrentPasswordRequired = errors.New("current password is required")

	// ErrInvalidResetToken is returned when a password-reset token is
	// malformed, expired, issued for a different email, or superseded by a
	// newer token.
	ErrInvalidResetToken = errors.New("invalid or expired reset token")
)
