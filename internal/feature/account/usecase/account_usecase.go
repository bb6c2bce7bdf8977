package usecase

import (
	"context"
	"fmt"
	"time"

	"shop_backend/internal/feature/account/domain/entity"
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention, the interface is defined by the consumer
// (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new user to the storage.
	// It returns ErrEmailTaken if a user with the same email already exists.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves a user matching the specified email address.
	// It returns ErrUserNotFound if the user does not exist.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves a user matching the specified ID.
	// It returns ErrUserNotFound if the user does not exist.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// Update persists changes to an existing user.
	// It returns ErrEmailTaken if the new email collides with another account.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes the user with the given ID.
	// It returns ErrUserNotFound if no such user exists.
	Delete(ctx context.Context, id uint) error
}

// PasswordHasher abstracts the one-way credential transform.
type PasswordHasher interface {
	// Hash produces an opaque hash of the plaintext password.
	Hash(plaintext string) (string, error)
	// Verify reports whether the plaintext matches the stored hash.
	Verify(plaintext, hashed string) bool
}

// TokenIssuer abstracts minting and checking of signed, time-bounded tokens.
// Session and reset tokens share the issuer but carry different claim shapes
// and TTLs, which are passed per call.
type TokenIssuer interface {
	// IssueSession mints a bearer token carrying the user ID.
	IssueSession(userID uint, ttl time.Duration) (string, error)
	// IssueReset mints a password-reset token carrying the user ID and email.
	IssueReset(userID uint, email string, ttl time.Duration) (string, error)
	// VerifyReset validates a reset token's signature and expiry and returns
	// the embedded user ID and email.
	VerifyReset(token string) (userID uint, email string, err error)
}

// ResetMailer delivers password-reset instructions to an external channel.
type ResetMailer interface {
	// SendPasswordReset delivers the reset token to the given address.
	SendPasswordReset(ctx context.Context, to, token string) error
}

// accountUsecase implements the account-lifecycle business logic.
type accountUsecase struct {
	users      UserRepository
	hasher     PasswordHasher
	tokens     TokenIssuer
	mailer     ResetMailer
	sessionTTL time.Duration
	resetTTL   time.Duration
}

// NewAccountUsecase creates a new instance of accountUsecase.
// All collaborators are injected; the usecase holds no global state.
func NewAccountUsecase(users UserRepository, hasher PasswordHasher, tokens TokenIssuer,
	mailer ResetMailer, sessionTTL, resetTTL time.Duration) *accountUsecase {
	return &accountUsecase{
		users:      users,
		hasher:     hasher,
		tokens:     tokens,
		mailer:     mailer,
		sessionTTL: sessionTTL,
		resetTTL:   resetTTL,
	}
}

// dummyHash is a valid bcrypt hash compared against when the email does not
// resolve, so that Login always performs one hash verification.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Register creates a new account with a hashed password and returns the
// created record. It returns ErrEmailTaken if the email is already in use.
func (u *accountUsecase) Register(ctx context.Context, name, email, password string) (*entity.User, error) {
	hashed, err := u.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user := &entity.User{Name: name, Email: email, Password: hashed}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login authenticates a user and returns a bearer token alongside the record.
// Unknown email and wrong password both yield ErrInvalidCredentials; a dummy
// hash comparison runs when the email does not resolve, as a timing-attack
// mitigation.
func (u *accountUsecase) Login(ctx context.Context, email, password string) (string, *entity.User, error) {
	user, err := u.users.FindByEmail(ctx, email)

	passwordHash := dummyHash
	if err == nil {
		passwordHash = user.Password
	}
	ok := u.hasher.Verify(password, passwordHash)

	if err != nil || !ok {
		return "", nil, ErrInvalidCredentials
	}

	token, err := u.tokens.IssueSession(user.ID, u.sessionTTL)
	if err != nil {
		return "", nil, fmt.Errorf("failed to issue session token: %w", err)
	}
	return token, user, nil
}

// UpdateProfile changes the user's name and email and, when newPassword is
// supplied, replaces the stored password hash after verifying currentPassword.
// The stored hash is never mutated when the current-password check fails.
func (u *accountUsecase) UpdateProfile(ctx context.Context, id uint, name, email, currentPassword, newPassword string) (*entity.User, error) {
	user, err := u.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if newPassword != "" {
		if currentPassword == "" {
			return nil, ErrCurrentPasswordRequired
		}
		if !u.hasher.Verify(currentPassword, user.Password) {
			return nil, ErrInvalidCredentials
		}
		hashed, err := u.hasher.Hash(newPassword)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.Password = hashed
	}

	user.Name = name
	user.Email = email

	if err := u.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteAccount verifies the password and hard-deletes the record.
func (u *accountUsecase) DeleteAccount(ctx context.Context, id uint, password string) error {
	user, err := u.users.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !u.hasher.Verify(password, user.Password) {
		return ErrInvalidCredentials
	}
	return u.users.Delete(ctx, user.ID)
}

// RequestPasswordReset mints a reset token, stores it on the record and hands
// it to the mailer. The stored token stays set when delivery fails, so a
// retried request issues a fresh token that supersedes it.
func (u *accountUsecase) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	token, err := u.tokens.IssueReset(user.ID, user.Email, u.resetTTL)
	if err != nil {
		return fmt.Errorf("failed to issue reset token: %w", err)
	}

	user.ResetToken = &token
	if err := u.users.Update(ctx, user); err != nil {
		return err
	}

	if err := u.mailer.SendPasswordReset(ctx, user.Email, token); err != nil {
		return fmt.Errorf("failed to send reset email: %w", err)
	}
	return nil
}

// CompletePasswordReset validates the reset token and replaces the password.
// The token must carry a valid signature and expiry, embed the supplied email,
// and equal the token currently stored on the record; only the most recently
// issued token is honored.
func (u *accountUsecase) CompletePasswordReset(ctx context.Context, token, email, newPassword string) error {
	userID, tokenEmail, err := u.tokens.VerifyReset(token)
	if err != nil {
		return ErrInvalidResetToken
	}
	if tokenEmail != email {
		return ErrInvalidResetToken
	}

	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return ErrInvalidResetToken
	}
	if user.ResetToken == nil || *user.ResetToken != token {
		// Superseded by a newer reset request, or already consumed.
		return ErrInvalidResetToken
	}

	hashed, err := u.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = hashed
	user.ResetToken = nil
	return u.users.Update(ctx, user)
}
