// Package adapters provides the repository implementations for the account feature.
package adapters

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"shop_backend/internal/feature/account/domain/entity"
	"shop_backend/internal/feature/account/usecase"
)

// uniqueViolation is the PostgreSQL SQLSTATE for a unique-constraint violation.
const uniqueViolation = "23505"

// userPostgres is the PostgreSQL implementation of the UserRepository
// interface, backed by GORM.
type userPostgres struct {
	db *gorm.DB
}

// Compile-time check that userPostgres implements UserRepository.
var _ usecase.UserRepository = (*userPostgres)(nil)

// NewUserPostgres creates a new userPostgres instance with the given gorm.DB
// connection. Constructor for dependency injection.
func NewUserPostgres(db *gorm.DB) *userPostgres {
	return &userPostgres{db: db}
}

// isEmailConflict reports whether err is a unique-constraint violation on the
// users table.
func isEmailConflict(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// Create inserts the user into the database.
// It returns usecase.ErrEmailTaken if the email is already registered.
func (r *userPostgres) Create(ctx context.Context, u *entity.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if isEmailConflict(err) {
			return usecase.ErrEmailTaken
		}
		return err
	}
	return nil
}

// FindByEmail retrieves a user by email address.
// Email uniqueness is enforced by the database index; should more than one
// row ever match, the lowest ID wins and the inconsistency is logged rather
// than failing the request.
func (r *userPostgres) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var users []entity.User
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		Order("id").
		Limit(2).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, usecase.ErrUserNotFound
	}
	if len(users) > 1 {
		slog.Error("email uniqueness violated, taking first match", "email", email)
	}
	return &users[0], nil
}

// FindByID retrieves a user by ID.
// It returns usecase.ErrUserNotFound if the user does not exist.
func (r *userPostgres) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// Update writes all fields of the user back to the database, including a
// cleared (nil) reset token.
// It returns usecase.ErrEmailTaken if the email collides with another account.
func (r *userPostgres) Update(ctx context.Context, u *entity.User) error {
	if err := r.db.WithContext(ctx).Save(u).Error; err != nil {
		if isEmailConflict(err) {
			return usecase.ErrEmailTaken
		}
		return err
	}
	return nil
}

// Delete hard-deletes the user with the given ID.
// It returns usecase.ErrUserNotFound if no row was removed.
func (r *userPostgres) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.User{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrUserNotFound
	}
	return nil
}
