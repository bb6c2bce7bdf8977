package adapters

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"shop_backend/internal/feature/account/domain/entity"
	"shop_backend/internal/feature/account/usecase"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.User{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

func newTestUser(email string) *entity.User {
	return &entity.User{
		Name:     "Test User",
		Email:    email,
		Password: "hashed_password",
	}
}

func TestNewUserPostgres(t *testing.T) {
	db := setupTestDB(t)

	repo := NewUserPostgres(db)

	assert.NotNil(t, repo, "repository is nil")
	assert.NotNil(t, repo.db, "database connection is nil")
}

func TestUserPostgres_Create(t *testing.T) {
	t.Run("successful user creation", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserPostgres(db)

		user := newTestUser("test@example.com")
		err := repo.Create(context.Background(), user)

		assert.NoError(t, err, "failed to create user")
		assert.NotZero(t, user.ID, "ID is not set")
		assert.False(t, user.CreatedAt.IsZero(), "CreatedAt is not set")
		assert.Nil(t, user.ResetToken, "ResetToken must start empty")
	})

	t.Run("duplicate email error", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserPostgres(db)

		require.NoError(t, repo.Create(context.Background(), newTestUser("duplicate@example.com")))

		err := repo.Create(context.Background(), newTestUser("duplicate@example.com"))
		assert.Error(t, err, "should return duplicate error")
	})
}

func TestUserPostgres_FindByEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserPostgres(db)

	created := newTestUser("find@example.com")
	require.NoError(t, repo.Create(context.Background(), created))

	t.Run("existing email", func(t *testing.T) {
		found, err := repo.FindByEmail(context.Background(), "find@example.com")

		require.NoError(t, err)
		assert.Equal(t, created.ID, found.ID)
		assert.Equal(t, "find@example.com", found.Email)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := repo.FindByEmail(context.Background(), "ghost@example.com")

		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})
}

func TestUserPostgres_FindByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserPostgres(db)

	created := newTestUser("byid@example.com")
	require.NoError(t, repo.Create(context.Background(), created))

	t.Run("existing id", func(t *testing.T) {
		found, err := repo.FindByID(context.Background(), created.ID)

		require.NoError(t, err)
		assert.Equal(t, created.Email, found.Email)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := repo.FindByID(context.Background(), 9999)

		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})
}

func TestUserPostgres_Update(t *testing.T) {
	t.Run("persists profile changes", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserPostgres(db)

		user := newTestUser("update@example.com")
		require.NoError(t, repo.Create(context.Background(), user))

		user.Name = "Renamed"
		user.Email = "renamed@example.com"
		require.NoError(t, repo.Update(context.Background(), user))

		found, err := repo.FindByID(context.Background(), user.ID)
		require.NoError(t, err)
		assert.Equal(t, "Renamed", found.Name)
		assert.Equal(t, "renamed@example.com", found.Email)
	})

	t.Run("stores and clears the reset token", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserPostgres(db)

		user := newTestUser("reset@example.com")
		require.NoError(t, repo.Create(context.Background(), user))

		token := "reset-token-value"
		user.ResetToken = &token
		require.NoError(t, repo.Update(context.Background(), user))

		found, err := repo.FindByID(context.Background(), user.ID)
		require.NoError(t, err)
		require.NotNil(t, found.ResetToken)
		assert.Equal(t, token, *found.ResetToken)

		found.ResetToken = nil
		require.NoError(t, repo.Update(context.Background(), found))

		found, err = repo.FindByID(context.Background(), user.ID)
		require.NoError(t, err)
		assert.Nil(t, found.ResetToken, "reset token must be cleared")
	})
}

func TestUserPostgres_Delete(t *testing.T) {
	t.Run("hard-deletes the record", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserPostgres(db)

		user := newTestUser("delete@example.com")
		require.NoError(t, repo.Create(context.Background(), user))

		require.NoError(t, repo.Delete(context.Background(), user.ID))

		_, err := repo.FindByEmail(context.Background(), "delete@example.com")
		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})

	t.Run("unknown id", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserPostgres(db)

		err := repo.Delete(context.Background(), 9999)
		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})
}

func TestIsEmailConflict(t *testing.T) {
	assert.False(t, isEmailConflict(errors.New("plain error")))
	assert.False(t, isEmailConflict(nil))
}
