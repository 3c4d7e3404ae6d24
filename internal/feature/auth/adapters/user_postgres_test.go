package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"sweetshop_backend/internal/feature/auth/domain/entity"
	"sweetshop_backend/internal/feature/auth/usecase"
)

// setupTestDB opens an in-memory SQLite database with the same error
// translation setting as production and migrates the user table.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// Each pool connection to :memory: would get its own database, so pin
	// the pool to a single connection.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&entity.User{}))
	return db
}

func TestUserRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("inserts and assigns an ID", func(t *testing.T) {
		repo := NewUserRepository(setupTestDB(t))

		user := &entity.User{
			Email:    "alice@example.com",
			Name:     "Alice",
			Password: "hashed-password",
			Role:     entity.RoleUser,
		}
		require.NoError(t, repo.Create(ctx, user))
		assert.NotZero(t, user.ID)
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		repo := NewUserRepository(setupTestDB(t))

		first := &entity.User{Email: "alice@example.com", Name: "Alice", Password: "h1", Role: entity.RoleUser}
		require.NoError(t, repo.Create(ctx, first))

		second := &entity.User{Email: "alice@example.com", Name: "Other Alice", Password: "h2", Role: entity.RoleUser}
		err := repo.Create(ctx, second)
		assert.ErrorIs(t, err, usecase.ErrEmailAlreadyExists)
	})
}

func TestUserRepository_FindByEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(setupTestDB(t))

	seeded := &entity.User{
		Email:    "alice@example.com",
		Name:     "Alice",
		Password: "hashed-password",
		Role:     entity.RoleAdmin,
	}
	require.NoError(t, repo.Create(ctx, seeded))

	t.Run("found", func(t *testing.T) {
		user, err := repo.FindByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		assert.Equal(t, seeded.ID, user.ID)
		assert.Equal(t, "Alice", user.Name)
		assert.Equal(t, entity.RoleAdmin, user.Role)
		assert.Equal(t, "hashed-password", user.Password)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := repo.FindByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})
}

func TestUserRepository_FindByID(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(setupTestDB(t))

	seeded := &entity.User{Email: "alice@example.com", Name: "Alice", Password: "h", Role: entity.RoleUser}
	require.NoError(t, repo.Create(ctx, seeded))

	t.Run("found", func(t *testing.T) {
		user, err := repo.FindByID(ctx, seeded.ID)
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", user.Email)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := repo.FindByID(ctx, 9999)
		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})
}
