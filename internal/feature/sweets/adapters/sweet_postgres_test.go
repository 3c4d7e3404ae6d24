package adapters

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"sweetshop_backend/internal/feature/sweets/domain/entity"
	"sweetshop_backend/internal/feature/sweets/usecase"
)

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

	require.NoError(t, db.AutoMigrate(&entity.Sweet{}))
	return db
}

func seedSweet(t *testing.T, repo *sweetPostgres, quantity int) *entity.Sweet {
	t.Helper()

	sweet := &entity.Sweet{
		Name:        "Caramel Fudge",
		Description: "soft caramel squares",
		Price:       3.50,
		Quantity:    quantity,
	}
	require.NoError(t, repo.Create(context.Background(), sweet))
	return sweet
}

func TestSweetRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewSweetRepository(setupTestDB(t))

	sweet := seedSweet(t, repo, 20)
	require.NotZero(t, sweet.ID)

	t.Run("find by id", func(t *testing.T) {
		found, err := repo.FindByID(ctx, sweet.ID)
		require.NoError(t, err)
		assert.Equal(t, "Caramel Fudge", found.Name)
		assert.Equal(t, 20, found.Quantity)
	})

	t.Run("find missing id", func(t *testing.T) {
		_, err := repo.FindByID(ctx, 9999)
		assert.ErrorIs(t, err, usecase.ErrSweetNotFound)
	})

	t.Run("update", func(t *testing.T) {
		sweet.Price = 4.00
		require.NoError(t, repo.Update(ctx, sweet))

		found, err := repo.FindByID(ctx, sweet.ID)
		require.NoError(t, err)
		assert.Equal(t, 4.00, found.Price)
	})

	t.Run("list is ordered by id", func(t *testing.T) {
		second := &entity.Sweet{Name: "Lemon Drops", Price: 1.20, Quantity: 50}
		require.NoError(t, repo.Create(ctx, second))

		sweets, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, sweets, 2)
		assert.Equal(t, sweet.ID, sweets[0].ID)
		assert.Equal(t, second.ID, sweets[1].ID)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, sweet.ID))

		_, err := repo.FindByID(ctx, sweet.ID)
		assert.ErrorIs(t, err, usecase.ErrSweetNotFound)
	})

	t.Run("delete missing id", func(t *testing.T) {
		err := repo.Delete(ctx, 9999)
		assert.ErrorIs(t, err, usecase.ErrSweetNotFound)
	})
}

func TestSweetRepository_AdjustStock(t *testing.T) {
	ctx := context.Background()

	t.Run("purchase deducts stock", func(t *testing.T) {
		repo := NewSweetRepository(setupTestDB(t))
		sweet := seedSweet(t, repo, 20)

		updated, err := repo.AdjustStock(ctx, sweet.ID, -3)
		require.NoError(t, err)
		assert.Equal(t, 17, updated.Quantity)
	})

	t.Run("restock adds stock", func(t *testing.T) {
		repo := NewSweetRepository(setupTestDB(t))
		sweet := seedSweet(t, repo, 20)

		updated, err := repo.AdjustStock(ctx, sweet.ID, 25)
		require.NoError(t, err)
		assert.Equal(t, 45, updated.Quantity)
	})

	t.Run("deduction to exactly zero succeeds", func(t *testing.T) {
		repo := NewSweetRepository(setupTestDB(t))
		sweet := seedSweet(t, repo, 5)

		updated, err := repo.AdjustStock(ctx, sweet.ID, -5)
		require.NoError(t, err)
		assert.Equal(t, 0, updated.Quantity)
	})

	t.Run("deduction past zero is rejected", func(t *testing.T) {
		repo := NewSweetRepository(setupTestDB(t))
		sweet := seedSweet(t, repo, 5)

		_, err := repo.AdjustStock(ctx, sweet.ID, -6)
		assert.ErrorIs(t, err, usecase.ErrInsufficientStock)

		// Stock must be untouched after the failed deduction.
		found, err := repo.FindByID(ctx, sweet.ID)
		require.NoError(t, err)
		assert.Equal(t, 5, found.Quantity)
	})

	t.Run("missing sweet", func(t *testing.T) {
		repo := NewSweetRepository(setupTestDB(t))

		_, err := repo.AdjustStock(ctx, 9999, -1)
		assert.ErrorIs(t, err, usecase.ErrSweetNotFound)
	})

	t.Run("concurrent purchases never oversell", func(t *testing.T) {
		repo := NewSweetRepository(setupTestDB(t))
		sweet := seedSweet(t, repo, 10)

		var wg sync.WaitGroup
		var mu sync.Mutex
		succeeded := 0

		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if _, err := repo.AdjustStock(ctx, sweet.ID, -1); err == nil {
					mu.Lock()
					succeeded++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, 10, succeeded, "exactly the available units may sell")

		found, err := repo.FindByID(ctx, sweet.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, found.Quantity)
	})
}
