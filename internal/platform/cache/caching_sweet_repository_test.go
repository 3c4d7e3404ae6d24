package cache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sweetshop_backend/internal/feature/sweets/domain/entity"
	"sweetshop_backend/internal/feature/sweets/usecase"
)

// fakeSweetRepository is an in-memory stand-in for the database repository.
type fakeSweetRepository struct {
	findCalls int
	listCalls int
	sweets    map[uint]*entity.Sweet
}

var _ usecase.SweetRepository = (*fakeSweetRepository)(nil)

func newFakeRepo(sweets ...*entity.Sweet) *fakeSweetRepository {
	m := make(map[uint]*entity.Sweet, len(sweets))
	for _, s := range sweets {
		m[s.ID] = s
	}
	return &fakeSweetRepository{sweets: m}
}

func (f *fakeSweetRepository) Create(ctx context.Context, s *entity.Sweet) error {
	s.ID = uint(len(f.sweets) + 1)
	f.sweets[s.ID] = s
	return nil
}

func (f *fakeSweetRepository) FindByID(ctx context.Context, id uint) (*entity.Sweet, error) {
	f.findCalls++
	if s, ok := f.sweets[id]; ok {
		return s, nil
	}
	return nil, usecase.ErrSweetNotFound
}

func (f *fakeSweetRepository) Update(ctx context.Context, s *entity.Sweet) error {
	f.sweets[s.ID] = s
	return nil
}

func (f *fakeSweetRepository) Delete(ctx context.Context, id uint) error {
	delete(f.sweets, id)
	return nil
}

func (f *fakeSweetRepository) List(ctx context.Context) ([]entity.Sweet, error) {
	f.listCalls++
	out := make([]entity.Sweet, 0, len(f.sweets))
	for _, s := range f.sweets {
		out = append(out, *s)
	}
	return out, nil
}

func (f *fakeSweetRepository) AdjustStock(ctx context.Context, id uint, delta int) (*entity.Sweet, error) {
	s, ok := f.sweets[id]
	if !ok {
		return nil, usecase.ErrSweetNotFound
	}
	if s.Quantity+delta < 0 {
		return nil, usecase.ErrInsufficientStock
	}
	s.Quantity += delta
	return s, nil
}

func TestCachingSweetRepository_FindByID(t *testing.T) {
	ctx := context.Background()
	sweet := &entity.Sweet{ID: 1, Name: "Caramel Fudge", Price: 3.50, Quantity: 20}
	encoded, err := json.Marshal(sweet)
	require.NoError(t, err)

	t.Run("cache miss falls back to the database and populates", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		inner := newFakeRepo(sweet)
		repo := NewCachingSweetRepository(rdb, time.Minute, inner, "sweets")

		mock.ExpectGet("sweets:id:1").RedisNil()
		mock.ExpectSet("sweets:id:1", encoded, time.Minute).SetVal("OK")

		got, err := repo.FindByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "Caramel Fudge", got.Name)
		assert.Equal(t, 1, inner.findCalls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("cache hit skips the database", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		inner := newFakeRepo(sweet)
		repo := NewCachingSweetRepository(rdb, time.Minute, inner, "sweets")

		mock.ExpectGet("sweets:id:1").SetVal(string(encoded))

		got, err := repo.FindByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "Caramel Fudge", got.Name)
		assert.Equal(t, 0, inner.findCalls, "database must not be hit on a cache hit")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("corrupted cache entry is dropped", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		inner := newFakeRepo(sweet)
		repo := NewCachingSweetRepository(rdb, time.Minute, inner, "sweets")

		mock.ExpectGet("sweets:id:1").SetVal("{not json")
		mock.ExpectDel("sweets:id:1").SetVal(1)
		mock.ExpectSet("sweets:id:1", encoded, time.Minute).SetVal("OK")

		got, err := repo.FindByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "Caramel Fudge", got.Name)
		assert.Equal(t, 1, inner.findCalls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("redis failure degrades to the database", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		inner := newFakeRepo(sweet)
		repo := NewCachingSweetRepository(rdb, time.Minute, inner, "sweets")

		mock.ExpectGet("sweets:id:1").SetErr(errors.New("connection refused"))
		mock.ExpectSet("sweets:id:1", encoded, time.Minute).SetErr(errors.New("connection refused"))

		got, err := repo.FindByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "Caramel Fudge", got.Name)
		assert.Equal(t, 1, inner.findCalls)
	})

	t.Run("nil client bypasses the cache entirely", func(t *testing.T) {
		inner := newFakeRepo(sweet)
		repo := NewCachingSweetRepository(nil, time.Minute, inner, "sweets")

		got, err := repo.FindByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "Caramel Fudge", got.Name)
		assert.Equal(t, 1, inner.findCalls)
	})
}

func TestCachingSweetRepository_List(t *testing.T) {
	ctx := context.Background()
	sweet := &entity.Sweet{ID: 1, Name: "Caramel Fudge", Price: 3.50, Quantity: 20}

	t.Run("miss then hit", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		inner := newFakeRepo(sweet)
		repo := NewCachingSweetRepository(rdb, time.Minute, inner, "sweets")

		encoded, err := json.Marshal([]entity.Sweet{*sweet})
		require.NoError(t, err)

		mock.ExpectGet("sweets:all").RedisNil()
		mock.ExpectSet("sweets:all", encoded, time.Minute).SetVal("OK")
		mock.ExpectGet("sweets:all").SetVal(string(encoded))

		first, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, first, 1)

		second, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, second, 1)

		assert.Equal(t, 1, inner.listCalls, "only the miss may reach the database")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCachingSweetRepository_WritesInvalidate(t *testing.T) {
	ctx := context.Background()
	sweet := &entity.Sweet{ID: 1, Name: "Caramel Fudge", Price: 3.50, Quantity: 20}

	t.Run("update deletes listing and entry", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		inner := newFakeRepo(sweet)
		repo := NewCachingSweetRepository(rdb, time.Minute, inner, "sweets")

		mock.ExpectDel("sweets:all", "sweets:id:1").SetVal(2)

		require.NoError(t, repo.Update(ctx, sweet))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("delete deletes listing and entry", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		inner := newFakeRepo(sweet)
		repo := NewCachingSweetRepository(rdb, time.Minute, inner, "sweets")

		mock.ExpectDel("sweets:all", "sweets:id:1").SetVal(2)

		require.NoError(t, repo.Delete(ctx, 1))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("stock adjustment deletes listing and entry", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		inner := newFakeRepo(sweet)
		repo := NewCachingSweetRepository(rdb, time.Minute, inner, "sweets")

		mock.ExpectDel("sweets:all", "sweets:id:1").SetVal(2)

		updated, err := repo.AdjustStock(ctx, 1, -3)
		require.NoError(t, err)
		assert.Equal(t, 17, updated.Quantity)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("failed write does not invalidate", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		inner := newFakeRepo(sweet)
		repo := NewCachingSweetRepository(rdb, time.Minute, inner, "sweets")

		_, err := repo.AdjustStock(ctx, 1, -100)
		assert.ErrorIs(t, err, usecase.ErrInsufficientStock)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
