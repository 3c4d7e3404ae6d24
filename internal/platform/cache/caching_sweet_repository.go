// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"sweetshop_backend/internal/feature/sweets/domain/entity"
	"sweetshop_backend/internal/feature/sweets/usecase"
)

// CachingSweetRepository decorates a SweetRepository with Redis caching.
// It implements the decorator pattern, transparently adding caching without
// modifying the underlying repository. Caching is best effort: a failing or
// absent Redis never breaks a request, it just costs a database round trip.
type CachingSweetRepository struct {
	inner     usecase.SweetRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.SweetRepository = (*CachingSweetRepository)(nil)

// NewCachingSweetRepository decorates a SweetRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "sweets".
func NewCachingSweetRepository(rdb *redis.Client, ttl time.Duration, inner usecase.SweetRepository, namespace string) *CachingSweetRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "sweets"
	}
	return &CachingSweetRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// listKey is the cache key for the full sweet listing.
func (c *CachingSweetRepository) listKey() string {
	return c.namespace + ":all"
}

// idKey is the cache key for a single sweet.
func (c *CachingSweetRepository) idKey(id uint) string {
	return fmt.Sprintf("%s:id:%d", c.namespace, id)
}

// invalidate drops the cached entries touched by a write. Best effort.
func (c *CachingSweetRepository) invalidate(ctx context.Context, id uint) {
	if c.rdb == nil {
		return
	}
	keys := []string{c.listKey()}
	if id != 0 {
		keys = append(keys, c.idKey(id))
	}
	_ = c.rdb.Del(ctx, keys...).Err()
}

// Create inserts a sweet and invalidates the listing.
func (c *CachingSweetRepository) Create(ctx context.Context, s *entity.Sweet) error {
	if err := c.inner.Create(ctx, s); err != nil {
		return err
	}
	c.invalidate(ctx, s.ID)
	return nil
}

// FindByID retrieves a sweet, checking cache first then falling back to the
// database.
func (c *CachingSweetRepository) FindByID(ctx context.Context, id uint) (*entity.Sweet, error) {
	if c.rdb == nil {
		return c.inner.FindByID(ctx, id)
	}

	key := c.idKey(id)
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out entity.Sweet
		if err := json.Unmarshal(b, &out); err == nil {
			return &out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := c.inner.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}
	return out, nil
}

// Update saves a sweet and invalidates its cached entries.
func (c *CachingSweetRepository) Update(ctx context.Context, s *entity.Sweet) error {
	if err := c.inner.Update(ctx, s); err != nil {
		return err
	}
	c.invalidate(ctx, s.ID)
	return nil
}

// Delete removes a sweet and invalidates its cached entries.
func (c *CachingSweetRepository) Delete(ctx context.Context, id uint) error {
	if err := c.inner.Delete(ctx, id); err != nil {
		return err
	}
	c.invalidate(ctx, id)
	return nil
}

// List retrieves all sweets, checking cache first then falling back to the
// database.
func (c *CachingSweetRepository) List(ctx context.Context) ([]entity.Sweet, error) {
	if c.rdb == nil {
		return c.inner.List(ctx)
	}

	key := c.listKey()
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Sweet
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := c.inner.List(ctx)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}
	return out, nil
}

// AdjustStock delegates the atomic stock change and invalidates the cached
// entries so readers never see stale quantities from before the write.
func (c *CachingSweetRepository) AdjustStock(ctx context.Context, id uint, delta int) (*entity.Sweet, error) {
	s, err := c.inner.AdjustStock(ctx, id, delta)
	if err != nil {
		return nil, err
	}
	c.invalidate(ctx, id)
	return s, nil
}
