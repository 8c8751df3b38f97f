package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/coachhub/catalog/internal/model"
)

const (
	listKeyPrefix = "catalog:list:"

	// DefaultListTTL is the TTL for cached catalog listings.
	DefaultListTTL = 5 * time.Minute
)

// Common cache errors.
var (
	ErrCacheMiss = errors.New("cache miss")
)

func listKey(kind model.Kind) string {
	return listKeyPrefix + string(kind)
}

// GetList decodes the cached listing of kind into dest.
// Returns ErrCacheMiss if nothing is cached.
func (c *Cache) GetList(ctx context.Context, kind model.Kind, dest any) error {
	data, err := c.client.Get(ctx, listKey(kind)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrCacheMiss
		}
		return fmt.Errorf("redis get failed: %w", err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("failed to decode cached %s list: %w", kind, err)
	}

	return nil
}

// SetList stores the listing of kind.
func (c *Cache) SetList(ctx context.Context, kind model.Kind, list any) error {
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("failed to encode %s list: %w", kind, err)
	}

	if err := c.client.Set(ctx, listKey(kind), data, c.listTTL).Err(); err != nil {
		return fmt.Errorf("failed to cache %s list: %w", kind, err)
	}

	return nil
}

// InvalidateList drops the cached listing of kind.
func (c *Cache) InvalidateList(ctx context.Context, kind model.Kind) error {
	if err := c.client.Del(ctx, listKey(kind)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate %s list: %w", kind, err)
	}
	return nil
}
