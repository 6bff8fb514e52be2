// internal/core/ports/cache.go
package ports

import (
	"context"
	"time"
)

// CacheKeyPrefix namespaces the cached read models. Invalidation works
// on these prefixes, so every key must be built through BuildKey.
type CacheKeyPrefix string

const (
	PrefixCatalog   CacheKeyPrefix = "catalog"
	PrefixDashboard CacheKeyPrefix = "dashboard"
)

// BuildKey creates a cache key with prefix
func BuildKey(prefix CacheKeyPrefix, parts ...string) string {
	key := string(prefix)
	for _, part := range parts {
		key += ":" + part
	}
	return key
}

// CacheRepository defines the interface for cache operations used by
// the read paths (catalog and dashboard) and the health check.
type CacheRepository interface {
	Set(ctx context.Context, key string, value interface{}) error
	SetWithTTL(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Get(ctx context.Context, key string, dest interface{}) error
	Delete(ctx context.Context, keys ...string) error
	DeletePattern(ctx context.Context, pattern string) error

	// GetOrSet returns the cached value when present, otherwise runs
	// fetch, stores its result under key and fills dest with it.
	GetOrSet(ctx context.Context, key string, dest interface{},
		fetch func() (interface{}, error), ttl time.Duration) error

	Ping(ctx context.Context) error
}
