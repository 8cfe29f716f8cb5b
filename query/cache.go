// Package query caches server-query results in the key-value store so that
// screens reflect server truth without refetching on every render, and so
// that mutations can invalidate exactly the lists they touched.
package query

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"sitara.io/store/driver"
)

const keyPrefix = "query:"

// Cache TTLs. Lists are short-lived because backend events may lag; reports
// match the 5 minute staleness the screens tolerate.
const (
	ListTTL   = time.Minute
	ReportTTL = 5 * time.Minute
)

// Cache is a cache-aside store for decoded query results. A miss is never an
// error; callers fall through to the backend.
type Cache struct {
	kv     driver.KV
	logger *zap.Logger
}

func NewCache(kv driver.KV, logger *zap.Logger) *Cache {
	return &Cache{kv: kv, logger: logger}
}

// Get loads the cached value at key into out and reports whether it was
// present and well formed.
func (c *Cache) Get(ctx context.Context, key string, out any) bool {
	raw, err := c.kv.Get(ctx, keyPrefix+key)
	if err != nil {
		if err != driver.ErrKeyNotFound {
			c.logger.Warn("query cache read failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		c.logger.Warn("query cache entry malformed", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// Set stores val at key for ttl. Failures are logged and swallowed; the
// cache is best effort.
func (c *Cache) Set(ctx context.Context, key string, val any, ttl time.Duration) {
	raw, err := json.Marshal(val)
	if err != nil {
		c.logger.Warn("query cache encode failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.kv.Set(ctx, keyPrefix+key, string(raw), ttl); err != nil {
		c.logger.Warn("query cache write failed", zap.String("key", key), zap.Error(err))
	}
}

// Invalidate drops the given keys so the next read refetches server truth.
func (c *Cache) Invalidate(ctx context.Context, keys ...string) {
	prefixed := make([]string, len(keys))
	for i, k := range keys {
		prefixed[i] = keyPrefix + k
	}
	if err := c.kv.Del(ctx, prefixed...); err != nil {
		c.logger.Warn("query cache invalidation failed", zap.Strings("keys", keys), zap.Error(err))
	}
}

// InvalidatePrefix drops every key under the given prefix, e.g. all
// product detail entries.
func (c *Cache) InvalidatePrefix(ctx context.Context, prefix string) {
	if err := c.kv.DelPrefix(ctx, keyPrefix+prefix); err != nil {
		c.logger.Warn("query cache prefix invalidation failed", zap.String("prefix", prefix), zap.Error(err))
	}
}

// Clear evicts all cached server-query state. Called at logout.
func (c *Cache) Clear(ctx context.Context) {
	if err := c.kv.DelPrefix(ctx, keyPrefix); err != nil {
		c.logger.Warn("query cache clear failed", zap.Error(err))
	}
}
