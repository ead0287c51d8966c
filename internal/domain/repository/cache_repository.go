package repository

import (
	"context"
	"time"
)

// CacheRepository is the byte-level cache used for listing responses.
type CacheRepository interface {
	// Get returns the cached value or a cache-miss error.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value with a TTL.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// DeleteByPrefix removes every key under a prefix; used to invalidate
	// listing caches after a successful submission.
	DeleteByPrefix(ctx context.Context, prefix string) error
}
