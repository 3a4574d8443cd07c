package repository

import (
	"context"
	"time"
)

// CacheRepository is a TTL key-value store. It is injected into usecases so
// the backing store (redis in production, in-memory in development) can be
// swapped without touching call sites.
type CacheRepository interface {
	Set(ctx context.Context, key string, value string, expiration time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error

	// IsNotFound reports whether the error from Get means the key is
	// absent or expired.
	IsNotFound(err error) bool
}
