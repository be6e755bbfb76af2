package domain

import (
	"context"
	"time"
)

// CacheError represents an error originating from the cache.
type CacheError string

func (e CacheError) Error() string {
	return string(e)
}

// ErrCacheMiss is returned when a key is not found in the cache.
const ErrCacheMiss = CacheError("cache: key not found")

// Cache defines the interface (port) for the key/value store quiz results are
// recorded in. Implementations live in the adapter package.
type Cache interface {
	// Ping checks the health of the cache service.
	Ping(ctx context.Context) error

	// HGetAll retrieves all fields and values of a hash stored at key.
	// It returns ErrCacheMiss if the key does not exist.
	HGetAll(ctx context.Context, key string) (map[string]string, error)

	// HSet sets the given fields in the hash stored at key.
	HSet(ctx context.Context, key string, fields map[string]string) error

	// Expire sets an expiration time on key.
	Expire(ctx context.Context, key string, expiration time.Duration) error
}
