package repository

import (
	"context"
	"time"
)

// CacheRepository is a string key/value store. A zero ttl keeps the value
// until it is overwritten.
type CacheRepository interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
}
