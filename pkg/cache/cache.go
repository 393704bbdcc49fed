// Package cache provides the byte-level cache behind the registry clients.
//
// Three backends implement [Cache]:
//
//   - [FileCache]: one JSON file per entry under the XDG cache directory (default)
//   - [RedisCache]: a shared Redis instance, for teams surveying the same registry
//   - [NullCache]: caching disabled (--no-cache)
//
// Entries are opaque byte slices with a per-entry TTL. Callers namespace their
// keys (for example "npm:downloads:sharp") so backends never interpret them.
package cache

import (
	"context"
	"time"
)

// Cache stores opaque values under string keys.
//
// Get reports a miss as (nil, false, nil); an error means the backend itself
// failed. Expired entries are misses.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}
