package ports

import (
	"context"
	"errors"
	"time"
)

// ErrSegmentProvisioned is returned by CacheEngine.Provision when the segment
// already exists. It is expected after a reload re-runs setup.
var ErrSegmentProvisioned = errors.New("cache segment already provisioned")

// Cache defines a minimal key-value cache contract.
// Implementations should degrade gracefully (returning an error without crashing callers)
// so that application logic can fall back to the upstream source.
type Cache interface {
	// Get returns the raw bytes for key. ok=false if not found or expired.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores value for key with TTL; expiry is enforced by the engine.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Delete removes the key; absence is not an error.
	Delete(ctx context.Context, key string) error
}

// CacheEngine hands out named cache segments. Each segment may be provisioned
// once per engine; later calls for the same name fail with ErrSegmentProvisioned.
type CacheEngine interface {
	Name() string
	Provision(ctx context.Context, segment string) (Cache, error)
}
