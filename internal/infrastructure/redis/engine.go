package redis

import (
	"context"
	"fmt"
	"sync"

	"github.com/go-redis/redis/v8"

	"github.com/floodrisk/forms-data/go/internal/core/ports"
)

// Engine provisions key-prefixed segments on a shared Redis client.
type Engine struct {
	client   redis.Cmdable
	mu       sync.Mutex
	segments map[string]struct{}
}

func NewEngine(client redis.Cmdable) *Engine {
	return &Engine{client: client, segments: make(map[string]struct{})}
}

func (e *Engine) Name() string { return "redis" }

// Provision returns a RedisCache for segment. Segments are only tracked in-process;
// entries written by earlier processes under the same prefix stay readable.
func (e *Engine) Provision(ctx context.Context, segment string) (ports.Cache, error) {
	if segment == "" {
		return nil, fmt.Errorf("segment name is required")
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.segments[segment]; ok {
		return nil, fmt.Errorf("segment %q: %w", segment, ports.ErrSegmentProvisioned)
	}
	e.segments[segment] = struct{}{}
	return NewRedisCache(e.client, segment), nil
}
