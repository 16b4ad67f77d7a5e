package memcache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jellydator/ttlcache/v3"

	"github.com/floodrisk/forms-data/go/internal/core/ports"
)

// Engine keeps each provisioned segment in its own ttlcache instance.
type Engine struct {
	mu       sync.Mutex
	segments map[string]*ttlcache.Cache[string, []byte]
	closed   bool
}

func NewEngine() *Engine {
	return &Engine{segments: make(map[string]*ttlcache.Cache[string, []byte])}
}

func (e *Engine) Name() string { return "memory" }

// Provision creates segment and starts its expiry loop.
func (e *Engine) Provision(ctx context.Context, segment string) (ports.Cache, error) {
	if segment == "" {
		return nil, fmt.Errorf("segment name is required")
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return nil, fmt.Errorf("memory cache engine is closed")
	}
	if _, ok := e.segments[segment]; ok {
		return nil, fmt.Errorf("segment %q: %w", segment, ports.ErrSegmentProvisioned)
	}
	c := ttlcache.New[string, []byte](
		ttlcache.WithDisableTouchOnHit[string, []byte](),
	)
	go c.Start()
	e.segments[segment] = c
	return &segmentCache{c: c}, nil
}

// Close stops the expiry loops of every segment.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return nil
	}
	for _, c := range e.segments {
		c.Stop()
	}
	e.closed = true
	return nil
}

// segmentCache implements ports.Cache over one ttlcache instance.
type segmentCache struct {
	c *ttlcache.Cache[string, []byte]
}

func (s *segmentCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	item := s.c.Get(key)
	if item == nil || item.IsExpired() {
		return nil, false, nil
	}
	return item.Value(), true, nil
}

func (s *segmentCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = ttlcache.NoTTL
	}
	s.c.Set(key, value, ttl)
	return nil
}

func (s *segmentCache) Delete(ctx context.Context, key string) error {
	s.c.Delete(key)
	return nil
}
