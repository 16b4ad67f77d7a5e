package memcache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jellydator/ttlcache/v3"
)

// WindowCounter is the in-process counterpart of the Redis rate limit
// repository, used when no Redis is configured. Counts are per process.
type WindowCounter struct {
	mu sync.Mutex
	c  *ttlcache.Cache[string, int]
}

func NewWindowCounter() *WindowCounter {
	c := ttlcache.New[string, int](ttlcache.WithDisableTouchOnHit[string, int]())
	go c.Start()
	return &WindowCounter{c: c}
}

// IncrementWindow increments a per-subject counter for a fixed window.
func (w *WindowCounter) IncrementWindow(ctx context.Context, subject string, window time.Duration, keyPrefix string, ttl time.Duration) (int, time.Time, error) {
	windowStart := time.Now().Truncate(window)
	key := fmt.Sprintf("%s:%s:%d", keyPrefix, subject, windowStart.Unix())

	w.mu.Lock()
	defer w.mu.Unlock()
	count := 1
	if item := w.c.Get(key); item != nil && !item.IsExpired() {
		count = item.Value() + 1
		w.c.Set(key, count, ttlcache.PreviousOrDefaultTTL)
	} else {
		w.c.Set(key, count, ttl)
	}
	return count, windowStart, nil
}

// Close stops the expiry loop.
func (w *WindowCounter) Close() {
	w.c.Stop()
}
