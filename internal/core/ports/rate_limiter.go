package ports

import (
	"context"
	"time"
)

// RateLimitRepository provides atomic fixed-window counters.
// Implementations must be safe for concurrent use.
type RateLimitRepository interface {
	// IncrementWindow increments the counter for subject in the current window
	// and ensures it expires after ttl. Returns the updated count and the window start.
	IncrementWindow(ctx context.Context, subject string, window time.Duration, keyPrefix string, ttl time.Duration) (count int, windowStart time.Time, err error)
}

// RateLimiterService throttles a caller identified by subject (usually the client IP).
type RateLimiterService interface {
	// Allow consumes one unit and reports whether the request may proceed.
	// remaining is the number of further requests allowed in this window;
	// reset is when the window ends.
	Allow(ctx context.Context, subject string) (allowed bool, remaining int, limit int, reset time.Time, err error)
}
