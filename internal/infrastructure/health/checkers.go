package health

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"

	"github.com/floodrisk/forms-data/go/internal/core/domain/api"
	"github.com/floodrisk/forms-data/go/internal/core/ports"
)

// redisHealthChecker wraps the redis client for health checks.
type redisHealthChecker struct{ client redis.Cmdable }

func (r *redisHealthChecker) Name() string                    { return "redis" }
func (r *redisHealthChecker) Check(ctx context.Context) error { return r.client.Ping(ctx).Err() }

// NewRedisHealthChecker creates a health checker for Redis.
func NewRedisHealthChecker(client redis.Cmdable) ports.HealthChecker {
	return &redisHealthChecker{client: client}
}

// upstreamHealthChecker probes the backend API. Only a network error counts
// as unhealthy; any HTTP answer proves the upstream is reachable.
type upstreamHealthChecker struct {
	client ports.BackendClient
	path   string
}

func (u *upstreamHealthChecker) Name() string { return "backend" }

func (u *upstreamHealthChecker) Check(ctx context.Context) error {
	res := u.client.Request(ctx, u.path, api.RequestOptions{})
	if res.IsNetworkError() {
		if e, ok := res.FirstError(); ok {
			return fmt.Errorf("backend unreachable: %s", e.Message)
		}
		return fmt.Errorf("backend unreachable")
	}
	return nil
}

// NewUpstreamHealthChecker creates a health checker that calls path on the backend API.
func NewUpstreamHealthChecker(client ports.BackendClient, path string) ports.HealthChecker {
	return &upstreamHealthChecker{client: client, path: path}
}
