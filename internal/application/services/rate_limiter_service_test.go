package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	impl "github.com/floodrisk/forms-data/go/internal/application/services"
)

type counterStub struct {
	counts map[string]int
	err    error
}

func (c *counterStub) IncrementWindow(_ context.Context, subject string, window time.Duration, _ string, _ time.Duration) (int, time.Time, error) {
	if c.err != nil {
		return 0, time.Now().Truncate(window), c.err
	}
	c.counts[subject]++
	return c.counts[subject], time.Now().Truncate(window), nil
}

func TestRateLimiter_BlocksAfterBurst(t *testing.T) {
	repo := &counterStub{counts: map[string]int{}}
	svc := impl.NewRateLimiterService(repo, &impl.RateLimiterConfig{RequestsPerWindow: 2, BurstMultiplier: 1.5}, nil)
	ctx := context.Background()

	for want := 2; want >= 0; want-- {
		allowed, remaining, limit, _, err := svc.Allow(ctx, "1.2.3.4")
		require.NoError(t, err)
		assert.True(t, allowed)
		assert.Equal(t, want, remaining)
		assert.Equal(t, 2, limit)
	}
	allowed, remaining, _, reset, err := svc.Allow(ctx, "1.2.3.4")
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Zero(t, remaining)
	assert.True(t, reset.After(time.Now().Add(-time.Minute)))

	allowed, _, _, _, _ = svc.Allow(ctx, "5.6.7.8")
	assert.True(t, allowed)
}

func TestRateLimiter_FailsOpen(t *testing.T) {
	svc := impl.NewRateLimiterService(&counterStub{err: errors.New("redis down")}, nil, nil)
	allowed, _, limit, _, err := svc.Allow(context.Background(), "1.2.3.4")
	assert.Error(t, err)
	assert.True(t, allowed)
	assert.Equal(t, 10, limit)
}
