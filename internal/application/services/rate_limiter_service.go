package services

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/floodrisk/forms-data/go/internal/core/ports"
)

// RateLimiterService implements RateLimiter using a single static policy.
type RateLimiterService struct {
	repo            ports.RateLimitRepository
	limit           int
	burstMultiplier float64
	window          time.Duration
	keyPrefix       string
	logger          *logrus.Logger
}

// RateLimiterConfig groups configuration parameters for the rate limiter.
type RateLimiterConfig struct {
	RequestsPerWindow int
	BurstMultiplier   float64
	Window            time.Duration
	KeyPrefix         string
}

func NewRateLimiterService(repo ports.RateLimitRepository, cfg *RateLimiterConfig, logger *logrus.Logger) *RateLimiterService {
	// Apply defaults
	limit := 10
	bm := 1.0
	w := time.Minute
	kp := "ratelimit:account-request"
	if cfg != nil {
		if cfg.RequestsPerWindow > 0 {
			limit = cfg.RequestsPerWindow
		}
		if cfg.BurstMultiplier > 0 {
			bm = cfg.BurstMultiplier
		}
		if cfg.Window > 0 {
			w = cfg.Window
		}
		if cfg.KeyPrefix != "" {
			kp = cfg.KeyPrefix
		}
	}
	return &RateLimiterService{repo: repo, limit: limit, burstMultiplier: bm, window: w, keyPrefix: kp, logger: logger}
}

// Allow fails open: a counter store error lets the request through.
func (s *RateLimiterService) Allow(ctx context.Context, subject string) (bool, int, int, time.Time, error) {
	ttl := s.window * 2 // retain overlap window
	count, windowStart, err := s.repo.IncrementWindow(ctx, subject, s.window, s.keyPrefix, ttl)
	reset := windowStart.Add(s.window)
	burst := int(float64(s.limit) * s.burstMultiplier)
	if err != nil {
		if s.logger != nil {
			s.logger.WithFields(logrus.Fields{"subject": subject}).WithError(err).Error("rate limiter: failed to increment window")
		}
		return true, burst, s.limit, reset, err
	}
	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{"subject": subject, "count": count, "burst": burst, "limit": s.limit}).Debug("rate limiter window state")
	}
	if count > burst {
		return false, 0, s.limit, reset, nil
	}
	return true, burst - count, s.limit, reset, nil
}
