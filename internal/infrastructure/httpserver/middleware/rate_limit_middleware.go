package middleware

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/floodrisk/forms-data/go/internal/core/ports"
)

type RateLimitMiddleware struct {
	rateLimiter ports.RateLimiterService
	logger      *logrus.Logger
}

func NewRateLimitMiddleware(rateLimiter ports.RateLimiterService, logger *logrus.Logger) *RateLimitMiddleware {
	return &RateLimitMiddleware{rateLimiter: rateLimiter, logger: logger}
}

// PerClientIP limits requests per client address. Without a limiter it is a no-op.
func (r *RateLimitMiddleware) PerClientIP() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if r.rateLimiter == nil {
				return next(c)
			}
			ip := c.RealIP()
			allowed, remaining, limit, reset, rlErr := r.rateLimiter.Allow(c.Request().Context(), ip)
			c.Response().Header().Set("X-RateLimit-Limit", strconv.Itoa(limit))
			c.Response().Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
			c.Response().Header().Set("X-RateLimit-Reset", strconv.FormatInt(reset.Unix(), 10))

			if rlErr != nil {
				if r.logger != nil {
					r.logger.WithError(rlErr).WithField("ip", ip).Warn("rate limiter error; allowing request (fail-open)")
				}
				return next(c)
			}
			if !allowed {
				if r.logger != nil {
					r.logger.WithFields(logrus.Fields{"ip": ip, "path": c.Path()}).Info("request rate limited")
				}
				return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
			}
			return next(c)
		}
	}
}
