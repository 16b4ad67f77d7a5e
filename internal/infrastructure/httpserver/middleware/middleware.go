package middleware

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/floodrisk/forms-data/go/internal/core/ports"
)

// MiddlewareCollection holds all middleware instances
type MiddlewareCollection struct {
	ServiceAuth *ServiceAuthMiddleware
	Logging     *LoggingMiddleware
	RateLimit   *RateLimitMiddleware
	Metrics     *MetricsMiddleware
}

// NewMiddlewareCollection creates a new collection of all middleware
func NewMiddlewareCollection(
	logger *logrus.Logger,
	serviceSecret string,
	rateLimiter ports.RateLimiterService,
	requestsTotal *prometheus.CounterVec,
	requestDuration *prometheus.HistogramVec,
) *MiddlewareCollection {
	return &MiddlewareCollection{
		ServiceAuth: NewServiceAuthMiddleware(serviceSecret, logger),
		Logging:     NewLoggingMiddleware(logger),
		RateLimit:   NewRateLimitMiddleware(rateLimiter, logger),
		Metrics:     NewMetricsMiddleware(requestsTotal, requestDuration),
	}
}
