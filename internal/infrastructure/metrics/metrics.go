package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	backendRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "backend_requests_total",
			Help: "Upstream API calls by path and final outcome",
		},
		[]string{"method", "path", "outcome"},
	)

	backendAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "backend_attempts_total",
			Help: "Individual upstream request attempts, including retries",
		},
		[]string{"method", "path"},
	)

	backendRetries = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "backend_retries_total",
			Help: "Upstream retries by cause (status or transport)",
		},
		[]string{"method", "path", "cause"},
	)

	cacheLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "area_cache_lookups_total",
			Help: "Area cache reads by the path that produced the data",
		},
		[]string{"segment", "source"},
	)

	cacheErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "area_cache_errors_total",
			Help: "Cache engine failures that triggered a direct fetch",
		},
		[]string{"segment", "op"},
	)
)

func init() {
	prometheus.MustRegister(backendRequests)
	prometheus.MustRegister(backendAttempts)
	prometheus.MustRegister(backendRetries)
	prometheus.MustRegister(cacheLookups)
	prometheus.MustRegister(cacheErrors)
}

// Outcome labels for BackendRequest.
const (
	OutcomeSuccess      = "success"
	OutcomeAppError     = "application_error"
	OutcomeNetworkError = "network_error"
)

// BackendAttempt counts one request attempt.
func BackendAttempt(method, path string) {
	backendAttempts.WithLabelValues(method, path).Inc()
}

// BackendRetry counts a retry caused by a retryable status or a transport error.
func BackendRetry(method, path, cause string) {
	backendRetries.WithLabelValues(method, path, cause).Inc()
}

// BackendRequest counts a finished upstream call.
func BackendRequest(method, path, outcome string) {
	backendRequests.WithLabelValues(method, path, outcome).Inc()
}

// CacheLookup counts an area cache read by source (cached, fetched, unavailable).
func CacheLookup(segment, source string) {
	cacheLookups.WithLabelValues(segment, source).Inc()
}

// CacheError counts a cache engine failure for op (provision, get, set, decode, delete).
func CacheError(segment, op string) {
	cacheErrors.WithLabelValues(segment, op).Inc()
}

