package backend

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/url"
	"syscall"

	"github.com/byte4ever/r8e"
	"github.com/byte4ever/r8e/httpx"
)

// classifyStatus decides which upstream responses are worth another attempt.
var classifyStatus httpx.Classifier = func(status int) httpx.ErrorClass {
	switch {
	case status >= 200 && status < 300:
		return httpx.Success
	case status == http.StatusRequestTimeout,
		status == http.StatusTooManyRequests,
		status == http.StatusInternalServerError,
		status == http.StatusBadGateway,
		status == http.StatusServiceUnavailable,
		status == http.StatusGatewayTimeout:
		return httpx.Transient
	default:
		return httpx.Permanent
	}
}

// transportErrors are failures where the request never produced a response.
var transportErrors = []error{
	context.DeadlineExceeded,
	io.EOF,
	io.ErrUnexpectedEOF,
	syscall.ECONNREFUSED,
	syscall.ECONNRESET,
	syscall.EPIPE,
}

func isTransportError(err error) bool {
	for _, target := range transportErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	var urlErr *url.Error
	return errors.As(err, &urlErr)
}

// classifyTransport marks an attempt failure for the retry loop. A cancelled
// caller context always stops retrying.
func classifyTransport(caller context.Context, err error) error {
	if caller.Err() != nil || !isTransportError(err) {
		return r8e.Permanent(err)
	}
	return r8e.Transient(err)
}

// retryCause labels a retried failure for metrics.
func retryCause(err error) string {
	var statusErr *httpx.StatusError
	if errors.As(err, &statusErr) {
		return "status"
	}
	return "transport"
}
