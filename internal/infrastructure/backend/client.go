package backend

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/byte4ever/r8e"
	"github.com/byte4ever/r8e/httpx"
	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/floodrisk/forms-data/go/internal/core/domain/api"
	"github.com/floodrisk/forms-data/go/internal/infrastructure/metrics"
)

const maxBodyBytes = 10 << 20

// Config controls how the client reaches the upstream API.
type Config struct {
	BaseURL    string
	Timeout    time.Duration // per attempt
	MaxRetries int           // attempts = MaxRetries + 1
	RetryDelay time.Duration // backoff unit; attempt n waits RetryDelay*(n+1)
	Signer     *TokenSigner
}

// Client calls the upstream API with a per-attempt timeout and linear backoff.
// Results are normalised into api.Result; Request never returns an error.
type Client struct {
	baseURL    string
	hc         *http.Client
	timeout    time.Duration
	maxRetries int
	backoff    r8e.BackoffStrategy
	clock      r8e.Clock
	signer     *TokenSigner
	logger     *logrus.Logger
}

// NewClient builds a client. hc may be nil, in which case a default transport is used;
// its own Timeout is ignored in favour of cfg.Timeout.
func NewClient(cfg *Config, hc *http.Client, logger *logrus.Logger) *Client {
	if hc == nil {
		hc = &http.Client{}
	}
	maxRetries := cfg.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		hc:         hc,
		timeout:    cfg.Timeout,
		maxRetries: maxRetries,
		backoff:    r8e.LinearBackoff(cfg.RetryDelay),
		clock:      r8e.RealClock{},
		signer:     cfg.Signer,
		logger:     logger,
	}
}

// attemptResponse is what a single attempt produced when the server answered.
type attemptResponse struct {
	status      int
	contentType string
	body        []byte
}

// Request performs method path with up to MaxRetries retries.
func (c *Client) Request(ctx context.Context, path string, opts api.RequestOptions) api.Result {
	method := opts.MethodOrDefault()
	label := metricPath(path)

	var body []byte
	if opts.Body != nil {
		b, err := json.Marshal(opts.Body)
		if err != nil {
			c.logFields(method, path, "").WithError(err).Error("failed to encode request body")
			metrics.BackendRequest(method, label, metrics.OutcomeNetworkError)
			return api.NetworkError(fmt.Sprintf("failed to encode request body: %v", err))
		}
		body = b
	}

	requestID := uuid.NewString()
	log := c.logFields(method, path, requestID)

	// last holds the most recent application error so an exhausted or
	// interrupted retry still reports what the upstream said.
	var last *api.Result
	var lastErr error
	attempt := 0

	hooks := &r8e.Hooks{
		OnRetry: func(n int, err error) {
			delay := c.backoff.Delay(n - 1)
			log.WithError(err).WithFields(logrus.Fields{"attempt": n, "delay": delay}).Warn("backend request failed, retrying")
			metrics.BackendRetry(method, label, retryCause(err))
		},
	}

	var retryOpts []r8e.RetryOption
	if c.timeout > 0 {
		retryOpts = append(retryOpts, r8e.PerAttemptTimeout(c.timeout))
	}

	res, err := r8e.DoRetry(ctx, c.maxRetries+1, c.backoff, func(attemptCtx context.Context) (api.Result, error) {
		attempt++
		metrics.BackendAttempt(method, label)

		resp, err := c.do(attemptCtx, method, path, body, requestID, opts.Headers)
		if err != nil {
			last, lastErr = nil, err
			return api.Result{}, classifyTransport(ctx, err)
		}

		switch classifyStatus(resp.status) {
		case httpx.Success:
			res, err := successResult(resp)
			if err != nil {
				last, lastErr = nil, err
				log.WithError(err).WithField("status", resp.status).Error("backend returned an unreadable body")
				return api.Result{}, r8e.Permanent(err)
			}
			return res, nil
		case httpx.Transient:
			res := api.ApplicationError(resp.status, resp.body)
			last = &res
			return api.Result{}, r8e.Transient(&httpx.StatusError{StatusCode: resp.status})
		default:
			return api.ApplicationError(resp.status, resp.body), nil
		}
	}, hooks, c.clock, retryOpts...)

	if err == nil {
		if res.Success {
			metrics.BackendRequest(method, label, metrics.OutcomeSuccess)
		} else {
			log.WithFields(logrus.Fields{"status": res.Status, "attempt": attempt}).Warn("backend returned error status")
			metrics.BackendRequest(method, label, metrics.OutcomeAppError)
		}
		return res
	}

	if last != nil {
		log.WithFields(logrus.Fields{"status": last.Status, "attempt": attempt}).Warn("backend returned retryable status, giving up")
		metrics.BackendRequest(method, label, metrics.OutcomeAppError)
		return *last
	}
	log.WithError(err).WithField("attempt", attempt).Error("backend request failed")
	metrics.BackendRequest(method, label, metrics.OutcomeNetworkError)
	return api.NetworkError(networkMessage(ctx, lastErr, err))
}

// networkMessage describes a failure where no usable response was received.
func networkMessage(caller context.Context, lastErr, err error) string {
	if lastErr == nil {
		lastErr = err
	}
	if cause := caller.Err(); cause != nil && !errors.Is(lastErr, cause) {
		return fmt.Sprintf("%v (last error: %v)", cause, lastErr)
	}
	return lastErr.Error()
}

// do runs one attempt. ctx already carries the per-attempt timeout. A non-nil
// error means no response was received.
func (c *Client) do(ctx context.Context, method, path string, body []byte, requestID string, headers map[string]string) (*attemptResponse, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if c.signer != nil {
		token, err := c.signer.Sign(requestID)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, err
	}
	return &attemptResponse{status: resp.StatusCode, contentType: resp.Header.Get("Content-Type"), body: data}, nil
}

func successResult(resp *attemptResponse) (api.Result, error) {
	if !isJSON(resp.contentType) || len(bytes.TrimSpace(resp.body)) == 0 {
		return api.Succeeded(resp.status, nil), nil
	}
	if !json.Valid(resp.body) {
		return api.Result{}, errors.New("invalid JSON in response body")
	}
	return api.Succeeded(resp.status, json.RawMessage(resp.body)), nil
}

func isJSON(contentType string) bool {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mt == "application/json" || strings.HasSuffix(mt, "+json")
}

func metricPath(path string) string {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		return path[:i]
	}
	return path
}

func (c *Client) logFields(method, path, requestID string) *logrus.Entry {
	logger := c.logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	fields := logrus.Fields{"method": method, "path": path}
	if requestID != "" {
		fields["request_id"] = requestID
	}
	return logger.WithFields(fields)
}
