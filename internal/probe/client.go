// InternMatch - Internship Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/internmatch

package probe

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/tomtom215/internmatch/internal/logging"
	"github.com/tomtom215/internmatch/internal/metrics"
	"github.com/tomtom215/internmatch/internal/models"
)

const breakerName = "probe-server"

// maxResponseBytes caps how much of a response body is read.
const maxResponseBytes = 4 << 20

// Config configures a Client.
type Config struct {
	// BaseURL is the server root, e.g. http://127.0.0.1:5000.
	BaseURL string

	// Timeout bounds each HTTP request. Default: 10s
	Timeout time.Duration

	// RPS limits requests per second across all workers. Zero is unlimited.
	RPS float64

	// BreakerTimeout is how long the breaker stays open. Default: 30s
	BreakerTimeout time.Duration

	// BreakerFailures is the number of consecutive failures that opens the
	// breaker. Default: 5
	BreakerFailures uint32

	// HTTPClient overrides the default client, mainly for tests.
	HTTPClient *http.Client
}

// StatusError is returned for non-2xx responses. Body holds the raw response.
type StatusError struct {
	StatusCode int
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%d %s", e.StatusCode, strings.TrimSpace(string(e.Body)))
}

// serverFault reports whether err should count against the circuit breaker.
// Client errors (4xx) mean the server is up.
func serverFault(err error) bool {
	if err == nil {
		return false
	}
	var se *StatusError
	if errors.As(err, &se) {
		return se.StatusCode >= http.StatusInternalServerError
	}
	return !errors.Is(err, context.Canceled)
}

// Client talks to one InternMatch server.
type Client struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
	breaker *gobreaker.CircuitBreaker[[]byte]
}

// NewClient creates a Client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("probe: base URL is required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.BreakerTimeout <= 0 {
		cfg.BreakerTimeout = 30 * time.Second
	}
	if cfg.BreakerFailures == 0 {
		cfg.BreakerFailures = 5
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	limit := rate.Inf
	burst := 1
	if cfg.RPS > 0 {
		limit = rate.Limit(cfg.RPS)
		burst = max(1, int(cfg.RPS))
	}

	logger := logging.WithComponent("probe")
	failures := cfg.BreakerFailures
	metrics.BreakerState.WithLabelValues(breakerName).Set(0)

	breaker := gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 1,
		Timeout:     cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		IsSuccessful: func(err error) bool {
			return !serverFault(err)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("circuit breaker state changed")
			metrics.BreakerState.WithLabelValues(name).Set(stateToFloat(to))
		},
	})

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    httpClient,
		limiter: rate.NewLimiter(limit, burst),
		breaker: breaker,
	}, nil
}

// Recommend posts profile (a JSON object) to /recommend.
func (c *Client) Recommend(ctx context.Context, profile []byte) (*models.RecommendResponse, error) {
	body, err := c.do(ctx, http.MethodPost, "/recommend", profile)
	if err != nil {
		return nil, err
	}
	var resp models.RecommendResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode recommend response: %w", err)
	}
	return &resp, nil
}

// Health calls /health.
func (c *Client) Health(ctx context.Context) (*models.HealthResponse, error) {
	body, err := c.do(ctx, http.MethodGet, "/health", nil)
	if err != nil {
		return nil, err
	}
	var resp models.HealthResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode health response: %w", err)
	}
	return &resp, nil
}

// do sends one request through the limiter and the breaker.
func (c *Client) do(ctx context.Context, method, path string, payload []byte) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	body, err := c.breaker.Execute(func() ([]byte, error) {
		return c.send(ctx, method, path, payload)
	})

	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		metrics.RecordBreakerCall(breakerName, metrics.ResultRejected, stateToFloat(c.breaker.State()))
	case serverFault(err):
		metrics.RecordBreakerCall(breakerName, metrics.ResultFailure, stateToFloat(c.breaker.State()))
	default:
		metrics.RecordBreakerCall(breakerName, metrics.ResultSuccess, stateToFloat(c.breaker.State()))
	}
	return body, err
}

func (c *Client) send(ctx context.Context, method, path string, payload []byte) ([]byte, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read %s response: %w", path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: body}
	}
	return body, nil
}

// BreakerState returns the breaker state name: closed, half-open or open.
func (c *Client) BreakerState() string {
	return c.breaker.State().String()
}

func stateToFloat(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}
