// Package transport executes built EVDS request descriptors over HTTP.
// It is deliberately thin: one GET per call, no retries, no rate limiting
// and no interpretation of the response body. Remote rejections surface as
// a StatusError, never as a local validation error.
package transport

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/tcmbdata/go-evds/internal/request"
)

const (
	// DefaultBaseURL is the EVDS web service root.
	DefaultBaseURL = "https://evds2.tcmb.gov.tr"

	defaultTimeout = 30 * time.Second
	userAgent      = "go-evds/1.0"
)

// Transport executes a fully-built request descriptor and returns the raw
// response bytes.
type Transport interface {
	Do(ctx context.Context, req request.Request) ([]byte, error)
}

// StatusError reports a non-success HTTP status from the service, carrying
// the raw body for diagnosis.
type StatusError struct {
	Code int
	Body []byte
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("evds request failed with status %d: %s", e.Code, e.Body)
}

// HTTPTransport is the synchronous HTTP implementation of Transport.
type HTTPTransport struct {
	client  *http.Client
	baseURL string
	logger  *slog.Logger
}

// Option configures an HTTPTransport.
type Option func(*HTTPTransport)

// WithBaseURL overrides the service root, mainly for tests.
func WithBaseURL(baseURL string) Option {
	return func(t *HTTPTransport) { t.baseURL = baseURL }
}

// WithTimeout overrides the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(t *HTTPTransport) { t.client.Timeout = timeout }
}

// WithLogger overrides the default logger.
func WithLogger(logger *slog.Logger) Option {
	return func(t *HTTPTransport) { t.logger = logger }
}

// NewHTTPTransport creates an HTTP transport with tuned connection
// settings.
func NewHTTPTransport(opts ...Option) *HTTPTransport {
	t := &HTTPTransport{
		client: &http.Client{
			Timeout: defaultTimeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		baseURL: DefaultBaseURL,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Do issues a single HTTP GET for the built request and returns the raw
// response bytes. Each call is tagged with a correlation ID for log
// tracing.
func (t *HTTPTransport) Do(ctx context.Context, req request.Request) ([]byte, error) {
	requestID := uuid.NewString()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, req.URL(t.baseURL), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Accept", "*/*")
	httpReq.Header.Set("User-Agent", userAgent)

	t.logger.Debug("dispatching evds request",
		"request_id", requestID,
		"path", req.Path())

	resp, err := t.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		t.logger.Warn("evds request rejected",
			"request_id", requestID,
			"status", resp.StatusCode)
		return nil, &StatusError{Code: resp.StatusCode, Body: body}
	}

	t.logger.Debug("evds request completed",
		"request_id", requestID,
		"status", resp.StatusCode,
		"bytes", len(body))

	return body, nil
}
