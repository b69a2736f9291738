// Package exporter provides engines that render export payloads.
package exporter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/calebmartins/exportq/internal/common"
)

// HTTPEngine renders export jobs by POSTing the payload to an external
// rendering service. It satisfies scheduler.Engine.
type HTTPEngine struct {
	url     string
	client  *http.Client
	headers map[string]string
	logger  *slog.Logger
}

// HTTPOption customizes an HTTPEngine.
type HTTPOption func(*HTTPEngine)

// WithHTTPClient replaces the default client.
func WithHTTPClient(c *http.Client) HTTPOption {
	return func(e *HTTPEngine) { e.client = c }
}

// WithHeaders sets extra request headers (auth tokens, tenancy, etc.).
func WithHeaders(h map[string]string) HTTPOption {
	return func(e *HTTPEngine) { e.headers = h }
}

// WithHTTPLogger sets the logger; defaults to slog.Default().
func WithHTTPLogger(l *slog.Logger) HTTPOption {
	return func(e *HTTPEngine) { e.logger = l }
}

// NewHTTPEngine builds an engine targeting url. The timeout bounds each
// request; the job context still wins if it expires first.
func NewHTTPEngine(url string, timeout time.Duration, opts ...HTTPOption) *HTTPEngine {
	e := &HTTPEngine{
		url:    url,
		client: &http.Client{Timeout: timeout},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.client == nil {
		e.client = &http.Client{Timeout: timeout}
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}
	return e
}

// Execute POSTs the payload and returns the raw response body. Non-2xx
// statuses become errors whose text carries a code the retry policy can
// classify: 408 -> TIMEOUT, 429 -> RATE_LIMITED, 5xx -> UNAVAILABLE.
func (e *HTTPEngine) Execute(ctx context.Context, payload json.RawMessage) (json.RawMessage, error) {
	reqID := uuid.New().String()
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.url, bytes.NewReader(payload))
	if err != nil {
		e.logger.Error("exporter.http.build_request_error", "req_id", reqID, "error", err)
		return nil, fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if jobID := common.JobIDFromContext(ctx); jobID != "" {
		req.Header.Set("X-Export-Job-ID", jobID)
	}
	for k, v := range e.headers {
		req.Header.Set(k, v)
	}

	e.logger.Info("exporter.http.request",
		"req_id", reqID,
		"url", e.url,
		"content_length", len(payload),
	)

	resp, err := e.client.Do(req)
	if err != nil {
		e.logger.Error("exporter.http.send_error", "req_id", reqID, "error", err, "elapsed_ms", time.Since(start).Milliseconds())
		return nil, fmt.Errorf("UNAVAILABLE: send request: %w", err)
	}
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			e.logger.Warn("exporter.http.response_body_close_error", "req_id", reqID, "error", err)
		}
	}(resp.Body)

	raw, _ := io.ReadAll(resp.Body)

	e.logger.Info("exporter.http.response",
		"req_id", reqID,
		"status", resp.StatusCode,
		"bytes", len(raw),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)

	if resp.StatusCode/100 != 2 {
		return nil, statusError(resp.StatusCode, raw)
	}
	return raw, nil
}

// statusError maps a failing HTTP status onto an error carrying a
// retryable code in its text where the failure is transient.
func statusError(status int, body []byte) error {
	detail := bytes.TrimSpace(body)
	if len(detail) > 200 {
		detail = detail[:200]
	}
	switch {
	case status == http.StatusRequestTimeout:
		return fmt.Errorf("TIMEOUT: render service status %d: %s", status, detail)
	case status == http.StatusTooManyRequests:
		return fmt.Errorf("RATE_LIMITED: render service status %d: %s", status, detail)
	case status/100 == 5:
		return fmt.Errorf("UNAVAILABLE: render service status %d: %s", status, detail)
	default:
		return fmt.Errorf("render service status %d: %s", status, detail)
	}
}
