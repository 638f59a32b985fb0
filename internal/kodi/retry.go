package kodi

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"syscall"
	"time"

	"github.com/bigspawn/kodi-bingebase-sync/internal/logger"
)

// defaultBackoff covers a Kodi instance that is still starting up.
var defaultBackoff = ExponentialBackoff{
	InitialInterval: 1 * time.Second,
	MaxInterval:     30 * time.Second,
	Multiplier:      2.0,
}

// BackoffStrategy defines retry delay behavior
type BackoffStrategy interface {
	Duration(attempt int) time.Duration
}

// ExponentialBackoff implements exponential backoff
type ExponentialBackoff struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	Multiplier      float64
}

func (b *ExponentialBackoff) Duration(attempt int) time.Duration {
	if attempt == 0 {
		return 0
	}
	delay := float64(b.InitialInterval) * math.Pow(b.Multiplier, float64(attempt-1))
	if delay > float64(b.MaxInterval) {
		return b.MaxInterval
	}
	return time.Duration(delay)
}

func shouldRetryStatus(statusCode int) bool {
	return statusCode == http.StatusTooManyRequests ||
		statusCode == http.StatusRequestTimeout ||
		(statusCode >= 500 && statusCode < 600)
}

// isRetryable reports whether a failed attempt may succeed on a later try.
func isRetryable(err error, resp *http.Response) bool {
	if err != nil {
		return errors.Is(err, syscall.ECONNREFUSED) ||
			errors.Is(err, syscall.ECONNRESET) ||
			errors.Is(err, syscall.EPIPE)
	}
	return shouldRetryStatus(resp.StatusCode)
}

// cloneRequest copies req with a rewindable body.
func cloneRequest(req *http.Request) (*http.Request, error) {
	r := req.Clone(req.Context())
	if req.Body == nil || req.Body == http.NoBody {
		return r, nil
	}
	if req.GetBody != nil {
		body, err := req.GetBody()
		if err != nil {
			return nil, fmt.Errorf("rewind request body: %w", err)
		}
		r.Body = body
		return r, nil
	}
	data, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, fmt.Errorf("buffer request body: %w", err)
	}
	req.Body.Close()
	req.Body = io.NopCloser(bytes.NewReader(data))
	r.Body = io.NopCloser(bytes.NewReader(data))
	return r, nil
}

// retryableRoundTripper retries JSON-RPC posts. Every call this package
// issues is idempotent: reads, or writes of absolute values.
type retryableRoundTripper struct {
	underlying http.RoundTripper
	maxRetries int
	backoff    BackoffStrategy
}

// NewRetryableTransport wraps base (http.DefaultTransport when nil) with retry logic.
func NewRetryableTransport(base http.RoundTripper, maxRetries int) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	return &retryableRoundTripper{
		underlying: base,
		maxRetries: maxRetries,
		backoff:    &defaultBackoff,
	}
}

func (t *retryableRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	var lastErr error

	for attempt := 0; attempt <= t.maxRetries; attempt++ {
		if attempt > 0 {
			wait := t.backoff.Duration(attempt)
			logger.Warn(ctx, "[KODI RETRY] Attempt %d/%d for %s (waiting %v)",
				attempt, t.maxRetries, req.URL.Host, wait)

			select {
			case <-time.After(wait):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		reqClone, err := cloneRequest(req)
		if err != nil {
			return nil, err
		}
		resp, err := t.underlying.RoundTrip(reqClone)

		if err == nil && !shouldRetryStatus(resp.StatusCode) {
			return resp, nil
		}

		if !isRetryable(err, resp) || attempt == t.maxRetries {
			return resp, err
		}

		if resp != nil {
			resp.Body.Close()
		}
		if err != nil {
			lastErr = err
		} else {
			lastErr = fmt.Errorf("kodi returned %s", resp.Status)
		}
	}

	return nil, fmt.Errorf("max retries (%d) exhausted: %w", t.maxRetries, lastErr)
}
