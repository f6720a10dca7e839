package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/semaphore"

	"seo-audit/pkg/config"
	"seo-audit/pkg/utils"
)

// Fetcher makes HTTP requests with configured retry logic using an underlying http.Client
type Fetcher struct {
	client   *http.Client
	limiter  *HostLimiter
	inflight *semaphore.Weighted // caps concurrent outbound requests globally
	cfg      *config.AppConfig
	log      *logrus.Logger
}

// PageResponse is the result of a successful page fetch
type PageResponse struct {
	Body         []byte
	StatusCode   int
	ContentType  string
	FinalURL     string // URL after redirects
	ResponseTime time.Duration
}

// NewFetcher creates a new Fetcher instance. MaxRequests > 0 bounds the
// number of in-flight requests across all callers
func NewFetcher(client *http.Client, limiter *HostLimiter, cfg *config.AppConfig, log *logrus.Logger) *Fetcher {
	var inflight *semaphore.Weighted
	if cfg.MaxRequests > 0 {
		inflight = semaphore.NewWeighted(int64(cfg.MaxRequests))
	}
	return &Fetcher{
		client:   client,
		limiter:  limiter,
		inflight: inflight,
		cfg:      cfg,
		log:      log,
	}
}

// do issues one attempt while holding a global request slot
func (f *Fetcher) do(ctx context.Context, req *http.Request) (*http.Response, error) {
	if f.inflight != nil {
		if err := f.inflight.Acquire(ctx, 1); err != nil {
			return nil, err
		}
		defer f.inflight.Release(1)
	}
	return f.client.Do(req.WithContext(ctx))
}

// FetchWithRetry performs an HTTP request with exponential backoff and jitter
// for transient network errors and retryable status codes (5xx, 429)
// On success the caller must close the response body
func (f *Fetcher) FetchWithRetry(ctx context.Context, req *http.Request) (*http.Response, error) {
	var lastErr error
	var currentResp *http.Response

	reqLog := f.log.WithField("url", req.URL.String())

	maxRetries := f.cfg.MaxRetries
	initialDelay := f.cfg.InitialRetryDelay
	maxDelay := f.cfg.MaxRetryDelay

	for attempt := 0; attempt <= maxRetries; attempt++ {
		// Check cancellation before attempting or sleeping
		select {
		case <-ctx.Done():
			if lastErr != nil {
				return nil, fmt.Errorf("context cancelled (%v) during retry after error: %w", ctx.Err(), lastErr)
			}
			return nil, fmt.Errorf("context cancelled before first attempt: %w", ctx.Err())
		default:
		}

		// Backoff applies only before retry attempts
		if attempt > 0 {
			backoff := float64(initialDelay) * math.Pow(2, float64(attempt-1))
			delay := time.Duration(backoff)
			if delay <= 0 || delay > maxDelay {
				delay = maxDelay
			}

			// Jitter: +/- 10% to avoid synchronized retries
			var jitter time.Duration
			if delay > 0 {
				jitter = time.Duration(rand.Int63n(int64(delay)/5)) - (delay / 10)
			}
			finalDelay := delay + jitter
			if finalDelay < 0 {
				finalDelay = 0
			}

			reqLog.WithFields(logrus.Fields{"attempt": attempt, "max_retries": maxRetries, "delay": finalDelay}).Warn("Retrying request...")

			select {
			case <-time.After(finalDelay):
			case <-ctx.Done():
				if lastErr != nil {
					return nil, fmt.Errorf("context cancelled (%v) during retry delay after error: %w", ctx.Err(), lastErr)
				}
				return nil, fmt.Errorf("context cancelled during retry delay: %w", ctx.Err())
			}
		}

		// Per-host politeness delay before each attempt
		if f.limiter != nil {
			if err := f.limiter.Wait(ctx, req.URL.Hostname()); err != nil {
				if lastErr != nil {
					return nil, fmt.Errorf("context cancelled (%v) waiting for rate limit after error: %w", ctx.Err(), lastErr)
				}
				return nil, err
			}
		}

		currentResp, lastErr = f.do(ctx, req)

		// Network-level errors (DNS, TCP, TLS)
		if lastErr != nil {
			if errors.Is(lastErr, context.Canceled) || errors.Is(lastErr, context.DeadlineExceeded) {
				if currentResp != nil {
					drainAndClose(currentResp)
				}
				return nil, lastErr // Context errors are not retried
			}
			reqLog.WithField("attempt", attempt).Errorf("Network error: %v", lastErr)
			if currentResp != nil {
				drainAndClose(currentResp)
			}
			continue
		}

		statusCode := currentResp.StatusCode
		resLog := reqLog.WithFields(logrus.Fields{"status_code": statusCode, "attempt": attempt})

		switch {
		case statusCode >= 200 && statusCode < 300:
			resLog.Debug("Successfully fetched")
			return currentResp, nil

		case statusCode >= 500:
			resLog.Warn("Server error, retrying...")
			lastErr = fmt.Errorf("%w: status %d %s", utils.ErrServerHTTPError, statusCode, currentResp.Status)
			drainAndClose(currentResp)
			continue

		case statusCode == http.StatusTooManyRequests:
			resLog.Warn("Received 429 Too Many Requests, retrying...")
			lastErr = fmt.Errorf("%w: status %d %s", utils.ErrClientHTTPError, statusCode, currentResp.Status)
			drainAndClose(currentResp)
			continue

		case statusCode >= 400 && statusCode < 500:
			// Not retryable; caller may still inspect the response and must close it
			resLog.Warn("Client error (4xx), not retrying")
			return currentResp, fmt.Errorf("%w: status %d %s", utils.ErrClientHTTPError, statusCode, currentResp.Status)

		default:
			resLog.Warnf("Non-retryable status: %d", statusCode)
			return currentResp, fmt.Errorf("%w: status %d %s", utils.ErrOtherHTTPError, statusCode, currentResp.Status)
		}
	}

	reqLog.Errorf("All %d fetch attempts failed. Last error: %v", maxRetries+1, lastErr)
	if currentResp != nil {
		drainAndClose(currentResp)
	}
	if lastErr != nil {
		if errors.Is(lastErr, context.Canceled) || errors.Is(lastErr, context.DeadlineExceeded) {
			return nil, lastErr
		}
		return nil, fmt.Errorf("%w: %w", utils.ErrRetryFailed, lastErr)
	}
	return nil, utils.ErrRetryFailed
}

// FetchPage GETs a URL with the configured User-Agent and returns the body
// (capped at MaxBodyBytes), final URL, status, and elapsed time
// A 4xx response is returned as a PageResponse alongside the error so the
// caller can record the status code
func (f *Fetcher) FetchPage(ctx context.Context, rawURL string) (*PageResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrRequestCreation, err)
	}
	req.Header.Set("User-Agent", f.cfg.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	start := time.Now()
	resp, fetchErr := f.FetchWithRetry(ctx, req)
	elapsed := time.Since(start)

	if resp == nil {
		return nil, fetchErr
	}
	defer resp.Body.Close()

	page := &PageResponse{
		StatusCode:   resp.StatusCode,
		ContentType:  resp.Header.Get("Content-Type"),
		FinalURL:     resp.Request.URL.String(),
		ResponseTime: elapsed,
	}

	body, readErr := io.ReadAll(io.LimitReader(resp.Body, f.cfg.MaxBodyBytes))
	if readErr != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrResponseBodyRead, readErr)
	}
	page.Body = body

	if fetchErr != nil {
		return page, fetchErr
	}
	return page, nil
}

func drainAndClose(resp *http.Response) {
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
}
