package httpclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/hsqStephenZhang/emoji-cheat-sheet/pkg/interfaces"
)

const (
	maxFetchRetries   = 3
	initialRetryDelay = 2 * time.Second
	maxRetryDelay     = 30 * time.Second
)

// Fetcher retrieves upstream bodies with a shared rate limit and retries
// on transient failures. Both upstream sources go through one Fetcher so
// the rate limit covers the whole run.
type Fetcher struct {
	clientFactory interfaces.HTTPClientFactory
	limiter       *rate.Limiter
	userAgent     string
}

// NewFetcher creates a Fetcher. requestsPerSecond <= 0 disables rate
// limiting. userAgent must be non-empty; the GitHub emoji endpoint
// rejects anonymous requests.
func NewFetcher(clientFactory interfaces.HTTPClientFactory, requestsPerSecond float64, userAgent string) *Fetcher {
	limiter := rate.NewLimiter(rate.Inf, 1)
	if requestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), 1)
	}
	return &Fetcher{clientFactory: clientFactory, limiter: limiter, userAgent: userAgent}
}

// Get fetches url and returns the full response body. 5xx responses and
// transport errors are retried with capped exponential backoff; 4xx is
// terminal.
func (f *Fetcher) Get(ctx context.Context, url string) ([]byte, error) {
	var lastErr error
	currentDelay := initialRetryDelay

	for attempt := 0; attempt <= maxFetchRetries; attempt++ {
		if attempt > 0 {
			log.Warn().Str("url", url).Int("attempt", attempt).Dur("delay", currentDelay).Msg("Retrying fetch after error")
			select {
			case <-time.After(currentDelay):
				currentDelay *= 2
				if currentDelay > maxRetryDelay {
					currentDelay = maxRetryDelay
				}
			case <-ctx.Done():
				return nil, fmt.Errorf("fetch context cancelled during retry backoff for %s: %w", url, ctx.Err())
			}
		}

		if err := f.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter wait for %s: %w", url, err)
		}

		httpClient, errClient := f.clientFactory.GetClient()
		if errClient != nil {
			return nil, fmt.Errorf("failed to get HTTP client for %s: %w", url, errClient)
		}

		req, errReq := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if errReq != nil {
			return nil, fmt.Errorf("failed to create request for %s: %w", url, errReq)
		}
		req.Header.Set("User-Agent", f.userAgent)

		resp, errDo := httpClient.Do(req)
		if errDo != nil {
			lastErr = fmt.Errorf("attempt %d: failed to fetch %s: %w", attempt, url, errDo)
			if errors.Is(errDo, context.Canceled) || errors.Is(errDo, context.DeadlineExceeded) {
				return nil, lastErr
			}
			continue
		}

		if resp.StatusCode != http.StatusOK {
			bodyBytes, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
			resp.Body.Close()
			lastErr = fmt.Errorf("attempt %d: failed to fetch %s: status %d, body: %s", attempt, url, resp.StatusCode, string(bodyBytes))
			if resp.StatusCode >= 400 && resp.StatusCode < 500 {
				return nil, lastErr
			}
			continue
		}

		body, errRead := io.ReadAll(resp.Body)
		resp.Body.Close()
		if errRead != nil {
			lastErr = fmt.Errorf("attempt %d: failed to read body of %s: %w", attempt, url, errRead)
			continue
		}

		log.Debug().Str("url", url).Int("bytes", len(body)).Msg("Fetched upstream source")
		return body, nil
	}
	return nil, fmt.Errorf("all %d fetch attempts failed for %s: last error: %w", maxFetchRetries+1, url, lastErr)
}
