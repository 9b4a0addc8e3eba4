package crawl

import (
	"context"
	"time"

	"github.com/fwojciec/pinnedref"
)

// RetryFunc is called before a failed fetch is retried. Attempt counts from 2.
type RetryFunc func(url string, attempt int, err error)

// DefaultRetryDelays returns the backoff delays for fetch retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// FetchWithRetry fetches url, retrying after each of delays on failure, so at
// most len(delays)+1 attempts are made. Pages that are gone (ENOTFOUND) or
// URLs that cannot be requested (EINVALID) are not retried.
func FetchWithRetry(ctx context.Context, fetcher pinnedref.Fetcher, url string, delays []time.Duration, onRetry RetryFunc) (string, error) {
	var lastErr error
	for attempt := 0; attempt <= len(delays); attempt++ {
		html, err := fetcher.Fetch(ctx, url)
		if err == nil {
			return html, nil
		}
		lastErr = err

		if attempt == len(delays) || !retryable(err) {
			break
		}
		if ctx.Err() != nil {
			return "", ctx.Err()
		}

		if onRetry != nil {
			onRetry(url, attempt+2, err)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return "", lastErr
}

func retryable(err error) bool {
	switch pinnedref.ErrorCode(err) {
	case pinnedref.ENOTFOUND, pinnedref.EINVALID:
		return false
	}
	return true
}
