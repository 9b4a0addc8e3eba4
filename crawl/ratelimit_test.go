package crawl_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/fwojciec/pinnedref"
	"github.com/fwojciec/pinnedref/crawl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ pinnedref.DomainLimiter = (*crawl.DomainLimiter)(nil)

// timedWait returns how long a single Wait on host blocked.
func timedWait(t *testing.T, l *crawl.DomainLimiter, host string) time.Duration {
	t.Helper()
	start := time.Now()
	require.NoError(t, l.Wait(context.Background(), host))
	return time.Since(start)
}

func TestDomainLimiter_Wait(t *testing.T) {
	t.Parallel()

	t.Run("first request to a site is immediate", func(t *testing.T) {
		t.Parallel()

		l := crawl.NewDomainLimiter(10)

		assert.Less(t, timedWait(t, l, "essays.example"), 50*time.Millisecond)
	})

	t.Run("second request to the same site waits", func(t *testing.T) {
		t.Parallel()

		l := crawl.NewDomainLimiter(10)
		timedWait(t, l, "essays.example")

		assert.GreaterOrEqual(t, timedWait(t, l, "essays.example"), 80*time.Millisecond)
	})

	t.Run("sites are limited independently", func(t *testing.T) {
		t.Parallel()

		l := crawl.NewDomainLimiter(10)
		timedWait(t, l, "essays.example")

		assert.Less(t, timedWait(t, l, "notes.example"), 50*time.Millisecond)
	})

	t.Run("www prefix and case share a bucket", func(t *testing.T) {
		t.Parallel()

		l := crawl.NewDomainLimiter(10)
		timedWait(t, l, "www.Essays.example")

		assert.GreaterOrEqual(t, timedWait(t, l, "essays.example"), 80*time.Millisecond)
	})

	t.Run("burst admits several requests at once", func(t *testing.T) {
		t.Parallel()

		l := crawl.NewDomainLimiterWithBurst(1, 3)

		var total time.Duration
		for range 3 {
			total += timedWait(t, l, "essays.example")
		}
		assert.Less(t, total, 50*time.Millisecond)
	})

	t.Run("canceled wait returns error", func(t *testing.T) {
		t.Parallel()

		l := crawl.NewDomainLimiter(1)
		timedWait(t, l, "essays.example")

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		assert.Error(t, l.Wait(ctx, "essays.example"))
	})

	t.Run("safe for concurrent callers", func(t *testing.T) {
		t.Parallel()

		l := crawl.NewDomainLimiter(200)
		hosts := []string{"a.example", "b.example", "www.a.example", "B.example"}

		var wg sync.WaitGroup
		errs := make([]error, 8)
		for i := range errs {
			wg.Add(1)
			go func() {
				defer wg.Done()
				errs[i] = l.Wait(context.Background(), hosts[i%len(hosts)])
			}()
		}
		wg.Wait()

		for _, err := range errs {
			assert.NoError(t, err)
		}
	})
}
