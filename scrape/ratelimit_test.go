package scrape_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/wheelads"
	"github.com/fwojciec/wheelads/scrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHostLimiter(t *testing.T) {
	t.Parallel()

	t.Run("implements wheelads.RateLimiter interface", func(t *testing.T) {
		t.Parallel()
		var _ wheelads.RateLimiter = scrape.NewHostLimiter(1)
	})

	t.Run("allows immediate request when under limit", func(t *testing.T) {
		t.Parallel()

		limiter := scrape.NewHostLimiter(10)

		start := time.Now()
		err := limiter.Wait(context.Background(), "www.kleinanzeigen.de")
		elapsed := time.Since(start)

		require.NoError(t, err)
		assert.Less(t, elapsed, 50*time.Millisecond, "first request should be immediate")
	})

	t.Run("rate limits requests to same host", func(t *testing.T) {
		t.Parallel()

		limiter := scrape.NewHostLimiter(10) // 100ms between requests

		require.NoError(t, limiter.Wait(context.Background(), "www.kleinanzeigen.de"))

		start := time.Now()
		err := limiter.Wait(context.Background(), "www.kleinanzeigen.de")
		elapsed := time.Since(start)

		require.NoError(t, err)
		assert.GreaterOrEqual(t, elapsed, 80*time.Millisecond, "should wait for rate limit")
	})

	t.Run("different hosts have independent limits", func(t *testing.T) {
		t.Parallel()

		limiter := scrape.NewHostLimiter(10)

		require.NoError(t, limiter.Wait(context.Background(), "www.kleinanzeigen.de"))

		start := time.Now()
		err := limiter.Wait(context.Background(), "img.kleinanzeigen.de")
		elapsed := time.Since(start)

		require.NoError(t, err)
		assert.Less(t, elapsed, 50*time.Millisecond, "different host should not wait")
	})

	t.Run("returns error when context is canceled", func(t *testing.T) {
		t.Parallel()

		limiter := scrape.NewHostLimiter(0.1) // 10s between requests

		require.NoError(t, limiter.Wait(context.Background(), "www.kleinanzeigen.de"))

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := limiter.Wait(ctx, "www.kleinanzeigen.de")

		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("does not limit when rate is zero", func(t *testing.T) {
		t.Parallel()

		limiter := scrape.NewHostLimiter(0)

		start := time.Now()
		for range 5 {
			require.NoError(t, limiter.Wait(context.Background(), "www.kleinanzeigen.de"))
		}

		assert.Less(t, time.Since(start), 50*time.Millisecond)
	})
}
