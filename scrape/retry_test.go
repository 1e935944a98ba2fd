package scrape_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fwojciec/wheelads"
	"github.com/fwojciec/wheelads/scrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var noDelays = []time.Duration{0, 0, 0}

func TestFetchWithRetry(t *testing.T) {
	t.Parallel()

	t.Run("returns first successful response", func(t *testing.T) {
		t.Parallel()

		calls := 0
		fetch := func(_ context.Context, _ string) (string, error) {
			calls++
			return "<html></html>", nil
		}

		html, err := scrape.FetchWithRetry(context.Background(), "https://example.com", fetch, nil, noDelays)

		require.NoError(t, err)
		assert.Equal(t, "<html></html>", html)
		assert.Equal(t, 1, calls)
	})

	t.Run("retries transient failures", func(t *testing.T) {
		t.Parallel()

		calls := 0
		var logged []string
		fetch := func(_ context.Context, _ string) (string, error) {
			calls++
			if calls < 3 {
				return "", wheelads.Errorf(wheelads.EUNAVAILABLE, "HTTP 503")
			}
			return "ok", nil
		}
		logger := func(format string, args ...any) { logged = append(logged, format) }

		html, err := scrape.FetchWithRetry(context.Background(), "https://example.com", fetch, logger, noDelays)

		require.NoError(t, err)
		assert.Equal(t, "ok", html)
		assert.Equal(t, 3, calls)
		assert.Len(t, logged, 2)
	})

	t.Run("returns last error after all attempts", func(t *testing.T) {
		t.Parallel()

		calls := 0
		fetch := func(_ context.Context, _ string) (string, error) {
			calls++
			return "", errors.New("connection reset")
		}

		_, err := scrape.FetchWithRetry(context.Background(), "https://example.com", fetch, nil, noDelays)

		require.EqualError(t, err, "connection reset")
		assert.Equal(t, 4, calls)
	})

	t.Run("does not retry missing pages", func(t *testing.T) {
		t.Parallel()

		calls := 0
		fetch := func(_ context.Context, _ string) (string, error) {
			calls++
			return "", wheelads.Errorf(wheelads.ENOTFOUND, "HTTP 404")
		}

		_, err := scrape.FetchWithRetry(context.Background(), "https://example.com", fetch, nil, noDelays)

		assert.Equal(t, wheelads.ENOTFOUND, wheelads.ErrorCode(err))
		assert.Equal(t, 1, calls)
	})

	t.Run("stops when context is canceled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		fetch := func(_ context.Context, _ string) (string, error) {
			cancel()
			return "", errors.New("timeout")
		}

		_, err := scrape.FetchWithRetry(ctx, "https://example.com", fetch, nil, []time.Duration{time.Hour})

		assert.ErrorIs(t, err, context.Canceled)
	})
}
