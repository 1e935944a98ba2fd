package mock

import (
	"context"

	"github.com/fwojciec/wheelads"
)

var (
	_ wheelads.Fetcher      = (*Fetcher)(nil)
	_ wheelads.ImageFetcher = (*ImageFetcher)(nil)
	_ wheelads.RateLimiter  = (*RateLimiter)(nil)
)

// Fetcher is a mock implementation of wheelads.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}

// ImageFetcher is a mock implementation of wheelads.ImageFetcher.
type ImageFetcher struct {
	FetchImageFn func(ctx context.Context, url string) ([]byte, error)
}

func (f *ImageFetcher) FetchImage(ctx context.Context, url string) ([]byte, error) {
	return f.FetchImageFn(ctx, url)
}

// RateLimiter is a mock implementation of wheelads.RateLimiter.
type RateLimiter struct {
	WaitFn func(ctx context.Context, host string) error
}

func (l *RateLimiter) Wait(ctx context.Context, host string) error {
	return l.WaitFn(ctx, host)
}
