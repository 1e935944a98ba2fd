package wheelads

import "context"

// Fetcher retrieves ad pages as HTML.
// Implementations may use browser automation to handle JavaScript-rendered content.
type Fetcher interface {
	// Fetch retrieves the URL and returns its HTML.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}

// ImageFetcher downloads image files.
type ImageFetcher interface {
	FetchImage(ctx context.Context, url string) ([]byte, error)
}

// ImageStore downloads the images of an ad into local storage.
type ImageStore interface {
	// SaveImages downloads urls in order into a directory owned by adID and
	// returns the stored paths relative to the store root. Images that fail
	// to download are skipped. An error is returned only when the ad
	// directory itself cannot be created.
	SaveImages(ctx context.Context, adID string, urls []string) ([]string, error)
}

// RateLimiter provides per-host rate limiting.
type RateLimiter interface {
	// Wait blocks until the rate limit allows a request to the host.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, host string) error
}
