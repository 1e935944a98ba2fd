// Package fs provides file-based storage for ad images.
package fs

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strconv"

	"github.com/fwojciec/wheelads"
)

// DefaultImageExt is used when an image URL has no usable extension.
const DefaultImageExt = ".jpg"

// ImageExt returns the extension of the URL path, including the dot, or
// DefaultImageExt when it is missing or longer than five characters.
func ImageExt(rawURL string) string {
	p := rawURL
	if u, err := url.Parse(rawURL); err == nil {
		p = u.Path
	}
	ext := path.Ext(p)
	if len(ext) < 2 || len(ext) > 5 {
		return DefaultImageExt
	}
	return ext
}

// Ensure ImageStore implements wheelads.ImageStore at compile time.
var _ wheelads.ImageStore = (*ImageStore)(nil)

// ImageStore saves ad images below a root directory as
// <root>/<adID>/<n><ext>, numbering images by discovery order from 1.
type ImageStore struct {
	root    string
	fetcher wheelads.ImageFetcher
	limiter wheelads.RateLimiter
}

// Option configures an ImageStore.
type Option func(*ImageStore)

// WithRateLimiter makes the store wait on the image host before every
// download.
func WithRateLimiter(l wheelads.RateLimiter) Option {
	return func(s *ImageStore) {
		s.limiter = l
	}
}

// NewImageStore creates a new ImageStore.
func NewImageStore(root string, fetcher wheelads.ImageFetcher, opts ...Option) *ImageStore {
	s := &ImageStore{root: root, fetcher: fetcher}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Root returns the directory images are stored under.
func (s *ImageStore) Root() string {
	return s.root
}

// SaveImages downloads urls into the directory of adID, replacing whatever
// an earlier run left there. An image that fails to download or write is
// skipped and its number is not reused. The returned paths use forward
// slashes and are relative to the root.
func (s *ImageStore) SaveImages(ctx context.Context, adID string, urls []string) ([]string, error) {
	if adID == "" || adID == "." || adID == ".." || filepath.Base(adID) != adID {
		return nil, wheelads.Errorf(wheelads.EINVALID, "invalid ad ID %q", adID)
	}

	dir := filepath.Join(s.root, adID)
	if err := os.RemoveAll(dir); err != nil {
		return nil, fmt.Errorf("clearing ad directory: %w", err)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating ad directory: %w", err)
	}

	var paths []string
	for i, u := range urls {
		if err := ctx.Err(); err != nil {
			return paths, err
		}

		if s.limiter != nil {
			if err := s.limiter.Wait(ctx, host(u)); err != nil {
				return paths, err
			}
		}

		data, err := s.fetcher.FetchImage(ctx, u)
		if err != nil {
			continue
		}

		name := strconv.Itoa(i+1) + ImageExt(u)
		if err := os.WriteFile(filepath.Join(dir, name), data, 0644); err != nil {
			continue
		}
		paths = append(paths, path.Join(adID, name))
	}
	return paths, nil
}

// host returns the host of rawURL, or rawURL itself when it does not parse.
func host(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return rawURL
	}
	return u.Host
}
