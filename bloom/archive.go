// Package bloom provides a probabilistic set of already archived ad URLs.
package bloom

import (
	"context"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/fwojciec/wheelads"
)

const (
	// loadPageSize is the number of listings read per archive query.
	loadPageSize = 500

	// minCapacity keeps the filter usable for small archives.
	minCapacity = 1000

	defaultFPRate = 0.001
)

// ArchivedURLs answers whether an ad URL already exists in any archived run.
// The filter rejects most new URLs without a query; possible hits are
// confirmed against the archive, so Contains never reports a false positive.
type ArchivedURLs struct {
	filter   *bloom.BloomFilter
	listings wheelads.ListingService
}

// LoadArchivedURLs reads every archived listing URL into a new filter.
func LoadArchivedURLs(ctx context.Context, listings wheelads.ListingService) (*ArchivedURLs, error) {
	var urls []string
	for offset := 0; ; offset += loadPageSize {
		page, err := listings.FindListings(ctx, wheelads.ListingFilter{Offset: offset, Limit: loadPageSize})
		if err != nil {
			return nil, err
		}
		for _, l := range page {
			urls = append(urls, l.URL)
		}
		if len(page) < loadPageSize {
			break
		}
	}

	n := uint(max(len(urls), minCapacity))
	f := bloom.NewWithEstimates(n, defaultFPRate)
	for _, u := range urls {
		f.AddString(u)
	}
	return &ArchivedURLs{filter: f, listings: listings}, nil
}

// Len returns the approximate number of distinct archived URLs.
func (a *ArchivedURLs) Len() uint {
	return uint(a.filter.ApproximatedSize())
}

// Contains reports whether url was archived before.
func (a *ArchivedURLs) Contains(ctx context.Context, url string) (bool, error) {
	if !a.filter.TestString(url) {
		return false, nil
	}
	found, err := a.listings.FindListings(ctx, wheelads.ListingFilter{URL: &url, Limit: 1})
	if err != nil {
		return false, err
	}
	return len(found) > 0, nil
}

// Exclude returns the URLs of urls that were not archived before, in order.
func (a *ArchivedURLs) Exclude(ctx context.Context, urls []string) ([]string, error) {
	var fresh []string
	for _, u := range urls {
		seen, err := a.Contains(ctx, u)
		if err != nil {
			return nil, err
		}
		if !seen {
			fresh = append(fresh, u)
		}
	}
	return fresh, nil
}
