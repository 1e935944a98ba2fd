// Package scrape runs ad pages through fetching, parsing, image download
// and field extraction, one listing per URL.
package scrape

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/fwojciec/wheelads"
	"golang.org/x/sync/errgroup"
)

// Scraper turns ad URLs into listings.
type Scraper struct {
	Fetcher     wheelads.Fetcher
	Parser      wheelads.PageParser
	Metadata    wheelads.MetadataReader // optional
	Images      wheelads.ImageStore     // optional; images are not downloaded when nil
	RateLimiter wheelads.RateLimiter    // optional
	Concurrency int                     // items processed in parallel; <= 1 is sequential
	RetryDelays []time.Duration         // nil means DefaultRetryDelays
	Log         LogFunc                 // optional, receives retry notices
}

// Result partitions a batch into listings and failures. Both keep the input
// order of their URLs.
type Result struct {
	Listings []*wheelads.Listing
	Failures []Failure
}

// Failure records why a URL produced no listing.
type Failure struct {
	URL string
	Err error
}

// ProgressEvent reports progress during a batch.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting batch progress.
type ProgressFunc func(event ProgressEvent)

type item struct {
	position int
	url      string
}

type itemResult struct {
	listing *wheelads.Listing
	err     error
}

// ScrapeAll scrapes every non-blank URL. A failing URL is recorded in
// Result.Failures and never stops the batch; only cancellation of ctx does.
// The progress callback, if provided, is never called concurrently.
func (s *Scraper) ScrapeAll(ctx context.Context, urls []string, progress ProgressFunc) (*Result, error) {
	var items []item
	for _, u := range urls {
		if u = strings.TrimSpace(u); u != "" {
			items = append(items, item{position: len(items), url: u})
		}
	}
	total := len(items)

	var mu sync.Mutex
	completed := 0
	report := func(e ProgressEvent) {
		if progress == nil {
			return
		}
		mu.Lock()
		defer mu.Unlock()
		if e.Type == ProgressCompleted || e.Type == ProgressFailed {
			completed++
			e.Completed = completed
		}
		e.Total = total
		progress(e)
	}

	report(ProgressEvent{Type: ProgressStarted})

	results := make([]itemResult, total)
	process := func(it item) {
		l, err := s.scrapeOne(ctx, it)
		results[it.position] = itemResult{listing: l, err: err}
		if err != nil {
			report(ProgressEvent{Type: ProgressFailed, URL: it.url, Error: err})
			return
		}
		report(ProgressEvent{Type: ProgressCompleted, URL: it.url})
	}

	if s.Concurrency <= 1 {
		for _, it := range items {
			if ctx.Err() != nil {
				break
			}
			process(it)
		}
	} else {
		var g errgroup.Group
		g.SetLimit(s.Concurrency)
		for _, it := range items {
			if ctx.Err() != nil {
				break
			}
			g.Go(func() error {
				process(it)
				return nil
			})
		}
		_ = g.Wait()
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &Result{}
	for i, r := range results {
		if r.err != nil {
			result.Failures = append(result.Failures, Failure{URL: items[i].url, Err: r.err})
			continue
		}
		result.Listings = append(result.Listings, r.listing)
	}

	report(ProgressEvent{Type: ProgressFinished, Completed: total})

	return result, nil
}

// scrapeOne fetches a single ad page, then its images, and assembles the listing.
func (s *Scraper) scrapeOne(ctx context.Context, it item) (*wheelads.Listing, error) {
	u, err := url.Parse(it.url)
	if err != nil || u.Host == "" {
		return nil, wheelads.Errorf(wheelads.EINVALID, "invalid ad URL %q", it.url)
	}

	if s.RateLimiter != nil {
		if err := s.RateLimiter.Wait(ctx, u.Host); err != nil {
			return nil, err
		}
	}

	delays := s.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	html, err := FetchWithRetry(ctx, it.url, s.Fetcher.Fetch, s.Log, delays)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}

	page, err := s.Parser.Parse(html, it.url)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}

	var md *wheelads.Metadata
	if s.Metadata != nil {
		md = s.Metadata.Read(page.StructuredData)
	}

	var images []string
	if s.Images != nil && len(page.Images) > 0 {
		images, err = s.Images.SaveImages(ctx, adID(it), page.Images)
		if err != nil {
			return nil, fmt.Errorf("images: %w", err)
		}
	}

	return wheelads.Assemble(wheelads.AssembleInput{
		URL:         it.url,
		Title:       page.Title,
		Description: page.Description,
		PriceText:   page.PriceText,
		Metadata:    md,
		Images:      images,
	}), nil
}

// adID returns the identifier from the URL or, failing that, the 1-based
// position of the item in the batch.
func adID(it item) string {
	if id, ok := wheelads.AdID(it.url); ok {
		return id
	}
	return strconv.Itoa(it.position + 1)
}
