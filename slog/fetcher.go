// Package slog provides logging decorators for wheelads interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/wheelads"
)

var (
	_ wheelads.Fetcher      = (*LoggingFetcher)(nil)
	_ wheelads.ImageFetcher = (*LoggingImageFetcher)(nil)
)

// LoggingFetcher wraps a Fetcher with debug logging.
type LoggingFetcher struct {
	next   wheelads.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next wheelads.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch logs the URL being fetched and delegates to the wrapped fetcher.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (html string, err error) {
	defer func(begin time.Time) {
		f.logger.Info("fetch",
			"url", url,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}

// LoggingImageFetcher wraps an ImageFetcher with debug logging.
type LoggingImageFetcher struct {
	next   wheelads.ImageFetcher
	logger *slog.Logger
}

// NewLoggingImageFetcher creates a new LoggingImageFetcher.
func NewLoggingImageFetcher(next wheelads.ImageFetcher, logger *slog.Logger) *LoggingImageFetcher {
	return &LoggingImageFetcher{next: next, logger: logger}
}

// FetchImage delegates to the wrapped fetcher and logs the download.
func (f *LoggingImageFetcher) FetchImage(ctx context.Context, url string) (data []byte, err error) {
	defer func(begin time.Time) {
		f.logger.Debug("fetch image",
			"url", url,
			"bytes", len(data),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.FetchImage(ctx, url)
}
