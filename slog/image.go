package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/wheelads"
)

// Ensure LoggingImageStore implements wheelads.ImageStore.
var _ wheelads.ImageStore = (*LoggingImageStore)(nil)

// LoggingImageStore wraps an ImageStore with logging.
type LoggingImageStore struct {
	next   wheelads.ImageStore
	logger *slog.Logger
}

// NewLoggingImageStore creates a new LoggingImageStore.
func NewLoggingImageStore(next wheelads.ImageStore, logger *slog.Logger) *LoggingImageStore {
	return &LoggingImageStore{next: next, logger: logger}
}

// SaveImages delegates to the wrapped store and logs how many of the
// discovered images were stored.
func (s *LoggingImageStore) SaveImages(ctx context.Context, adID string, urls []string) (paths []string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("save images",
			"ad", adID,
			"found", len(urls),
			"saved", len(paths),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SaveImages(ctx, adID, urls)
}
