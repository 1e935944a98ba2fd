package mock

import (
	"context"

	"github.com/fwojciec/wheelads"
)

var _ wheelads.ImageStore = (*ImageStore)(nil)

// ImageStore is a mock implementation of wheelads.ImageStore.
type ImageStore struct {
	SaveImagesFn func(ctx context.Context, adID string, urls []string) ([]string, error)
}

func (s *ImageStore) SaveImages(ctx context.Context, adID string, urls []string) ([]string, error) {
	return s.SaveImagesFn(ctx, adID, urls)
}
