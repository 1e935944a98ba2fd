package mock

import (
	"context"

	"github.com/fwojciec/wheelads"
)

var _ wheelads.ListingService = (*ListingService)(nil)

// ListingService is a mock implementation of wheelads.ListingService.
type ListingService struct {
	CreateRunFn    func(ctx context.Context, listings []*wheelads.Listing) (*wheelads.Run, error)
	FindRunByIDFn  func(ctx context.Context, id string) (*wheelads.Run, error)
	FindRunsFn     func(ctx context.Context, filter wheelads.RunFilter) ([]*wheelads.Run, error)
	FindListingsFn func(ctx context.Context, filter wheelads.ListingFilter) ([]*wheelads.Listing, error)
	DeleteRunFn    func(ctx context.Context, id string) error
}

func (s *ListingService) CreateRun(ctx context.Context, listings []*wheelads.Listing) (*wheelads.Run, error) {
	return s.CreateRunFn(ctx, listings)
}

func (s *ListingService) FindRunByID(ctx context.Context, id string) (*wheelads.Run, error) {
	return s.FindRunByIDFn(ctx, id)
}

func (s *ListingService) FindRuns(ctx context.Context, filter wheelads.RunFilter) ([]*wheelads.Run, error) {
	return s.FindRunsFn(ctx, filter)
}

func (s *ListingService) FindListings(ctx context.Context, filter wheelads.ListingFilter) ([]*wheelads.Listing, error) {
	return s.FindListingsFn(ctx, filter)
}

func (s *ListingService) DeleteRun(ctx context.Context, id string) error {
	return s.DeleteRunFn(ctx, id)
}
