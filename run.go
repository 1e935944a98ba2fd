package wheelads

import (
	"context"
	"time"
)

// Run is one archived scrape batch.
type Run struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	Listings  int       `json:"listings"`
}

// ListingService archives scraped listings so they can be listed and
// re-exported later.
type ListingService interface {
	// CreateRun stores listings as a new run, in order.
	CreateRun(ctx context.Context, listings []*Listing) (*Run, error)

	// FindRunByID retrieves a run by ID.
	// Returns ENOTFOUND if the run does not exist.
	FindRunByID(ctx context.Context, id string) (*Run, error)

	// FindRuns retrieves runs, newest first.
	FindRuns(ctx context.Context, filter RunFilter) ([]*Run, error)

	// FindListings retrieves listings matching the filter in run order.
	FindListings(ctx context.Context, filter ListingFilter) ([]*Listing, error)

	// DeleteRun permanently removes a run and its listings.
	// Returns ENOTFOUND if the run does not exist.
	DeleteRun(ctx context.Context, id string) error
}

// RunFilter represents a filter for FindRuns.
type RunFilter struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// ListingFilter represents a filter for FindListings.
type ListingFilter struct {
	RunID *string `json:"runId"`
	URL   *string `json:"url"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
