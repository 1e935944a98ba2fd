package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/wheelads"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	if c.RunID != "" {
		return c.runListings(deps)
	}

	runs, err := deps.Listings.FindRuns(deps.Ctx, wheelads.RunFilter{Limit: c.Limit})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wheelads.ErrorMessage(err))
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(deps.Stdout, "No runs found. Use 'wheelads scrape --archive' to create one.")
		return nil
	}

	for _, r := range runs {
		fmt.Fprintf(deps.Stdout, "%s  %s  %d listings\n", r.ID, r.CreatedAt.Format(time.DateTime), r.Listings)
	}

	return nil
}

func (c *ListCmd) runListings(deps *Dependencies) error {
	if _, err := deps.Listings.FindRunByID(deps.Ctx, c.RunID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wheelads.ErrorMessage(err))
		return err
	}

	listings, err := deps.Listings.FindListings(deps.Ctx, wheelads.ListingFilter{RunID: &c.RunID, Limit: c.Limit})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wheelads.ErrorMessage(err))
		return err
	}

	for _, l := range listings {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n",
			l.URL, l.Title.Or(wheelads.Placeholder), l.Price.Or(wheelads.Placeholder))
	}

	return nil
}
