package main

import (
	"fmt"

	"github.com/fwojciec/wheelads"
	"github.com/fwojciec/wheelads/csv"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	run, err := deps.Listings.FindRunByID(deps.Ctx, c.RunID)
	if err != nil {
		if wheelads.ErrorCode(err) == wheelads.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: run %q not found. Use 'wheelads list' to see archived runs.\n", c.RunID)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", wheelads.ErrorMessage(err))
		return err
	}

	listings, err := deps.Listings.FindListings(deps.Ctx, wheelads.ListingFilter{RunID: &run.ID})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wheelads.ErrorMessage(err))
		return err
	}

	if err := csv.WriteFile(c.File, listings); err != nil {
		fmt.Fprintf(deps.Stderr, "error writing CSV: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported %d listings to %s\n", len(listings), c.File)
	return nil
}
