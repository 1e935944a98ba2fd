package main

import (
	"fmt"

	"github.com/fwojciec/wheelads"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return wheelads.Errorf(wheelads.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Listings.DeleteRun(deps.Ctx, c.RunID); err != nil {
		if wheelads.ErrorCode(err) == wheelads.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: run %q not found. Use 'wheelads list' to see archived runs.\n", c.RunID)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", wheelads.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted run %s\n", c.RunID)
	return nil
}
