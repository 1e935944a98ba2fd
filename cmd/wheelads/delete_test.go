package main_test

import (
	"context"
	"testing"

	"github.com/fwojciec/wheelads"
	main "github.com/fwojciec/wheelads/cmd/wheelads"
	"github.com/fwojciec/wheelads/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("requires --force", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newDeps(nil)
		deps.Listings = &mock.ListingService{}

		cmd := &main.DeleteCmd{RunID: "run-1"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, wheelads.EINVALID, wheelads.ErrorCode(err))
		assert.Contains(t, stderr.String(), "--force")
	})

	t.Run("deletes run", func(t *testing.T) {
		t.Parallel()

		var deleted string
		deps, stdout, _ := newDeps(nil)
		deps.Listings = &mock.ListingService{
			DeleteRunFn: func(_ context.Context, id string) error {
				deleted = id
				return nil
			},
		}

		cmd := &main.DeleteCmd{RunID: "run-1", Force: true}
		require.NoError(t, cmd.Run(deps))

		assert.Equal(t, "run-1", deleted)
		assert.Contains(t, stdout.String(), "Deleted run run-1")
	})

	t.Run("reports unknown run", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newDeps(nil)
		deps.Listings = &mock.ListingService{
			DeleteRunFn: func(context.Context, string) error {
				return wheelads.Errorf(wheelads.ENOTFOUND, "run not found")
			},
		}

		cmd := &main.DeleteCmd{RunID: "nope", Force: true}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, wheelads.ENOTFOUND, wheelads.ErrorCode(err))
		assert.Contains(t, stderr.String(), "wheelads list")
	})
}
