package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/wheelads/mock"
	wheelslog "github.com/fwojciec/wheelads/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingImageStore_SaveImages(t *testing.T) {
	t.Parallel()

	t.Run("logs found and saved counts", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.ImageStore{
			SaveImagesFn: func(_ context.Context, adID string, urls []string) ([]string, error) {
				return []string{adID + "/1.jpg"}, nil
			},
		}

		store := wheelslog.NewLoggingImageStore(inner, logger)
		paths, err := store.SaveImages(context.Background(), "2712345678", []string{"a", "b"})

		require.NoError(t, err)
		assert.Equal(t, []string{"2712345678/1.jpg"}, paths)
		output := buf.String()
		assert.Contains(t, output, "save images")
		assert.Contains(t, output, "ad=2712345678")
		assert.Contains(t, output, "found=2")
		assert.Contains(t, output, "saved=1")
	})
}
