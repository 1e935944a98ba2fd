// Package csv exports listings as CSV, one row per listing with the fixed
// column set of wheelads.Columns.
package csv

import (
	stdcsv "encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fwojciec/wheelads"
)

// WriteListings writes a header row followed by one row per listing.
func WriteListings(w io.Writer, listings []*wheelads.Listing) error {
	cw := stdcsv.NewWriter(w)
	if err := cw.Write(wheelads.Columns()); err != nil {
		return err
	}
	for _, l := range listings {
		if err := cw.Write(l.Row()); err != nil {
			return fmt.Errorf("writing %s: %w", l.URL, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile writes listings to path, creating parent directories.
func WriteFile(path string, listings []*wheelads.Listing) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return WriteListings(f, listings)
}
