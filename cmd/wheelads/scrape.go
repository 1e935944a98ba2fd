package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fwojciec/wheelads"
	"github.com/fwojciec/wheelads/bloom"
	"github.com/fwojciec/wheelads/csv"
	"github.com/fwojciec/wheelads/fs"
	"github.com/fwojciec/wheelads/scrape"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	urls, err := c.collectURLs(deps.Stdin)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wheelads.ErrorMessage(err))
		return err
	}
	if len(urls) == 0 {
		fmt.Fprintln(deps.Stderr, "error: no URLs given. Pass them as arguments or with --file.")
		return wheelads.Errorf(wheelads.EINVALID, "no URLs given")
	}

	if c.SkipArchived && deps.Listings != nil {
		archived, err := bloom.LoadArchivedURLs(deps.Ctx, deps.Listings)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error reading archive: %s\n", wheelads.ErrorMessage(err))
			return err
		}
		fresh, err := archived.Exclude(deps.Ctx, urls)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error reading archive: %s\n", wheelads.ErrorMessage(err))
			return err
		}
		if skipped := len(urls) - len(fresh); skipped > 0 {
			fmt.Fprintf(deps.Stdout, "Skipping %d archived URLs\n", skipped)
		}
		if len(fresh) == 0 {
			fmt.Fprintln(deps.Stdout, "Nothing new to scrape")
			return nil
		}
		urls = fresh
	}

	// Without an output directory no image or CSV can be written.
	if err := os.MkdirAll(c.Out, 0755); err != nil {
		fmt.Fprintf(deps.Stderr, "error: cannot create output directory %q: %v\n", c.Out, err)
		return err
	}

	progress := func(event scrape.ProgressEvent) {
		switch event.Type {
		case scrape.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Found %d URLs\n", event.Total)
		case scrape.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "[%d/%d] %s\n", event.Completed, event.Total, event.URL)
		case scrape.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "skip %s: %v\n", event.URL, event.Error)
		case scrape.ProgressFinished:
			// Summary printed after the batch completes
		}
	}

	result, err := deps.Scraper.ScrapeAll(deps.Ctx, urls, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error scraping: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Processed %d of %d listings\n", len(result.Listings), len(urls))
	if len(result.Listings) == 0 {
		return nil
	}

	csvPath := filepath.Join(c.Out, c.CSV)
	if err := csv.WriteFile(csvPath, result.Listings); err != nil {
		fmt.Fprintf(deps.Stderr, "error writing CSV: %v\n", err)
		return err
	}
	fmt.Fprintf(deps.Stdout, "Wrote %s\n", csvPath)

	if c.Zip != "" {
		var paths []string
		for _, l := range result.Listings {
			paths = append(paths, l.Images...)
		}
		if err := fs.WriteZipFile(c.Zip, c.Out, paths); err != nil {
			fmt.Fprintf(deps.Stderr, "error writing ZIP: %v\n", err)
			return err
		}
		fmt.Fprintf(deps.Stdout, "Wrote %s (%d images)\n", c.Zip, len(paths))
	}

	if c.Archive && deps.Listings != nil {
		run, err := deps.Listings.CreateRun(deps.Ctx, result.Listings)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error archiving: %s\n", wheelads.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "Archived run %s\n", run.ID)
	}

	return nil
}

// collectURLs returns the positional URLs followed by those read from --file.
func (c *ScrapeCmd) collectURLs(stdin io.Reader) ([]string, error) {
	urls := append([]string(nil), c.URLs...)
	if c.File == "" {
		return urls, nil
	}

	var r io.Reader = stdin
	if c.File != "-" {
		f, err := os.Open(c.File)
		if err != nil {
			return nil, wheelads.Errorf(wheelads.EINVALID, "cannot open URL file: %v", err)
		}
		defer f.Close()
		r = f
	}

	fromFile, err := wheelads.ParseURLs(r)
	if err != nil {
		return nil, fmt.Errorf("reading URLs: %w", err)
	}
	return append(urls, fromFile...), nil
}
