package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/wheelads"
	"github.com/fwojciec/wheelads/scrape"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdin    io.Reader
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Scraper  *scrape.Scraper
	Listings wheelads.ListingService // nil unless the command uses the archive
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB      string `name:"db" env:"WHEELADS_DB" help:"Archive database path (default: ~/.wheelads/wheelads.db)"`
	Verbose bool   `short:"v" help:"Log every request"`

	Scrape ScrapeCmd `cmd:"" help:"Scrape wheel ads into a CSV file and image folders"`
	List   ListCmd   `cmd:"" help:"List archived runs or the listings of one run"`
	Export ExportCmd `cmd:"" help:"Export an archived run as CSV"`
	Delete DeleteCmd `cmd:"" help:"Delete an archived run"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	URLs         []string      `arg:"" optional:"" name:"url" help:"Ad URLs to scrape"`
	File         string        `short:"f" help:"Read URLs from file, one per line ('-' for stdin)"`
	Out          string        `short:"o" default:"output" env:"WHEELADS_OUT" help:"Output directory"`
	CSV          string        `default:"data.csv" help:"CSV file name inside the output directory"`
	Zip          string        `short:"z" help:"Also write all images into this ZIP file"`
	Archive      bool          `short:"a" help:"Store the run in the archive database"`
	SkipArchived bool          `name:"skip-archived" help:"Skip URLs already stored in an archived run"`
	Browser      bool          `short:"b" help:"Render pages in a headless browser"`
	NoImages     bool          `name:"no-images" help:"Skip image downloads"`
	Concurrency  int           `short:"c" default:"1" help:"Concurrent scrape limit"`
	Rate         float64       `default:"1" help:"Requests per second per host (0 disables limiting)"`
	Timeout      time.Duration `short:"t" default:"30s" help:"Fetch timeout per page"`
	ImageTimeout time.Duration `default:"30s" help:"Fetch timeout per image"`
	ImageHost    string        `default:"img.kleinanzeigen.de" help:"Only download images from this host"`
	Fallback     string        `enum:"trafilatura,readability,none" default:"trafilatura" help:"Main-content extractor for pages without a description (${enum})"`
	UserAgent    string        `env:"WHEELADS_USER_AGENT" help:"Override the User-Agent header"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	RunID string `name:"run" help:"Show the listings of this run"`
	Limit int    `short:"n" default:"20" help:"Maximum number of entries"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	RunID string `arg:"" name:"run" help:"Run ID"`
	File  string `arg:"" help:"Destination CSV file"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	RunID string `arg:"" name:"run" help:"Run ID"`
	Force bool   `help:"Confirm deletion"`
}
