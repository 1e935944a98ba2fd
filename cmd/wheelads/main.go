package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/wheelads"
	"github.com/fwojciec/wheelads/fs"
	"github.com/fwojciec/wheelads/goquery"
	whttp "github.com/fwojciec/wheelads/http"
	"github.com/fwojciec/wheelads/jsonld"
	"github.com/fwojciec/wheelads/readability"
	"github.com/fwojciec/wheelads/rod"
	"github.com/fwojciec/wheelads/scrape"
	wslog "github.com/fwojciec/wheelads/slog"
	"github.com/fwojciec/wheelads/sqlite"
	"github.com/fwojciec/wheelads/trafilatura"
	_ "github.com/joho/godotenv/autoload"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run(); the --db flag overrides it.
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	ListingService wheelads.ListingService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("wheelads"),
		kong.Description("Scrape wheel and tyre ads into structured listings"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'wheelads --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd = kongCtx.Command()

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if cli.DB != "" {
		m.DBPath = cli.DB
	}
	if needsArchive(cmd, cli) {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set WHEELADS_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()

		m.ListingService = sqlite.NewListingService(m.DB)
		deps.Listings = m.ListingService
	}

	if isScrape(cmd) {
		scraper, closeFn, err := newScraper(&cli.Scrape, cli.Verbose, deps.Logger)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed for --browser")
			return err
		}
		defer closeFn()
		deps.Scraper = scraper
	}

	return kongCtx.Run(deps)
}

// isScrape reports whether kong selected the scrape command, with or
// without positional URLs.
func isScrape(cmd string) bool {
	return strings.HasPrefix(cmd, "scrape")
}

func needsArchive(cmd string, cli *CLI) bool {
	if isScrape(cmd) {
		return cli.Scrape.Archive || cli.Scrape.SkipArchived
	}
	return true
}

// newScraper wires the fetchers, parser and image store for a scrape.
func newScraper(c *ScrapeCmd, verbose bool, logger *slog.Logger) (*scrape.Scraper, func() error, error) {
	var opts []whttp.Option
	if c.UserAgent != "" {
		opts = append(opts, whttp.WithUserAgent(c.UserAgent))
	}

	var fetcher wheelads.Fetcher
	if c.Browser {
		rodOpts := []rod.Option{rod.WithFetchTimeout(c.Timeout)}
		if c.UserAgent != "" {
			rodOpts = append(rodOpts, rod.WithUserAgent(c.UserAgent))
		}
		f, err := rod.NewFetcher(rodOpts...)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to start browser: %w", err)
		}
		fetcher = f
	} else {
		fetcher = whttp.NewFetcher(append(opts, whttp.WithTimeout(c.Timeout))...)
	}
	if verbose {
		fetcher = wslog.NewLoggingFetcher(fetcher, logger)
	}

	parserOpts := []goquery.Option{goquery.WithImageHost(c.ImageHost)}
	switch c.Fallback {
	case "trafilatura":
		parserOpts = append(parserOpts, goquery.WithFallback(trafilatura.NewExtractor()))
	case "readability":
		parserOpts = append(parserOpts, goquery.WithFallback(readability.NewExtractor()))
	}

	limiter := scrape.NewHostLimiter(c.Rate)
	s := &scrape.Scraper{
		Fetcher:     fetcher,
		Parser:      goquery.NewParser(parserOpts...),
		Metadata:    jsonld.NewReader(),
		RateLimiter: limiter,
		Concurrency: c.Concurrency,
		Log: func(format string, args ...any) {
			logger.Warn(fmt.Sprintf(format, args...))
		},
	}

	if !c.NoImages {
		var images wheelads.ImageFetcher = whttp.NewFetcher(append(opts, whttp.WithTimeout(c.ImageTimeout))...)
		if verbose {
			images = wslog.NewLoggingImageFetcher(images, logger)
		}
		var store wheelads.ImageStore = fs.NewImageStore(c.Out, images, fs.WithRateLimiter(limiter))
		if verbose {
			store = wslog.NewLoggingImageStore(store, logger)
		}
		s.Images = store
	}

	return s, fetcher.Close, nil
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "wheelads.db"
	}
	dir := filepath.Join(home, ".wheelads")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "wheelads.db")
}
