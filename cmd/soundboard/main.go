package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/DJCoolVR/soundboard"
	"github.com/DJCoolVR/soundboard/download"
	"github.com/DJCoolVR/soundboard/fs"
	"github.com/DJCoolVR/soundboard/goquery"
	lochttp "github.com/DJCoolVR/soundboard/http"
	"github.com/DJCoolVR/soundboard/rod"
	"github.com/DJCoolVR/soundboard/scrape"
	logslog "github.com/DJCoolVR/soundboard/slog"
	"github.com/DJCoolVR/soundboard/sqlite"
	"github.com/DJCoolVR/soundboard/toml"
	"github.com/alecthomas/kong"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Configuration files searched for flag defaults, in order.
	ConfigPaths []string

	// SQLite database used for run history. Opened only when a command needs it.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		ConfigPaths: []string{"soundboard.toml", "~/.config/soundboard/config.toml"},
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
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("soundboard"),
		kong.Description("Keep a local catalog of myinstants sounds in sync"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
		vars(),
		kong.Configuration(toml.Loader, m.ConfigPaths...),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'soundboard --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	defer m.Close()

	switch kongCtx.Command() {
	case "sync":
		closeFetcher, err := m.wireSync(deps, cli)
		if err != nil {
			return err
		}
		defer closeFetcher()
	case "history":
		runs, err := m.openRuns(cli.DB, deps.Logger)
		if err != nil {
			return err
		}
		deps.Runs = runs
	}

	return kongCtx.Run(deps)
}

// wireSync builds the services used by the sync command. The returned
// function releases the page fetcher.
func (m *Main) wireSync(deps *Dependencies, cli *CLI) (func(), error) {
	c := &cli.Sync

	deps.Lock = fs.NewLock(c.Catalog)
	deps.Catalog = fs.NewCatalogFile(c.Catalog)

	var fetcher soundboard.Fetcher
	if c.Browser {
		f, err := rod.NewFetcher(rod.WithFetchTimeout(c.Timeout))
		if err != nil {
			fmt.Fprintln(deps.Stderr, "Hint: Chrome or Chromium must be installed")
			return nil, fmt.Errorf("failed to start browser: %w", err)
		}
		fetcher = f
	} else {
		fetcher = lochttp.NewFetcher(lochttp.WithTimeout(c.Timeout))
	}
	fetcher = logslog.NewLoggingFetcher(fetcher, deps.Logger)

	scraper := scrape.NewScraper(fetcher, goquery.NewListingParser())
	scraper.URLTemplate = c.ListingURL
	scraper.StartPage = c.StartPage
	scraper.EndPage = c.EndPage
	scraper.Delay = c.Delay
	scraper.Progress = printProgress(deps.Stdout)
	deps.Listing = logslog.NewLoggingListingFetcher(scraper, deps.Logger)

	if !c.SkipDownload {
		media := logslog.NewLoggingMediaStore(fs.NewMediaDir(c.Media), deps.Logger)
		downloader := download.NewDownloader(lochttp.NewAssetClient(nil, c.AssetHost), media)
		if c.Concurrency > 0 {
			downloader.Concurrency = c.Concurrency
		}
		deps.Assets = downloader
	}

	if !c.NoHistory {
		runs, err := m.openRuns(cli.DB, deps.Logger)
		if err != nil {
			_ = fetcher.Close()
			return nil, err
		}
		deps.Runs = runs
	}

	return func() { _ = fetcher.Close() }, nil
}

// openRuns opens the history database and returns its run service.
func (m *Main) openRuns(path string, logger *slog.Logger) (soundboard.RunService, error) {
	m.DB = sqlite.NewDB(path)
	if err := m.DB.Open(); err != nil {
		m.DB = nil
		return nil, fmt.Errorf("failed to open database at %q: %w", path, err)
	}
	return logslog.NewLoggingRunService(sqlite.NewRunService(m.DB), logger), nil
}
