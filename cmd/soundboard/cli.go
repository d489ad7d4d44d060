package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/DJCoolVR/soundboard"
	"github.com/DJCoolVR/soundboard/fs"
	lochttp "github.com/DJCoolVR/soundboard/http"
	"github.com/DJCoolVR/soundboard/scrape"
	"github.com/alecthomas/kong"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Lock    soundboard.Locker
	Catalog soundboard.CatalogStore
	Listing soundboard.ListingFetcher
	Assets  soundboard.AssetFetcher
	Runs    soundboard.RunService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB      string          `default:"soundboard.db" env:"SOUNDBOARD_DB" help:"Run history database path"`
	Config  kong.ConfigFlag `placeholder:"FILE" help:"Load flag defaults from a TOML file"`
	Verbose bool            `short:"v" help:"Enable debug logging"`
	Sync    SyncCmd         `cmd:"" help:"Scrape the listing, merge it into the catalog, and download new sounds"`
	History HistoryCmd      `cmd:"" help:"Show recent sync runs"`
}

// SyncCmd is the "sync" subcommand.
type SyncCmd struct {
	Catalog      string        `default:"sounds.js" env:"SOUNDBOARD_CATALOG" help:"Catalog file to merge into"`
	Media        string        `default:"${media_dir}" help:"Directory for downloaded audio"`
	ListingURL   string        `default:"${listing_url}" help:"Listing URL template, formatted with the page number"`
	AssetHost    string        `default:"${asset_host}" help:"Host that serves audio assets"`
	StartPage    int           `default:"1" help:"First listing page"`
	EndPage      int           `default:"100" help:"Last listing page"`
	Delay        time.Duration `default:"300ms" help:"Delay between listing pages"`
	Timeout      time.Duration `default:"15s" help:"Timeout per page fetch"`
	Concurrency  int           `short:"c" default:"8" help:"Concurrent download limit"`
	Browser      bool          `help:"Render listing pages with headless Chrome"`
	SkipDownload bool          `help:"Update the catalog without downloading audio"`
	NoHistory    bool          `help:"Do not record this run"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	Limit int `short:"n" default:"20" help:"Number of runs to show"`
}

// vars supplies interpolated flag defaults.
func vars() kong.Vars {
	return kong.Vars{
		"media_dir":   fs.DefaultMediaDir,
		"listing_url": scrape.DefaultURLTemplate,
		"asset_host":  lochttp.DefaultAssetHost,
	}
}
