package main

import (
	"context"
	"io"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/fwojciec/pinnedref"
	"github.com/fwojciec/pinnedref/crawl"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	DataDir   string
	Library   pinnedref.LibraryService
	Cards     pinnedref.CardService
	Index     pinnedref.SearchIndexService
	Crawler   *crawl.Crawler
	Converter pinnedref.Converter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DataDir string `name:"data-dir" env:"PINNEDREF_DATA" default:"./data" help:"Directory holding the archive and generated files"`
	DB      string `name:"db" env:"PINNEDREF_DB" help:"SQLite database for cards and the search index (default: JSON files in the data directory)"`
	Verbose bool   `short:"v" help:"Enable debug logging"`

	Build   BuildCmd   `cmd:"" help:"Build cards, search index and summary from the archive"`
	Summary SummaryCmd `cmd:"" help:"Render a new summary from stored cards"`
	Index   IndexCmd   `cmd:"" help:"Rebuild the search index from stored cards"`
	Search  SearchCmd  `cmd:"" help:"Find articles whose cards contain every query word"`
	Show    ShowCmd    `cmd:"" help:"Show the cards of one article"`
	Fetch   FetchCmd   `cmd:"" help:"Fetch missing article bodies for highlighted bookmarks"`
	Export  ExportCmd  `cmd:"" help:"Export cards as Markdown notes"`
}

// BuildCmd is the "build" subcommand.
type BuildCmd struct {
	Seed        uint64 `help:"Seed for summary sampling (0 picks a random seed)"`
	Sample      int    `short:"n" default:"10" help:"Number of cards in the summary"`
	Concurrency int    `short:"c" default:"8" help:"Articles processed concurrently"`
}

// SummaryCmd is the "summary" subcommand.
type SummaryCmd struct {
	Seed   uint64 `help:"Seed for summary sampling (0 picks a random seed)"`
	Sample int    `short:"n" default:"10" help:"Number of cards in the summary"`
}

// IndexCmd is the "index" subcommand.
type IndexCmd struct{}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query []string `arg:"" help:"Words to search for"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	BookmarkID int64 `arg:"" name:"bookmark-id" help:"Bookmark id"`
}

// FetchCmd is the "fetch" subcommand.
type FetchCmd struct {
	Concurrency int           `short:"c" default:"4" help:"Concurrent fetch limit"`
	Rate        float64       `default:"1" help:"Requests per second per site"`
	Timeout     time.Duration `default:"10s" help:"Timeout per request"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Dir string `arg:"" help:"Output directory for Markdown notes"`
}

// newRand returns the sampling source for seed. A zero seed is replaced by a
// random one.
func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed))
}
