package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pinnedref"
	"github.com/fwojciec/pinnedref/crawl"
	"github.com/fwojciec/pinnedref/fs"
	"github.com/fwojciec/pinnedref/htmltomarkdown"
	pinhttp "github.com/fwojciec/pinnedref/http"
	"github.com/fwojciec/pinnedref/readability"
	pinslog "github.com/fwojciec/pinnedref/slog"
	"github.com/fwojciec/pinnedref/sqlite"
	"github.com/fwojciec/pinnedref/trafilatura"
	"github.com/joho/godotenv"
)

func main() {
	ctx := context.Background()

	// Variables in .env never override the real environment.
	_ = godotenv.Load()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite database used when --db is set.
	DB *sqlite.DB

	// Services for end-to-end testing. Set before calling Run() to skip the
	// default wiring.
	LibraryService     pinnedref.LibraryService
	CardService        pinnedref.CardService
	SearchIndexService pinnedref.SearchIndexService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
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
		kong.Name("pinnedref"),
		kong.Description("Turn a read-it-later archive into highlight cards"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'pinnedref --help' to see available commands")
	}
	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	deps.DataDir = cli.DataDir
	deps.Logger = pinslog.NewLogger(stderr, cli.Verbose)

	if err := m.openServices(cli, stderr); err != nil {
		return err
	}
	defer m.Close()

	deps.Library = m.LibraryService
	deps.Cards = pinslog.NewLoggingCardService(m.CardService, deps.Logger)
	deps.Index = pinslog.NewLoggingSearchIndexService(m.SearchIndexService, deps.Logger)

	switch cmd {
	case "fetch":
		var fetcher pinnedref.Fetcher = pinhttp.NewFetcher(pinhttp.WithTimeout(cli.Fetch.Timeout))
		if cli.Verbose {
			fetcher = pinslog.NewLoggingFetcher(fetcher, deps.Logger)
		}
		defer fetcher.Close()

		deps.Crawler = &crawl.Crawler{
			Fetcher:     fetcher,
			Extractor:   trafilatura.NewExtractor(),
			Fallback:    readability.NewExtractor(),
			RateLimiter: crawl.NewDomainLimiter(cli.Fetch.Rate),
			Concurrency: cli.Fetch.Concurrency,
			OnRetry: func(url string, attempt int, err error) {
				deps.Logger.Debug("retry", "url", url, "attempt", attempt, "err", err)
			},
		}
	case "export":
		deps.Converter = htmltomarkdown.NewConverter()
	}

	return kongCtx.Run(deps)
}

// openServices wires the storage services. Cards and the index live in the
// SQLite database when --db is set and in JSON files in the data directory
// otherwise. The archive itself is always read from the data directory.
func (m *Main) openServices(cli *CLI, stderr io.Writer) error {
	if m.LibraryService == nil {
		m.LibraryService = fs.NewLibraryService(cli.DataDir)
	}
	if m.CardService != nil && m.SearchIndexService != nil {
		return nil
	}

	if cli.DB == "" {
		m.CardService = fs.NewCardService(cli.DataDir)
		m.SearchIndexService = fs.NewSearchIndexService(cli.DataDir)
		return nil
	}

	m.DB = sqlite.NewDB(cli.DB)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set PINNEDREF_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", cli.DB, err)
	}
	m.CardService = sqlite.NewCardService(m.DB)
	m.SearchIndexService = sqlite.NewSearchIndexService(m.DB)
	return nil
}
