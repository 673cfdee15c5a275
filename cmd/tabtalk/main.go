package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/pkoscik/tabtalk"
	"github.com/pkoscik/tabtalk/fs"
	"github.com/pkoscik/tabtalk/goquery"
	"github.com/pkoscik/tabtalk/htgotts"
	tabhttp "github.com/pkoscik/tabtalk/http"
	tabslog "github.com/pkoscik/tabtalk/slog"
	"github.com/pkoscik/tabtalk/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Archive database path. Set before calling Run().
	DBPath string

	// SQLite database used by the scrape archive.
	DB *sqlite.DB

	// Scrape archive service, available after Run() opens the database.
	Scrapes tabtalk.ScrapeService
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
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("tabtalk"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Vars{"default_url": DefaultURL},
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'tabtalk --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Open the scrape archive. A broken archive only degrades the scrape
	// command; every other command cannot work without it.
	if cmd != "scrape" || !cli.Scrape.NoArchive {
		db := sqlite.NewDB(m.DBPath)
		if err := db.Open(); err != nil {
			if cmd != "scrape" {
				fmt.Fprintf(stderr, "Hint: Set TABTALK_DB to use a different database path\n")
				return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
			}
			fmt.Fprintf(stderr, "warning: could not open archive database at %q: %v\n", m.DBPath, err)
		} else {
			m.DB = db
			m.Scrapes = sqlite.NewScrapeService(db)
		}
	}
	defer m.Close()

	deps.Scrapes = m.Scrapes

	// Wire command-specific dependencies based on command
	if cmd == "scrape" {
		fetcher := tabhttp.NewFetcher(
			tabhttp.WithUserAgent(cli.Scrape.UserAgent),
			tabhttp.WithTimeout(cli.Scrape.Timeout),
		)
		deps.Fetcher = fetcher
		deps.Extractor = goquery.NewExtractor(goquery.WithTableClass(cli.Scrape.TableClass))

		if cli.Scrape.Verbose {
			logger := slog.New(slog.NewTextHandler(stderr, nil))
			deps.Fetcher = tabslog.NewLoggingFetcher(deps.Fetcher, logger)
			deps.Extractor = tabslog.NewLoggingExtractor(deps.Extractor, logger)
		}
		defer deps.Fetcher.Close()

		if cli.Scrape.SnapshotDir != "" {
			deps.Snapshots = fs.NewSnapshotStore(cli.Scrape.SnapshotDir)
		}

		deps.Notifier = buildNotifier(stdout, cli.Scrape.Mute)
	}

	if cmd == "search" {
		deps.Notifier = buildNotifier(stdout, cli.Search.Mute)
	}

	return kongCtx.Run(deps)
}

// buildNotifier assembles the announcement channel: console always, speech
// unless muted.
func buildNotifier(stdout io.Writer, mute bool) tabtalk.Notifier {
	notifier := tabtalk.MultiNotifier{tabtalk.NewWriterNotifier(stdout)}
	if !mute {
		notifier = append(notifier, htgotts.NewNotifier(audioCacheDir()))
	}
	return notifier
}

func defaultDBPath() string {
	if path := os.Getenv("TABTALK_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "tabtalk.db"
	}
	dir := filepath.Join(home, ".tabtalk")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "tabtalk.db")
}

func audioCacheDir() string {
	return filepath.Join(os.TempDir(), "tabtalk-audio")
}
