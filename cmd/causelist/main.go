package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"

	"github.com/fwojciec/causelist"
	"github.com/fwojciec/causelist/fs"
	clhttp "github.com/fwojciec/causelist/http"
	"github.com/fwojciec/causelist/sqlite"
	clzerolog "github.com/fwojciec/causelist/zerolog"
)

// fetchRateLimit caps court-website downloads at one request per second.
const fetchRateLimit = 1.0

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by the document cache.
	DB *sqlite.DB

	// Store for end-to-end testing.
	Store causelist.CauseListStore
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
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("causelist"),
		kong.Description("Search High Court cause lists for an advocate's cases."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'causelist --help' to see available commands")
	}
	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := zerolog.InfoLevel
	if cli.Verbose {
		level = zerolog.DebugLevel
	}
	deps.Logger = zerolog.New(zerolog.ConsoleWriter{Out: stderr, TimeFormat: time.RFC3339}).
		Level(level).With().Timestamp().Logger()

	// Open the document cache: a directory of PDF files when
	// CAUSELIST_CACHE_DIR is set, the SQLite database otherwise.
	if dir := os.Getenv("CAUSELIST_CACHE_DIR"); dir != "" {
		m.Store = clzerolog.NewLoggingStore(fs.NewCauseListStore(dir), deps.Logger)
	} else {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set CAUSELIST_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()
		m.Store = clzerolog.NewLoggingStore(sqlite.NewCauseListService(m.DB), deps.Logger)
	}
	deps.Store = m.Store

	// Wire command-specific dependencies.
	cmd := kongCtx.Command()
	switch {
	case strings.HasPrefix(cmd, "fetch"):
		deps.Fetcher = clzerolog.NewLoggingFetcher(newClient(cli.Fetch.BaseURL, cli.Fetch.Insecure), deps.Logger)
	case strings.HasPrefix(cmd, "serve"):
		deps.Fetcher = clzerolog.NewLoggingFetcher(newClient(cli.Serve.BaseURL, cli.Serve.Insecure), deps.Logger)
	}

	return kongCtx.Run(deps)
}

// newClient builds the court-website client for the given flags.
func newClient(baseURL string, insecure bool) *clhttp.Client {
	opts := []clhttp.ClientOption{
		clhttp.WithBaseURL(baseURL),
		clhttp.WithRateLimit(fetchRateLimit),
	}
	if insecure {
		opts = append(opts, clhttp.WithInsecureTLS())
	}
	return clhttp.NewClient(opts...)
}

func defaultDBPath() string {
	if path := os.Getenv("CAUSELIST_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "causelist.db"
	}
	dir := filepath.Join(home, ".causelist")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "causelist.db")
}
