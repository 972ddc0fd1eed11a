package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/gitbooktext"
	"github.com/fwojciec/gitbooktext/crawl"
	"github.com/fwojciec/gitbooktext/fs"
	"github.com/fwojciec/gitbooktext/goldmark"
	"github.com/fwojciec/gitbooktext/goquery"
	gbhttp "github.com/fwojciec/gitbooktext/http"
	"github.com/fwojciec/gitbooktext/regexp"
	gbslog "github.com/fwojciec/gitbooktext/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose     bool          `short:"v" help:"Enable debug logging"`
	Timeout     time.Duration `short:"t" default:"10s" help:"Fetch timeout per page"`
	Concurrency int           `short:"c" default:"0" help:"Concurrent download limit (0 = one task per page)"`
	Dir         string        `short:"d" default:"data" help:"Base directory for downloaded pages"`

	Crawl    CrawlCmd    `cmd:"" help:"Discover documentation page links and save them to a file"`
	Download DownloadCmd `cmd:"" default:"1" help:"Download and convert the pages listed in the link file"`
	All      AllCmd      `cmd:"" help:"Crawl and download in one run"`
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("gitbooktext"),
		kong.Description("Download GitBook documentation sites as plain text"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	httpFetcher := gbhttp.NewFetcher(gbhttp.WithTimeout(cli.Timeout))
	defer httpFetcher.Close()

	var fetcher gitbooktext.Fetcher = httpFetcher
	if cli.Verbose {
		fetcher = gbslog.NewLoggingFetcher(fetcher, logger)
	}

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,

		Detector: crawl.NewDetector(fetcher),
		Crawler: &crawl.Crawler{
			Fetcher: fetcher,
			Links:   goquery.NewExtractor(),
			Logger:  logger,
		},
		Pipeline: &crawl.Pipeline{
			Fetcher:     fetcher,
			Converter:   goldmark.NewConverter(),
			Sanitizer:   regexp.NewSanitizer(),
			Store:       fs.NewStore(cli.Dir),
			Logger:      logger,
			Concurrency: cli.Concurrency,
		},
		Sitemaps: gbslog.NewLoggingSitemapService(gbhttp.NewSitemapService(nil), logger),
	}

	return kctx.Run(deps)
}
