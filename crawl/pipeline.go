package crawl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/gitbooktext"
	"golang.org/x/sync/errgroup"
)

// Pipeline downloads discovered pages and persists both the raw markdown
// source and the converted plain text.
type Pipeline struct {
	Fetcher   gitbooktext.Fetcher
	Converter gitbooktext.Converter
	Sanitizer gitbooktext.Sanitizer
	Store     gitbooktext.PageStore
	Logger    *slog.Logger

	// Concurrency bounds the number of in-flight page tasks.
	// Zero or negative launches one task per URL with no limit.
	Concurrency int
}

// Result holds the aggregate outcome of processing a batch of URLs.
type Result struct {
	Saved  int
	Failed int
	Bytes  int
}

// Outcome reports the fate of a single page task.
type Outcome struct {
	URL   string
	Hash  string
	Bytes int
	Err   error
}

// OutcomeFunc is called once per completed page task, in completion order.
type OutcomeFunc func(Outcome)

// ProcessAll fetches, converts, and saves every URL concurrently. URLs
// missing the .md source suffix get it appended first; URLs already carrying
// it are left unchanged. Tasks are independent: one failure never aborts the
// batch, it only increments the failure count. The error return is reserved
// for setup failures (output locations could not be created).
func (p *Pipeline) ProcessAll(ctx context.Context, urls []string, onOutcome OutcomeFunc) (*Result, error) {
	normalized := make([]string, 0, len(urls))
	for _, u := range urls {
		if !strings.HasSuffix(u, ".md") {
			u += ".md"
		}
		normalized = append(normalized, u)
	}

	// Both output directories must exist before concurrent writes begin.
	if err := p.Store.Init(); err != nil {
		return nil, err
	}

	outcomeCh := make(chan Outcome, len(normalized))

	g, gctx := errgroup.WithContext(ctx)
	if p.Concurrency > 0 {
		g.SetLimit(p.Concurrency)
	}

	go func() {
		for _, u := range normalized {
			g.Go(func() error {
				outcomeCh <- p.processURL(gctx, u)
				return nil
			})
		}
		_ = g.Wait()
		close(outcomeCh)
	}()

	result := &Result{}
	for outcome := range outcomeCh {
		if onOutcome != nil {
			onOutcome(outcome)
		}
		if outcome.Err != nil {
			result.Failed++
			p.logger().Error("page failed", "url", outcome.URL, "err", outcome.Err)
			continue
		}
		result.Saved++
		result.Bytes += outcome.Bytes
		p.logger().Info("page saved", "url", outcome.URL, "bytes", outcome.Bytes, "hash", outcome.Hash)
	}

	return result, nil
}

// processURL runs the fetch-convert-save sequence for one URL. Any failure
// terminates the task immediately; a fetch failure writes no files at all.
func (p *Pipeline) processURL(ctx context.Context, url string) Outcome {
	content, err := p.Fetcher.Fetch(ctx, url)
	if err != nil {
		return Outcome{URL: url, Err: err}
	}

	if err := p.Store.SaveMarkdown(ctx, url, content); err != nil {
		return Outcome{URL: url, Err: err}
	}

	text, err := p.Converter.Convert(content)
	if err != nil {
		return Outcome{URL: url, Err: err}
	}
	text = p.Sanitizer.Sanitize(text)

	if err := p.Store.SaveText(ctx, url, text); err != nil {
		return Outcome{URL: url, Err: err}
	}

	return Outcome{URL: url, Hash: contentHash(text), Bytes: len(text)}
}

func (p *Pipeline) logger() *slog.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return slog.Default()
}

// contentHash fingerprints saved text for the outcome log using xxhash.
func contentHash(content string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(content))
}
