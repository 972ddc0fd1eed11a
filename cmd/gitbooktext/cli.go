package main

import (
	"context"
	"fmt"
	"io"

	"github.com/fwojciec/gitbooktext"
	"github.com/fwojciec/gitbooktext/crawl"
)

// Dependencies holds the shared services commands run against.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Detector gitbooktext.Detector
	Crawler  *crawl.Crawler
	Pipeline *crawl.Pipeline
	Sitemaps gitbooktext.SitemapService
}

// crawlLinks verifies the target looks like a GitBook site and returns the
// eligible page URLs, either by traversing anchors or from the sitemap.
func crawlLinks(deps *Dependencies, rawURL string, useSitemap bool) ([]string, error) {
	ok, err := deps.Detector.IsGitBook(deps.Ctx, rawURL)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, gitbooktext.Errorf(gitbooktext.ENOTGITBOOK, "%s does not look like a GitBook site", rawURL)
	}

	if useSitemap {
		urls, err := deps.Sitemaps.DiscoverURLs(deps.Ctx, rawURL)
		if err != nil {
			return nil, err
		}
		return crawl.FilterEligible(urls, rawURL)
	}

	return deps.Crawler.Discover(deps.Ctx, rawURL)
}

// downloadPages runs the fetch-convert-save pipeline and reports per-page
// outcomes. Individual page failures are reported but never fail the run.
func downloadPages(deps *Dependencies, urls []string) error {
	result, err := deps.Pipeline.ProcessAll(deps.Ctx, urls, func(o crawl.Outcome) {
		if o.Err != nil {
			fmt.Fprintf(deps.Stderr, "failed %s: %s\n", o.URL, gitbooktext.ErrorMessage(o.Err))
			return
		}
		fmt.Fprintf(deps.Stdout, "saved %s\n", o.URL)
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Done: %d saved, %d failed (%s)\n",
		result.Saved, result.Failed, crawl.FormatBytes(result.Bytes))
	return nil
}
