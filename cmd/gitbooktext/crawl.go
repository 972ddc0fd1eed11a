package main

import (
	"fmt"

	"github.com/fwojciec/gitbooktext/fs"
)

// CrawlCmd discovers documentation page links and writes them to a file.
type CrawlCmd struct {
	URL     string `arg:"" help:"Base URL of the documentation site"`
	Output  string `short:"o" default:"links.txt" help:"File to write the discovered links to"`
	Sitemap bool   `help:"Discover pages from sitemap.xml instead of crawling anchors"`
}

func (c *CrawlCmd) Run(deps *Dependencies) error {
	urls, err := crawlLinks(deps, c.URL, c.Sitemap)
	if err != nil {
		return err
	}

	if err := fs.WriteLinkList(c.Output, urls); err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Found %d pages, saved to %s\n", len(urls), c.Output)
	return nil
}
