package main

import (
	"fmt"
)

// AllCmd crawls a site and downloads every discovered page in one run.
type AllCmd struct {
	URL     string `arg:"" help:"Base URL of the documentation site"`
	Sitemap bool   `help:"Discover pages from sitemap.xml instead of crawling anchors"`
}

func (c *AllCmd) Run(deps *Dependencies) error {
	urls, err := crawlLinks(deps, c.URL, c.Sitemap)
	if err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Found %d pages\n", len(urls))

	return downloadPages(deps, urls)
}
