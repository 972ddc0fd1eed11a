package main

import (
	"github.com/fwojciec/gitbooktext"
	"github.com/fwojciec/gitbooktext/fs"
)

// DownloadCmd downloads and converts the pages listed in a link file.
type DownloadCmd struct {
	Input string `short:"i" default:"links.txt" help:"File with one page URL per line"`
}

func (c *DownloadCmd) Run(deps *Dependencies) error {
	urls, err := fs.ReadLinkList(c.Input)
	if err != nil {
		return err
	}
	if len(urls) == 0 {
		return gitbooktext.Errorf(gitbooktext.EINVALID, "%s contains no links, run crawl first", c.Input)
	}

	return downloadPages(deps, urls)
}
