// Package goquery provides a goquery-based implementation of
// gitbooktext.LinkExtractor.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/gitbooktext"
)

// Ensure Extractor implements gitbooktext.LinkExtractor at compile time.
var _ gitbooktext.LinkExtractor = (*Extractor)(nil)

// Extractor parses anchor links out of HTML using CSS selectors.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractLinks returns every anchor href in html resolved against pageURL.
// Unparsable hrefs are skipped; no eligibility filtering is applied.
func (e *Extractor) ExtractLinks(html string, pageURL string) ([]string, error) {
	page, err := url.Parse(pageURL)
	if err != nil {
		return nil, gitbooktext.Errorf(gitbooktext.EINVALID, "invalid page URL %q: %v", pageURL, err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, gitbooktext.Errorf(gitbooktext.EINVALID, "parse HTML: %v", err)
	}

	var links []string
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists || href == "" {
			return
		}
		ref, err := url.Parse(href)
		if err != nil {
			return
		}
		links = append(links, page.ResolveReference(ref).String())
	})

	return links, nil
}
