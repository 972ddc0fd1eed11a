package gitbooktext

// LinkExtractor parses anchor links out of HTML.
type LinkExtractor interface {
	// ExtractLinks returns the absolute form of every anchor href in html,
	// resolved against pageURL (the URL the HTML was fetched from).
	// No filtering is applied; eligibility rules belong to the crawler.
	ExtractLinks(html string, pageURL string) ([]string, error)
}
