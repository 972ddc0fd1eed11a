package crawl

import (
	"context"
	"strings"

	"github.com/fwojciec/gitbooktext"
)

// gitbookIndicators are the generator fingerprints matched against the
// lower-cased page body. Membership is a substring search, not an anchored
// match. "__gitbook__" is the lower-cased form of the __GITBOOK__ runtime
// marker.
var gitbookIndicators = []string{
	"gitbook",
	"data-gitbook",
	"__gitbook__",
	"gitbook.com",
}

// Ensure Detector implements gitbooktext.Detector at compile time.
var _ gitbooktext.Detector = (*Detector)(nil)

// Detector identifies GitBook sites by fingerprint substrings in the page
// body.
type Detector struct {
	fetcher gitbooktext.Fetcher
}

// NewDetector creates a Detector that fetches pages through fetcher.
func NewDetector(fetcher gitbooktext.Fetcher) *Detector {
	return &Detector{fetcher: fetcher}
}

// IsGitBook fetches url and reports whether any GitBook fingerprint appears
// in the body. The check costs one network request; fetch errors propagate
// without retry.
func (d *Detector) IsGitBook(ctx context.Context, url string) (bool, error) {
	body, err := d.fetcher.Fetch(ctx, url)
	if err != nil {
		return false, err
	}

	lower := strings.ToLower(body)
	for _, indicator := range gitbookIndicators {
		if strings.Contains(lower, indicator) {
			return true, nil
		}
	}
	return false, nil
}
