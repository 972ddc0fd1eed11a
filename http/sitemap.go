package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"

	"github.com/beevik/etree"
	"github.com/fwojciec/gitbooktext"
)

// Ensure SitemapService implements gitbooktext.SitemapService.
var _ gitbooktext.SitemapService = (*SitemapService)(nil)

// SitemapService discovers page URLs from /sitemap.xml via HTTP.
// It is an alternative link source for sites whose sitemap is richer than
// their anchor graph.
type SitemapService struct {
	client *http.Client
}

// NewSitemapService creates a new SitemapService with the given HTTP client.
// If client is nil, http.DefaultClient is used.
func NewSitemapService(client *http.Client) *SitemapService {
	if client == nil {
		client = http.DefaultClient
	}
	return &SitemapService{client: client}
}

// DiscoverURLs fetches the site's sitemap.xml and returns every URL on the
// same host as baseURL, sorted and deduplicated. Sitemap indexes are
// resolved recursively; an index referencing itself is visited once.
func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string) ([]string, error) {
	base, err := url.Parse(baseURL)
	if err != nil || base.Host == "" {
		return nil, gitbooktext.Errorf(gitbooktext.EINVALID, "invalid base URL %q", baseURL)
	}

	sitemapURL := fmt.Sprintf("%s://%s/sitemap.xml", base.Scheme, base.Host)

	seen := make(map[string]bool)
	collected := make(map[string]bool)
	if err := s.processSitemap(ctx, sitemapURL, base.Host, seen, collected); err != nil {
		return nil, err
	}

	urls := make([]string, 0, len(collected))
	for u := range collected {
		urls = append(urls, u)
	}
	sort.Strings(urls)
	return urls, nil
}

// processSitemap fetches one sitemap document and collects its page URLs,
// recursing into <sitemapindex> entries.
func (s *SitemapService) processSitemap(ctx context.Context, sitemapURL, host string, seen, collected map[string]bool) error {
	if seen[sitemapURL] {
		return nil
	}
	seen[sitemapURL] = true

	body, err := s.get(ctx, sitemapURL)
	if err != nil {
		return err
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(body); err != nil {
		return gitbooktext.Errorf(gitbooktext.ENETWORK, "parse sitemap %s: %v", sitemapURL, err)
	}

	root := doc.Root()
	if root == nil {
		return gitbooktext.Errorf(gitbooktext.ENETWORK, "empty sitemap %s", sitemapURL)
	}

	switch root.Tag {
	case "sitemapindex":
		for _, sm := range root.SelectElements("sitemap") {
			loc := sm.SelectElement("loc")
			if loc == nil {
				continue
			}
			if err := s.processSitemap(ctx, loc.Text(), host, seen, collected); err != nil {
				return err
			}
		}
	case "urlset":
		for _, u := range root.SelectElements("url") {
			loc := u.SelectElement("loc")
			if loc == nil {
				continue
			}
			parsed, err := url.Parse(loc.Text())
			if err != nil || parsed.Host != host {
				continue
			}
			collected[loc.Text()] = true
		}
	}

	return nil
}

func (s *SitemapService) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, gitbooktext.Errorf(gitbooktext.EINVALID, "invalid URL %s: %v", rawURL, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, gitbooktext.Errorf(gitbooktext.ENETWORK, "fetch %s: %v", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return nil, gitbooktext.Errorf(gitbooktext.ENETWORK, "HTTP %d for %s", resp.StatusCode, rawURL)
	}

	return io.ReadAll(resp.Body)
}
