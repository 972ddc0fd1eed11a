// Package crawl provides GitBook site detection, link discovery, and the
// fetch-convert-save pipeline.
package crawl

import (
	"context"
	"log/slog"
	"net/url"
	"sort"
	"strings"

	"github.com/fwojciec/gitbooktext"
)

// assetExtensions is the denylist of binary asset extensions excluded from
// discovery. The list may grow, but shrinking it would change which pages a
// crawl produces.
var assetExtensions = []string{".pdf", ".zip", ".jpg", ".png"}

// Crawler discovers documentation links by same-domain traversal.
type Crawler struct {
	Fetcher gitbooktext.Fetcher
	Links   gitbooktext.LinkExtractor
	Logger  *slog.Logger
}

// Discover traverses the site reachable from baseURL and returns every
// eligible document URL, normalized, deduplicated, and sorted
// lexicographically.
//
// Traversal is sequential and iterative: the visited set, frontier, and
// result set are locals of one invocation and are dropped when it returns.
// A malformed baseURL or a failed fetch of the seed page is fatal; any later
// per-page failure is logged and only drops that page's outgoing links, since
// the site graph may contain dead links. No page or depth cap is imposed, so
// traversal terminates only on a finite page graph.
func (c *Crawler) Discover(ctx context.Context, baseURL string) ([]string, error) {
	base, err := url.Parse(baseURL)
	if err != nil || base.Host == "" {
		return nil, gitbooktext.Errorf(gitbooktext.EINVALID, "invalid base URL %q", baseURL)
	}

	frontier := NewFrontier()
	frontier.Push(NormalizeURL(baseURL))
	visited := make(map[string]bool)
	result := make(map[string]bool)

	for {
		current, ok := frontier.Pop()
		if !ok {
			break
		}
		if visited[current] {
			continue
		}
		visited[current] = true

		c.logger().Info("exploring", "url", current)

		body, err := c.Fetcher.Fetch(ctx, current)
		if err != nil {
			if len(visited) == 1 {
				// The seed page must be reachable.
				return nil, err
			}
			c.logger().Warn("fetch failed", "url", current, "err", err)
			continue
		}

		links, err := c.Links.ExtractLinks(body, current)
		if err != nil {
			c.logger().Warn("parse failed", "url", current, "err", err)
			continue
		}

		for _, link := range links {
			if !eligible(link, base.Host) {
				continue
			}
			normalized := NormalizeURL(link)
			result[normalized] = true
			if !visited[normalized] {
				frontier.Push(normalized)
			}
		}
	}

	urls := make([]string, 0, len(result))
	for u := range result {
		urls = append(urls, u)
	}
	sort.Strings(urls)

	c.logger().Info("discovery finished", "pages", len(urls), "visited", len(visited))
	return urls, nil
}

func (c *Crawler) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

// FilterEligible applies the crawler's eligibility rules to externally
// discovered URLs (for example from a sitemap) and returns the normalized,
// deduplicated, sorted result.
func FilterEligible(urls []string, baseURL string) ([]string, error) {
	base, err := url.Parse(baseURL)
	if err != nil || base.Host == "" {
		return nil, gitbooktext.Errorf(gitbooktext.EINVALID, "invalid base URL %q", baseURL)
	}

	result := make(map[string]bool)
	for _, u := range urls {
		if eligible(u, base.Host) {
			result[NormalizeURL(u)] = true
		}
	}

	filtered := make([]string, 0, len(result))
	for u := range result {
		filtered = append(filtered, u)
	}
	sort.Strings(filtered)
	return filtered, nil
}

// NormalizeURL strips trailing slashes, producing the canonical form under
// which URLs are compared and stored.
func NormalizeURL(rawURL string) string {
	return strings.TrimRight(rawURL, "/")
}

// eligible reports whether a resolved link may enter the result set: it must
// share the crawl seed's host exactly (no subdomain matching), contain no
// fragment separator, and not end in a denylisted asset extension.
func eligible(link, host string) bool {
	u, err := url.Parse(link)
	if err != nil || u.Host != host {
		return false
	}
	if strings.Contains(link, "#") {
		return false
	}
	for _, ext := range assetExtensions {
		if strings.HasSuffix(link, ext) {
			return false
		}
	}
	return true
}
