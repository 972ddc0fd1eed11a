package gitbooktext

import "context"

// SitemapService discovers page URLs from website sitemaps.
type SitemapService interface {
	// DiscoverURLs finds all same-host URLs from a site's sitemap.xml.
	// Sitemap indexes are resolved recursively.
	DiscoverURLs(ctx context.Context, baseURL string) ([]string, error)
}
