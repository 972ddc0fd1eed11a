package mock

import (
	"context"

	"github.com/fwojciec/gitbooktext"
)

var _ gitbooktext.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of gitbooktext.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, baseURL string) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string) ([]string, error) {
	return s.DiscoverURLsFn(ctx, baseURL)
}
