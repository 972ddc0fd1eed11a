package mock

import (
	"context"

	"github.com/fwojciec/gitbooktext"
)

var _ gitbooktext.PageStore = (*PageStore)(nil)

// PageStore is a mock implementation of gitbooktext.PageStore.
type PageStore struct {
	InitFn         func() error
	SaveMarkdownFn func(ctx context.Context, url, content string) error
	SaveTextFn     func(ctx context.Context, url, content string) error
}

func (s *PageStore) Init() error {
	if s.InitFn == nil {
		return nil
	}
	return s.InitFn()
}

func (s *PageStore) SaveMarkdown(ctx context.Context, url, content string) error {
	return s.SaveMarkdownFn(ctx, url, content)
}

func (s *PageStore) SaveText(ctx context.Context, url, content string) error {
	return s.SaveTextFn(ctx, url, content)
}
