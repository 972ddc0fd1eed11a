package mock

import (
	"context"

	"github.com/fwojciec/gitbooktext"
)

var _ gitbooktext.Detector = (*Detector)(nil)

// Detector is a mock implementation of gitbooktext.Detector.
type Detector struct {
	IsGitBookFn func(ctx context.Context, url string) (bool, error)
}

func (d *Detector) IsGitBook(ctx context.Context, url string) (bool, error) {
	return d.IsGitBookFn(ctx, url)
}
