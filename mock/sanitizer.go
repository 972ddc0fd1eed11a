package mock

import "github.com/fwojciec/gitbooktext"

var _ gitbooktext.Sanitizer = (*Sanitizer)(nil)

// Sanitizer is a mock implementation of gitbooktext.Sanitizer.
type Sanitizer struct {
	SanitizeFn func(text string) string
}

func (s *Sanitizer) Sanitize(text string) string {
	return s.SanitizeFn(text)
}
