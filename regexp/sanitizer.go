// Package regexp provides a regexp-based implementation of
// gitbooktext.Sanitizer.
package regexp

import (
	"regexp"
	"strings"

	"github.com/fwojciec/gitbooktext"
)

// Ensure Sanitizer implements gitbooktext.Sanitizer at compile time.
var _ gitbooktext.Sanitizer = (*Sanitizer)(nil)

// passes are the rewrite steps, applied strictly in order. The ordering is
// load-bearing: the attribute patterns use double quotes as delimiters, so
// the cosmetic character strip must run after them, and the body patterns do
// not match newlines, so whitespace collapsing must run last or multi-line
// bodies would never reach the collapse step intact.
var passes = []struct {
	pattern *regexp.Regexp
	replace string
}{
	// Titled code block: keep "title body".
	{regexp.MustCompile(`\{%\s*code[^}]*title\s*=\s*"([^"]+)"[^}]*%\}(.*?)\{%\s*endcode\s*%\}`), "$1 $2"},
	// Remaining untitled code block: keep the body.
	{regexp.MustCompile(`\{%\s*code[^}]*%\}(.*?)\{%\s*endcode\s*%\}`), "$1"},
	// Remaining self-closing tag with a title attribute: keep the title.
	{regexp.MustCompile(`\{%\s*[^}]*title\s*=\s*"([^"]+)"[^}]*%\}`), "$1"},
	// Catch-all for every remaining tag.
	{regexp.MustCompile(`\{%\s*[^}]*%\}`), ""},
	// Cosmetic characters, safe to strip once no pattern needs them.
	{regexp.MustCompile(`["|-]`), ""},
	// Whitespace runs, including newlines that survived the body patterns.
	{regexp.MustCompile(`\s+`), " "},
}

// Sanitizer rewrites GitBook templated annotations out of plain text.
type Sanitizer struct{}

// NewSanitizer creates a new Sanitizer.
func NewSanitizer() *Sanitizer {
	return &Sanitizer{}
}

// Sanitize applies the rewrite passes in order and trims the result.
// It is idempotent.
func (s *Sanitizer) Sanitize(text string) string {
	for _, pass := range passes {
		text = pass.pattern.ReplaceAllString(text, pass.replace)
	}
	return strings.TrimSpace(text)
}
