package regexp_test

import (
	"testing"

	gbregexp "github.com/fwojciec/gitbooktext/regexp"
	"github.com/stretchr/testify/assert"
)

func TestSanitizer_Sanitize(t *testing.T) {
	t.Parallel()

	s := gbregexp.NewSanitizer()

	t.Run("titled code block keeps title then body", func(t *testing.T) {
		t.Parallel()
		in := `{% code title="example.rs" %}fn main() {}{% endcode %}`
		assert.Equal(t, "example.rs fn main() {}", s.Sanitize(in))
	})

	t.Run("titled code block with extra attributes", func(t *testing.T) {
		t.Parallel()
		in := `{% code lineNumbers="true" title="main.go" overflow="wrap" %}x := 1{% endcode %}`
		out := s.Sanitize(in)
		assert.Equal(t, "main.go x := 1", out)
	})

	t.Run("untitled code block keeps only the body", func(t *testing.T) {
		t.Parallel()
		in := `{% code %}let x = 1;{% endcode %}`
		assert.Equal(t, "let x = 1;", s.Sanitize(in))
	})

	t.Run("self-closing titled tag keeps the title", func(t *testing.T) {
		t.Parallel()
		in := `see {% file title="report.txt" %} for details`
		assert.Equal(t, "see report.txt for details", s.Sanitize(in))
	})

	t.Run("generic tags are stripped entirely", func(t *testing.T) {
		t.Parallel()
		in := `prefix {% hint style="info" %} middle {% endhint %} suffix`
		assert.Equal(t, "prefix middle suffix", s.Sanitize(in))
	})

	t.Run("multi-line code body survives via the tag fallbacks", func(t *testing.T) {
		t.Parallel()
		// The body patterns are single-line oriented: a body containing
		// newlines is not matched by them, so the opening tag falls through
		// to the title pass and the closing tag to the catch-all.
		in := "{% code title=\"a.go\" %}\nline one\nline two\n{% endcode %}"
		assert.Equal(t, "a.go line one line two", s.Sanitize(in))
	})

	t.Run("strips quotes, hyphens, and pipes", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "say helloworld", s.Sanitize(`say "hello-world"`))
		assert.Equal(t, "a b", s.Sanitize("a | b"))
	})

	t.Run("collapses whitespace runs and trims", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "a b c", s.Sanitize("  a\n\n b\t\tc  "))
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()
		inputs := []string{
			`{% code title="example.rs" %}fn main() {}{% endcode %}`,
			`prefix {% hint style="info" %} middle {% endhint %} suffix`,
			"plain text with   spacing\nand lines",
			`"quoted" and hyphen-ated`,
			"",
		}
		for _, in := range inputs {
			once := s.Sanitize(in)
			assert.Equal(t, once, s.Sanitize(once), "input %q", in)
		}
	})

	t.Run("leaves annotation-free text alone apart from normalization", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "nothing to do here", s.Sanitize("nothing to do here"))
	})
}
