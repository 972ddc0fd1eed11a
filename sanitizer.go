package gitbooktext

// Sanitizer strips GitBook templated annotations from converted text.
type Sanitizer interface {
	// Sanitize rewrites {% ... %} annotations out of text while keeping
	// their payload, then normalizes whitespace. It is idempotent:
	// sanitizing already-sanitized text returns it unchanged.
	Sanitize(text string) string
}
