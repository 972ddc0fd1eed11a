package gitbooktext

// Converter converts markdown document sources to plain text.
type Converter interface {
	// Convert flattens markdown into a plain text stream: literal text and
	// code content are kept verbatim, line breaks become newlines, and all
	// structural markup (headings, emphasis, lists, tables) is discarded.
	// The conversion is deliberately lossy.
	Convert(markdown string) (string, error)
}
