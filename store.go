package gitbooktext

import "context"

// PageStore persists fetched pages in both raw and converted form.
// Implementations key files by a deterministic name derived from the URL;
// two URLs may collide under the derivation, in which case the last writer
// wins.
type PageStore interface {
	// Init ensures both output locations exist as writable destinations.
	// It must complete before concurrent saves begin.
	Init() error

	// SaveMarkdown persists the unmodified fetched document source.
	SaveMarkdown(ctx context.Context, url, content string) error

	// SaveText persists the converted and sanitized plain text.
	SaveText(ctx context.Context, url, content string) error
}
