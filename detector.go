package gitbooktext

import "context"

// Detector identifies GitBook sites.
type Detector interface {
	// IsGitBook fetches the page at url and reports whether it carries any
	// of the known GitBook generator fingerprints. The check costs one
	// network request; fetch errors propagate without retry.
	IsGitBook(ctx context.Context, url string) (bool, error)
}
