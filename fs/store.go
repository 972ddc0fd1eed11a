// Package fs provides flat-file storage for fetched pages and the link-list
// artifact.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/gitbooktext"
)

// filenameReplacer rewrites the characters that cannot appear in a flat
// file name.
var filenameReplacer = strings.NewReplacer("/", "_", ":", "_")

// Filename converts a URL into a flat, deterministic file name by replacing
// every '/' and ':' with '_'. Distinct URLs differing only in other
// characters can collide; the last writer wins.
// Example: https://example.com/path/to/page → https___example.com_path_to_page
func Filename(url string) string {
	return filenameReplacer.Replace(url)
}

// Ensure Store implements gitbooktext.PageStore at compile time.
var _ gitbooktext.PageStore = (*Store)(nil)

// Store persists pages under a base directory: raw markdown sources in md/,
// sanitized plain text in txt/. Files are write-only targets addressed by a
// deterministic per-URL key, so concurrent saves never contend for the same
// file unless two URLs collide under Filename.
type Store struct {
	baseDir string
}

// NewStore creates a Store rooted at baseDir.
func NewStore(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

// MarkdownDir returns the directory holding raw document sources.
func (s *Store) MarkdownDir() string {
	return filepath.Join(s.baseDir, "md")
}

// TextDir returns the directory holding converted plain text.
func (s *Store) TextDir() string {
	return filepath.Join(s.baseDir, "txt")
}

// Init creates both output directories. It must complete before concurrent
// saves start; directory creation itself is not concurrency-safe.
func (s *Store) Init() error {
	for _, dir := range []string{s.MarkdownDir(), s.TextDir()} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return gitbooktext.Errorf(gitbooktext.EIO, "create %s: %v", dir, err)
		}
	}
	return nil
}

// SaveMarkdown writes the unmodified fetched document source.
func (s *Store) SaveMarkdown(ctx context.Context, url, content string) error {
	return s.write(filepath.Join(s.MarkdownDir(), Filename(url)+".md"), content)
}

// SaveText writes the converted and sanitized plain text.
func (s *Store) SaveText(ctx context.Context, url, content string) error {
	return s.write(filepath.Join(s.TextDir(), Filename(url)+".txt"), content)
}

func (s *Store) write(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return gitbooktext.Errorf(gitbooktext.EIO, "write %s: %v", path, err)
	}
	return nil
}
