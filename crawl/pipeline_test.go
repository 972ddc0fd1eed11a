package crawl_test

import (
	"context"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/fwojciec/gitbooktext"
	"github.com/fwojciec/gitbooktext/crawl"
	"github.com/fwojciec/gitbooktext/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingStore collects saves keyed by URL. Safe for concurrent use.
type recordingStore struct {
	mu       sync.Mutex
	inited   bool
	markdown map[string]string
	text     map[string]string
}

func newRecordingStore() *recordingStore {
	return &recordingStore{
		markdown: make(map[string]string),
		text:     make(map[string]string),
	}
}

func (s *recordingStore) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inited = true
	return nil
}

func (s *recordingStore) SaveMarkdown(ctx context.Context, url, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.inited {
		return gitbooktext.Errorf(gitbooktext.EIO, "store not initialized")
	}
	s.markdown[url] = content
	return nil
}

func (s *recordingStore) SaveText(ctx context.Context, url, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.inited {
		return gitbooktext.Errorf(gitbooktext.EIO, "store not initialized")
	}
	s.text[url] = content
	return nil
}

func newPipeline(store gitbooktext.PageStore, broken map[string]bool) *crawl.Pipeline {
	return &crawl.Pipeline{
		Fetcher: &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				if broken[url] {
					return "", gitbooktext.Errorf(gitbooktext.ENETWORK, "HTTP 500 for %s", url)
				}
				return "# " + url, nil
			},
		},
		Converter: &mock.Converter{
			ConvertFn: func(markdown string) (string, error) {
				return strings.TrimPrefix(markdown, "# "), nil
			},
		},
		Sanitizer: &mock.Sanitizer{
			SanitizeFn: func(text string) string {
				return strings.TrimSpace(text)
			},
		},
		Store: store,
	}
}

func TestPipeline_ProcessAll(t *testing.T) {
	t.Parallel()

	t.Run("partial failure yields counts, not an error", func(t *testing.T) {
		t.Parallel()

		urls := []string{
			"https://x.com/a.md",
			"https://x.com/b.md",
			"https://x.com/c.md",
		}
		broken := map[string]bool{"https://x.com/b.md": true}
		store := newRecordingStore()

		p := newPipeline(store, broken)
		result, err := p.ProcessAll(context.Background(), urls, nil)
		require.NoError(t, err)

		assert.Equal(t, 2, result.Saved)
		assert.Equal(t, 1, result.Failed)
		assert.Len(t, store.markdown, 2, "a failed fetch must write no files")
		assert.Len(t, store.text, 2)
	})

	t.Run("appends the .md suffix idempotently", func(t *testing.T) {
		t.Parallel()

		store := newRecordingStore()
		p := newPipeline(store, nil)

		result, err := p.ProcessAll(context.Background(), []string{
			"https://x.com/plain",
			"https://x.com/already.md",
		}, nil)
		require.NoError(t, err)
		assert.Equal(t, 2, result.Saved)

		assert.Contains(t, store.markdown, "https://x.com/plain.md")
		assert.Contains(t, store.markdown, "https://x.com/already.md")
		assert.NotContains(t, store.markdown, "https://x.com/already.md.md")
	})

	t.Run("converts then sanitizes before saving text", func(t *testing.T) {
		t.Parallel()

		store := newRecordingStore()
		p := newPipeline(store, nil)

		_, err := p.ProcessAll(context.Background(), []string{"https://x.com/page"}, nil)
		require.NoError(t, err)

		assert.Equal(t, "# https://x.com/page.md", store.markdown["https://x.com/page.md"])
		assert.Equal(t, "https://x.com/page.md", store.text["https://x.com/page.md"])
	})

	t.Run("reports every outcome exactly once", func(t *testing.T) {
		t.Parallel()

		urls := []string{"https://x.com/a", "https://x.com/b", "https://x.com/c"}
		broken := map[string]bool{"https://x.com/c.md": true}
		store := newRecordingStore()
		p := newPipeline(store, broken)

		var mu sync.Mutex
		var got []string
		var failures int
		result, err := p.ProcessAll(context.Background(), urls, func(o crawl.Outcome) {
			mu.Lock()
			defer mu.Unlock()
			got = append(got, o.URL)
			if o.Err != nil {
				failures++
			}
		})
		require.NoError(t, err)

		sort.Strings(got)
		assert.Equal(t, []string{"https://x.com/a.md", "https://x.com/b.md", "https://x.com/c.md"}, got)
		assert.Equal(t, 1, failures)
		assert.Equal(t, result.Failed, failures)
	})

	t.Run("a store init failure aborts before any task runs", func(t *testing.T) {
		t.Parallel()

		store := &mock.PageStore{
			InitFn: func() error {
				return gitbooktext.Errorf(gitbooktext.EIO, "create dir: denied")
			},
		}
		p := newPipeline(store, nil)

		_, err := p.ProcessAll(context.Background(), []string{"https://x.com/a"}, nil)
		require.Error(t, err)
		assert.Equal(t, gitbooktext.EIO, gitbooktext.ErrorCode(err))
	})

	t.Run("a write failure counts as a task failure", func(t *testing.T) {
		t.Parallel()

		store := &mock.PageStore{
			SaveMarkdownFn: func(ctx context.Context, url, content string) error {
				return gitbooktext.Errorf(gitbooktext.EIO, "disk full")
			},
			SaveTextFn: func(ctx context.Context, url, content string) error {
				return nil
			},
		}
		p := newPipeline(store, nil)

		result, err := p.ProcessAll(context.Background(), []string{"https://x.com/a"}, nil)
		require.NoError(t, err)
		assert.Equal(t, 0, result.Saved)
		assert.Equal(t, 1, result.Failed)
	})

	t.Run("honors the concurrency bound", func(t *testing.T) {
		t.Parallel()

		var mu sync.Mutex
		inflight, peak := 0, 0

		store := newRecordingStore()
		p := newPipeline(store, nil)
		p.Concurrency = 2
		p.Fetcher = &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				mu.Lock()
				inflight++
				if inflight > peak {
					peak = inflight
				}
				mu.Unlock()
				defer func() {
					mu.Lock()
					inflight--
					mu.Unlock()
				}()
				return "body", nil
			},
		}

		urls := []string{"https://x.com/a", "https://x.com/b", "https://x.com/c", "https://x.com/d"}
		result, err := p.ProcessAll(context.Background(), urls, nil)
		require.NoError(t, err)
		assert.Equal(t, 4, result.Saved)
		assert.LessOrEqual(t, peak, 2)
	})
}
