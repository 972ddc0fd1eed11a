package fs

import (
	"os"
	"strings"

	"github.com/fwojciec/gitbooktext"
)

// WriteLinkList writes one URL per line, fully overwriting any existing
// file at path.
func WriteLinkList(path string, urls []string) error {
	content := strings.Join(urls, "\n")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return gitbooktext.Errorf(gitbooktext.EIO, "write %s: %v", path, err)
	}
	return nil
}

// ReadLinkList reads URLs one per line. Blank and whitespace-only lines are
// ignored; duplicates are dropped, keeping first occurrence order.
func ReadLinkList(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, gitbooktext.Errorf(gitbooktext.EIO, "read %s: %v", path, err)
	}

	seen := make(map[string]bool)
	var urls []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || seen[line] {
			continue
		}
		seen[line] = true
		urls = append(urls, line)
	}
	return urls, nil
}
