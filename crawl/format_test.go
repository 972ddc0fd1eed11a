package crawl_test

import (
	"testing"

	"github.com/fwojciec/gitbooktext/crawl"
	"github.com/stretchr/testify/assert"
)

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0 B", crawl.FormatBytes(0))
	assert.Equal(t, "512 B", crawl.FormatBytes(512))
	assert.Equal(t, "1.0 KB", crawl.FormatBytes(1024))
	assert.Equal(t, "1.5 KB", crawl.FormatBytes(1536))
	assert.Equal(t, "2.0 MB", crawl.FormatBytes(2*1024*1024))
}
