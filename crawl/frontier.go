package crawl

// Frontier is a LIFO queue of URLs awaiting a fetch attempt. Each URL is
// admitted at most once over the frontier's lifetime, including after it has
// been popped.
//
// It is not safe for concurrent use; the crawler drives it from a single
// sequential loop and never shares it.
type Frontier struct {
	stack []string
	seen  map[string]bool
}

// NewFrontier creates an empty Frontier.
func NewFrontier() *Frontier {
	return &Frontier{seen: make(map[string]bool)}
}

// Push queues a URL. Returns false if the URL was ever pushed before.
func (f *Frontier) Push(url string) bool {
	if f.seen[url] {
		return false
	}
	f.seen[url] = true
	f.stack = append(f.stack, url)
	return true
}

// Pop removes and returns the most recently pushed URL.
// The bool result is false if the frontier is empty.
func (f *Frontier) Pop() (string, bool) {
	if len(f.stack) == 0 {
		return "", false
	}
	url := f.stack[len(f.stack)-1]
	f.stack = f.stack[:len(f.stack)-1]
	return url, true
}

// Len returns the number of URLs waiting in the queue.
func (f *Frontier) Len() int {
	return len(f.stack)
}

// Seen reports whether the URL was ever pushed.
func (f *Frontier) Seen(url string) bool {
	return f.seen[url]
}
