package content

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Default hosts for the documentation content. The content base serves raw
// markdown; the source base is only ever rendered as a navigable link.
const (
	DefaultContentBaseURL = "https://raw.githubusercontent.com/docdeck/docs/main"
	DefaultSourceBaseURL  = "https://github.com/docdeck/docs/blob/main"
)

// Outcome is the settled state of a single fetch. A stale outcome was
// superseded by a later Begin (or by Close) and must be discarded without
// touching any shared state or surfacing a message.
type Outcome struct {
	Path    string
	Content string
	Err     error
	Stale   bool
}

// Loader fetches document content and caches it for the session. Content is
// assumed immutable while the process lives, so cache entries are never
// evicted. Errors are not cached; re-selecting a document retries. At most
// one fetch per loader may be live at a time: each Begin cancels the
// previous in-flight fetch.
type Loader struct {
	contentBase string
	sourceBase  string
	client      *http.Client

	mu     sync.Mutex
	cache  *gocache.Cache
	gen    int
	cancel context.CancelFunc
}

// NewLoader creates a loader against the given content and source bases.
func NewLoader(contentBase, sourceBase string, timeout ...time.Duration) *Loader {
	httpTimeout := 30 * time.Second
	if len(timeout) > 0 && timeout[0] > 0 {
		httpTimeout = timeout[0]
	}
	return &Loader{
		contentBase: strings.TrimRight(contentBase, "/"),
		sourceBase:  strings.TrimRight(sourceBase, "/"),
		client:      &http.Client{Timeout: httpTimeout},
		cache:       gocache.New(gocache.NoExpiration, 0),
	}
}

// Cached returns the session content for path if a fetch already succeeded.
func (l *Loader) Cached(path string) (string, bool) {
	if v, ok := l.cache.Get(path); ok {
		return v.(string), true
	}
	return "", false
}

// SourceURL builds the browse link for path. It is never fetched.
func (l *Loader) SourceURL(path string) string {
	return l.sourceBase + "/" + strings.TrimLeft(path, "/")
}

// ContentURL builds the raw content URL for path.
func (l *Loader) ContentURL(path string) string {
	return l.contentBase + "/" + strings.TrimLeft(path, "/")
}

// Begin cancels any in-flight fetch and starts one for path. The returned
// thunk blocks until the fetch settles. A thunk whose fetch was superseded
// by a later Begin, or torn down by Close, reports Stale and writes nothing
// into the cache, regardless of resolution order.
func (l *Loader) Begin(path string) func() Outcome {
	l.mu.Lock()
	if l.cancel != nil {
		l.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	l.cancel = cancel
	l.gen++
	gen := l.gen
	l.mu.Unlock()

	return func() Outcome {
		out := l.fetch(ctx, path)
		l.mu.Lock()
		defer l.mu.Unlock()
		if gen != l.gen {
			out.Stale = true
			return out
		}
		l.cancel = nil
		cancel()
		if out.Err == nil && !out.Stale {
			l.cache.Set(path, out.Content, gocache.NoExpiration)
		}
		return out
	}
}

// CancelInFlight cancels any in-flight fetch without tearing the loader
// down. The cancelled fetch settles stale and writes nothing to the cache.
// Selection changes that are answered by the cache use this to retire the
// fetch they supersede.
func (l *Loader) CancelInFlight() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.gen++
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
}

// Close cancels any in-flight fetch. Outcomes settling afterwards are stale.
func (l *Loader) Close() {
	l.CancelInFlight()
}

func (l *Loader) fetch(ctx context.Context, path string) Outcome {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.ContentURL(path), nil)
	if err != nil {
		return Outcome{Path: path, Err: fmt.Errorf("create request: %w", err)}
	}
	resp, err := l.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			// Cancellation is not an error; it must never reach the user.
			return Outcome{Path: path, Stale: true}
		}
		return Outcome{Path: path, Err: fmt.Errorf("request failed: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Outcome{Path: path, Err: fmt.Errorf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode))}
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if ctx.Err() != nil {
			return Outcome{Path: path, Stale: true}
		}
		return Outcome{Path: path, Err: fmt.Errorf("read response: %w", err)}
	}
	return Outcome{Path: path, Content: string(body)}
}
