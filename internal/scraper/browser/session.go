// Package browser provides the controllable browser capability used by the
// scraper, with interchangeable automation backends.
package browser

import (
	"context"
	"time"
)

// Launch configuration is fixed, not parameterized. Every backend applies
// the same flags so extraction sees the same rendered surface regardless of
// which backend won acquisition.
const (
	WindowWidth  = 1920
	WindowHeight = 1080

	UserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36"
)

// Session is a remote-controllable rendering surface. It is the one shared,
// exclusively-owned resource of a run: acquired once, used by a single
// goroutine, and closed exactly once on every exit path.
type Session interface {
	// Navigate loads the given URL and returns once navigation committed.
	Navigate(ctx context.Context, url string) error

	// WaitVisible blocks until an element matching selector is present,
	// or the timeout elapses (returning an error).
	WaitVisible(ctx context.Context, selector string, timeout time.Duration) error

	// ScrollToBottom scrolls the viewport to the bottom of the document.
	ScrollToBottom(ctx context.Context) error

	// DocumentHeight returns the current document scroll height in pixels.
	DocumentHeight(ctx context.Context) (int, error)

	// HTML returns the full rendered page markup.
	HTML(ctx context.Context) (string, error)

	// Backend names the automation backend that produced this session.
	Backend() string

	// Close shuts the browser down. Safe to call on every exit path.
	Close() error
}
