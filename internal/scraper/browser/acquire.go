package browser

import (
	"errors"
	"fmt"
)

// ErrNoBackend means every automation backend failed to produce a session.
// This is the only browser-level error surfaced as a hard abort.
var ErrNoBackend = errors.New("no suitable browser backend found")

// Constructor builds a Session. Constructors are tried in order by Acquire.
type Constructor func() (Session, error)

// DefaultConstructors returns the fixed backend order: rod first,
// chromedp as fallback.
func DefaultConstructors() []Constructor {
	return []Constructor{
		func() (Session, error) { return NewRodSession() },
		func() (Session, error) { return NewChromedpSession() },
	}
}

// Acquire tries each constructor in order and returns the first session.
// If every constructor fails, it returns ErrNoBackend wrapping the
// per-backend causes.
func Acquire(constructors ...Constructor) (Session, error) {
	if len(constructors) == 0 {
		constructors = DefaultConstructors()
	}

	var causes []error
	for _, construct := range constructors {
		session, err := construct()
		if err == nil {
			return session, nil
		}
		causes = append(causes, err)
	}

	return nil, fmt.Errorf("%w: %w", ErrNoBackend, errors.Join(causes...))
}
