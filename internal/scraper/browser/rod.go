package browser

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/stealth"
)

const rodBackendName = "rod"

type rodConfig struct {
	hijacker func(*rod.Hijack)
}

// RodOption configures the rod backend.
type RodOption func(*rodConfig)

// WithHijacker installs a request hijack handler on the browser. Used by the
// HAR replay harness to serve recorded responses instead of the network.
func WithHijacker(handler func(*rod.Hijack)) RodOption {
	return func(c *rodConfig) {
		c.hijacker = handler
	}
}

type rodSession struct {
	launcher *launcher.Launcher
	browser  *rod.Browser
	router   *rod.HijackRouter
	page     *rod.Page
}

// NewRodSession launches a headless Chromium via rod. This is the primary
// backend.
func NewRodSession(opts ...RodOption) (Session, error) {
	cfg := rodConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	l := launcher.New().
		Headless(true).
		Set("disable-gpu").
		Set("no-sandbox").
		Set("disable-dev-shm-usage").
		Set("window-size", fmt.Sprintf("%d,%d", WindowWidth, WindowHeight)).
		Set("user-agent", UserAgent)

	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("rod: launch browser: %w", err)
	}

	b := rod.New().ControlURL(controlURL)
	if err := b.Connect(); err != nil {
		l.Cleanup()
		return nil, fmt.Errorf("rod: connect browser: %w", err)
	}

	s := &rodSession{launcher: l, browser: b}

	if cfg.hijacker != nil {
		s.router = b.HijackRequests()
		s.router.MustAdd("*", cfg.hijacker)
		go s.router.Run()
	}

	// Stealth page creation avoids the most common headless fingerprints.
	page, err := stealth.Page(b)
	if err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("rod: create page: %w", err)
	}
	s.page = page

	return s, nil
}

func (s *rodSession) Navigate(ctx context.Context, url string) error {
	if err := s.page.Context(ctx).Navigate(url); err != nil {
		return fmt.Errorf("rod: navigate %s: %w", url, err)
	}
	return nil
}

func (s *rodSession) WaitVisible(ctx context.Context, selector string, timeout time.Duration) error {
	_, err := s.page.Context(ctx).Timeout(timeout).Element(selector)
	if err != nil {
		return fmt.Errorf("rod: wait for %q: %w", selector, err)
	}
	return nil
}

func (s *rodSession) ScrollToBottom(ctx context.Context) error {
	_, err := s.page.Context(ctx).Eval(`() => window.scrollTo(0, document.body.scrollHeight)`)
	if err != nil {
		return fmt.Errorf("rod: scroll to bottom: %w", err)
	}
	return nil
}

func (s *rodSession) DocumentHeight(ctx context.Context) (int, error) {
	res, err := s.page.Context(ctx).Eval(`() => document.body.scrollHeight`)
	if err != nil {
		return 0, fmt.Errorf("rod: read document height: %w", err)
	}
	return res.Value.Int(), nil
}

func (s *rodSession) HTML(ctx context.Context) (string, error) {
	html, err := s.page.Context(ctx).HTML()
	if err != nil {
		return "", fmt.Errorf("rod: read page markup: %w", err)
	}
	return html, nil
}

func (s *rodSession) Backend() string { return rodBackendName }

func (s *rodSession) Close() error {
	var errs []error
	if s.router != nil {
		if err := s.router.Stop(); err != nil {
			errs = append(errs, err)
		}
	}
	if s.browser != nil {
		if err := s.browser.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if s.launcher != nil {
		s.launcher.Cleanup()
	}
	return errors.Join(errs...)
}
