package scraper

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grez-lucas/galascan-scraper/internal/scraper/browser"
	"github.com/grez-lucas/galascan-scraper/internal/scraper/explorer"
)

type stubSession struct {
	html        string
	navigateErr error
	htmlErr     error
	closeErr    error
	closeCalls  int
}

func (s *stubSession) Navigate(context.Context, string) error { return s.navigateErr }

func (s *stubSession) WaitVisible(context.Context, string, time.Duration) error { return nil }

func (s *stubSession) ScrollToBottom(context.Context) error { return nil }

func (s *stubSession) DocumentHeight(context.Context) (int, error) { return 1000, nil }

func (s *stubSession) HTML(context.Context) (string, error) { return s.html, s.htmlErr }

func (s *stubSession) Backend() string { return "stub" }

func (s *stubSession) Close() error {
	s.closeCalls++
	return s.closeErr
}

func constructorFor(s *stubSession) []browser.Constructor {
	return []browser.Constructor{func() (browser.Session, error) { return s, nil }}
}

func testQuery(t *testing.T) explorer.WalletQuery {
	t.Helper()

	query, err := explorer.NewWalletQuery("eth|Ce74B68cd1e9786F4BD3b9f7152D6151695A0bA5", "2025-09-22")
	require.NoError(t, err)
	return query
}

func noSleep(time.Duration) {}

func TestRun_NoBackendIsFatal(t *testing.T) {
	failing := []browser.Constructor{
		func() (browser.Session, error) { return nil, errors.New("chrome not found") },
		func() (browser.Session, error) { return nil, errors.New("chromium not found") },
	}

	err := Run(context.Background(), testQuery(t), Options{
		Out:          &bytes.Buffer{},
		Constructors: failing,
		Sleep:        noSleep,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, browser.ErrNoBackend)
}

func TestRun_EmptyPageCompletesWithEmptyArtifact(t *testing.T) {
	session := &stubSession{html: "<html><body><main></main></body></html>"}
	dir := t.TempDir()
	var out bytes.Buffer

	err := Run(context.Background(), testQuery(t), Options{
		Out:          &out,
		OutputDir:    dir,
		Constructors: constructorFor(session),
		Sleep:        noSleep,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, session.closeCalls)

	matches, globErr := filepath.Glob(filepath.Join(dir, "galascan-scrape-*.json"))
	require.NoError(t, globErr)
	require.Len(t, matches, 1)

	data, readErr := os.ReadFile(matches[0])
	require.NoError(t, readErr)

	var result explorer.ScrapeResult
	require.NoError(t, json.Unmarshal(data, &result))
	assert.Equal(t, "eth|Ce74B68cd1e9786F4BD3b9f7152D6151695A0bA5", result.Wallet)
	assert.NotNil(t, result.Transactions)
	assert.Empty(t, result.Transactions)
	assert.Empty(t, result.Balances)

	htmlFiles, globErr := filepath.Glob(filepath.Join(dir, "galascan-debug-*.html"))
	require.NoError(t, globErr)
	require.Len(t, htmlFiles, 1)

	snapshot, readErr := os.ReadFile(htmlFiles[0])
	require.NoError(t, readErr)
	assert.Equal(t, session.html, string(snapshot))
}

func TestRun_LoadFailureStillReleasesOnce(t *testing.T) {
	session := &stubSession{navigateErr: errors.New("net::ERR_CONNECTION_RESET")}
	var out bytes.Buffer

	err := Run(context.Background(), testQuery(t), Options{
		Out:          &out,
		OutputDir:    t.TempDir(),
		Constructors: constructorFor(session),
		Sleep:        noSleep,
	})

	// The run absorbs post-acquisition failures; the caller still exits 0.
	require.NoError(t, err)
	assert.Equal(t, 1, session.closeCalls)
	assert.Contains(t, out.String(), "❌ Error:")
}

func TestRun_MarkupReadFailureStillReleasesOnce(t *testing.T) {
	session := &stubSession{htmlErr: errors.New("target crashed")}

	err := Run(context.Background(), testQuery(t), Options{
		Out:          &bytes.Buffer{},
		OutputDir:    t.TempDir(),
		Constructors: constructorFor(session),
		Sleep:        noSleep,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, session.closeCalls)
}

func TestRun_CloseErrorDoesNotPropagate(t *testing.T) {
	session := &stubSession{
		html:     "<html><body><main></main></body></html>",
		closeErr: errors.New("browser already gone"),
	}
	var out bytes.Buffer

	err := Run(context.Background(), testQuery(t), Options{
		Out:          &out,
		OutputDir:    t.TempDir(),
		Constructors: constructorFor(session),
		Sleep:        noSleep,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, session.closeCalls)
	assert.Contains(t, out.String(), "⚠️ Browser shutdown error")
}
