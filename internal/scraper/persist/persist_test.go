package persist

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grez-lucas/galascan-scraper/internal/scraper/explorer"
)

func sampleResult() *explorer.ScrapeResult {
	return &explorer.ScrapeResult{
		Wallet:    "eth|Ce74B68cd1e9786F4BD3b9f7152D6151695A0bA5",
		ScrapedAt: time.Date(2025, 9, 22, 10, 30, 0, 0, time.UTC),
		StartDate: time.Date(2025, 9, 22, 0, 0, 0, 0, time.UTC),
		Transactions: []explorer.TransactionRecord{
			{
				Hash:   "0xa1",
				Date:   "2025-09-20",
				Type:   explorer.TransactionTypeSwap,
				Tokens: []explorer.TokenAmount{{Amount: decimal.RequireFromString("10"), Symbol: "GALA"}},
			},
		},
		Balances:         explorer.Balances{"GALA": decimal.RequireFromString("99")},
		PageSourceLength: 24,
	}
}

func TestSave_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer
	res := sampleResult()

	saved := Writer{Dir: dir, Out: &out}.Save(res, "<html><body>ok</body></html>")

	require.NotEmpty(t, saved.DataPath)
	require.NotEmpty(t, saved.HTMLPath)
	assert.Contains(t, out.String(), "💾 Results saved to:")
	assert.Contains(t, out.String(), "📄 HTML saved to:")

	// Filename carries the 10-character wallet prefix.
	assert.Contains(t, filepath.Base(saved.DataPath), "galascan-scrape-eth|Ce74B6-")
	assert.Contains(t, filepath.Base(saved.HTMLPath), "galascan-debug-")

	data, err := os.ReadFile(saved.DataPath)
	require.NoError(t, err)

	var decoded explorer.ScrapeResult
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, res.Wallet, decoded.Wallet)
	assert.True(t, res.StartDate.Equal(decoded.StartDate))
	require.Len(t, decoded.Transactions, 1)
	assert.Equal(t, "0xa1", decoded.Transactions[0].Hash)
	assert.True(t, decoded.Balances["GALA"].Equal(decimal.RequireFromString("99")))

	html, err := os.ReadFile(saved.HTMLPath)
	require.NoError(t, err)
	assert.Equal(t, "<html><body>ok</body></html>", string(html))
}

func TestSave_ShortWalletUsesWholeAddress(t *testing.T) {
	res := sampleResult()
	res.Wallet = "abc"

	saved := Writer{Dir: t.TempDir(), Out: &bytes.Buffer{}}.Save(res, "<html></html>")

	assert.Contains(t, filepath.Base(saved.DataPath), "galascan-scrape-abc-")
}

func TestSave_WriteFailuresAreIndependent(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("running as root, directory permissions are not enforced")
	}

	// An unwritable directory fails both writes, but each is attempted and
	// logged on its own; neither aborts the run.
	blocked := filepath.Join(t.TempDir(), "out")
	require.NoError(t, os.MkdirAll(blocked, 0o555))

	var out bytes.Buffer
	saved := Writer{Dir: blocked, Out: &out}.Save(sampleResult(), "<html></html>")

	assert.Empty(t, saved.DataPath)
	assert.Empty(t, saved.HTMLPath)
	assert.Contains(t, out.String(), "❌ Failed to save results:")
	assert.Contains(t, out.String(), "❌ Failed to save debug HTML:")
}
