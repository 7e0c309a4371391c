package report

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/grez-lucas/galascan-scraper/internal/scraper/explorer"
)

func sampleResult() *explorer.ScrapeResult {
	return &explorer.ScrapeResult{
		Wallet:    "eth|Ce74B68cd1e9786F4BD3b9f7152D6151695A0bA5",
		ScrapedAt: time.Date(2025, 9, 22, 10, 0, 0, 0, time.UTC),
		StartDate: time.Date(2025, 9, 22, 0, 0, 0, 0, time.UTC),
		Transactions: []explorer.TransactionRecord{
			{Hash: "0x01", Type: explorer.TransactionTypeSwap},
			{Hash: "0x02"},
			{Hash: "0x03", Tokens: []explorer.TokenAmount{{Amount: decimal.NewFromInt(5), Symbol: "GALA"}}},
		},
		Balances: explorer.Balances{
			"GALA":  decimal.RequireFromString("99"),
			"GUSDC": decimal.RequireFromString("10.25"),
		},
		PageSourceLength: 1000,
	}
}

func TestSummarize(t *testing.T) {
	var out bytes.Buffer

	Summarize(&out, sampleResult())
	got := out.String()

	assert.Contains(t, got, "📊 STATISTICS")
	assert.Contains(t, got, "Current Balances:")
	assert.Contains(t, got, "GALA: 99")
	assert.Contains(t, got, "GUSDC: 10.25")
	assert.Contains(t, got, "Transactions Found: 3")
	assert.Contains(t, got, "Swap Transactions: 2")
	assert.Contains(t, got, "Sample Transactions:")
	assert.Contains(t, got, `"hash": "0x01"`)
	assert.Contains(t, got, `"hash": "0x03"`)
	// Non-swap records are not sampled.
	assert.NotContains(t, got, `"hash": "0x02"`)
}

func TestSummarize_SampleCap(t *testing.T) {
	res := sampleResult()
	res.Transactions = nil
	for i := 0; i < 5; i++ {
		res.Transactions = append(res.Transactions, explorer.TransactionRecord{
			Hash: fmt.Sprintf("0xswap%02d", i),
			Type: explorer.TransactionTypeSwap,
		})
	}

	var out bytes.Buffer
	Summarize(&out, res)
	got := out.String()

	assert.Contains(t, got, "Swap Transactions: 5")
	assert.Contains(t, got, "0xswap00")
	assert.Contains(t, got, "0xswap02")
	assert.NotContains(t, got, "0xswap03")
	assert.NotContains(t, got, "0xswap04")
}

func TestSummarize_NoTransactions(t *testing.T) {
	res := &explorer.ScrapeResult{
		Wallet:       "wallet",
		Transactions: []explorer.TransactionRecord{},
		Balances:     explorer.Balances{},
	}

	var out bytes.Buffer
	Summarize(&out, res)
	got := out.String()

	assert.Contains(t, got, "No transactions found")
	assert.NotContains(t, got, "Current Balances:")
}
