// Package explorer defines the common structs and logic used throughout
// blockchain explorer scraper implementations.
package explorer

import (
	"time"

	"github.com/shopspring/decimal"
)

const StartDateLayout = "2006-01-02"

// WalletQuery is the immutable input for a scrape run. The address may carry
// a chain prefix separated by "|" (e.g. "eth|Ce74B68cd...").
type WalletQuery struct {
	Address   string
	StartDate time.Time
}

// NewWalletQuery validates the raw CLI inputs. The start date must be
// YYYY-MM-DD; anything else is a fatal input error.
func NewWalletQuery(address, startDate string) (WalletQuery, error) {
	t, err := time.Parse(StartDateLayout, startDate)
	if err != nil {
		return WalletQuery{}, &ScraperError{
			Operation: "ParseStartDate",
			Cause:     ErrInvalidStartDate,
			Details:   startDate,
		}
	}
	return WalletQuery{Address: address, StartDate: t}, nil
}

// TokenAmount is one amount+symbol pair found in rendered text.
type TokenAmount struct {
	Amount decimal.Decimal `json:"amount"`
	Symbol string          `json:"symbol"`
}

// TransactionRecord is a sparse, best-effort record assembled from a single
// page element or link. Every field is optional; any subset may be present.
type TransactionRecord struct {
	Hash   string        `json:"hash,omitempty"`
	Date   string        `json:"date,omitempty"`
	Type   string        `json:"type,omitempty"`
	Tokens []TokenAmount `json:"tokens,omitempty"`
	Link   string        `json:"link,omitempty"`
}

const (
	TransactionTypeSwap = "swap"
	TransactionTypeLink = "link"
)

// IsSwap reports whether the record is classified as a token exchange,
// either by keyword or by carrying token amounts.
func (r TransactionRecord) IsSwap() bool {
	return r.Type == TransactionTypeSwap || len(r.Tokens) > 0
}

// Meaningful reports whether a text-derived record is worth keeping.
// A record with only a date and/or type is discarded.
func (r TransactionRecord) Meaningful() bool {
	return r.Hash != "" || len(r.Tokens) > 0
}

// Balances maps token symbol to quantity. Rebuilt fully on each run;
// later matches for the same symbol overwrite earlier ones.
type Balances map[string]decimal.Decimal

// ScrapeResult is the aggregate output of one run. It is assembled once,
// never mutated afterwards, and written once.
type ScrapeResult struct {
	Wallet           string              `json:"wallet"`
	ScrapedAt        time.Time           `json:"scraped_at"`
	StartDate        time.Time           `json:"start_date"`
	Transactions     []TransactionRecord `json:"transactions"`
	Balances         Balances            `json:"balances"`
	PageSourceLength int                 `json:"page_source_length"`
}

// Swaps returns the transactions classified as swaps, in extraction order.
func (r *ScrapeResult) Swaps() []TransactionRecord {
	swaps := make([]TransactionRecord, 0, len(r.Transactions))
	for _, tx := range r.Transactions {
		if tx.IsSwap() {
			swaps = append(swaps, tx)
		}
	}
	return swaps
}
