// Package galascan defines the scraper and parsing logic to process the
// GalaScan wallet explorer.
package galascan

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/shopspring/decimal"

	"github.com/grez-lucas/galascan-scraper/internal/scraper/explorer"
)

var (
	// Comma-grouped decimal immediately followed by a known token symbol.
	// Symbols match case-insensitively and are normalized to uppercase.
	tokenAmountPattern = regexp.MustCompile(`(?i)([\d,]+\.?\d*)\s*(GALA|GUSDC|GWETH|GUSDT)`)

	txHashPattern = regexp.MustCompile(`0x[a-fA-F0-9]{64}`)

	// Date patterns in priority order; only the first that matches is kept.
	datePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\d{4}-\d{2}-\d{2}`),
		regexp.MustCompile(`\d{1,2}/\d{1,2}/\d{4}`),
		regexp.MustCompile(`(?i)\d+\s*(minute|hour|day)s?\s*ago`),
	}

	swapKeywordPattern = regexp.MustCompile(`(?i)swap|trade|exchange`)
)

// WalletURL builds the wallet detail URL. Only the chain-prefix separator
// "|" is percent-encoded; all other characters pass through unescaped.
func WalletURL(address string) string {
	return BaseWalletURL + strings.ReplaceAll(address, "|", "%7C")
}

// ExtractBalances scans the rendered markup with each balance selector
// candidate and pattern-matches element text against the token-amount
// grammar. Later matches for the same symbol overwrite earlier ones.
// An empty map is a valid outcome, not an error.
func ExtractBalances(html string) (explorer.Balances, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", explorer.ErrParsingFailed, err)
	}

	balances := explorer.Balances{}
	for _, selector := range BalanceSelectors {
		doc.Find(selector).Each(func(_ int, el *goquery.Selection) {
			match := tokenAmountPattern.FindStringSubmatch(el.Text())
			if match == nil {
				return
			}
			amount, err := parseAmount(match[1])
			if err != nil {
				return
			}
			balances[strings.ToUpper(match[2])] = amount
		})
	}

	return balances, nil
}

// ExtractTransactions scans the rendered markup with each transaction-row
// selector candidate (first 20 matches per selector) and parses every row's
// text, then separately collects hash-looking link anchors (first 10) whose
// destination contains "transaction". There is no cross-selector
// deduplication; a failing strategy contributes zero records.
func ExtractTransactions(html string) ([]explorer.TransactionRecord, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", explorer.ErrParsingFailed, err)
	}

	transactions := make([]explorer.TransactionRecord, 0)

	for _, selector := range TransactionRowSelectors {
		doc.Find(selector).EachWithBreak(func(i int, row *goquery.Selection) bool {
			if i >= maxRowsPerSelector {
				return false
			}
			if tx := ParseTransactionText(row.Text()); tx != nil {
				transactions = append(transactions, *tx)
			}
			return true
		})
	}

	linkCount := 0
	doc.Find("a").EachWithBreak(func(_ int, link *goquery.Selection) bool {
		text := strings.TrimSpace(link.Text())
		if !strings.Contains(text, hashLinkTextMarker) {
			return true
		}
		linkCount++
		if linkCount > maxHashLinks {
			return false
		}

		href, _ := link.Attr("href")
		if !strings.Contains(href, transactionLinkMarker) {
			return true
		}
		transactions = append(transactions, explorer.TransactionRecord{
			Hash: text,
			Link: href,
			Type: explorer.TransactionTypeLink,
		})
		return true
	})

	return transactions, nil
}

// ParseTransactionText assembles a record from one element's rendered text.
// Hash, date, type and token rules apply independently; any subset may hit.
// The record is kept only if it has a hash or a non-empty token sequence.
func ParseTransactionText(text string) *explorer.TransactionRecord {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	tx := explorer.TransactionRecord{}

	if hash := txHashPattern.FindString(text); hash != "" {
		tx.Hash = hash
	}

	for _, pattern := range datePatterns {
		if date := pattern.FindString(text); date != "" {
			tx.Date = date
			break
		}
	}

	if swapKeywordPattern.MatchString(text) {
		tx.Type = explorer.TransactionTypeSwap
	}

	tx.Tokens = ParseTokenAmounts(text)

	if !tx.Meaningful() {
		return nil
	}
	return &tx
}

// ParseTokenAmounts finds all non-overlapping amount+symbol matches in
// order of appearance. Unparseable amounts are skipped, never fatal.
func ParseTokenAmounts(text string) []explorer.TokenAmount {
	matches := tokenAmountPattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}

	tokens := make([]explorer.TokenAmount, 0, len(matches))
	for _, m := range matches {
		amount, err := parseAmount(m[1])
		if err != nil {
			continue
		}
		tokens = append(tokens, explorer.TokenAmount{
			Amount: amount,
			Symbol: strings.ToUpper(m[2]),
		})
	}
	if len(tokens) == 0 {
		return nil
	}
	return tokens
}

// parseAmount strips digit grouping before the numeric parse. The grammar
// admits a trailing decimal point ("1,234."), which decimal rejects.
func parseAmount(s string) (decimal.Decimal, error) {
	clean := strings.ReplaceAll(s, ",", "")
	clean = strings.TrimSuffix(clean, ".")
	return decimal.NewFromString(clean)
}
