// Package report renders the console summary of a scrape run.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/grez-lucas/galascan-scraper/internal/scraper/explorer"
)

const sampleSwapLimit = 3

// Summarize writes the run statistics block. Purely observational; it does
// not affect the persisted artifact.
func Summarize(w io.Writer, res *explorer.ScrapeResult) {
	fmt.Fprintln(w, "\n📊 STATISTICS")
	fmt.Fprintln(w, strings.Repeat("=", 50))

	if len(res.Balances) > 0 {
		fmt.Fprintln(w, "Current Balances:")
		for token, amount := range res.Balances {
			fmt.Fprintf(w, "  %s: %s\n", token, amount)
		}
	}

	if len(res.Transactions) > 0 {
		fmt.Fprintf(w, "\nTransactions Found: %d\n", len(res.Transactions))

		swaps := res.Swaps()
		fmt.Fprintf(w, "Swap Transactions: %d\n", len(swaps))

		if len(swaps) > 0 {
			fmt.Fprintln(w, "\nSample Transactions:")
			for i, tx := range swaps {
				if i >= sampleSwapLimit {
					break
				}
				fmt.Fprintf(w, "  - %s\n", mustIndentJSON(tx))
			}
		}
	} else {
		fmt.Fprintln(w, "No transactions found")
	}

	fmt.Fprintln(w, strings.Repeat("=", 50))
}

func mustIndentJSON(v any) string {
	data, err := json.MarshalIndent(v, "    ", "    ")
	if err != nil {
		return fmt.Sprintf("%+v", v)
	}
	return string(data)
}
