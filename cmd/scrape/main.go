// Command scrape retrieves wallet activity from the GalaScan explorer by
// driving a headless browser, and writes a JSON result plus an HTML snapshot.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/grez-lucas/galascan-scraper/internal/scraper"
	"github.com/grez-lucas/galascan-scraper/internal/scraper/explorer"
)

func main() {
	if len(os.Args) < 3 {
		fmt.Fprintln(os.Stderr, "Usage: scrape <wallet-address> <start-date>")
		fmt.Fprintln(os.Stderr, `Example: scrape "eth|Ce74B68cd1e9786F4BD3b9f7152D6151695A0bA5" "2025-09-22"`)
		os.Exit(1)
	}

	query, err := explorer.NewWalletQuery(os.Args[1], os.Args[2])
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}

	if err := scraper.Run(context.Background(), query, scraper.Options{}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
