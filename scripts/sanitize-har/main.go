// Sanitizes a recorded explorer session HAR before it is committed as a
// test recording: auth/session material is redacted, public chain data
// (wallet addresses, transaction hashes) is kept.
//
// Usage:
//
//	go run ./scripts/sanitize-har -in recording.har.json -out sanitized.har.json
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/grez-lucas/galascan-scraper/internal/scraper/testutil"
)

func main() {
	inPath := flag.String("in", "", "Input HAR file (simplified or Chrome DevTools export)")
	outPath := flag.String("out", "", "Output path (default: <in>.sanitized.json)")
	flag.Parse()

	if *inPath == "" {
		fmt.Println("Usage: go run ./scripts/sanitize-har -in=recording.har.json [-out=sanitized.har.json]")
		os.Exit(1)
	}

	out := *outPath
	if out == "" {
		out = *inPath + ".sanitized.json"
	}

	har, err := testutil.LoadHAR(*inPath)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}

	sanitized := testutil.SanitizeHAR(har)

	if err := testutil.SaveHAR(out, sanitized); err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ Sanitized %d entries -> %s\n", len(sanitized.Entries), out)
}
