// Captures a rendered GalaScan wallet page into an HTML fixture for the
// parser tests. Opens a visible browser so lazy-loaded content can be
// eyeballed before capture.
//
// Usage:
//
//	go run ./scripts/capture-fixture -wallet "eth|Ce74B6..." -name wallet_page
//
// Optional .env keys: CHROME_BIN (browser binary), CAPTURE_WALLET (default
// wallet address). These affect this capture tool only, never the scraper.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/stealth"
	"github.com/joho/godotenv"

	"github.com/grez-lucas/galascan-scraper/internal/scraper/explorer/galascan"
)

const defaultFixtureDir = "internal/scraper/explorer/galascan/testdata/fixtures"

func main() {
	_ = godotenv.Load()

	wallet := flag.String("wallet", os.Getenv("CAPTURE_WALLET"), "Wallet address to capture (may contain a | chain prefix)")
	name := flag.String("name", "wallet_page", "Fixture name (written as <name>.html)")
	outputDir := flag.String("output", defaultFixtureDir, "Output directory")
	flag.Parse()

	if *wallet == "" {
		fmt.Println("Usage: go run ./scripts/capture-fixture -wallet=<address> [-name=wallet_page]")
		os.Exit(1)
	}

	if err := os.MkdirAll(*outputDir, 0o755); err != nil {
		fmt.Printf("Error creating directory: %v\n", err)
		os.Exit(1)
	}

	l := launcher.New().
		Headless(false).
		Set("window-size", "1920,1080")
	if bin := os.Getenv("CHROME_BIN"); bin != "" {
		l = l.Bin(bin)
	}

	browser := rod.New().ControlURL(l.MustLaunch()).MustConnect()
	defer browser.MustClose()

	page := stealth.MustPage(browser)

	url := galascan.WalletURL(*wallet)
	fmt.Printf("📄 Loading page: %s\n", url)
	page.MustNavigate(url)

	fmt.Println("⏳ Letting the page settle...")
	time.Sleep(5 * time.Second)

	fmt.Println("📋 Scroll around until transactions are visible, then press ENTER to capture.")
	_, _ = bufio.NewReader(os.Stdin).ReadString('\n')

	html, err := page.HTML()
	if err != nil {
		fmt.Printf("❌ Failed to read page markup: %v\n", err)
		os.Exit(1)
	}

	path := filepath.Join(*outputDir, *name+".html")
	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		fmt.Printf("❌ Failed to write fixture: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ Fixture saved to: %s (%d bytes)\n", path, len(html))
	fmt.Println("⚠️ Review the fixture before committing; strip anything that looks private.")
}
