// Package scraper orchestrates one scrape run end to end: acquire a browser
// session, load and extract the wallet page, report, persist, release.
package scraper

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/grez-lucas/galascan-scraper/internal/scraper/browser"
	"github.com/grez-lucas/galascan-scraper/internal/scraper/explorer"
	"github.com/grez-lucas/galascan-scraper/internal/scraper/explorer/galascan"
	"github.com/grez-lucas/galascan-scraper/internal/scraper/persist"
	"github.com/grez-lucas/galascan-scraper/internal/scraper/report"
)

// Options tune a run. Zero values mean: stdout, current directory, real
// backends, real sleeps.
type Options struct {
	Out          io.Writer
	OutputDir    string
	Constructors []browser.Constructor
	Sleep        func(time.Duration)
}

// Run executes one scrape. Only startup failures (here: session acquisition)
// are returned; any later stage error is logged and absorbed so the run still
// reaches persistence where possible and always releases the session exactly
// once. Empty extraction results are a valid outcome, not an error.
func Run(ctx context.Context, query explorer.WalletQuery, opts Options) error {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	fmt.Fprintln(out, "🚀 GalaScan Scraper")
	fmt.Fprintln(out, "==================================================")
	fmt.Fprintf(out, "Wallet: %s\n", query.Address)
	fmt.Fprintf(out, "Start Date: %s\n\n", query.StartDate.Format(explorer.StartDateLayout))

	session, err := browser.Acquire(opts.Constructors...)
	if err != nil {
		return fmt.Errorf("❌ %w - please install Chrome or Chromium", err)
	}
	fmt.Fprintln(out, "✅ Browser driver initialized")
	defer release(session, out)

	scraperOpts := []galascan.Option{galascan.WithOutput(out)}
	if opts.Sleep != nil {
		scraperOpts = append(scraperOpts, galascan.WithSleeper(opts.Sleep))
	}

	result, html, err := galascan.New(session, scraperOpts...).Scrape(ctx, query)
	if err != nil {
		fmt.Fprintf(out, "❌ Error: %v\n", err)
		return nil
	}

	report.Summarize(out, result)

	persist.Writer{Dir: opts.OutputDir, Out: out}.Save(result, html)

	return nil
}

// release shuts the session down exactly once and must not raise.
func release(session browser.Session, out io.Writer) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(out, "⚠️ Browser shutdown panicked: %v\n", r)
		}
	}()

	if err := session.Close(); err != nil {
		fmt.Fprintf(out, "⚠️ Browser shutdown error: %v\n", err)
		return
	}
	fmt.Fprintln(out, "\n✅ Browser closed")
}
