package galascan

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/grez-lucas/galascan-scraper/internal/scraper/browser"
	"github.com/grez-lucas/galascan-scraper/internal/scraper/explorer"
)

const (
	// Unconditional pause after navigation, before the landmark wait.
	initialSettleDelay = 5 * time.Second

	landmarkWaitTimeout = 20 * time.Second

	// Lazy-load scroll loop: scroll, pause, re-measure, stop early once
	// the document height stabilizes.
	maxScrollIterations = 3
	scrollPause         = 2 * time.Second
)

// Scraper drives a browser session through the GalaScan wallet page and
// extracts balances and transactions from the rendered markup.
type Scraper struct {
	session browser.Session
	out     io.Writer
	sleep   func(time.Duration)
}

// Option configures a Scraper.
type Option func(*Scraper)

// WithOutput redirects progress output (default os.Stdout).
func WithOutput(w io.Writer) Option {
	return func(s *Scraper) { s.out = w }
}

// WithSleeper replaces the pause function, so tests run without real delays.
func WithSleeper(sleep func(time.Duration)) Option {
	return func(s *Scraper) { s.sleep = sleep }
}

func New(session browser.Session, opts ...Option) *Scraper {
	s := &Scraper{
		session: session,
		out:     os.Stdout,
		sleep:   time.Sleep,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scrape loads the wallet page and extracts whatever it can. It returns the
// frozen result plus the raw rendered markup for the debug snapshot.
// Extraction-level failures degrade the result; they never abort the run.
func (s *Scraper) Scrape(ctx context.Context, query explorer.WalletQuery) (*explorer.ScrapeResult, string, error) {
	if err := s.loadWalletPage(ctx, query.Address); err != nil {
		return nil, "", err
	}

	html, err := s.session.HTML(ctx)
	if err != nil {
		return nil, "", &explorer.ScraperError{Operation: "ReadMarkup", Cause: err, Details: query.Address}
	}

	fmt.Fprintln(s.out, "\n💰 Extracting wallet data...")
	balances, err := ExtractBalances(html)
	if err != nil {
		fmt.Fprintf(s.out, "  Error extracting balances: %v\n", err)
		balances = explorer.Balances{}
	}
	if len(balances) == 0 {
		fmt.Fprintln(s.out, "  No balance data found")
	}
	for token, amount := range balances {
		fmt.Fprintf(s.out, "  Found: %s = %s\n", token, amount)
	}

	fmt.Fprintln(s.out, "\n📜 Extracting transactions...")
	transactions, err := ExtractTransactions(html)
	if err != nil {
		fmt.Fprintf(s.out, "  Error extracting transactions: %v\n", err)
		transactions = make([]explorer.TransactionRecord, 0)
	}
	fmt.Fprintf(s.out, "  Total transactions extracted: %d\n", len(transactions))

	result := &explorer.ScrapeResult{
		Wallet:           query.Address,
		ScrapedAt:        time.Now(),
		StartDate:        query.StartDate,
		Transactions:     transactions,
		Balances:         balances,
		PageSourceLength: len(html),
	}
	return result, html, nil
}

func (s *Scraper) loadWalletPage(ctx context.Context, address string) error {
	url := WalletURL(address)
	fmt.Fprintf(s.out, "📄 Loading page: %s\n", url)

	if err := s.session.Navigate(ctx, url); err != nil {
		return &explorer.ScraperError{Operation: "Navigate", Cause: err, Details: url}
	}

	fmt.Fprintln(s.out, "⏳ Waiting for content to load...")
	s.sleep(initialSettleDelay)

	if err := s.session.WaitVisible(ctx, SelectorContentLandmark, landmarkWaitTimeout); err != nil {
		// Non-fatal: extract against whatever is currently rendered.
		fmt.Fprintln(s.out, "⚠️ Page load timeout")
	}

	fmt.Fprintln(s.out, "📜 Scrolling to load transactions...")
	s.scrollForLazyContent(ctx)

	return nil
}

// scrollForLazyContent is a heuristic lazy-load trigger. It never fails; it
// either exits early when the document height stabilizes or exhausts its
// iteration budget.
func (s *Scraper) scrollForLazyContent(ctx context.Context) {
	lastHeight, err := s.session.DocumentHeight(ctx)
	if err != nil {
		return
	}

	for i := 0; i < maxScrollIterations; i++ {
		if err := s.session.ScrollToBottom(ctx); err != nil {
			return
		}
		s.sleep(scrollPause)

		height, err := s.session.DocumentHeight(ctx)
		if err != nil {
			return
		}
		if height == lastHeight {
			break
		}
		lastHeight = height
	}
}
