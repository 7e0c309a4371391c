// Package persist writes the per-run output artifacts: the structured scrape
// result and a raw markup snapshot for debugging.
package persist

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/grez-lucas/galascan-scraper/internal/scraper/explorer"
)

const walletPrefixLen = 10

// SavedFiles reports where each artifact landed. An empty path means that
// write failed.
type SavedFiles struct {
	DataPath string
	HTMLPath string
}

// Writer persists run artifacts into Dir (default: current directory).
// Files are timestamp-qualified and never appended to or overwritten by the
// same run.
type Writer struct {
	Dir string
	Out io.Writer
}

// Save writes the result document and the markup snapshot. Both writes are
// best-effort and independent: a failure on one is logged and does not block
// the other.
func (w Writer) Save(res *explorer.ScrapeResult, pageHTML string) SavedFiles {
	out := w.Out
	if out == nil {
		out = os.Stdout
	}

	var saved SavedFiles

	dataName := fmt.Sprintf("galascan-scrape-%s-%d.json", walletPrefix(res.Wallet), time.Now().Unix())
	dataPath := filepath.Join(w.Dir, dataName)
	if err := w.writeJSON(dataPath, res); err != nil {
		fmt.Fprintf(out, "❌ Failed to save results: %v\n", err)
	} else {
		saved.DataPath = dataPath
		fmt.Fprintf(out, "\n💾 Results saved to: %s\n", dataPath)
	}

	// Independent timestamp read; may differ from the first by the
	// formatting/IO latency in between.
	htmlName := fmt.Sprintf("galascan-debug-%d.html", time.Now().Unix())
	htmlPath := filepath.Join(w.Dir, htmlName)
	if err := os.WriteFile(htmlPath, []byte(pageHTML), 0o644); err != nil {
		fmt.Fprintf(out, "❌ Failed to save debug HTML: %v\n", err)
	} else {
		saved.HTMLPath = htmlPath
		fmt.Fprintf(out, "📄 HTML saved to: %s\n", htmlPath)
	}

	return saved
}

func (w Writer) writeJSON(path string, res *explorer.ScrapeResult) error {
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write result file: %w", err)
	}
	return nil
}

func walletPrefix(address string) string {
	if len(address) <= walletPrefixLen {
		return address
	}
	return address[:walletPrefixLen]
}
