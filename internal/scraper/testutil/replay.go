package testutil

import (
	"encoding/base64"
	"log"
	"net/url"
	"strings"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
)

// Replayer serves recorded HTTP responses during test execution, so scraper
// tests drive a real browser without touching the explorer.
type Replayer struct {
	// exactMatches maps full URLs to entries.
	exactMatches map[string]*HAREntry

	// pathMatches maps scheme://host/path (query dropped) to entries,
	// used as a fallback when an exact match fails.
	pathMatches map[string]*HAREntry

	passthrough bool
	verbose     bool
}

// ReplayerOption configures a Replayer.
type ReplayerOption func(*Replayer)

// WithPassthrough lets unmatched requests reach the real network.
// By default unmatched requests get a 404.
func WithPassthrough(enabled bool) ReplayerOption {
	return func(r *Replayer) { r.passthrough = enabled }
}

// WithVerbose logs request matching decisions.
func WithVerbose(enabled bool) ReplayerOption {
	return func(r *Replayer) { r.verbose = enabled }
}

// NewReplayer indexes a HAR log for replay.
func NewReplayer(har *HARLog, opts ...ReplayerOption) *Replayer {
	r := &Replayer{
		exactMatches: make(map[string]*HAREntry),
		pathMatches:  make(map[string]*HAREntry),
	}
	for _, opt := range opts {
		opt(r)
	}

	for i := range har.Entries {
		entry := &har.Entries[i]
		r.exactMatches[entry.Request.URL] = entry

		if key, ok := pathKey(entry.Request.URL); ok {
			// First occurrence wins for path matches.
			if _, exists := r.pathMatches[key]; !exists {
				r.pathMatches[key] = entry
			}
		}
	}
	return r
}

// PageReplayer builds a replayer that serves a single HTML document for the
// given URL. Handy for fixture-driven scraper tests where one rendered page
// is all that matters.
func PageReplayer(pageURL, html string, opts ...ReplayerOption) *Replayer {
	har := &HARLog{Entries: []HAREntry{{
		Request: HARRequest{Method: "GET", URL: pageURL},
		Response: HARResponse{
			Status:  200,
			Content: HARContent{MimeType: "text/html", Text: html},
		},
	}}}
	return NewReplayer(har, opts...)
}

// Middleware returns a rod hijack handler that serves recorded responses.
// Use with router.MustAdd("*", replayer.Middleware()).
func (r *Replayer) Middleware() func(*rod.Hijack) {
	return func(ctx *rod.Hijack) {
		reqURL := ctx.Request.URL().String()

		entry, found := r.exactMatches[reqURL]
		if !found {
			if key, ok := pathKey(reqURL); ok {
				entry, found = r.pathMatches[key]
			}
		}

		if !found {
			if r.verbose {
				log.Printf("[replayer] no match for: %s", reqURL)
			}
			if r.passthrough {
				_ = ctx.LoadResponse(nil, true)
				return
			}
			r.serveNotFound(ctx, reqURL)
			return
		}

		if r.verbose {
			log.Printf("[replayer] matched: %s -> %d", reqURL, entry.Response.Status)
		}
		r.serveRecordedResponse(ctx, entry)
	}
}

func (r *Replayer) serveRecordedResponse(ctx *rod.Hijack, entry *HAREntry) {
	resp := entry.Response

	var body []byte
	if resp.Content.Encoding == "base64" {
		decoded, err := base64.StdEncoding.DecodeString(resp.Content.Text)
		if err != nil {
			decoded = []byte(resp.Content.Text)
		}
		body = decoded
	} else {
		body = []byte(resp.Content.Text)
	}

	var headers []*proto.FetchHeaderEntry
	hasContentType := false
	for _, h := range resp.Headers {
		name := strings.ToLower(h.Name)
		// These depend on the recorded transfer, not the replayed one.
		if name == "content-encoding" || name == "content-length" {
			continue
		}
		if name == "content-type" {
			hasContentType = true
		}
		headers = append(headers, &proto.FetchHeaderEntry{Name: h.Name, Value: h.Value})
	}
	if !hasContentType && resp.Content.MimeType != "" {
		headers = append(headers, &proto.FetchHeaderEntry{
			Name:  "Content-Type",
			Value: resp.Content.MimeType,
		})
	}

	payload := ctx.Response.Payload()
	payload.ResponseCode = resp.Status
	payload.ResponseHeaders = headers
	payload.Body = body
}

func (r *Replayer) serveNotFound(ctx *rod.Hijack, reqURL string) {
	payload := ctx.Response.Payload()
	payload.ResponseCode = 404
	payload.ResponseHeaders = []*proto.FetchHeaderEntry{
		{Name: "Content-Type", Value: "application/json"},
	}
	payload.Body = []byte(`{"error": "no recording found for URL"}`)

	if r.verbose {
		log.Printf("[replayer] 404 not found: %s", reqURL)
	}
}

// Stats returns index sizes, useful for sanity-checking a loaded recording.
func (r *Replayer) Stats() map[string]int {
	return map[string]int{
		"exact_matches": len(r.exactMatches),
		"path_matches":  len(r.pathMatches),
	}
}

func pathKey(rawURL string) (string, bool) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", false
	}
	return parsed.Scheme + "://" + parsed.Host + parsed.Path, true
}
