// Package testutil provides testing utilities for the scraper package,
// including HAR recording and replay of explorer sessions.
package testutil

import (
	"encoding/json"
	"fmt"
	"os"
	"testing"
)

// HARLog is a simplified HAR (HTTP Archive) holding the request/response
// pairs of a recorded wallet-page visit.
type HARLog struct {
	Entries []HAREntry `json:"entries"`
}

// HAREntry is a single HTTP request/response pair.
type HAREntry struct {
	Request  HARRequest  `json:"request"`
	Response HARResponse `json:"response"`
}

type HARRequest struct {
	Method  string      `json:"method"`
	URL     string      `json:"url"`
	Headers []HARHeader `json:"headers,omitempty"`
	Body    string      `json:"body,omitempty"`
}

type HARResponse struct {
	Status  int         `json:"status"`
	Headers []HARHeader `json:"headers,omitempty"`
	Content HARContent  `json:"content"`
}

type HARHeader struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// HARContent is the response body. Encoding is "base64" for binary bodies.
type HARContent struct {
	MimeType string `json:"mimeType"`
	Text     string `json:"text"`
	Encoding string `json:"encoding,omitempty"`
	Size     int    `json:"size,omitempty"`
}

// chromeHAR is the HAR 1.2 wrapper exported by Chrome DevTools: entries live
// under "log" and POST bodies under postData.
type chromeHAR struct {
	Log struct {
		Entries []struct {
			Request struct {
				Method   string      `json:"method"`
				URL      string      `json:"url"`
				Headers  []HARHeader `json:"headers,omitempty"`
				PostData *struct {
					Text string `json:"text"`
				} `json:"postData,omitempty"`
			} `json:"request"`
			Response HARResponse `json:"response"`
		} `json:"entries"`
	} `json:"log"`
}

// LoadHAR reads a HAR file, accepting either the simplified format or a
// Chrome DevTools export (auto-detected by the "log" wrapper).
func LoadHAR(path string) (*HARLog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read HAR file: %w", err)
	}

	var chrome chromeHAR
	if err := json.Unmarshal(data, &chrome); err == nil && len(chrome.Log.Entries) > 0 {
		har := &HARLog{Entries: make([]HAREntry, len(chrome.Log.Entries))}
		for i, entry := range chrome.Log.Entries {
			var body string
			if entry.Request.PostData != nil {
				body = entry.Request.PostData.Text
			}
			har.Entries[i] = HAREntry{
				Request: HARRequest{
					Method:  entry.Request.Method,
					URL:     entry.Request.URL,
					Headers: entry.Request.Headers,
					Body:    body,
				},
				Response: entry.Response,
			}
		}
		return har, nil
	}

	var har HARLog
	if err := json.Unmarshal(data, &har); err != nil {
		return nil, fmt.Errorf("parse HAR JSON: %w", err)
	}
	return &har, nil
}

// SaveHAR writes a HAR log with pretty formatting.
func SaveHAR(path string, har *HARLog) error {
	data, err := json.MarshalIndent(har, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal HAR: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write HAR file: %w", err)
	}
	return nil
}

// MustLoadHAR loads a HAR file and fails the test if it cannot be loaded.
func MustLoadHAR(t *testing.T, path string) *HARLog {
	t.Helper()

	har, err := LoadHAR(path)
	if err != nil {
		t.Fatalf("failed to load HAR file %s: %v", path, err)
	}
	return har
}
