package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadHAR_SimplifiedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rec.har.json")
	content := `{"entries":[{"request":{"method":"GET","url":"https://galascan.gala.com/wallet/abc"},"response":{"status":200,"content":{"mimeType":"text/html","text":"<html></html>"}}}]}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	har, err := LoadHAR(path)

	require.NoError(t, err)
	require.Len(t, har.Entries, 1)
	assert.Equal(t, "https://galascan.gala.com/wallet/abc", har.Entries[0].Request.URL)
	assert.Equal(t, 200, har.Entries[0].Response.Status)
}

func TestLoadHAR_ChromeDevToolsFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "devtools.har")
	content := `{"log":{"version":"1.2","entries":[{"request":{"method":"POST","url":"https://galascan.gala.com/api","postData":{"text":"q=1"}},"response":{"status":200,"content":{"mimeType":"application/json","text":"{}"}}}]}}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	har, err := LoadHAR(path)

	require.NoError(t, err)
	require.Len(t, har.Entries, 1)
	assert.Equal(t, "q=1", har.Entries[0].Request.Body)
	assert.Equal(t, "application/json", har.Entries[0].Response.Content.MimeType)
}

func TestSaveHAR_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.har.json")
	har := &HARLog{Entries: []HAREntry{{
		Request:  HARRequest{Method: "GET", URL: "https://galascan.gala.com/wallet/abc"},
		Response: HARResponse{Status: 200, Content: HARContent{MimeType: "text/html", Text: "<html></html>"}},
	}}}

	require.NoError(t, SaveHAR(path, har))

	loaded, err := LoadHAR(path)
	require.NoError(t, err)
	assert.Equal(t, har.Entries, loaded.Entries)
}

func TestLoadHAR_MissingFile(t *testing.T) {
	_, err := LoadHAR(filepath.Join(t.TempDir(), "missing.har.json"))
	assert.Error(t, err)
}
