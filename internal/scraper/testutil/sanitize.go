package testutil

import (
	"net/url"
	"regexp"
	"strings"
)

const redacted = "[REDACTED]"

// SensitivePatterns match query-parameter and form-field names whose values
// must be redacted before a recording is committed. Wallet addresses and
// transaction hashes are public chain data and are intentionally kept —
// recordings are only useful if extraction still finds them.
var SensitivePatterns = []string{
	// Tokens and sessions
	`(?i)token`,
	`(?i)session`,
	`(?i)sess_`,
	`(?i)auth`,
	`(?i)jwt`,
	`(?i)bearer`,

	// API keys
	`(?i)api_?key`,
	`(?i)apikey`,

	// Credentials (explorers occasionally proxy authenticated endpoints)
	`(?i)password`,
	`(?i)secret`,
	`(?i)credential`,
	`(?i)access_key`,
	`(?i)private_key`,
}

// SensitiveHeaders are always redacted regardless of value.
var SensitiveHeaders = map[string]bool{
	"authorization":       true,
	"cookie":              true,
	"set-cookie":          true,
	"x-auth-token":        true,
	"x-api-key":           true,
	"x-access-token":      true,
	"x-session-id":        true,
	"x-csrf-token":        true,
	"x-xsrf-token":        true,
	"proxy-authorization": true,
}

var sensitiveNamePatterns = compilePatterns(SensitivePatterns)

func compilePatterns(patterns []string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		compiled[i] = regexp.MustCompile(p)
	}
	return compiled
}

// SanitizeHAR returns a copy of the log with sensitive data replaced by
// [REDACTED].
func SanitizeHAR(har *HARLog) *HARLog {
	sanitized := &HARLog{Entries: make([]HAREntry, len(har.Entries))}
	for i, entry := range har.Entries {
		sanitized.Entries[i] = HAREntry{
			Request: HARRequest{
				Method:  entry.Request.Method,
				URL:     sanitizeURL(entry.Request.URL),
				Headers: sanitizeHeaders(entry.Request.Headers),
				Body:    sanitizeFormBody(entry.Request.Body),
			},
			Response: HARResponse{
				Status:  entry.Response.Status,
				Headers: sanitizeHeaders(entry.Response.Headers),
				Content: entry.Response.Content,
			},
		}
	}
	return sanitized
}

func sanitizeURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}

	query := parsed.Query()
	changed := false
	for name := range query {
		if isSensitiveName(name) {
			query.Set(name, redacted)
			changed = true
		}
	}
	if changed {
		parsed.RawQuery = query.Encode()
	}
	return parsed.String()
}

func sanitizeHeaders(headers []HARHeader) []HARHeader {
	if headers == nil {
		return nil
	}
	sanitized := make([]HARHeader, len(headers))
	for i, h := range headers {
		value := h.Value
		if SensitiveHeaders[strings.ToLower(h.Name)] || isSensitiveName(h.Name) {
			value = redacted
		}
		sanitized[i] = HARHeader{Name: h.Name, Value: value}
	}
	return sanitized
}

// sanitizeFormBody redacts values of sensitive fields in URL-encoded bodies.
// Other body shapes pass through untouched; the explorer wallet page issues
// no authenticated POSTs.
func sanitizeFormBody(body string) string {
	if body == "" || !strings.Contains(body, "=") {
		return body
	}

	values, err := url.ParseQuery(body)
	if err != nil {
		return body
	}

	changed := false
	for name := range values {
		if isSensitiveName(name) {
			values.Set(name, redacted)
			changed = true
		}
	}
	if !changed {
		return body
	}
	return values.Encode()
}

func isSensitiveName(name string) bool {
	for _, pattern := range sensitiveNamePatterns {
		if pattern.MatchString(name) {
			return true
		}
	}
	return false
}
