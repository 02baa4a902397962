package validation

import (
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// MaxQueryLength is the longest accepted query, in characters.
const MaxQueryLength = 280

// ValidateQuery checks that a normalized query can be submitted for analysis.
func ValidateQuery(query string) (bool, string) {
	if strings.TrimSpace(query) == "" {
		return false, "Query is required"
	}
	if !utf8.ValidString(query) {
		return false, "Query must be valid UTF-8"
	}
	if utf8.RuneCountInString(query) > MaxQueryLength {
		return false, "Query must be at most 280 characters"
	}
	for _, r := range query {
		if unicode.IsControl(r) {
			return false, "Query contains control characters"
		}
	}
	return true, ""
}

// NormalizeQuery folds compatibility forms (half-width katakana, full-width
// ASCII, ideographic spaces) to their canonical form, joins lines and trims
// surrounding whitespace.
func NormalizeQuery(query string) string {
	query = norm.NFKC.String(query)
	query = strings.Join(strings.Fields(query), " ")
	return query
}

// ValidateURL checks if a URL is valid and uses an allowed scheme (http/https only).
// Used for the lookup endpoint the reader and CLI talk to.
func ValidateURL(urlStr string) (bool, string) {
	if urlStr == "" {
		return false, "URL is required"
	}

	u, err := url.Parse(urlStr)
	if err != nil {
		return false, "Invalid URL format"
	}

	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return false, "URL must use http:// or https:// scheme"
	}

	if u.Host == "" {
		return false, "URL must have a valid host"
	}

	return true, ""
}
