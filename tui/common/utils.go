package common

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// QuoteExcerpt shortens content for the reply composer's quoted context.
// Whitespace is collapsed and the result is cut to width cells.
func QuoteExcerpt(content string, width int) string {
	flat := strings.Join(strings.Fields(content), " ")
	if width <= 0 {
		return flat
	}
	return ansi.Truncate(flat, width, "…")
}

// IsSafeExternalURL accepts absolute http(s) URLs only.
func IsSafeExternalURL(raw string) bool {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	if parsed.Host == "" {
		return false
	}
	switch strings.ToLower(parsed.Scheme) {
	case "http", "https":
		return true
	default:
		return false
	}
}

// Pluralize returns "1 reply" or "N replies" style counts.
func Pluralize(n int, singular, plural string) string {
	if n == 1 {
		return "1 " + singular
	}
	return strconv.Itoa(n) + " " + plural
}
