package domain

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Item represents a normalized unit of aggregated content. Timestamp is used
// only for ordering during extraction and is never serialized to callers.
type Item struct {
	Title     string `json:"title"`
	Summary   string `json:"summary"`
	URL       string `json:"url"`
	Image     string `json:"image"`
	Timestamp int64  `json:"-"`
}

// Ellipsis marks a truncated string, counts as one rune of the budget
const Ellipsis = "…"

var stripPolicy = bluemonday.StrictPolicy()

// Truncate collapses whitespace and cuts the string to at most limit runes,
// appending an ellipsis when the collapsed text was longer.
func Truncate(s string, limit int) string {
	t := strings.Join(strings.Fields(s), " ")
	runes := []rune(t)
	if len(runes) <= limit {
		return t
	}
	if limit < 1 {
		return ""
	}
	cut := strings.TrimRight(string(runes[:limit-1]), " ")
	return cut + Ellipsis
}

// CleanText strips any markup upstream APIs may embed in text fields and
// collapses whitespace. Safe to call on plain text.
func CleanText(s string) string {
	return strings.Join(strings.Fields(stripPolicy.Sanitize(s)), " ")
}
