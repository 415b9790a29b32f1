package aggregator

import (
	"strings"

	"github.com/samber/lo"

	"podborka/pkg/domain"
)

// DedupeByURLTitle drops items whose normalized (url, title) pair was already
// seen, preserving first-seen order.
func DedupeByURLTitle(items []domain.Item) []domain.Item {
	return lo.UniqBy(items, func(it domain.Item) string {
		return normalize(it.URL) + "\x00" + normalize(it.Title)
	})
}

// DedupeByTitle drops items whose normalized title was already seen,
// preserving first-seen order.
func DedupeByTitle(items []domain.Item) []domain.Item {
	return lo.UniqBy(items, func(it domain.Item) string {
		return normalize(it.Title)
	})
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// urlDedupKey normalizes a URL for dedup: query string and trailing slash
// are not distinguishing.
func urlDedupKey(u string) string {
	if i := strings.Index(u, "?"); i >= 0 {
		u = u[:i]
	}
	return strings.TrimRight(u, "/")
}
