package aggregator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"podborka/pkg/domain"
)

func TestDedupeByURLTitle(t *testing.T) {
	items := []domain.Item{
		{Title: "Новость", URL: "https://a/1"},
		{Title: "новость ", URL: "HTTPS://A/1"}, // same after normalization
		{Title: "Новость", URL: "https://a/2"},  // same title, another url
		{Title: "Другая", URL: "https://a/1"},   // same url, another title
	}

	got := DedupeByURLTitle(items)
	assert.Equal(t, []domain.Item{items[0], items[2], items[3]}, got)

	t.Run("idempotent", func(t *testing.T) {
		assert.Equal(t, got, DedupeByURLTitle(got))
	})
}

func TestDedupeByTitle(t *testing.T) {
	items := []domain.Item{
		{Title: "Сводка дня", URL: "https://a/1"},
		{Title: "  сводка дня", URL: "https://a/2"},
		{Title: "Другая сводка", URL: "https://a/3"},
	}

	got := DedupeByTitle(items)
	assert.Equal(t, []domain.Item{items[0], items[2]}, got)

	t.Run("idempotent", func(t *testing.T) {
		assert.Equal(t, got, DedupeByTitle(got))
	})
}

func TestURLDedupKey(t *testing.T) {
	assert.Equal(t, "https://a/x", urlDedupKey("https://a/x?utm=1"))
	assert.Equal(t, "https://a/x", urlDedupKey("https://a/x/"))
	assert.Equal(t, "https://a/x", urlDedupKey("https://a/x/?ref=feed"))
	assert.Equal(t, "https://a/x", urlDedupKey("https://a/x"))
}
