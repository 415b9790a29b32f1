package aggregator

import (
	"context"
	"log"
	"strings"

	"podborka/pkg/domain"
)

const (
	aiLimit       = 10
	aiMinTitleLen = 20
)

// ai scrapes tech-press listing pages. Dedup runs two parallel seen-sets,
// by normalized title and by URL without query string; an item matching
// either is dropped.
func (r *Registry) ai(ctx context.Context) []domain.Item {
	var items []domain.Item
	seenTitles := map[string]bool{}
	seenURLs := map[string]bool{}

	for _, site := range r.cfg.AISites {
		res, err := r.links.Fetch(ctx, site, aiMinTitleLen, r.aiRules.Match)
		if err != nil {
			log.Printf("[WARN] ai site %s failed: %v", site, err)
			continue
		}
		for _, it := range res {
			keyTitle := strings.ToLower(it.Title)
			keyURL := urlDedupKey(it.URL)
			if seenTitles[keyTitle] || seenURLs[keyURL] {
				continue
			}
			seenTitles[keyTitle] = true
			seenURLs[keyURL] = true
			items = append(items, it)
		}
	}

	DailyShuffle(items, "ai", r.now())
	return limit(items, aiLimit)
}
