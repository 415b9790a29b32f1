package source

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"podborka/pkg/domain"
	"podborka/pkg/fetch"
)

// maxAnchors bounds how deep into a page the link extraction looks; listings
// put fresh material on top
const maxAnchors = 120

const linkTitleLimit = 120

// SiteLinks extracts candidate items from anchor elements of arbitrary HTML
// listing pages. It is shared by several topic domains with different minimum
// title lengths and relevance predicates.
type SiteLinks struct {
	client *fetch.Client
}

// NewSiteLinks creates the generic link extractor.
func NewSiteLinks(client *fetch.Client) *SiteLinks {
	return &SiteLinks{client: client}
}

// Fetch scans up to the first 120 anchors of the page. A candidate needs a
// visible title of at least minTitleLen runes passing keep, and an absolute
// http(s) link; root-relative hrefs are resolved against the page host.
func (s *SiteLinks) Fetch(ctx context.Context, pageURL string, minTitleLen int, keep func(title string) bool) ([]domain.Item, error) {
	doc, err := s.client.HTML(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("parse page url %s: %w", pageURL, err)
	}

	var items []domain.Item
	doc.Find("a[href]").EachWithBreak(func(i int, a *goquery.Selection) bool {
		if i >= maxAnchors {
			return false
		}

		title := strings.Join(strings.Fields(a.Text()), " ")
		href := strings.TrimSpace(a.AttrOr("href", ""))
		if title == "" || utf8.RuneCountInString(title) < minTitleLen {
			return true
		}
		if keep != nil && !keep(title) {
			return true
		}

		if strings.HasPrefix(href, "/") {
			href = base.Scheme + "://" + base.Host + href
		}
		if !strings.HasPrefix(href, "http") {
			return true
		}

		items = append(items, domain.Item{
			Title: domain.Truncate(title, linkTitleLimit),
			URL:   href,
		})
		return true
	})

	return items, nil
}
