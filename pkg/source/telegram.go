package source

import (
	"context"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"podborka/pkg/domain"
	"podborka/pkg/fetch"
)

// truncation budgets for message text reused as title and summary
const (
	tgTitleLimit   = 120
	tgSummaryLimit = 320
)

// Telegram extracts recent messages from public channel web feeds (t.me/s/).
type Telegram struct {
	client *fetch.Client
	base   string
}

// NewTelegram creates the adapter. Empty baseURL defaults to https://t.me.
func NewTelegram(client *fetch.Client, baseURL string) *Telegram {
	if baseURL == "" {
		baseURL = "https://t.me"
	}
	return &Telegram{client: client, base: strings.TrimRight(baseURL, "/")}
}

// Fetch collects up to perChannel messages from each channel, merges them
// sorted by timestamp descending and truncates to total. Channels are fetched
// concurrently; a failing or empty channel contributes nothing. Timestamps
// are stripped from the returned items.
func (t *Telegram) Fetch(ctx context.Context, channels []string, perChannel, total int) []domain.Item {
	results := make([][]domain.Item, len(channels))

	g, gctx := errgroup.WithContext(ctx)
	for i, ch := range channels {
		g.Go(func() error {
			doc, err := t.client.HTML(gctx, t.base+"/s/"+ch)
			if err != nil {
				log.Printf("[DEBUG] telegram channel %s skipped: %v", ch, err)
				return nil
			}
			parsed := t.parseMessages(doc, t.base+"/"+ch)
			if len(parsed) > perChannel {
				parsed = parsed[:perChannel]
			}
			results[i] = parsed
			return nil
		})
	}
	_ = g.Wait() // workers never return errors, failures degrade to no data

	items := lo.Flatten(results)
	sort.SliceStable(items, func(i, j int) bool { return items[i].Timestamp > items[j].Timestamp })
	if len(items) > total {
		items = items[:total]
	}
	for i := range items {
		items[i].Timestamp = 0
	}
	return items
}

// parseMessages extracts candidate items from a rendered channel page.
// Message link falls back to the channel base URL when the in-message link
// is relative or missing.
func (t *Telegram) parseMessages(doc *goquery.Document, channelURL string) []domain.Item {
	var out []domain.Item

	doc.Find(".tgme_widget_message_wrap").Each(func(_ int, wrap *goquery.Selection) {
		textSel := wrap.Find(".tgme_widget_message_text").First()
		text := strings.Join(strings.Fields(textSel.Text()), " ")
		if text == "" {
			return
		}

		var ts int64
		if dt, ok := wrap.Find("time").First().Attr("datetime"); ok {
			if parsed, err := time.Parse(time.RFC3339, dt); err == nil {
				ts = parsed.Unix()
			}
		}

		link := channelURL
		if href, ok := textSel.Find("a[href]").First().Attr("href"); ok {
			if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
				link = href
			}
		}

		img := ""
		photo := wrap.Find("a.tgme_widget_message_photo_wrap, a.tgme_widget_message_video_thumb").First()
		if style, ok := photo.Attr("style"); ok {
			img = imageFromStyle(style)
		}

		out = append(out, domain.Item{
			Title:     domain.Truncate(text, tgTitleLimit),
			Summary:   domain.Truncate(text, tgSummaryLimit),
			URL:       link,
			Image:     img,
			Timestamp: ts,
		})
	})

	return out
}

// imageFromStyle recovers an absolute image URL from an inline CSS url(...)
// reference, e.g. background-image:url('https://...').
func imageFromStyle(style string) string {
	start := strings.Index(style, "url(")
	if start < 0 {
		return ""
	}
	rest := style[start+len("url("):]
	end := strings.Index(rest, ")")
	if end < 0 {
		return ""
	}
	candidate := strings.Trim(rest[:end], `'" `)
	if !strings.HasPrefix(candidate, "http") {
		return ""
	}
	return candidate
}
