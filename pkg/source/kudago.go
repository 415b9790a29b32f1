package source

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"podborka/pkg/domain"
	"podborka/pkg/fetch"
)

const (
	kudagoTitleLimit   = 120
	kudagoSummaryLimit = 240
)

// KudaGoConfig holds events API settings. Zero values get defaults.
type KudaGoConfig struct {
	BaseURL     string // default https://kudago.com/public-api/v1.4
	Location    string // city slug, default msk
	PageSize    int    // default 40
	HorizonDays int    // upper bound for actual_until, default 30
}

// KudaGo is the structured-API adapter for public event listings.
type KudaGo struct {
	client *fetch.Client
	cfg    KudaGoConfig
	now    func() time.Time
}

// NewKudaGo creates the adapter with defaults applied.
func NewKudaGo(client *fetch.Client, cfg KudaGoConfig) *KudaGo {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://kudago.com/public-api/v1.4"
	}
	if cfg.Location == "" {
		cfg.Location = "msk"
	}
	if cfg.PageSize == 0 {
		cfg.PageSize = 40
	}
	if cfg.HorizonDays == 0 {
		cfg.HorizonDays = 30
	}
	return &KudaGo{client: client, cfg: cfg, now: time.Now}
}

type kudagoEvent struct {
	Title string `json:"title"`
	Dates []struct {
		Start int64 `json:"start"`
	} `json:"dates"`
	Place *struct {
		Title string `json:"title"`
	} `json:"place"`
	SiteURL string `json:"site_url"`
	Images  []struct {
		Image string `json:"image"`
	} `json:"images"`
	Description string `json:"description"`
}

type kudagoResponse struct {
	Results []kudagoEvent `json:"results"`
}

// Events fetches upcoming events and keeps those whose raw title passes keep.
// The summary joins the formatted local start time and the venue name, falling
// back to the description when both are empty.
func (k *KudaGo) Events(ctx context.Context, keep func(title string) bool) ([]domain.Item, error) {
	now := k.now()
	params := url.Values{}
	params.Set("fields", "title,dates,place,site_url,images,description")
	params.Set("location", k.cfg.Location)
	params.Set("actual_since", strconv.FormatInt(now.Unix(), 10))
	params.Set("actual_until", strconv.FormatInt(now.AddDate(0, 0, k.cfg.HorizonDays).Unix(), 10))
	params.Set("page_size", strconv.Itoa(k.cfg.PageSize))
	params.Set("order_by", "-publication_date")
	params.Set("expand", "place")
	params.Set("text_format", "plain")

	var resp kudagoResponse
	if err := k.client.JSON(ctx, k.cfg.BaseURL+"/events/", params, &resp); err != nil {
		return nil, fmt.Errorf("kudago events: %w", err)
	}

	var items []domain.Item
	for _, e := range resp.Results {
		title := strings.TrimSpace(e.Title)
		if title == "" || (keep != nil && !keep(title)) {
			continue
		}

		dateStr := ""
		if len(e.Dates) > 0 && e.Dates[0].Start > 0 {
			dateStr = time.Unix(e.Dates[0].Start, 0).In(domain.MSK).Format("02.01 15:04")
		}
		place := ""
		if e.Place != nil {
			place = e.Place.Title
		}

		parts := make([]string, 0, 2)
		for _, p := range []string{dateStr, place} {
			if p != "" {
				parts = append(parts, p)
			}
		}
		summary := strings.Join(parts, " · ")
		if summary == "" {
			summary = domain.CleanText(e.Description)
		}
		if summary == "" {
			summary = "Событие"
		}

		img := ""
		if len(e.Images) > 0 {
			img = e.Images[0].Image
		}

		items = append(items, domain.Item{
			Title:   domain.Truncate(title, kudagoTitleLimit),
			Summary: domain.Truncate(summary, kudagoSummaryLimit),
			URL:     e.SiteURL,
			Image:   img,
		})
	}
	return items, nil
}
