package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Client performs outbound HTTP calls with a fixed browser-like header policy
// and a bounded timeout. It deliberately does no retries: freshness is
// re-attempted on the next cache-miss window, not within a single request.
type Client struct {
	client         *http.Client
	userAgent      string
	acceptLanguage string
}

// New creates a fetch client with the given per-request timeout. Empty
// userAgent or acceptLanguage fall back to the default browser profile.
func New(timeout time.Duration, userAgent, acceptLanguage string) *Client {
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	if acceptLanguage == "" {
		acceptLanguage = defaultAcceptLanguage
	}
	return &Client{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		userAgent:      userAgent,
		acceptLanguage: acceptLanguage,
	}
}

// JSON fetches the URL with optional query parameters and decodes the body
// into v. Any transport error, non-200 status or decode failure is returned
// as an error; callers must treat it as "no data".
func (c *Client) JSON(ctx context.Context, rawURL string, params url.Values, v any) error {
	if len(params) > 0 {
		u, err := url.Parse(rawURL)
		if err != nil {
			return fmt.Errorf("parse url %s: %w", rawURL, err)
		}
		q := u.Query()
		for k, vals := range params {
			for _, val := range vals {
				q.Add(k, val)
			}
		}
		u.RawQuery = q.Encode()
		rawURL = u.String()
	}

	resp, err := c.get(ctx, rawURL)
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck // read-only body

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode json from %s: %w", rawURL, err)
	}
	return nil
}

// HTML fetches the URL and parses the body into a goquery document.
func (c *Client) HTML(ctx context.Context, rawURL string) (*goquery.Document, error) {
	resp, err := c.get(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close() //nolint:errcheck // read-only body

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse html from %s: %w", rawURL, err)
	}
	return doc, nil
}

func (c *Client) get(ctx context.Context, rawURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	addBrowserHeaders(req, c.userAgent, c.acceptLanguage)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code %d for %s", resp.StatusCode, rawURL)
	}
	return resp, nil
}
