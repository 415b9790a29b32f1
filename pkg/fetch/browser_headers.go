package fetch

import "net/http"

// defaults match a realistic desktop browser profile; some sources serve
// degraded or empty markup to obvious bots
const (
	defaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) " +
		"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0 Safari/537.36"
	defaultAcceptLanguage = "ru-RU,ru;q=0.9,en;q=0.8"
)

// addBrowserHeaders applies the fixed outbound header policy to a request.
// The same profile is used for JSON and HTML sources.
func addBrowserHeaders(req *http.Request, userAgent, acceptLanguage string) {
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept-Language", acceptLanguage)
	req.Header.Set("Accept", "text/html,application/json;q=0.9,*/*;q=0.8")
	req.Header.Set("Connection", "keep-alive")
}
