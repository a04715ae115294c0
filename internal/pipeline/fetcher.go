package pipeline

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html/charset"
)

const maxFetchAttempts = 3

// fetchSleepFunc is swapped out in tests to avoid real backoff waits.
var fetchSleepFunc = time.Sleep

// Fetcher retrieves listing pages over HTTP.
type Fetcher struct {
	httpClient *http.Client
	userAgent  string
	maxBytes   int64
}

// NewFetcher creates a Fetcher with the given limits.
func NewFetcher(timeout time.Duration, userAgent string, maxBytes int64) *Fetcher {
	return &Fetcher{
		httpClient: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
		userAgent: userAgent,
		maxBytes:  maxBytes,
	}
}

// FetchResult contains one fetched page.
type FetchResult struct {
	HTML        string
	FinalURL    string
	StatusCode  int
	ContentType string
}

// Fetch retrieves the page at rawURL. The body is decoded to UTF-8
// from whatever charset the response declares — older French listing
// sites still serve ISO-8859-1/Windows-1252 — and capped at maxBytes.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*FetchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "fr-FR,fr;q=0.9,en;q=0.5")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status: %d %s", resp.StatusCode, resp.Status)
	}

	contentType := resp.Header.Get("Content-Type")

	decoded, err := charset.NewReader(io.LimitReader(resp.Body, f.maxBytes), contentType)
	if err != nil {
		return nil, fmt.Errorf("resolve charset: %w", err)
	}
	body, err := io.ReadAll(decoded)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	return &FetchResult{
		HTML:        string(body),
		FinalURL:    resp.Request.URL.String(),
		StatusCode:  resp.StatusCode,
		ContentType: contentType,
	}, nil
}

// FetchWithRetry retries transient failures (5xx, 429, connection
// errors) with exponential backoff. Client errors fail immediately.
func (f *Fetcher) FetchWithRetry(ctx context.Context, rawURL string) (*FetchResult, error) {
	var lastErr error
	backoff := 500 * time.Millisecond

	for attempt := 1; attempt <= maxFetchAttempts; attempt++ {
		result, err := f.Fetch(ctx, rawURL)
		if err == nil {
			return result, nil
		}
		lastErr = err

		if !isRetryableFetchError(err) {
			return nil, err
		}
		if attempt < maxFetchAttempts {
			fetchSleepFunc(backoff)
			backoff *= 2
		}
	}

	return nil, lastErr
}

// isRetryableFetchError reports whether a fetch failure is worth a
// second attempt.
func isRetryableFetchError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()

	if strings.Contains(msg, "unexpected status: ") {
		for _, code := range []string{"429", "500", "502", "503", "504"} {
			if strings.Contains(msg, "unexpected status: "+code) {
				return true
			}
		}
		return false
	}

	// Transport-level failures (refused, reset, timeouts) surface with
	// the "fetch:" prefix and are transient by nature.
	return strings.HasPrefix(msg, "fetch: ")
}
