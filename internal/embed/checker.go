package embed

import (
	"context"
	"io"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/showline/report-cli/internal/model"
)

// PageFetcher retrieves the HTML body of a live page.
type PageFetcher interface {
	FetchHTML(ctx context.Context, url string) (string, error)
}

// HTTPPageFetcher fetches pages with a plain http.Client. Bodies are
// capped so a hostile page cannot balloon memory; any non-2xx status is
// an error, the checker does not distinguish failure kinds.
type HTTPPageFetcher struct {
	client    *http.Client
	userAgent string
	maxBody   int64
}

// NewHTTPPageFetcher creates a page fetcher with the given timeout, user
// agent, and body cap. Zero values get sensible defaults.
func NewHTTPPageFetcher(timeout time.Duration, userAgent string, maxBody int64) *HTTPPageFetcher {
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	if userAgent == "" {
		userAgent = "Mozilla/5.0 (compatible; ReportBot/1.0)"
	}
	if maxBody == 0 {
		maxBody = 512 * 1024
	}
	return &HTTPPageFetcher{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 10 * time.Second,
				}).DialContext,
				TLSHandshakeTimeout: 10 * time.Second,
			},
		},
		userAgent: userAgent,
		maxBody:   maxBody,
	}
}

// FetchHTML fetches a URL and returns its body as a string.
func (f *HTTPPageFetcher) FetchHTML(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", eris.Wrap(err, "check: create request")
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", eris.Wrap(err, "check: fetch")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", eris.Errorf("check: status %d from %s", resp.StatusCode, rawURL)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBody))
	if err != nil {
		return "", eris.Wrap(err, "check: read body")
	}
	return string(body), nil
}

// Checker fetches candidate pages under a fixed concurrency cap and runs
// the classifier on each. It is the only concurrent component in the
// pipeline.
type Checker struct {
	fetcher     PageFetcher
	concurrency int
	timeout     time.Duration
}

// NewChecker creates a Checker. Concurrency below 1 falls back to 10,
// timeout zero to 10s.
func NewChecker(fetcher PageFetcher, concurrency int, timeout time.Duration) *Checker {
	if concurrency < 1 {
		concurrency = 10
	}
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Checker{fetcher: fetcher, concurrency: concurrency, timeout: timeout}
}

// CheckURLs fetches and classifies each URL, at most c.concurrency in
// flight at once. Duplicate URLs are fetched once and share the result
// entry. A fetch failure of any kind downgrades to a no-marker
// classification for that URL; it never fails the batch, so every input
// URL has an entry in the returned map.
func (c *Checker) CheckURLs(ctx context.Context, urls []string) map[string]model.Classification {
	results := make(map[string]model.Classification, len(urls))
	if len(urls) == 0 {
		return results
	}

	seen := make(map[string]struct{}, len(urls))
	var distinct []string
	for _, u := range urls {
		if _, ok := seen[u]; ok {
			continue
		}
		seen[u] = struct{}{}
		distinct = append(distinct, u)
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)

	for _, u := range distinct {
		g.Go(func() error {
			fetchCtx, cancel := context.WithTimeout(gctx, c.timeout)
			defer cancel()

			cls := model.NoMarker()
			html, err := c.fetcher.FetchHTML(fetchCtx, u)
			if err != nil {
				zap.L().Warn("check: fetch failed, recording no marker",
					zap.String("url", u),
					zap.Error(err),
				)
			} else {
				cls = Classify(html)
			}

			mu.Lock()
			results[u] = cls
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	zap.L().Info("check: classified urls",
		zap.Int("urls", len(urls)),
		zap.Int("distinct", len(distinct)),
		zap.Int("concurrency", c.concurrency),
	)
	return results
}
