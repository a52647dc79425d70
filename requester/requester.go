package requester

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/piratesearch/magnet-finder/cache"
	"github.com/piratesearch/magnet-finder/logging"
	"github.com/piratesearch/magnet-finder/monitoring"
)

// SpoofedUserAgent identifies outbound requests as a browser. Some mirrors
// reject unidentified clients outright.
const SpoofedUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

const cacheKey = "shortLivedCache"

// Requester issues single GET requests with browser-like headers and an
// optional short-lived read-through cache in front of the network. A nil
// cache disables caching entirely.
type Requester struct {
	httpClient                *http.Client
	c                         *cache.Redis
	metrics                   *monitoring.Metrics
	shortLivedCacheExpiration time.Duration
}

func New(c *cache.Redis, m *monitoring.Metrics, timeout time.Duration) *Requester {
	httpClient := &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
			ForceAttemptHTTP2:   true,
		},
	}

	return &Requester{httpClient: httpClient, c: c, metrics: m, shortLivedCacheExpiration: 30 * time.Minute}
}

func (r *Requester) SetShortLivedCacheExpiration(expiration time.Duration) {
	r.shortLivedCacheExpiration = expiration
}

// spoofBrowserHeaders adds browser-like headers to spoof a real browser.
func spoofBrowserHeaders(req *http.Request) {
	req.Header.Set("User-Agent", SpoofedUserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")
	req.Header.Set("Connection", "keep-alive")
	req.Header.Set("Upgrade-Insecure-Requests", "1")
}

// Get fetches url and returns the response body. Non-2xx statuses are errors
// so callers can advance to the next mirror.
func (r *Requester) Get(ctx context.Context, url string) ([]byte, error) {
	key := fmt.Sprintf("%s:%s", cacheKey, url)
	if r.c != nil {
		if body, err := r.c.Get(ctx, key); err == nil {
			r.metrics.CacheHits.WithLabelValues("response_body").Inc()
			logging.Debug().Str("url", url).Msg("Returning from short-lived cache")
			return body, nil
		}
		r.metrics.CacheMisses.WithLabelValues("response_body").Inc()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for url %s: %w", url, err)
	}
	spoofBrowserHeaders(req)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to do request for url %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d for url %s", resp.StatusCode, url)
	}

	var buf bytes.Buffer
	if resp.ContentLength > 0 {
		buf.Grow(int(resp.ContentLength))
	} else {
		buf.Grow(32 * 1024)
	}
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	body := buf.Bytes()
	if r.c != nil && len(body) > 0 {
		if err := r.c.SetWithExpiration(ctx, key, body, r.shortLivedCacheExpiration); err != nil {
			logging.Error().Err(err).Str("url", url).Msg("Failed to save response to cache")
		}
	}
	return body, nil
}

// ExpireDocument drops a cached response body, forcing the next Get to hit
// the network.
func (r *Requester) ExpireDocument(ctx context.Context, url string) error {
	if r.c == nil {
		return nil
	}
	return r.c.Del(ctx, fmt.Sprintf("%s:%s", cacheKey, url))
}
