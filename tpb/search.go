package tpb

import (
	"context"
	"fmt"
	"time"

	"github.com/piratesearch/magnet-finder/cache"
	"github.com/piratesearch/magnet-finder/logging"
	"github.com/piratesearch/magnet-finder/monitoring"
	"github.com/piratesearch/magnet-finder/requester"
	"github.com/piratesearch/magnet-finder/schema"
)

const (
	apiRequestTimeout  = 8 * time.Second
	htmlRequestTimeout = 10 * time.Second
)

// Client runs the search pipeline against a fixed set of mirrors. One Search
// call is a single synchronous operation: mirrors and categories are tried
// strictly in order, one blocking request at a time.
type Client struct {
	tables  Tables
	api     *requester.Requester
	html    *requester.Requester
	metrics *monitoring.Metrics
}

// NewClient builds a Client over the given tables. c may be nil to disable
// response caching.
func NewClient(tables Tables, c *cache.Redis, m *monitoring.Metrics) *Client {
	return &Client{
		tables:  tables,
		api:     requester.New(c, m, apiRequestTimeout),
		html:    requester.New(c, m, htmlRequestTimeout),
		metrics: m,
	}
}

// SetCacheExpiration adjusts how long fetched mirror responses stay cached.
func (c *Client) SetCacheExpiration(d time.Duration) {
	c.api.SetShortLivedCacheExpiration(d)
	c.html.SetShortLivedCacheExpiration(d)
}

// HasCategory reports whether key names a configured category set.
func (c *Client) HasCategory(key string) bool {
	_, ok := c.tables.CategorySets[key]
	return ok
}

// Search runs the structured fetcher and, when it comes back empty, falls
// back to the HTML fetcher, then filters and ranks whatever was found.
//
// A clean zero-row outcome is ([], nil). *ExhaustedError is returned only
// when a fetcher path ended with recorded failures and no rows; the HTML
// fetcher's failure wins over the structured one's, since it ran last.
func (c *Client) Search(ctx context.Context, query, categoryKey string, res Resolution) ([]schema.Torrent, error) {
	cats, ok := c.tables.CategorySets[categoryKey]
	if !ok {
		return nil, fmt.Errorf("unknown category set %q", categoryKey)
	}

	rows, apiErr := c.fetchAPI(ctx, query, cats)
	if len(rows) == 0 {
		logging.Debug().Str("query", query).Str("category", categoryKey).Msg("Structured mirrors empty, falling back to HTML")
		var htmlErr error
		rows, htmlErr = c.fetchHTML(ctx, query, cats)
		if len(rows) == 0 {
			if htmlErr != nil {
				return nil, &ExhaustedError{Fetcher: "html", Last: htmlErr}
			}
			if apiErr != nil {
				return nil, &ExhaustedError{Fetcher: "api", Last: apiErr}
			}
			return []schema.Torrent{}, nil
		}
	}
	return c.filterAndRank(rows, res), nil
}
