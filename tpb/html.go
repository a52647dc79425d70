package tpb

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/piratesearch/magnet-finder/logging"
	"github.com/piratesearch/magnet-finder/schema"
)

// fetchHTML walks the HTML mirrors the same way fetchAPI walks the
// structured ones. Bodies are decoded as permissive UTF-8 (invalid byte
// sequences replaced, never fatal) before the row parser runs; a page that
// parses to zero rows simply advances to the next combination.
func (c *Client) fetchHTML(ctx context.Context, query string, cats []string) ([]schema.Torrent, error) {
	encoded := url.PathEscape(query)
	var lastErr error
	for _, endpoint := range c.tables.HTMLEndpoints {
		for _, cat := range cats {
			u := fmt.Sprintf(endpoint, encoded, cat)
			c.metrics.FetcherRequests.WithLabelValues("html").Inc()
			body, err := c.html.Get(ctx, u)
			if err != nil {
				c.metrics.FetcherErrors.WithLabelValues("html").Inc()
				logging.Warn().Err(err).Str("url", u).Msg("HTML mirror failed, trying next")
				lastErr = err
				continue
			}
			rows := ParseSearchRows(strings.ToValidUTF8(string(body), "�"))
			if len(rows) > 0 {
				return rows, nil
			}
		}
	}
	return nil, lastErr
}
