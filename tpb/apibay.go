package tpb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/piratesearch/magnet-finder/logging"
	"github.com/piratesearch/magnet-finder/schema"
)

// apibayTorrent is one element of a q.php response. The API serializes every
// field as a string, so numeric fields go through flexInt. Unknown fields
// are ignored.
type apibayTorrent struct {
	Name     string  `json:"name"`
	InfoHash string  `json:"info_hash"`
	Seeders  flexInt `json:"seeders"`
	Leechers flexInt `json:"leechers"`
	Size     flexInt `json:"size"`
}

// flexInt decodes JSON numbers that may arrive quoted, bare or missing.
// Anything unparseable counts as zero rather than failing the whole batch.
type flexInt int64

func (f *flexInt) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		*f = 0
		return nil
	}
	*f = flexInt(n)
	return nil
}

// fetchAPI walks the structured mirrors, trying every category code of the
// set on each, and returns the first non-empty batch. A request or decode
// failure on one combination advances to the next; the last failure comes
// back with nil rows once everything is exhausted.
func (c *Client) fetchAPI(ctx context.Context, query string, cats []string) ([]schema.Torrent, error) {
	encoded := url.QueryEscape(query)
	var lastErr error
	for _, endpoint := range c.tables.APIEndpoints {
		for _, cat := range cats {
			u := fmt.Sprintf(endpoint, encoded, cat)
			c.metrics.FetcherRequests.WithLabelValues("api").Inc()
			body, err := c.api.Get(ctx, u)
			if err != nil {
				c.metrics.FetcherErrors.WithLabelValues("api").Inc()
				logging.Warn().Err(err).Str("url", u).Msg("API mirror failed, trying next")
				lastErr = err
				continue
			}
			var results []apibayTorrent
			if err := json.Unmarshal(body, &results); err != nil {
				c.metrics.FetcherErrors.WithLabelValues("api").Inc()
				logging.Warn().Err(err).Str("url", u).Msg("Malformed API response, trying next")
				lastErr = err
				continue
			}
			if len(results) == 0 {
				continue
			}
			rows := make([]schema.Torrent, 0, len(results))
			for _, r := range results {
				rows = append(rows, schema.Torrent{
					Name:      r.Name,
					InfoHash:  r.InfoHash,
					Seeders:   int(r.Seeders),
					Leechers:  int(r.Leechers),
					SizeBytes: int64(r.Size),
				})
			}
			return rows, nil
		}
	}
	return nil, lastErr
}
