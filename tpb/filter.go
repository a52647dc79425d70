package tpb

import (
	"slices"
	"strings"

	"github.com/piratesearch/magnet-finder/schema"
)

// filterAndRank validates raw rows, applies the resolution filter to the
// name, coerces counters to non-negative values, stable-sorts by seeders
// descending (ties keep fetch order) and caps the output at MaxResults.
func (c *Client) filterAndRank(rows []schema.Torrent, res Resolution) []schema.Torrent {
	filtered := make([]schema.Torrent, 0, len(rows))
	for _, row := range rows {
		if row.Name == "" || row.InfoHash == "" {
			continue
		}
		if !matchesResolution(row.Name, res) {
			continue
		}
		if row.Seeders < 0 {
			row.Seeders = 0
		}
		if row.Leechers < 0 {
			row.Leechers = 0
		}
		if row.SizeBytes < 0 {
			row.SizeBytes = 0
		}
		filtered = append(filtered, row)
	}

	slices.SortStableFunc(filtered, func(a, b schema.Torrent) int {
		return b.Seeders - a.Seeders
	})

	if len(filtered) > c.tables.MaxResults {
		filtered = filtered[:c.tables.MaxResults]
	}
	return filtered
}

func matchesResolution(name string, res Resolution) bool {
	lower := strings.ToLower(name)
	switch res {
	case Resolution1080:
		return strings.Contains(lower, "1080")
	case Resolution4K:
		return strings.Contains(lower, "2160") || strings.Contains(lower, "4k") || strings.Contains(lower, "uhd")
	default:
		return true
	}
}
