package handler

import (
	"net/http"
	"strings"

	"github.com/hbollon/go-edlib"

	"github.com/piratesearch/magnet-finder/schema"
	"github.com/piratesearch/magnet-finder/utils"
)

// AddSimilarity annotates each result with its Jaccard similarity to the
// query. The score is advisory; the seeder ranking stays authoritative.
// With filter_results set, low-signal rows are pruned when plenty remain.
func AddSimilarity(r *http.Request, torrents []schema.Torrent) []schema.Torrent {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		return torrents
	}
	qLower := strings.ToLower(q)
	splitLength := 2
	for i := range torrents {
		nameLower := strings.ReplaceAll(strings.ToLower(torrents[i].Name), ".", " ")
		torrents[i].Similarity = edlib.JaccardSimilarity(nameLower, qLower, splitLength)
	}

	if len(torrents) > 20 && r.URL.Query().Get("filter_results") != "" {
		torrents = utils.Filter(torrents, func(t schema.Torrent) bool {
			return t.Similarity > 0
		})
	}
	return torrents
}
