package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/piratesearch/magnet-finder/logging"
	"github.com/piratesearch/magnet-finder/magnet"
	"github.com/piratesearch/magnet-finder/tpb"
	"github.com/piratesearch/magnet-finder/utils"
)

// HandlerSearch runs the whole pipeline for one query and returns the ranked
// result set. Query params: q (required), cat (category set key, default
// movies_hd), res (4k|1080|any, default any), filter_results (opt-in
// similarity pruning).
func (i *Indexer) HandlerSearch(w http.ResponseWriter, r *http.Request) {
	cat := r.URL.Query().Get("cat")
	if cat == "" {
		cat = tpb.CategoryMoviesHD
	}

	start := time.Now()
	defer func() {
		i.metrics.SearchDuration.WithLabelValues(cat).Observe(time.Since(start).Seconds())
		i.metrics.SearchRequests.WithLabelValues(cat).Inc()
	}()

	ctx := r.Context()
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		writeJSONError(w, r, http.StatusBadRequest, errors.New("query parameter 'q' is required"))
		return
	}
	if !i.client.HasCategory(cat) {
		writeJSONError(w, r, http.StatusBadRequest, fmt.Errorf("unknown category set %q", cat))
		return
	}

	res := tpb.Resolution(r.URL.Query().Get("res"))
	switch res {
	case "":
		res = tpb.ResolutionAny
	case tpb.Resolution4K, tpb.Resolution1080, tpb.ResolutionAny:
	default:
		writeJSONError(w, r, http.StatusBadRequest, fmt.Errorf("unknown resolution %q", res))
		return
	}

	results, err := i.client.Search(ctx, q, cat, res)
	if err != nil {
		i.metrics.SearchErrors.WithLabelValues(cat).Inc()
		logging.ErrorWithRequest(r).Err(err).Str("query", q).Msg("Search failed")
		writeJSONError(w, r, http.StatusInternalServerError, err)
		return
	}

	for idx := range results {
		if results[idx].MagnetLink == "" {
			results[idx].MagnetLink = magnet.Build(results[idx].InfoHash, results[idx].Name)
		}
		results[idx].Size = utils.HumanSize(results[idx].SizeBytes)
	}
	results = AddSimilarity(r, results)

	writeJSON(w, r, Response{
		Results: results,
		Count:   len(results),
	})
}
