package handler

import (
	"encoding/json"
	"net/http"

	"github.com/piratesearch/magnet-finder/logging"
	"github.com/piratesearch/magnet-finder/monitoring"
	"github.com/piratesearch/magnet-finder/schema"
	"github.com/piratesearch/magnet-finder/scrape"
	"github.com/piratesearch/magnet-finder/tpb"
)

// Indexer bundles the collaborators shared by the HTTP handlers.
type Indexer struct {
	client  *tpb.Client
	details *scrape.DetailScraper
	metrics *monitoring.Metrics
}

func NewIndexer(client *tpb.Client, details *scrape.DetailScraper, metrics *monitoring.Metrics) *Indexer {
	return &Indexer{client: client, details: details, metrics: metrics}
}

type Response struct {
	Results []schema.Torrent `json:"results"`
	Count   int              `json:"count"`
}

func writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.ErrorWithRequest(r).Err(err).Msg("Failed to encode response")
	}
}

func writeJSONError(w http.ResponseWriter, r *http.Request, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if encErr := json.NewEncoder(w).Encode(map[string]string{"error": err.Error()}); encErr != nil {
		logging.ErrorWithRequest(r).Err(encErr).Msg("Failed to encode error response")
	}
}
