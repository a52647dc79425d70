package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/piratesearch/magnet-finder/logging"
)

// HandlerDetails scrapes a torrent detail page and returns its metadata.
// Query params: url (absolute http(s) page URL, required), refresh
// (any non-empty value drops the cached copy before fetching).
func (i *Indexer) HandlerDetails(w http.ResponseWriter, r *http.Request) {
	pageURL := r.URL.Query().Get("url")
	if pageURL == "" {
		writeJSONError(w, r, http.StatusBadRequest, errors.New("query parameter 'url' is required"))
		return
	}
	if !strings.HasPrefix(pageURL, "http://") && !strings.HasPrefix(pageURL, "https://") {
		writeJSONError(w, r, http.StatusBadRequest, errors.New("url must be absolute http(s)"))
		return
	}

	if r.URL.Query().Get("refresh") != "" {
		if err := i.details.Expire(r.Context(), pageURL); err != nil {
			logging.ErrorWithRequest(r).Err(err).Str("page_url", pageURL).Msg("Cache expire failed")
		}
	}

	page, err := i.details.Fetch(r.Context(), pageURL)
	if err != nil {
		logging.ErrorWithRequest(r).Err(err).Str("page_url", pageURL).Msg("Detail scrape failed")
		writeJSONError(w, r, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, r, page)
}
