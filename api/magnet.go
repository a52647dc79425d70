package handler

import (
	"errors"
	"net/http"

	"github.com/piratesearch/magnet-finder/magnet"
)

// HandlerMagnet builds a magnet URI for a previously returned result.
// Query params: hash (info-hash, required), dn (display name).
func (i *Indexer) HandlerMagnet(w http.ResponseWriter, r *http.Request) {
	hash := r.URL.Query().Get("hash")
	if hash == "" {
		writeJSONError(w, r, http.StatusBadRequest, errors.New("query parameter 'hash' is required"))
		return
	}
	name := r.URL.Query().Get("dn")

	writeJSON(w, r, map[string]string{
		"magnet_link": magnet.Build(hash, name),
	})
}
