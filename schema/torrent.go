package schema

// Torrent is one discovered search result. Rows live only for the duration
// of a single query/response cycle; nothing is merged across searches.
type Torrent struct {
	Name       string  `json:"name"`
	InfoHash   string  `json:"info_hash"`
	MagnetLink string  `json:"magnet_link,omitempty"`
	Seeders    int     `json:"seeders"`
	Leechers   int     `json:"leechers"`
	SizeBytes  int64   `json:"size_bytes"`
	Size       string  `json:"size,omitempty"`
	Similarity float32 `json:"similarity,omitempty"`
}
