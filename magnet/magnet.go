package magnet

import (
	"net/url"
	"strings"
)

const (
	scheme     = "magnet:?"
	btihPrefix = "urn:btih:"
)

// Trackers is the fixed announce list appended to every built magnet link.
// Output order follows this declaration.
var Trackers = []string{
	"udp://tracker.opentrackr.org:1337/announce",
	"udp://open.demonii.com:1337/announce",
	"udp://tracker.coppersurfer.tk:6969/announce",
	"udp://tracker.leechers-paradise.org:6969/announce",
}

// ExtractInfoHash returns the BitTorrent v1 info-hash carried by a magnet
// URI. ok is false when uri is not a magnet link, the query is unparseable,
// or no btih xt value is present. Multiple xt parameters are tolerated; only
// the btih URN namespace is considered.
func ExtractInfoHash(uri string) (hash string, ok bool) {
	if !strings.HasPrefix(uri, scheme) {
		return "", false
	}
	query, err := url.ParseQuery(strings.TrimPrefix(uri, scheme))
	if err != nil {
		return "", false
	}
	for _, xt := range query["xt"] {
		if strings.HasPrefix(xt, btihPrefix) {
			return strings.TrimPrefix(xt, btihPrefix), true
		}
	}
	return "", false
}

// Build assembles a magnet URI from an info-hash and display name using the
// fixed tracker list. The hash is passed through unvalidated. The display
// name keeps literal spaces, which every common client accepts and most
// display more readably; trackers are fully percent-encoded.
func Build(infoHash, name string) string {
	var b strings.Builder
	b.WriteString(scheme)
	b.WriteString("xt=")
	b.WriteString(btihPrefix)
	b.WriteString(infoHash)
	b.WriteString("&dn=")
	b.WriteString(encodeDisplayName(name))
	for _, tracker := range Trackers {
		b.WriteString("&tr=")
		b.WriteString(url.QueryEscape(tracker))
	}
	return b.String()
}

// encodeDisplayName percent-encodes everything except the space character.
func encodeDisplayName(name string) string {
	return strings.ReplaceAll(url.QueryEscape(name), "+", " ")
}
