package tpb

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/piratesearch/magnet-finder/magnet"
	"github.com/piratesearch/magnet-finder/schema"
	"github.com/piratesearch/magnet-finder/utils"
)

// rowState accumulates one table row's worth of parser state. Region flags
// are cleared by the matching close tag, not by row boundaries, so
// unbalanced markup loses optional fields instead of breaking the scan.
type rowState struct {
	inRow         bool
	inDetName     bool
	inTitleAnchor bool
	inDetDesc     bool
	inAlignRight  bool

	name       string
	magnetLink string
	sizeBytes  int64
	rightCells []int
}

// ParseSearchRows reconstructs result rows from a TPB search page. It scans
// the tag stream in a single pass without building a DOM, keyed on the
// structural cues of the result table: a detName container holding the title
// anchor, a detDesc container carrying the size text, magnet anchors, and
// right-aligned numeric cells. Rows without both a name and a resolvable
// magnet info-hash are dropped silently.
func ParseSearchRows(body string) []schema.Torrent {
	z := html.NewTokenizer(strings.NewReader(body))
	var rows []schema.Torrent
	var row rowState
	for {
		switch z.Next() {
		case html.ErrorToken:
			return rows
		case html.StartTagToken, html.SelfClosingTagToken:
			row.openTag(z.Token())
		case html.EndTagToken:
			tag := z.Token().Data
			if tag == "tr" && row.inRow {
				if t, ok := row.finish(); ok {
					rows = append(rows, t)
				}
				row = rowState{}
			}
			row.closeTag(tag)
		case html.TextToken:
			row.text(z.Token().Data)
		}
	}
}

func attrMap(tok html.Token) map[string]string {
	attrs := make(map[string]string, len(tok.Attr))
	for _, a := range tok.Attr {
		attrs[a.Key] = a.Val
	}
	return attrs
}

func (r *rowState) openTag(tok html.Token) {
	if tok.Data == "tr" {
		*r = rowState{inRow: true}
		return
	}
	if !r.inRow {
		return
	}
	attrs := attrMap(tok)
	switch tok.Data {
	case "div":
		if attrs["class"] == "detName" {
			r.inDetName = true
		}
	case "font":
		if attrs["class"] == "detDesc" {
			r.inDetDesc = true
		}
	case "a":
		if href := attrs["href"]; strings.HasPrefix(href, "magnet:?xt=") {
			r.magnetLink = href
		} else if r.inDetName {
			r.inTitleAnchor = true
		}
	case "td":
		if attrs["align"] == "right" {
			r.inAlignRight = true
		}
	}
}

func (r *rowState) closeTag(tag string) {
	switch tag {
	case "div":
		r.inDetName = false
	case "a":
		r.inTitleAnchor = false
	case "font":
		r.inDetDesc = false
	case "td":
		r.inAlignRight = false
	}
}

func (r *rowState) text(data string) {
	if !r.inRow {
		return
	}
	text := strings.TrimSpace(data)
	if text == "" {
		return
	}
	if r.inTitleAnchor && r.inDetName {
		r.name = text
	}
	if r.inDetDesc {
		if size := utils.ParseSizeBytes(text); size != 0 {
			r.sizeBytes = size
		}
	}
	// Right-aligned numeric cells arrive seeders first, leechers second.
	// Purely positional; a column reorder upstream would swap the two.
	if r.inAlignRight && isDigits(text) {
		if n, err := strconv.Atoi(text); err == nil {
			r.rightCells = append(r.rightCells, n)
		}
	}
}

func (r *rowState) finish() (schema.Torrent, bool) {
	hash, ok := magnet.ExtractInfoHash(r.magnetLink)
	if r.name == "" || !ok {
		return schema.Torrent{}, false
	}
	t := schema.Torrent{
		Name:       r.name,
		InfoHash:   hash,
		MagnetLink: r.magnetLink,
		SizeBytes:  r.sizeBytes,
	}
	if len(r.rightCells) > 0 {
		t.Seeders = r.rightCells[0]
	}
	if len(r.rightCells) > 1 {
		t.Leechers = r.rightCells[1]
	}
	return t, true
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
