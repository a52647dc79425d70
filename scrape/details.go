package scrape

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/piratesearch/magnet-finder/magnet"
	"github.com/piratesearch/magnet-finder/requester"
)

// DetailPage is the metadata visible on a torrent detail page.
type DetailPage struct {
	Title      string            `json:"title"`
	MagnetLink string            `json:"magnet_link,omitempty"`
	InfoHash   string            `json:"info_hash,omitempty"`
	Attributes map[string]string `json:"attributes"`
}

// DetailScraper fetches a torrent detail page and extracts the metadata
// listed there. Unlike the search-result parser this works over a full
// document, so it uses goquery selectors.
type DetailScraper struct {
	requester *requester.Requester
}

func NewDetailScraper(r *requester.Requester) *DetailScraper {
	return &DetailScraper{requester: r}
}

// Expire drops the cached copy of pageURL, forcing the next Fetch to hit
// the network.
func (s *DetailScraper) Expire(ctx context.Context, pageURL string) error {
	return s.requester.ExpireDocument(ctx, pageURL)
}

// Fetch downloads pageURL and extracts the page title, the first magnet
// anchor (with its info-hash) and the dt/dd attribute pairs of the detail
// listing.
func (s *DetailScraper) Fetch(ctx context.Context, pageURL string) (*DetailPage, error) {
	body, err := s.requester.Get(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse detail page %s: %w", pageURL, err)
	}

	page := &DetailPage{Attributes: map[string]string{}}

	page.Title = strings.TrimSpace(doc.Find("#title").First().Text())
	if page.Title == "" {
		page.Title = strings.TrimSpace(doc.Find("title").First().Text())
	}

	if href, ok := doc.Find(`a[href^="magnet"]`).First().Attr("href"); ok {
		page.MagnetLink = href
		if hash, ok := magnet.ExtractInfoHash(href); ok {
			page.InfoHash = hash
		}
	}

	doc.Find("dl dt").Each(func(_ int, dt *goquery.Selection) {
		key := strings.TrimSuffix(strings.TrimSpace(dt.Text()), ":")
		value := strings.TrimSpace(dt.NextFiltered("dd").Text())
		if key != "" && value != "" {
			page.Attributes[key] = value
		}
	})

	return page, nil
}
