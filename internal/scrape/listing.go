// Package scrape collects artist-opportunity listings from the source
// site and fills in the full text of each opportunity page. Its output
// tables feed the enrichment batch.
package scrape

import (
	"context"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/mirr-art/opencall-cli/internal/config"
	"github.com/mirr-art/opencall-cli/internal/model"
)

// Column names of the listing table, in write order.
var ListingColumns = []string{
	ColDataD,
	ColDataA,
	"Heading",
	"Alert",
	"Title",
	"Date Updated",
	"Body",
	ColURL,
}

const (
	ColDataD    = "Data-d"
	ColDataA    = "Data-a"
	ColURL      = "URL"
	ColFullText = "Full Text"
)

// Scraper fetches and parses opportunity listings.
type Scraper struct {
	http       *resty.Client
	listingURL string
}

// NewScraper builds a Scraper from configuration.
func NewScraper(cfg config.ScrapeConfig) *Scraper {
	client := resty.New().
		SetTimeout(time.Duration(cfg.TimeoutSecs) * time.Second)

	return &Scraper{
		http:       client,
		listingURL: cfg.ListingURL,
	}
}

// Listings fetches the listing page and returns one row per
// opportunity element found on it.
func (s *Scraper) Listings(ctx context.Context) ([]model.Row, error) {
	resp, err := s.http.R().SetContext(ctx).Get(s.listingURL)
	if err != nil {
		return nil, eris.Wrap(err, "scrape: fetch listing page")
	}
	if resp.IsError() {
		return nil, eris.Errorf("scrape: listing page returned status %d", resp.StatusCode())
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(resp.String()))
	if err != nil {
		return nil, eris.Wrap(err, "scrape: parse listing page")
	}

	rows := ParseListings(doc)
	zap.L().Info("scrape: listings collected",
		zap.String("url", s.listingURL),
		zap.Int("count", len(rows)))

	return rows, nil
}

// ParseListings extracts opportunity rows from a parsed listing page.
// Elements missing a sub-field yield an empty value for that column.
func ParseListings(doc *goquery.Document) []model.Row {
	var rows []model.Row
	doc.Find("div.artopp").Each(func(_ int, el *goquery.Selection) {
		values := []string{
			el.AttrOr("data-d", ""),
			el.AttrOr("data-a", ""),
			text(el, "h3.b_categorical-heading.mod--artopps"),
			text(el, "p.b_ending-alert.mod--just-opened"),
			text(el, "h2"),
			text(el, "p.b_date"),
			text(el, "div.m_body-copy"),
			el.Find("a.b_submit.mod--next").AttrOr("href", ""),
		}
		rows = append(rows, model.NewRow(ListingColumns, values))
	})
	return rows
}

func text(el *goquery.Selection, selector string) string {
	return strings.TrimSpace(el.Find(selector).First().Text())
}
