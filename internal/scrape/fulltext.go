package scrape

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/mirr-art/opencall-cli/internal/model"
)

// CouldNotLoad marks rows whose opportunity page could not be fetched.
// It is a table value like any other, not a signal the later stages act on.
const CouldNotLoad = "Could not load content"

// FillFullText visits the URL of each row that has one and stores the
// visible text of the page in the "Full Text" column. Rows that already
// carry full text are left alone, so re-running resumes an interrupted
// pass. Fetch failures record CouldNotLoad and the pass continues.
func (s *Scraper) FillFullText(ctx context.Context, rows []model.Row) {
	for i := range rows {
		url := rows[i].Get(ColURL)
		if url == "" || rows[i].Get(ColFullText) != "" {
			continue
		}

		body, err := s.pageText(ctx, url)
		if err != nil {
			zap.L().Warn("scrape: page load failed",
				zap.String("url", url),
				zap.Error(err))
			rows[i].Set(ColFullText, CouldNotLoad)
			continue
		}

		rows[i].Set(ColFullText, body)
		zap.L().Debug("scrape: full text extracted", zap.String("url", url))
	}
}

func (s *Scraper) pageText(ctx context.Context, url string) (string, error) {
	resp, err := s.http.R().SetContext(ctx).Get(url)
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		return "", eris.Errorf("scrape: page returned status %d", resp.StatusCode())
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(resp.String()))
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(doc.Find("body").Text()), nil
}
