// Package publish submits the deduplicated open-call table to the
// catalog, one record at a time, isolating per-record failures.
package publish

import (
	"context"
	"fmt"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/mirr-art/opencall-cli/internal/model"
	"github.com/mirr-art/opencall-cli/internal/table"
	"github.com/mirr-art/opencall-cli/pkg/catalog"
)

// Publisher submits records to the catalog API.
type Publisher struct {
	client catalog.Client
}

// NewPublisher creates a Publisher.
func NewPublisher(client catalog.Client) *Publisher {
	return &Publisher{client: client}
}

// Publish loads the persisted table at path and submits each record
// sequentially. Records missing a required attribute are skipped with a
// warning and never submitted. A failed submission (transport error or
// non-200 status) is recorded and logged; processing always continues to
// the next record. Nothing is retried. The returned results cover
// submitted records only; the error is non-nil only when the table
// itself cannot be loaded.
func (p *Publisher) Publish(ctx context.Context, path string) ([]model.PublishResult, error) {
	rows, err := table.LoadCSVFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "publish: load table")
	}
	zap.L().Info("publish: table loaded",
		zap.String("path", path),
		zap.Int("records", len(rows)),
	)

	var results []model.PublishResult
	for _, row := range rows {
		record := model.RecordFromRow(row)

		if missing := record.MissingRequired(); len(missing) > 0 {
			zap.L().Warn("publish: record missing required attributes, skipping",
				zap.String("title", record.OpenCallTitle),
				zap.Strings("missing", missing),
			)
			continue
		}

		result := model.PublishResult{Title: record.OpenCallTitle}
		if err := p.client.SubmitOpenCall(ctx, submissionFor(record)); err != nil {
			result.Err = err
			zap.L().Error("publish: submission failed",
				zap.String("title", record.OpenCallTitle),
				zap.Error(err),
			)
		} else {
			result.OK = true
			zap.L().Info("publish: record accepted",
				zap.String("title", record.OpenCallTitle),
			)
		}
		results = append(results, result)
	}

	return results, nil
}

// submissionFor maps a record onto the catalog request body, synthesizing
// the description the API requires.
func submissionFor(r model.Record) catalog.Submission {
	return catalog.Submission{
		CityCountry:         r.CityCountry,
		OpenCallTitle:       r.OpenCallTitle,
		DeadlineDate:        r.DeadlineDate,
		EventDate:           r.EventDate,
		ApplicationFromLink: r.ApplicationFormLink,
		SelectionCriteria:   r.SelectionCriteria,
		FAQ:                 r.FAQ,
		Fee:                 r.Fee,
		ApplicationGuide:    r.ApplicationGuide,
		OpenCallDescription: fmt.Sprintf("Open call in %s titled %s.", r.CityCountry, r.OpenCallTitle),
	}
}
