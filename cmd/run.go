package main

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mirr-art/opencall-cli/internal/scrape"
	"github.com/mirr-art/opencall-cli/internal/table"
)

var runSkipScrape bool

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full pipeline: scrape, full text, enrich, publish",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		runID := uuid.NewString()
		logger := zap.L().With(zap.String("run_id", runID))
		logger.Info("pipeline started")

		listingPath := filepath.Join(cfg.Enrich.InputDir, "artist_opportunities.csv")

		if !runSkipScrape {
			if err := os.MkdirAll(cfg.Enrich.InputDir, 0o755); err != nil {
				return eris.Wrap(err, "create input directory")
			}

			scraper := scrape.NewScraper(cfg.Scrape)
			rows, err := scraper.Listings(ctx)
			if err != nil {
				return eris.Wrap(err, "collect listings")
			}

			scraper.FillFullText(ctx, rows)

			if err := table.WriteRows(listingPath, rows); err != nil {
				return eris.Wrap(err, "write listing table")
			}
			logger.Info("collection complete",
				zap.String("path", listingPath),
				zap.Int("rows", len(rows)),
			)
		}

		records, err := runEnrichment(ctx)
		if err != nil {
			return err
		}
		if err := table.WriteRecords(cfg.Enrich.Output, records); err != nil {
			return eris.Wrap(err, "write output table")
		}
		logger.Info("enrichment complete",
			zap.String("output", cfg.Enrich.Output),
			zap.Int("records", len(records)),
		)

		results, err := runPublish(ctx, cfg.Enrich.Output)
		if err != nil {
			return err
		}
		logPublishSummary(cfg.Enrich.Output, results)

		logger.Info("pipeline finished")
		return nil
	},
}

func init() {
	runCmd.Flags().BoolVar(&runSkipScrape, "skip-scrape", false, "enrich and publish existing tables without collecting new listings")
	rootCmd.AddCommand(runCmd)
}
