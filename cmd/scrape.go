package main

import (
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mirr-art/opencall-cli/internal/scrape"
	"github.com/mirr-art/opencall-cli/internal/table"
)

var scrapeOut string

var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Collect opportunity listings into a CSV table",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		out := scrapeOut
		if out == "" {
			out = filepath.Join(cfg.Enrich.InputDir, "artist_opportunities.csv")
		}
		if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
			return eris.Wrap(err, "create output directory")
		}

		rows, err := scrape.NewScraper(cfg.Scrape).Listings(ctx)
		if err != nil {
			return eris.Wrap(err, "collect listings")
		}

		if err := table.WriteRows(out, rows); err != nil {
			return eris.Wrap(err, "write listing table")
		}

		zap.L().Info("listing table written",
			zap.String("path", out),
			zap.Int("rows", len(rows)),
		)
		return nil
	},
}

func init() {
	scrapeCmd.Flags().StringVar(&scrapeOut, "out", "", "output CSV path (default <input-dir>/artist_opportunities.csv)")
	rootCmd.AddCommand(scrapeCmd)
}
