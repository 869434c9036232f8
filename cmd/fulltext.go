package main

import (
	"path/filepath"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mirr-art/opencall-cli/internal/scrape"
	"github.com/mirr-art/opencall-cli/internal/table"
)

var fulltextFile string

var fulltextCmd = &cobra.Command{
	Use:   "fulltext",
	Short: "Fill the Full Text column of a listing table",
	Long:  "Visits the URL of each listing row whose Full Text cell is empty and stores the visible page text. Re-running resumes where the last pass stopped.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		path := fulltextFile
		if path == "" {
			path = filepath.Join(cfg.Enrich.InputDir, "artist_opportunities.csv")
		}

		rows, err := table.LoadCSVFile(path)
		if err != nil {
			return eris.Wrap(err, "load listing table")
		}

		scrape.NewScraper(cfg.Scrape).FillFullText(ctx, rows)

		if err := table.WriteRows(path, rows); err != nil {
			return eris.Wrap(err, "write listing table")
		}

		zap.L().Info("full text pass complete",
			zap.String("path", path),
			zap.Int("rows", len(rows)),
		)
		return nil
	},
}

func init() {
	fulltextCmd.Flags().StringVar(&fulltextFile, "file", "", "listing CSV to update (default <input-dir>/artist_opportunities.csv)")
	rootCmd.AddCommand(fulltextCmd)
}
