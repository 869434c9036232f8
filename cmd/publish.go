package main

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mirr-art/opencall-cli/internal/model"
	"github.com/mirr-art/opencall-cli/internal/publish"
	"github.com/mirr-art/opencall-cli/pkg/catalog"
)

var publishFile string

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Submit persisted open-call records to the catalog API",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := publishFile
		if path == "" {
			path = cfg.Enrich.Output
		}

		results, err := runPublish(cmd.Context(), path)
		if err != nil {
			return err
		}

		logPublishSummary(path, results)
		return nil
	},
}

func init() {
	publishCmd.Flags().StringVar(&publishFile, "file", "", "records CSV to publish (default the enrichment output)")
	rootCmd.AddCommand(publishCmd)
}

// runPublish submits every complete record in the table. Shared by the
// publish and run commands.
func runPublish(ctx context.Context, path string) ([]model.PublishResult, error) {
	client := catalog.NewClient(cfg.Catalog.Token, catalog.WithBaseURL(cfg.Catalog.BaseURL))
	return publish.NewPublisher(client).Publish(ctx, path)
}

func logPublishSummary(path string, results []model.PublishResult) {
	var failed int
	for _, r := range results {
		if !r.OK {
			failed++
		}
	}
	zap.L().Info("publish complete",
		zap.String("path", path),
		zap.Int("submitted", len(results)),
		zap.Int("failed", failed),
	)
}
