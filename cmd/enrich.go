package main

import (
	"context"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mirr-art/opencall-cli/internal/enrich"
	"github.com/mirr-art/opencall-cli/internal/model"
	"github.com/mirr-art/opencall-cli/internal/table"
	"github.com/mirr-art/opencall-cli/pkg/anthropic"
)

var enrichTables []string

var enrichCmd = &cobra.Command{
	Use:   "enrich",
	Short: "Derive open-call records from collected listing tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := runEnrichment(cmd.Context())
		if err != nil {
			return err
		}

		if err := table.WriteRecords(cfg.Enrich.Output, records); err != nil {
			return eris.Wrap(err, "write output table")
		}

		zap.L().Info("enrichment complete",
			zap.String("output", cfg.Enrich.Output),
			zap.Int("records", len(records)),
		)
		return nil
	},
}

func init() {
	enrichCmd.Flags().StringSliceVar(&enrichTables, "table", nil, "explicit input table paths (default every CSV/XLSX in the input dir)")
	rootCmd.AddCommand(enrichCmd)
}

// runEnrichment processes the selected tables, or every table in the
// input directory, and returns the deduplicated records. Shared by the
// enrich and run commands.
func runEnrichment(ctx context.Context) ([]model.Record, error) {
	var specs []enrich.FieldSpec
	if cfg.Enrich.FieldsFile != "" {
		loaded, err := enrich.LoadFields(cfg.Enrich.FieldsFile)
		if err != nil {
			return nil, eris.Wrap(err, "load field overrides")
		}
		specs = loaded
	}

	extractor := enrich.NewExtractor(anthropic.NewClient(cfg.Anthropic.Key), cfg.Anthropic)
	driver := enrich.NewDriver(enrich.NewEnricher(extractor, specs))

	paths := enrichTables
	if len(paths) == 0 {
		listed, err := enrich.ListTables(cfg.Enrich.InputDir)
		if err != nil {
			return nil, eris.Wrap(err, "list input tables")
		}
		paths = listed
	}
	zap.L().Info("input tables selected",
		zap.String("dir", cfg.Enrich.InputDir),
		zap.Int("count", len(paths)),
	)

	return enrich.Dedupe(driver.Run(ctx, paths)), nil
}
