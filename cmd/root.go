package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mirr-art/opencall-cli/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "opencall-cli",
	Short: "Artist open-call collection and enrichment pipeline",
	Long:  "Scrapes artist-opportunity listings, derives structured open-call attributes via a generative model, persists them to CSV, and publishes to the catalog API.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
