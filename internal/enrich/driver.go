package enrich

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/mirr-art/opencall-cli/internal/model"
	"github.com/mirr-art/opencall-cli/internal/table"
)

// Driver runs the enricher over every row of a set of input tables.
type Driver struct {
	enricher *Enricher
}

// NewDriver creates a Driver.
func NewDriver(enricher *Enricher) *Driver {
	return &Driver{enricher: enricher}
}

// Run enriches all rows of all tables, strictly sequentially: tables in
// the given order, rows in file order. A table that fails to load is
// logged and skipped without aborting the batch. The output order is the
// concatenation of per-table order, which deduplication's
// first-occurrence policy depends on.
func (d *Driver) Run(ctx context.Context, paths []string) []model.Record {
	var records []model.Record

	for _, path := range paths {
		rows, err := loadTable(path)
		if err != nil {
			zap.L().Error("enrich: failed to load table, skipping",
				zap.String("table", path),
				zap.Error(err),
			)
			continue
		}
		zap.L().Info("enrich: table loaded",
			zap.String("table", path),
			zap.Int("rows", len(rows)),
		)

		for _, row := range rows {
			records = append(records, d.enricher.Enrich(ctx, row))
		}
	}

	return records
}

// loadTable reads one input table, choosing the parser by extension.
func loadTable(path string) ([]model.Row, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return table.LoadXLSXFile(path)
	}
	return table.LoadCSVFile(path)
}

// ListTables returns the paths of all CSV and XLSX tables directly in
// dir, sorted by name for a stable processing order.
func ListTables(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, eris.Wrap(err, "enrich: read input dir")
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".csv", ".xlsx":
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(paths)

	return paths, nil
}
