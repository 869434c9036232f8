package enrich

import (
	"go.uber.org/zap"

	"github.com/mirr-art/opencall-cli/internal/model"
)

// Dedupe removes duplicate records by identity key (title, application
// link), keeping the first occurrence in input order. Source tables may
// overlap, so the same opportunity can arrive from several of them; the
// first-processed table wins.
func Dedupe(records []model.Record) []model.Record {
	seen := make(map[model.RecordKey]bool, len(records))
	out := make([]model.Record, 0, len(records))

	for _, r := range records {
		key := r.Key()
		if seen[key] {
			zap.L().Debug("enrich: duplicate record discarded",
				zap.String("title", key.Title),
				zap.String("link", key.Link),
			)
			continue
		}
		seen[key] = true
		out = append(out, r)
	}

	if dropped := len(records) - len(out); dropped > 0 {
		zap.L().Info("enrich: duplicates removed", zap.Int("dropped", dropped))
	}

	return out
}
