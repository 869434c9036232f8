package enrich

import (
	"context"

	"go.uber.org/zap"

	"github.com/mirr-art/opencall-cli/internal/model"
)

// Enricher derives the full structured record for one listing row,
// issuing one independent Extractor call per field against the same
// serialized row context.
type Enricher struct {
	extractor *Extractor
	fields    map[string]FieldSpec
}

// NewEnricher creates an Enricher. The given specs are merged over
// DefaultFields by key, so a partial override set still yields a complete
// instruction set.
func NewEnricher(extractor *Extractor, specs []FieldSpec) *Enricher {
	fields := make(map[string]FieldSpec)
	for _, f := range DefaultFields() {
		fields[f.Key] = f
	}
	for _, f := range specs {
		if f.Instruction != "" {
			fields[f.Key] = f
		}
	}
	return &Enricher{extractor: extractor, fields: fields}
}

// Enrich serializes the row once and derives every record attribute from
// it. Fields are independent: no derived value feeds another field's
// query, and no returned value is validated against date or currency
// syntax. The instructions' format constraints are advisory.
func (e *Enricher) Enrich(ctx context.Context, row model.Row) model.Record {
	rowContext := row.Context()

	get := func(key string) string {
		value := e.extractor.Extract(ctx, rowContext, e.fields[key].Instruction)
		// Operator-facing trace of every intermediate value.
		zap.L().Debug("enrich: field derived",
			zap.String("field", key),
			zap.String("value", value),
		)
		return value
	}

	return model.Record{
		CityCountry:         get(FieldCityCountry),
		OpenCallTitle:       get(FieldOpenCallTitle),
		DeadlineDate:        get(FieldDeadlineDate),
		EventDate:           get(FieldEventDate),
		ApplicationFormLink: get(FieldApplicationFormLink),
		SelectionCriteria:   get(FieldSelectionCriteria),
		FAQ:                 get(FieldFAQ),
		ApplicationGuide:    get(FieldApplicationGuide),
		Fee:                 get(FieldFee),
	}
}
