package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fullRecord() Record {
	return Record{
		CityCountry:         "UK",
		OpenCallTitle:       "Open Studios 2025",
		DeadlineDate:        "2025-03-01",
		EventDate:           "2025-06-14",
		ApplicationFormLink: "http://x.test/apply",
		SelectionCriteria:   "Open to UK-based artists",
		FAQ:                 "Who is eligible?: UK-based artists",
		ApplicationGuide:    "1. Prepare portfolio",
		Fee:                 "no fee",
	}
}

func TestRecordKey(t *testing.T) {
	a := fullRecord()
	b := fullRecord()
	b.Fee = "£20"
	b.FAQ = "different"

	// Identity is (title, link) only; other attributes don't matter.
	assert.Equal(t, a.Key(), b.Key())

	b.ApplicationFormLink = "http://y.test/apply"
	assert.NotEqual(t, a.Key(), b.Key())
}

func TestRecordCSVValues(t *testing.T) {
	r := fullRecord()
	values := r.CSVValues()
	assert.Len(t, values, len(RecordColumns))
	assert.Equal(t, "UK", values[0])
	assert.Equal(t, "no fee", values[len(values)-1])
}

func TestRecordFromRowRoundTrip(t *testing.T) {
	r := fullRecord()
	row := NewRow(RecordColumns, r.CSVValues())
	assert.Equal(t, r, RecordFromRow(row))
}

func TestMissingRequired(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Record)
		missing []string
	}{
		{name: "complete", mutate: func(*Record) {}, missing: nil},
		{
			name:    "no deadline",
			mutate:  func(r *Record) { r.DeadlineDate = "" },
			missing: []string{"Deadline_Date"},
		},
		{
			name: "several missing",
			mutate: func(r *Record) {
				r.CityCountry = ""
				r.ApplicationFormLink = ""
			},
			missing: []string{"City_Country", "Application_Form_Link"},
		},
		{
			name:    "optional fields may be empty",
			mutate:  func(r *Record) { r.FAQ = ""; r.Fee = ""; r.SelectionCriteria = "" },
			missing: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := fullRecord()
			tt.mutate(&r)
			assert.Equal(t, tt.missing, r.MissingRequired())
		})
	}
}
