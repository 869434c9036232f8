package model

// Record is the canonical structured representation of one open call.
// Every attribute is a string: either a value derived by the extractor,
// the field's fallback phrase, or the literal "Error" marker. Never
// empty once enrichment has run.
type Record struct {
	CityCountry         string `json:"city_country"`
	OpenCallTitle       string `json:"open_call_title"`
	DeadlineDate        string `json:"deadline_date"`
	EventDate           string `json:"event_date"`
	ApplicationFormLink string `json:"application_form_link"`
	SelectionCriteria   string `json:"selection_criteria"`
	FAQ                 string `json:"faq"`
	ApplicationGuide    string `json:"application_guide"`
	Fee                 string `json:"fee"`
}

// RecordKey identifies one real-world opportunity. Two records with equal
// keys are the same open call regardless of which source table produced
// them.
type RecordKey struct {
	Title string
	Link  string
}

// Key returns the identity key used for deduplication.
func (r Record) Key() RecordKey {
	return RecordKey{Title: r.OpenCallTitle, Link: r.ApplicationFormLink}
}

// RecordColumns is the persisted column order of the final artifact.
var RecordColumns = []string{
	"City_Country",
	"Open_Call_Title",
	"Deadline_Date",
	"Event_Date",
	"Application_Form_Link",
	"Selection_Criteria",
	"FAQ",
	"Application_Guide",
	"Fee",
}

// CSVValues returns the record's values in RecordColumns order.
func (r Record) CSVValues() []string {
	return []string{
		r.CityCountry,
		r.OpenCallTitle,
		r.DeadlineDate,
		r.EventDate,
		r.ApplicationFormLink,
		r.SelectionCriteria,
		r.FAQ,
		r.ApplicationGuide,
		r.Fee,
	}
}

// RecordFromRow maps a persisted table row back into a Record. Unknown
// columns are ignored; missing columns yield empty attributes.
func RecordFromRow(row Row) Record {
	return Record{
		CityCountry:         row.Get("City_Country"),
		OpenCallTitle:       row.Get("Open_Call_Title"),
		DeadlineDate:        row.Get("Deadline_Date"),
		EventDate:           row.Get("Event_Date"),
		ApplicationFormLink: row.Get("Application_Form_Link"),
		SelectionCriteria:   row.Get("Selection_Criteria"),
		FAQ:                 row.Get("FAQ"),
		ApplicationGuide:    row.Get("Application_Guide"),
		Fee:                 row.Get("Fee"),
	}
}

// MissingRequired returns the names of required submission attributes that
// are empty. A record with any missing attribute must be skipped by the
// publisher rather than submitted.
func (r Record) MissingRequired() []string {
	var missing []string
	for _, f := range []struct {
		name  string
		value string
	}{
		{"City_Country", r.CityCountry},
		{"Open_Call_Title", r.OpenCallTitle},
		{"Deadline_Date", r.DeadlineDate},
		{"Event_Date", r.EventDate},
		{"Application_Form_Link", r.ApplicationFormLink},
	} {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}
