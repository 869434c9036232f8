package enrich

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// Field keys, one per attribute of a model.Record.
const (
	FieldCityCountry         = "city_country"
	FieldOpenCallTitle       = "open_call_title"
	FieldDeadlineDate        = "deadline_date"
	FieldEventDate           = "event_date"
	FieldApplicationFormLink = "application_form_link"
	FieldSelectionCriteria   = "selection_criteria"
	FieldFee                 = "fee"
	FieldFAQ                 = "faq"
	FieldApplicationGuide    = "application_guide"
)

// DefaultFallback is the advisory answer the model is told to give when a
// field cannot be derived from the listing. It is baked into the
// instruction text; nothing in the pipeline interprets it.
const DefaultFallback = "Go to the application page for details."

// DateFallback is the advisory default for the two date fields.
const DateFallback = "2024-10-30"

// FieldSpec pairs a record attribute with the extraction instruction sent
// to the model for it. The fallback phrase lives inside the instruction.
type FieldSpec struct {
	Key         string `yaml:"key"`
	Instruction string `yaml:"instruction"`
}

// DefaultFields returns the committed instruction set, one spec per
// record attribute, in record-attribute order.
func DefaultFields() []FieldSpec {
	return []FieldSpec{
		{
			Key: FieldCityCountry,
			Instruction: "Return ONLY the country, in English, if one is given. " +
				"Use UK for United Kingdom and USA for United States, and the full name for other countries. " +
				"If there is no information, answer: " + DefaultFallback,
		},
		{
			Key: FieldOpenCallTitle,
			Instruction: "Return ONLY the title of the open call, in English. " +
				"It may contain the name of a gallery, exhibition, fair and so on. " +
				"If there is no information, answer: " + DefaultFallback,
		},
		{
			Key: FieldDeadlineDate,
			Instruction: "Return ONLY the application deadline date, in YYYY-MM-DD format. " +
				"If there is no information, answer: " + DateFallback + ".",
		},
		{
			Key: FieldEventDate,
			Instruction: "Return ONLY the date of the event itself (not the deadline date), in YYYY-MM-DD format. " +
				"The event is always later than the deadline date. " +
				"If there is no information, answer: " + DateFallback + ".",
		},
		{
			Key: FieldApplicationFormLink,
			Instruction: "Return ONLY the link to the application form. " +
				"It is usually found under Website, Application Link or URL. " +
				"If there is no information, answer: " + DefaultFallback,
		},
		{
			Key: FieldSelectionCriteria,
			Instruction: "Return ONLY the selection criteria for artists and works, in English. " +
				"If there is no information, answer: " + DefaultFallback,
		},
		{
			Key: FieldFee,
			Instruction: "Return ONLY the participation fee (the cost of taking part, not the award). " +
				"Identify the participation fee based on the following information. " +
				"Return only the fee and nothing more, without your thoughts. " +
				"If it says 'no' or 'no fee', return 'no fee'. " +
				"If there is no information, answer: " + DefaultFallback,
		},
		{
			Key: FieldFAQ,
			Instruction: "Compose, in English, ONLY an FAQ in the following format " +
				"(THIS IS AN APPROXIMATE FORMAT, YOU MAY ADD OR REMOVE ITEMS):\n" +
				"Who is eligible for this opportunity?:\n" +
				"When is the deadline?:\n" +
				"How many works can I submit?:\n" +
				"When is the delivery date?:\n" +
				"When do I need to collect my work?:\n" +
				"How much does it cost?:\n" +
				"Are there payments to artists?:\n" +
				"How do you decide on proposals?:\n" +
				"What happens if my proposal is chosen?:\n" +
				"What kind of proposals are you looking for?:\n" +
				"Where is the [OPPORTUNITY NAME] held?:\n" +
				"Why we do it:\n" +
				"If there is no information, answer: " + DefaultFallback,
		},
		{
			Key: FieldApplicationGuide,
			Instruction: "Return ONLY a detailed plan, written in plain English, for how an artist should " +
				"apply to this open call. No filler or platitudes — only useful information based on the " +
				"open call's details plus the standard steps of applying to an open call, so that an artist " +
				"can copy it straight into their to-do list. You may also use your knowledge of the venue " +
				"hosting the open call to refine the plan. " +
				"If there is no information, answer: " + DefaultFallback,
		},
	}
}

// LoadFields reads instruction overrides from a YAML file and merges them
// over the defaults by key, so operators can tune individual prompts
// without touching the rest of the set. Unknown keys are rejected.
func LoadFields(path string) ([]FieldSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "enrich: read fields file")
	}

	var overrides []FieldSpec
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, eris.Wrap(err, "enrich: parse fields file")
	}

	fields := DefaultFields()
	byKey := make(map[string]int, len(fields))
	for i, f := range fields {
		byKey[f.Key] = i
	}

	for _, o := range overrides {
		i, ok := byKey[o.Key]
		if !ok {
			return nil, eris.Errorf("enrich: unknown field key %q in %s", o.Key, path)
		}
		if o.Instruction != "" {
			fields[i].Instruction = o.Instruction
		}
	}

	return fields, nil
}
