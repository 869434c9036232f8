package model

import "strings"

// Row is one scraped opportunity listing before enrichment: an ordered
// mapping of column name to string value. No fixed schema is assumed:
// the collection stage decides the column set and the enricher serializes
// it wholesale. Column order is preserved so serialization is
// deterministic across runs.
type Row struct {
	columns []string
	values  map[string]string
}

// NewRow builds a Row from parallel header and value slices. Extra header
// columns with no corresponding value become empty strings; extra values
// are dropped.
func NewRow(header, values []string) Row {
	r := Row{
		columns: make([]string, 0, len(header)),
		values:  make(map[string]string, len(header)),
	}
	for i, col := range header {
		col = strings.TrimSpace(col)
		if col == "" {
			continue
		}
		v := ""
		if i < len(values) {
			v = values[i]
		}
		r.columns = append(r.columns, col)
		r.values[col] = v
	}
	return r
}

// Get returns the value of a column, or "" if the column is absent.
func (r Row) Get(name string) string {
	return r.values[name]
}

// Has reports whether the column exists in the row.
func (r Row) Has(name string) bool {
	_, ok := r.values[name]
	return ok
}

// Set overwrites an existing column in place or appends a new one at the
// end of the column order.
func (r *Row) Set(name, value string) {
	if r.values == nil {
		r.values = make(map[string]string, 1)
	}
	if _, ok := r.values[name]; !ok {
		r.columns = append(r.columns, name)
	}
	r.values[name] = value
}

// Columns returns the column names in row order.
func (r Row) Columns() []string {
	return r.columns
}

// Values returns the values in column order.
func (r Row) Values() []string {
	out := make([]string, len(r.columns))
	for i, col := range r.columns {
		out[i] = r.values[col]
	}
	return out
}

// Context serializes the row for prompt injection: each column rendered
// as "<name>: <value>", space-joined, in column order.
func (r Row) Context() string {
	var b strings.Builder
	for i, col := range r.columns {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(col)
		b.WriteString(": ")
		b.WriteString(r.values[col])
	}
	return b.String()
}
