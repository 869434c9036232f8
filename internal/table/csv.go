// Package table loads and persists the pipeline's tabular artifacts:
// per-source listing tables on the way in, the deduplicated open-call
// table on the way out.
package table

import (
	"bytes"
	"encoding/csv"
	"io"
	"os"
	"unicode/utf8"

	"github.com/rotisserie/eris"
	"golang.org/x/text/encoding/charmap"

	"github.com/mirr-art/opencall-cli/internal/model"
)

// utf8BOM is the byte-order mark written to final artifacts so
// spreadsheet tools pick the right encoding (utf-8-sig).
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// LoadCSV parses CSV data whose first record is the header into rows.
func LoadCSV(r io.Reader) ([]model.Row, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, eris.Wrap(err, "table: read csv")
	}
	if len(records) == 0 {
		return nil, eris.New("table: csv has no header row")
	}

	header := records[0]
	rows := make([]model.Row, 0, len(records)-1)
	for _, rec := range records[1:] {
		rows = append(rows, model.NewRow(header, rec))
	}
	return rows, nil
}

// LoadCSVFile reads a CSV file, stripping a UTF-8 BOM if present. Files
// that are not valid UTF-8 are decoded as ISO-8859-1; earlier versions
// of the pipeline produced artifacts in that encoding and they must stay
// loadable.
func LoadCSVFile(path string) ([]model.Row, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "table: open csv")
	}

	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		data, err = charmap.ISO8859_1.NewDecoder().Bytes(data)
		if err != nil {
			return nil, eris.Wrap(err, "table: decode legacy encoding")
		}
	}

	return LoadCSV(bytes.NewReader(data))
}

// WriteRows persists rows as CSV at path, UTF-8 with BOM. The header is
// the first row's column order; later rows are projected onto it.
func WriteRows(path string, rows []model.Row) error {
	if len(rows) == 0 {
		return eris.New("table: no rows to write")
	}
	header := rows[0].Columns()

	values := make([][]string, len(rows))
	for i, row := range rows {
		vals := make([]string, len(header))
		for j, col := range header {
			vals[j] = row.Get(col)
		}
		values[i] = vals
	}

	return writeCSVFile(path, header, values)
}

// WriteRecords persists the deduplicated records as the final artifact:
// CSV, UTF-8 with BOM, columns in model.RecordColumns order.
func WriteRecords(path string, records []model.Record) error {
	values := make([][]string, len(records))
	for i, r := range records {
		values[i] = r.CSVValues()
	}
	return writeCSVFile(path, model.RecordColumns, values)
}

func writeCSVFile(path string, header []string, values [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return eris.Wrap(err, "table: create file")
	}
	defer f.Close() //nolint:errcheck

	if _, err := f.Write(utf8BOM); err != nil {
		return eris.Wrap(err, "table: write bom")
	}

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return eris.Wrap(err, "table: write header")
	}
	for _, row := range values {
		if err := w.Write(row); err != nil {
			return eris.Wrap(err, "table: write row")
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return eris.Wrap(err, "table: flush")
	}

	return nil
}
