package table

import (
	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/mirr-art/opencall-cli/internal/model"
)

// LoadXLSXFile reads the first sheet of an XLSX workbook into rows, the
// first sheet row serving as the header. Some partner galleries hand over
// listing exports as spreadsheets rather than CSV.
func LoadXLSXFile(path string) ([]model.Row, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "table: open xlsx")
	}
	if len(f.Sheets) == 0 {
		return nil, eris.New("table: xlsx has no sheets")
	}

	sheet := f.Sheets[0]
	if len(sheet.Rows) == 0 {
		return nil, eris.New("table: xlsx sheet has no header row")
	}

	header := rowToStrings(sheet.Rows[0])
	rows := make([]model.Row, 0, len(sheet.Rows)-1)
	for _, r := range sheet.Rows[1:] {
		rows = append(rows, model.NewRow(header, rowToStrings(r)))
	}
	return rows, nil
}

func rowToStrings(row *xlsx.Row) []string {
	cells := make([]string, len(row.Cells))
	for j, cell := range row.Cells {
		cells[j] = cell.String()
	}
	return cells
}
