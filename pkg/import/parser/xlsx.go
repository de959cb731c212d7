package parser

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// XLSXProcessor reads ticket rows from the first worksheet of a spreadsheet
// export. The first non-empty row is the header and is discarded.
type XLSXProcessor struct {
	rows   [][]string
	header []string
	width  int
	pos    int
}

// NewXLSXProcessor loads the first worksheet from r.
// Spreadsheets drop trailing empty cells, so each data row is padded back to
// the header width.
func NewXLSXProcessor(r io.Reader) (*XLSXProcessor, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open xlsx: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("xlsx file has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read rows from xlsx: %w", err)
	}

	p := &XLSXProcessor{rows: rows}
	for p.pos < len(rows) && isBlank(rows[p.pos]) {
		p.pos++
	}
	if p.pos == len(rows) {
		return nil, ErrEmptyInput
	}

	p.header = rows[p.pos]
	p.width = len(p.header)
	p.pos++

	return p, nil
}

// Header returns the discarded header row.
func (p *XLSXProcessor) Header() []string {
	return p.header
}

// Next returns the next non-empty data row and its 1-indexed sheet row number.
func (p *XLSXProcessor) Next() ([]string, int, error) {
	for p.pos < len(p.rows) {
		row := p.rows[p.pos]
		p.pos++
		if isBlank(row) {
			continue
		}
		if len(row) < p.width {
			padded := make([]string, p.width)
			copy(padded, row)
			row = padded
		}
		return row, p.pos, nil
	}
	return nil, p.pos, io.EOF
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}
