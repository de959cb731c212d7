package parser

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// RowReader yields data rows one at a time. Next returns io.EOF when there
// are no more rows. The returned line is the 1-indexed position of the row in
// the source file, header included.
type RowReader interface {
	Next() ([]string, int, error)
}

// ErrEmptyInput is returned when the input has no header row at all.
var ErrEmptyInput = errors.New("input file is empty")

// CSVProcessor wraps a csv.Reader and discards the header row.
type CSVProcessor struct {
	reader  *csv.Reader
	header  []string
	lineNum int
}

// NewCSVProcessor creates a new CSV processor from the given reader.
// The first row is read as the header and discarded.
// The delimiter parameter specifies the field separator (e.g., ',' for CSV, '\t' for TSV).
func NewCSVProcessor(r io.Reader, delimiter rune) (*CSVProcessor, error) {
	reader := csv.NewReader(bufio.NewReader(r))
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1 // Allow variable field counts (we validate later)
	reader.LazyQuotes = true    // Be lenient with quotes

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, ErrEmptyInput
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	line, _ := reader.FieldPos(0)

	return &CSVProcessor{
		reader:  reader,
		header:  header,
		lineNum: line,
	}, nil
}

// Header returns the discarded header row.
func (p *CSVProcessor) Header() []string {
	return p.header
}

// Next reads and returns the next record from the CSV.
// Returns io.EOF when there are no more records.
func (p *CSVProcessor) Next() ([]string, int, error) {
	record, err := p.reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, p.lineNum, err
		}
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			p.lineNum = parseErr.StartLine
		}
		return nil, p.lineNum, err
	}

	p.lineNum, _ = p.reader.FieldPos(0)
	return record, p.lineNum, nil
}

// LineNum returns the line of the last record read (1-indexed).
func (p *CSVProcessor) LineNum() int {
	return p.lineNum
}
