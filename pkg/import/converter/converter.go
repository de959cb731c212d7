// Package converter turns a ticket export into a generator.Script.
package converter

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/controlplane-com/chamados-sql/pkg/import/config"
	"github.com/controlplane-com/chamados-sql/pkg/import/generator"
	"github.com/controlplane-com/chamados-sql/pkg/import/parser"
)

// Result is the outcome of one conversion.
type Result struct {
	Script  *generator.Script
	Skipped []*parser.ParseError // rows dropped under the skip/pad policies
}

// Records returns the number of INSERT statements produced.
func (r *Result) Records() int {
	return r.Script.Count()
}

// headerer is implemented by readers that keep the discarded header row.
type headerer interface {
	Header() []string
}

// Convert reads every row from rows and builds the import script.
// Malformed rows are handled according to cfg.RowPolicy: under
// config.RowPolicyFail the first one aborts the run and its *parser.ParseError
// is returned wrapped; otherwise the row is logged and recorded in Skipped.
func Convert(rows parser.RowReader, cfg *config.Config) (*Result, error) {
	if h, ok := rows.(headerer); ok {
		if header := h.Header(); len(header) != config.FieldCount {
			slog.Warn("header field count does not match ticket layout",
				"expected", config.FieldCount, "got", len(header), "layoutVersion", config.ColumnsVersion)
		}
	}

	gen := generator.NewInsertGenerator(cfg.Table, cfg.Columns)
	result := &Result{Script: &generator.Script{Table: cfg.Table}}

	for {
		record, lineNum, err := rows.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}

		values, err := convertRecord(record, lineNum, cfg)
		if err != nil {
			var parseErr *parser.ParseError
			if !errors.As(err, &parseErr) {
				return nil, err
			}
			if cfg.RowPolicy == config.RowPolicyFail {
				return nil, fmt.Errorf("malformed row: %w", parseErr)
			}
			slog.Warn("skipping row", "line", parseErr.Line, "error", parseErr)
			result.Skipped = append(result.Skipped, parseErr)
			continue
		}

		result.Script.Statements = append(result.Script.Statements, gen.Statement(values))
	}

	slog.Debug("conversion finished", "records", result.Records(), "skipped", len(result.Skipped))
	return result, nil
}

func convertRecord(record []string, lineNum int, cfg *config.Config) ([]string, error) {
	ticket, err := parser.ParseTicket(record, lineNum, cfg.RowPolicy)
	if err != nil {
		return nil, err
	}
	return parser.ConvertTicket(ticket, cfg.Columns, lineNum, cfg.NumericPolicy)
}

// NewRowReader picks a reader for the input based on its file extension:
// .xlsx is read as a spreadsheet, everything else as delimited text.
func NewRowReader(r io.Reader, path string, cfg *config.Config) (parser.RowReader, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return parser.NewXLSXProcessor(r)
	}
	return parser.NewCSVProcessor(r, cfg.DelimiterFor(path))
}

// ConvertFile opens path and converts it.
func ConvertFile(path string, cfg *config.Config) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input file: %w", err)
	}
	defer func(f *os.File) {
		_ = f.Close()
	}(f)

	rows, err := NewRowReader(f, path, cfg)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	result, err := Convert(rows, cfg)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return result, nil
}

// WriteScript writes the script to path, replacing any existing file.
func WriteScript(path string, script *generator.Script) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing output file: %w", closeErr)
		}
	}()

	if _, err := script.WriteTo(f); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	return nil
}
