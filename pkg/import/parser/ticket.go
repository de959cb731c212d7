package parser

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/controlplane-com/chamados-sql/pkg/import/config"
	"github.com/controlplane-com/chamados-sql/pkg/import/generator"
)

// ParseError represents an error that occurred while parsing a specific row or column.
type ParseError struct {
	Line   int
	Column string
	Value  string
	Reason string
}

func (e *ParseError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
	}
	if e.Value != "" {
		return fmt.Sprintf("line %d: column %q: %s (value: %q)", e.Line, e.Column, e.Reason, e.Value)
	}
	return fmt.Sprintf("line %d: column %q: %s", e.Line, e.Column, e.Reason)
}

// Ticket is one row of the support-ticket export. Fields are declared in
// export order; config.ColumnsVersion tracks that order.
type Ticket struct {
	ID                   string
	OpenedAt             string
	ClosedAt             string // optional
	Status               string
	Priority             string
	Reason               string
	Resolution           string // optional
	Requester            string
	Agent                string
	Department           string
	ResolutionMinutes    string // numeric, defaults to 0
	FirstResponseMinutes string // numeric, defaults to 0
	Satisfaction         string
}

// ParseTicket maps a positional record onto a Ticket. The record must have
// exactly config.FieldCount fields. Under config.RowPolicyPad a short record
// is padded with empty fields first; long records are always rejected.
func ParseTicket(record []string, lineNum int, policy config.RowPolicy) (*Ticket, error) {
	if len(record) < config.FieldCount && policy == config.RowPolicyPad {
		padded := make([]string, config.FieldCount)
		copy(padded, record)
		record = padded
	}

	if len(record) != config.FieldCount {
		return nil, &ParseError{
			Line:   lineNum,
			Reason: fmt.Sprintf("expected %d fields, got %d", config.FieldCount, len(record)),
		}
	}

	return &Ticket{
		ID:                   record[0],
		OpenedAt:             record[1],
		ClosedAt:             record[2],
		Status:               record[3],
		Priority:             record[4],
		Reason:               record[5],
		Resolution:           record[6],
		Requester:            record[7],
		Agent:                record[8],
		Department:           record[9],
		ResolutionMinutes:    record[10],
		FirstResponseMinutes: record[11],
		Satisfaction:         record[12],
	}, nil
}

// ConvertTicket renders a Ticket as SQL literals in column order.
// columns are the target labels, used only to name the column in errors.
func ConvertTicket(t *Ticket, columns []string, lineNum int, policy config.NumericPolicy) ([]string, error) {
	resolutionMinutes, err := formatMinutes(t.ResolutionMinutes, policy)
	if err != nil {
		return nil, &ParseError{Line: lineNum, Column: columnName(columns, 10), Value: t.ResolutionMinutes, Reason: err.Error()}
	}

	firstResponseMinutes, err := formatMinutes(t.FirstResponseMinutes, policy)
	if err != nil {
		return nil, &ParseError{Line: lineNum, Column: columnName(columns, 11), Value: t.FirstResponseMinutes, Reason: err.Error()}
	}

	return []string{
		generator.Literal(t.ID),
		generator.Literal(t.OpenedAt),
		optional(t.ClosedAt),
		generator.Literal(t.Status),
		generator.Literal(t.Priority),
		generator.Literal(t.Reason),
		optional(t.Resolution),
		generator.Literal(t.Requester),
		generator.Literal(t.Agent),
		generator.Literal(t.Department),
		resolutionMinutes,
		firstResponseMinutes,
		generator.Literal(t.Satisfaction),
	}, nil
}

func optional(value string) string {
	if value == "" {
		return generator.NullLiteral
	}
	return generator.QuoteString(value)
}

// decimalPattern accepts plain decimal numbers only: no exponents, hex,
// thousands separators or NaN/Inf, so the value is always a valid SQL literal.
var decimalPattern = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)$`)

// formatMinutes renders a minute count. Empty values become 0.
func formatMinutes(value string, policy config.NumericPolicy) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "0", nil
	}
	if decimalPattern.MatchString(trimmed) {
		return trimmed, nil
	}

	switch policy {
	case config.NumericPolicyQuote:
		return generator.QuoteString(value), nil
	default:
		return "", fmt.Errorf("invalid number")
	}
}

func columnName(columns []string, i int) string {
	if i < len(columns) {
		return columns[i]
	}
	return fmt.Sprintf("field %d", i+1)
}
