package generator

import (
	"strings"
)

// InsertGenerator renders one INSERT statement per row against a fixed table
// and column list.
type InsertGenerator struct {
	table   string
	columns string // quoted, comma-joined column list
}

// NewInsertGenerator creates a new INSERT statement generator.
// Column labels are quoted as identifiers; the table name is used as given.
func NewInsertGenerator(table string, columnNames []string) *InsertGenerator {
	quoted := make([]string, len(columnNames))
	for i, name := range columnNames {
		quoted[i] = QuoteIdentifier(name)
	}

	return &InsertGenerator{
		table:   table,
		columns: strings.Join(quoted, ", "),
	}
}

// Statement renders a single-row INSERT. Values must already be SQL literals
// in column order.
//
//	INSERT INTO table ("a", "b")
//	VALUES ('x', NULL);
func (g *InsertGenerator) Statement(values []string) string {
	var sb strings.Builder

	sb.WriteString("INSERT INTO ")
	sb.WriteString(g.table)
	sb.WriteString(" (")
	sb.WriteString(g.columns)
	sb.WriteString(")\nVALUES (")
	sb.WriteString(strings.Join(values, ", "))
	sb.WriteString(");")

	return sb.String()
}
