package generator

import "strings"

// NullLiteral is emitted for absent values.
const NullLiteral = "NULL"

// EscapeSQL doubles single quotes, the SQL-standard escape for string literals.
// Nothing else is escaped: scripts are reviewed by a human before they run.
func EscapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

// QuoteString wraps a string in single quotes with proper escaping.
func QuoteString(s string) string {
	return "'" + EscapeSQL(s) + "'"
}

// Literal returns NULL for an empty value and a quoted string otherwise.
func Literal(s string) string {
	if s == "" {
		return NullLiteral
	}
	return QuoteString(s)
}

// QuoteIdentifier wraps a column label in double quotes, doubling any
// embedded double quote.
func QuoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
