package generator

import (
	"fmt"
	"io"
	"strings"
)

const (
	scriptTitle     = "-- Importação completa de todos os chamados"
	countPrefix     = "-- Total de registros: "
	verifyComment   = "-- Verificar importação:"
	beginStatement  = "BEGIN;"
	commitStatement = "COMMIT;"
)

// Script is the complete import file: a header with the record count, every
// statement inside a single transaction, and a verification query.
type Script struct {
	Table      string
	Statements []string
}

// Count returns the number of statements in the script.
func (s *Script) Count() int {
	return len(s.Statements)
}

// WriteTo writes the script text to w. The output depends only on the table
// and statements, so unchanged input always yields identical bytes.
func (s *Script) WriteTo(w io.Writer) (int64, error) {
	var sb strings.Builder

	sb.WriteString(scriptTitle)
	sb.WriteByte('\n')
	fmt.Fprintf(&sb, "%s%d\n\n", countPrefix, s.Count())
	sb.WriteString(beginStatement)
	sb.WriteString("\n\n")
	sb.WriteString(strings.Join(s.Statements, "\n"))
	sb.WriteString("\n\n")
	sb.WriteString(commitStatement)
	sb.WriteString("\n\n")
	sb.WriteString(verifyComment)
	sb.WriteByte('\n')
	fmt.Fprintf(&sb, "SELECT COUNT(*) as total FROM %s;\n", s.Table)

	n, err := io.WriteString(w, sb.String())
	return int64(n), err
}

// String returns the script text.
func (s *Script) String() string {
	var sb strings.Builder
	_, _ = s.WriteTo(&sb)
	return sb.String()
}

// ParseCount extracts the record count from a script's header comment.
// It returns false when the header line is missing or malformed.
func ParseCount(script string) (int, bool) {
	for _, line := range strings.Split(script, "\n") {
		rest, ok := strings.CutPrefix(line, countPrefix)
		if !ok {
			continue
		}
		var n int
		if _, err := fmt.Sscanf(rest, "%d", &n); err != nil {
			return 0, false
		}
		return n, true
	}
	return 0, false
}
