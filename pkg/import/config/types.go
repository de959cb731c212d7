package config

// RowPolicy decides what happens to a data row that does not carry exactly
// FieldCount fields, or whose values cannot be converted.
type RowPolicy string

const (
	// RowPolicySkip drops the row, logs a warning and keeps converting.
	RowPolicySkip RowPolicy = "skip"
	// RowPolicyFail aborts the whole run on the first malformed row.
	RowPolicyFail RowPolicy = "fail"
	// RowPolicyPad fills missing trailing fields with empty values.
	// Rows that are still invalid afterwards are skipped.
	RowPolicyPad RowPolicy = "pad"
)

// ValidRowPolicies maps policy strings to RowPolicy constants.
var ValidRowPolicies = map[string]RowPolicy{
	"skip": RowPolicySkip,
	"fail": RowPolicyFail,
	"pad":  RowPolicyPad,
}

// NumericPolicy decides how the two minute columns are rendered.
type NumericPolicy string

const (
	// NumericPolicyStrict requires a decimal number and rejects the row otherwise.
	NumericPolicyStrict NumericPolicy = "strict"
	// NumericPolicyQuote emits numbers unquoted and anything else as a string literal.
	NumericPolicyQuote NumericPolicy = "quote"
)

// ValidNumericPolicies maps policy strings to NumericPolicy constants.
var ValidNumericPolicies = map[string]NumericPolicy{
	"strict": NumericPolicyStrict,
	"quote":  NumericPolicyQuote,
}

// ColumnsVersion identifies the positional layout of the ticket export.
// Bump it whenever DefaultColumns changes order or meaning.
const ColumnsVersion = 1

// DefaultColumns are the target column labels, in export order.
var DefaultColumns = []string{
	"ID do Chamado",
	"Data de Abertura",
	"Data de Fechamento",
	"Status",
	"Prioridade",
	"Motivo",
	"Solução",
	"Solicitante",
	"Agente Responsável",
	"Departamento",
	"TMA (minutos)",
	"FRT (minutos)",
	"Satisfação do Cliente",
}

const (
	DefaultInputName  = "cahamado suporte tecnico.csv"
	DefaultOutputPath = "import-all-chamados.sql"
	DefaultTable      = "chamados"
)
