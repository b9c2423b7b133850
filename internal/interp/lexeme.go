package interp

// Classification is the closed set of lexeme-table tags, string-typed per
// spec.md §3. The misspelling "Expession Delimiter" is preserved exactly
// as it appears in the reference implementation's own lexeme classifier.
type Classification string

const (
	ClassVariableIdentifier   Classification = "Variable Identifier"
	ClassArithmeticIdentifier Classification = "Arithmetic Identifier"
	ClassBooleanIdentifier    Classification = "Boolean Identifier"
	ClassComparisonIdentifier Classification = "Comparison Identifier"
	ClassFunctionIdentifier   Classification = "Function Identifier"
	ClassCodeDelimiter        Classification = "Code Delimiter"
	ClassOperandsIdentifier   Classification = "Operands Identifier"
	ClassStringDelimiter      Classification = "String Delimiter"
	ClassLiteral              Classification = "Literal"
	ClassVariableReference    Classification = "Variable Reference"
	ClassImplicitVariable     Classification = "Implicit Variable"
	ClassAssignmentOperator   Classification = "Assignment Operator"
	ClassVariableAssignment   Classification = "Variable Assignment"
	ClassVariableDeclaration  Classification = "Variable Declaration"
	ClassExpessionDelimiter   Classification = "Expession Delimiter"
)

// Lexeme is a single (text, classification) entry in the lexeme table.
type Lexeme struct {
	Text           string
	Classification Classification
}

// LexemeTable is the ordered, append-only sequence of recognized tokens
// produced over the course of one run. It grows monotonically during a
// successful statement; on error the caller discards the table for that
// execution rather than mutating it in place (spec.md §3 invariants).
type LexemeTable struct {
	entries []Lexeme
}

func (t *LexemeTable) Append(text string, class Classification) {
	t.entries = append(t.entries, Lexeme{Text: text, Classification: class})
}

// AppendAll appends a slice of lexemes in order, e.g. lexemes gathered by
// a recursive operand/expression evaluation.
func (t *LexemeTable) AppendAll(lexemes []Lexeme) {
	t.entries = append(t.entries, lexemes...)
}

func (t *LexemeTable) Entries() []Lexeme {
	return t.entries
}

func (t *LexemeTable) Len() int {
	return len(t.entries)
}
