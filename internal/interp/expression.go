package interp

import (
	"github.com/jemacalalad/lolcode/internal/errors"
	"github.com/jemacalalad/lolcode/internal/value"
)

// EvalExpression dispatches a right-hand-side expression to the
// arithmetic/comparison, SMOOSH, or boolean evaluator it belongs to, per
// spec.md §4.7. The three families are mutually exclusive by keyword, so
// a regex match against the line's leading keyword is enough to route it.
func EvalExpression(line string, sym *SymbolTable) (value.Value, []Lexeme, *errors.Diagnostic) {
	switch {
	case mathRe.MatchString(line) || compRe.MatchString(line):
		return EvalArithmetic(line, sym)
	case smooshRe.MatchString(line):
		return EvalSmoosh(line, sym)
	default:
		return EvalBoolean(line, sym)
	}
}
