package interp

import (
	"regexp"

	"github.com/jemacalalad/lolcode/internal/errors"
	"github.com/jemacalalad/lolcode/internal/value"
)

var boolOps = []struct {
	re    *regexp.Regexp
	op    Op
	text  string
}{
	{notRe, OpNot, "NOT"},
	{andRe, OpAnd, "BOTH OF"},
	{orRe, OpOr, "EITHER OF"},
	{xorRe, OpXor, "WON OF"},
	{allRe, OpAll, "ALL OF"},
	{anyRe, OpAny, "ANY OF"},
}

// EvalBoolean evaluates a boolean expression, per spec.md §4.5. ALL OF/ANY
// OF require a trailing MKAY terminator and short-circuit: an early FAIL
// (ALL OF) or WIN (ANY OF) returns immediately without evaluating the
// remaining operands.
func EvalBoolean(line string, sym *SymbolTable) (value.Value, []Lexeme, *errors.Diagnostic) {
	var op Op
	var kwRe *regexp.Regexp
	found := false
	for _, candidate := range boolOps {
		if candidate.re.MatchString(line) {
			op = candidate.op
			kwRe = candidate.re
			found = true
			break
		}
	}
	if !found {
		return nil, nil, errors.New(errors.UnknownOp, line+".")
	}
	lex := []Lexeme{{Text: boolKeyword(op), Classification: ClassBooleanIdentifier}}

	region := operandRegion(line, kwRe)
	if op == OpAll || op == OpAny {
		if !mkayRe.MatchString(region) {
			return nil, nil, errors.New(errors.NoMKAY, "")
		}
		loc := mkayRe.FindStringIndex(region)
		region = region[:loc[0]]
		if mkayRe.MatchString(region) {
			return nil, nil, errors.New(errors.DoubleMKAY, "")
		}
	}

	fragments := anSepRe.Split(region, -1)
	datasplit, diag := Group(fragments, op)
	if diag != nil {
		return nil, nil, diag
	}

	operands := make([]value.Value, len(datasplit))
	for i, fragment := range datasplit {
		var v value.Value
		var opLex []Lexeme
		var opDiag *errors.Diagnostic
		if boolRe.MatchString(fragment) {
			v, opLex, opDiag = EvalBoolean(fragment, sym)
		} else {
			v, opLex, opDiag = EvalOperand(fragment, sym, ModeBool, op)
		}
		if opDiag != nil {
			return nil, nil, opDiag
		}
		operands[i] = v
		lex = append(lex, opLex...)

		switch {
		case (op == OpAny || op == OpOr) && value.IsTruthy(v):
			if op == OpAny || op == OpAll {
				lex = append(lex, Lexeme{Text: "MKAY", Classification: ClassExpessionDelimiter})
			}
			return boolResult(true), lex, nil
		case (op == OpAll || op == OpAnd) && !value.IsTruthy(v):
			if op == OpAny || op == OpAll {
				lex = append(lex, Lexeme{Text: "MKAY", Classification: ClassExpessionDelimiter})
			}
			return boolResult(false), lex, nil
		}

		if i != len(datasplit)-1 {
			lex = append(lex, Lexeme{Text: "AN", Classification: ClassOperandsIdentifier})
		}
	}

	last := operands[len(operands)-1]
	switch op {
	case OpNot:
		return boolResult(!value.IsTruthy(last)), lex, nil
	case OpXor:
		return boolResult(!value.Equal(last, operands[0])), lex, nil
	default:
		// Every operand was checked against the short-circuit condition
		// above and none triggered it, so OR/ANY never saw a WIN and
		// AND/ALL never saw a FAIL.
		if op == OpAll || op == OpAny {
			lex = append(lex, Lexeme{Text: "MKAY", Classification: ClassExpessionDelimiter})
		}
		return boolResult(op == OpAnd || op == OpAll), lex, nil
	}
}

func boolKeyword(op Op) string {
	for _, candidate := range boolOps {
		if candidate.op == op {
			return candidate.text
		}
	}
	return ""
}
