package interp

import (
	"math"
	"regexp"
	"strings"

	"github.com/jemacalalad/lolcode/internal/errors"
	"github.com/jemacalalad/lolcode/internal/value"
)

// arithOp pairs an operator's prefix regex with its Op tag and the lexeme
// text/classification to emit for the keyword, in the priority order the
// reference implementation checks them (BIGGR OF before SMALLR OF before
// BOTH SAEM before DIFFRINT before SUM OF ... MOD OF).
var arithOps = []struct {
	re    *regexp.Regexp
	op    Op
	text  string
	class Classification
}{
	{morRe, OpMor, "BIGGR OF", ClassArithmeticIdentifier},
	{lesRe, OpLes, "SMALLR OF", ClassArithmeticIdentifier},
	{equRe, OpEqu, "BOTH SAEM", ClassComparisonIdentifier},
	{neqRe, OpNeq, "DIFFRINT", ClassComparisonIdentifier},
	{addRe, OpAdd, "SUM OF", ClassArithmeticIdentifier},
	{subRe, OpSub, "DIFF OF", ClassArithmeticIdentifier},
	{mulRe, OpMul, "PRODUKT OF", ClassArithmeticIdentifier},
	{divRe, OpDiv, "QUOSHUNT OF", ClassArithmeticIdentifier},
	{modRe, OpMod, "MOD OF", ClassArithmeticIdentifier},
}

// operandRegion strips kwRe's match from the front of line and trims
// trailing whitespace from what remains, mirroring the reference
// implementation's exlex helper.
func operandRegion(line string, kwRe *regexp.Regexp) string {
	loc := kwRe.FindStringIndex(line)
	if loc == nil {
		return line
	}
	return strings.TrimRight(line[loc[1]:], " \t\r\n\f\v")
}

// EvalArithmetic evaluates an arithmetic or comparison expression, per
// spec.md §4.4. Nested SUM OF/DIFF OF/etc. operands recurse back into
// EvalArithmetic; every other operand goes through EvalOperand.
func EvalArithmetic(line string, sym *SymbolTable) (value.Value, []Lexeme, *errors.Diagnostic) {
	var match struct {
		re    *regexp.Regexp
		op    Op
		text  string
		class Classification
	}
	found := false
	for _, candidate := range arithOps {
		if candidate.re.MatchString(line) {
			match = candidate
			found = true
			break
		}
	}
	if !found {
		return nil, nil, errors.New(errors.UnknownOp, line+".")
	}

	lex := []Lexeme{{Text: match.text, Classification: match.class}}

	region := operandRegion(line, match.re)
	fragments := anSepRe.Split(region, -1)
	datasplit, diag := Group(fragments, match.op)
	if diag != nil {
		return nil, nil, diag
	}

	operands := make([]value.Value, 2)
	for i := 0; i < 2; i++ {
		v, opLex, diag := evalArithOperand(datasplit[i], sym, match.op)
		if diag != nil {
			return nil, nil, diag
		}
		operands[i] = v
		lex = append(lex, opLex...)
		if i == 0 {
			lex = append(lex, Lexeme{Text: "AN", Classification: ClassOperandsIdentifier})
		}
	}

	result, diag := computeArith(match.op, operands[0], operands[1])
	if diag != nil {
		return nil, nil, diag
	}
	return result, lex, nil
}

func evalArithOperand(token string, sym *SymbolTable, op Op) (value.Value, []Lexeme, *errors.Diagnostic) {
	if mathRe.MatchString(token) || compRe.MatchString(token) {
		return EvalArithmetic(token, sym)
	}
	return EvalOperand(token, sym, ModeMath, op)
}

func computeArith(op Op, a, b value.Value) (value.Value, *errors.Diagnostic) {
	if op == OpEqu {
		return boolResult(value.Equal(a, b)), nil
	}
	if op == OpNeq {
		return boolResult(!value.Equal(a, b)), nil
	}

	af, _ := value.Numeric(a)
	bf, _ := value.Numeric(b)
	numbar := a.Type() == value.Numbar || b.Type() == value.Numbar

	var result float64
	switch op {
	case OpAdd:
		result = af + bf
	case OpSub:
		result = af - bf
	case OpMul:
		result = af * bf
	case OpDiv:
		result = af / bf
	case OpMod:
		result = floorMod(af, bf)
	case OpMor:
		result = af
		if bf > af {
			result = bf
		}
	case OpLes:
		result = af
		if bf < af {
			result = bf
		}
	}

	if numbar {
		return value.NumbarValue{Val: result}, nil
	}
	return value.NumbrValue{Val: int64(result)}, nil
}

func boolResult(b bool) value.Value {
	if b {
		return value.Win()
	}
	return value.Fail()
}

// floorMod implements Python's floored-division remainder (result takes
// the sign of the divisor), matching the reference implementation's use
// of the native `%` operator for MOD OF.
func floorMod(a, b float64) float64 {
	r := math.Mod(a, b)
	if r != 0 && (r < 0) != (b < 0) {
		r += b
	}
	return r
}
