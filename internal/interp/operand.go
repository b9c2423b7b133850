package interp

import (
	"strconv"
	"strings"

	"github.com/jemacalalad/lolcode/internal/errors"
	"github.com/jemacalalad/lolcode/internal/value"
)

// Mode selects the coercion rules the operand evaluator applies.
type Mode int

const (
	ModeMath Mode = iota
	ModeBool
)

// Op identifies the parent operator an operand is being evaluated for,
// since BOTH SAEM/DIFFRINT relax the math-mode type restriction to accept
// any operand type (spec.md §4.2 case 2).
type Op string

const (
	OpAdd Op = "add"
	OpSub Op = "sub"
	OpMul Op = "mul"
	OpDiv Op = "div"
	OpMod Op = "mod"
	OpMor Op = "mor"
	OpLes Op = "les"
	OpEqu Op = "equ"
	OpNeq Op = "neq"
	OpNot Op = "not"
	OpAnd Op = "and"
	OpOr  Op = "or"
	OpXor Op = "xor"
	OpAll Op = "all"
	OpAny Op = "any"
)

// EvalOperand resolves a single trimmed token to a typed Value, per
// spec.md §4.2. It returns the lexeme entries generated along the way so
// the caller can append them in tokenization order.
func EvalOperand(token string, sym *SymbolTable, mode Mode, op Op) (value.Value, []Lexeme, *errors.Diagnostic) {
	// Case 1: math mode + quoted numeric.
	if mode == ModeMath && yarnRe.MatchString(token) {
		inner := strings.ReplaceAll(token, "\"", "")
		v, diag := quotedOperand(inner)
		if diag != nil {
			return nil, nil, diag
		}
		return v, []Lexeme{
			{Text: "\"", Classification: ClassStringDelimiter},
			{Text: v.Payload(), Classification: ClassLiteral},
			{Text: "\"", Classification: ClassStringDelimiter},
		}, nil
	}

	// Case 2: identifier already in the symbol table.
	if varNameRe.MatchString(token) && sym.Has(token) {
		v, _ := sym.Get(token)
		switch mode {
		case ModeMath:
			_, numeric := value.Numeric(v)
			if numeric || op == OpEqu || op == OpNeq {
				return v, []Lexeme{{Text: token, Classification: ClassVariableReference}}, nil
			}
		case ModeBool:
			if v.Type() == value.Troof {
				return v, []Lexeme{{Text: token, Classification: ClassVariableReference}}, nil
			}
			if f, numeric := value.Numeric(v); numeric {
				result := value.Win()
				if f == 0 {
					result = value.Fail()
				}
				return result, []Lexeme{{Text: token, Classification: ClassVariableReference}}, nil
			}
		}
		return nil, nil, errors.New(errors.NotSubscriptable, string(v.Type())+".")
	}

	// Case 3: bare numeric literal. In ModeBool a numeric literal coerces
	// to TROOF via the non-zero rule rather than being rejected outright;
	// the original implementation left this path dead, but its evident
	// intent (mirroring the symbol-table coercion a few lines up) is
	// implemented here. See SPEC_FULL.md §7.1.
	if numbarRe.MatchString(token) {
		if mode == ModeMath {
			if !numbarAnchoredRe.MatchString(token) {
				return nil, nil, errors.New(errors.InvalidLiteral, token)
			}
			f, _ := strconv.ParseFloat(token, 64)
			return value.NumbarValue{Val: f}, []Lexeme{{Text: token, Classification: ClassLiteral}}, nil
		}
		if !numbarAnchoredRe.MatchString(token) {
			return nil, nil, errors.New(errors.InvalidLiteral, token)
		}
		f, _ := strconv.ParseFloat(token, 64)
		result := value.Win()
		if f == 0 {
			result = value.Fail()
		}
		return result, []Lexeme{{Text: token, Classification: ClassLiteral}}, nil
	} else if numbrRe.MatchString(token) {
		if mode == ModeMath {
			if !numbrAnchoredRe.MatchString(token) {
				return nil, nil, errors.New(errors.InvalidLiteral, token)
			}
			n, _ := strconv.ParseInt(token, 10, 64)
			return value.NumbrValue{Val: n}, []Lexeme{{Text: token, Classification: ClassLiteral}}, nil
		}
		if !numbrAnchoredRe.MatchString(token) {
			return nil, nil, errors.New(errors.InvalidLiteral, token)
		}
		n, _ := strconv.ParseInt(token, 10, 64)
		result := value.Win()
		if n == 0 {
			result = value.Fail()
		}
		return result, []Lexeme{{Text: token, Classification: ClassLiteral}}, nil
	}

	// Case 4: bool mode + raw WIN/FAIL literal.
	if mode == ModeBool && troofRe.MatchString(token) {
		if !troofAnchoredRe.MatchString(token) {
			return nil, nil, errors.New(errors.InvalidLiteral, token)
		}
		v := value.Fail()
		if token == "WIN" {
			v = value.Win()
		}
		return v, []Lexeme{{Text: token, Classification: ClassLiteral}}, nil
	}

	return nil, nil, errors.New(errors.UnknownRef, token+".")
}

// quotedOperand resolves a math-mode quoted numeric string, spec.md §4.2
// case 1 (delegated from the original implementation's quotedoperand).
func quotedOperand(s string) (value.Value, *errors.Diagnostic) {
	if numbarAnchoredRe.MatchString(s) {
		f, _ := strconv.ParseFloat(s, 64)
		return value.NumbarValue{Val: f}, nil
	}
	if numbrAnchoredRe.MatchString(s) {
		n, _ := strconv.ParseInt(s, 10, 64)
		return value.NumbrValue{Val: n}, nil
	}
	return nil, errors.New(errors.QuotedOperand, "")
}
