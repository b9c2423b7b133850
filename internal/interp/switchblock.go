package interp

import (
	"strconv"
	"strings"

	"github.com/jemacalalad/lolcode/internal/errors"
	"github.com/jemacalalad/lolcode/internal/value"
)

// EvalSwitch executes a WTF?/OMG/OMGWTF/GTFO/OIC block starting at
// lines[index] (the WTF? line), per spec.md §6.2. IT is compared
// against each OMG case value by Equal; the first matching case runs,
// falling through into subsequent cases until a GTFO or OIC, mirroring
// C-style switch semantics. OMGWTF always runs when control reaches it,
// even after an earlier case has already broken out; spec.md §7.2
// records that as intentional rather than a bug to fix.
func EvalSwitch(lines []string, index int, sym *SymbolTable, in Reader) (*BlockResult, int, *errors.Diagnostic) {
	it, ok := sym.Get("IT")
	if !ok || it.Type() == value.Noob {
		return nil, index, errors.New(errors.ItEmptyError, "")
	}

	lex := []Lexeme{{Text: "WTF?", Classification: ClassFunctionIdentifier}}
	var out strings.Builder

	matched := false
	active := false
	broke := false
	withDefault := false
	blockIndex := index + 1

	for {
		if blockIndex >= len(lines) {
			return nil, blockIndex, errors.New(errors.NoOIC, "")
		}
		line := lines[blockIndex]

		if blockIndex == index+1 && !omgRe.MatchString(line) {
			return nil, blockIndex, errors.New(errors.NoOMG, "")
		}

		switch {
		case omgRe.MatchString(line):
			if withDefault {
				return nil, blockIndex, errors.New(errors.NoWTF, "")
			}
			caseVal, diag := parseCaseValue(strings.TrimSpace(operandRegion(line, omgRe)))
			if diag != nil {
				return nil, blockIndex, diag
			}
			lex = append(lex, Lexeme{Text: "OMG", Classification: ClassFunctionIdentifier},
				Lexeme{Text: caseVal.Payload(), Classification: ClassLiteral})
			if matched && !broke {
				// fallthrough: stay active regardless of this case's value
			} else if value.Equal(it, caseVal) {
				matched = true
				active = true
			} else {
				active = false
			}

		case omgwtfRe.MatchString(line):
			if withDefault {
				return nil, blockIndex, errors.New(errors.MultiOMGWTF, "")
			}
			withDefault = true
			active = true
			lex = append(lex, Lexeme{Text: "OMGWTF", Classification: ClassFunctionIdentifier})

		case gtfoRe.MatchString(line):
			lex = append(lex, Lexeme{Text: "GTFO", Classification: ClassFunctionIdentifier})
			if active {
				broke = true
				active = false
			}

		case oicRe.MatchString(line):
			lex = append(lex, Lexeme{Text: "OIC", Classification: ClassFunctionIdentifier})
			if !withDefault {
				return nil, blockIndex, errors.New(errors.MissingDefault, "")
			}
			return &BlockResult{Lex: lex, Output: out.String(), NextIndex: blockIndex + 1}, -1, nil

		case wtfRe.MatchString(line):
			return nil, blockIndex, errors.New(errors.MultiWTF, "")

		default:
			if active {
				stmtLex, output, diag := Dispatch(line, sym, false, in)
				if diag != nil {
					return nil, blockIndex, diag
				}
				lex = append(lex, stmtLex...)
				out.WriteString(output)
			} else {
				stmtLex, diag := LexOnly(line, sym)
				if diag != nil {
					return nil, blockIndex, diag
				}
				lex = append(lex, stmtLex...)
			}
		}
		blockIndex++
	}
}

// parseCaseValue resolves an OMG case label to a typed Value. Variable
// names are explicitly rejected, per spec.md §6.2: case labels must be
// literal.
func parseCaseValue(token string) (value.Value, *errors.Diagnostic) {
	if token == "" {
		return nil, errors.New(errors.MissingCaseValue, "")
	}
	if !yarnRe.MatchString(token) && !caseTroofRe.MatchString(token) && len(strings.Fields(token)) > 1 {
		return nil, errors.New(errors.MultiCaseValue, "")
	}
	switch {
	case yarnRe.MatchString(token):
		content, diag := parseYarnLiteral(token)
		if diag != nil {
			return nil, diag
		}
		return value.YarnValue{Val: content}, nil

	case caseTroofRe.MatchString(token):
		negate := strings.HasPrefix(token, "NOT ")
		truthy := strings.HasSuffix(token, "WIN")
		if negate {
			truthy = !truthy
		}
		return boolResult(truthy), nil

	case varNameRe.MatchString(token):
		return nil, errors.New(errors.InvalidLiteral, token)

	case numbarAnchoredRe.MatchString(token):
		f, _ := strconv.ParseFloat(token, 64)
		return value.NumbarValue{Val: f}, nil

	case numbrAnchoredRe.MatchString(token):
		n, _ := strconv.ParseInt(token, 10, 64)
		return value.NumbrValue{Val: n}, nil

	default:
		return nil, errors.New(errors.InvalidCase, token)
	}
}
