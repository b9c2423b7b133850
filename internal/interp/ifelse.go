package interp

import (
	"strings"

	"github.com/jemacalalad/lolcode/internal/errors"
	"github.com/jemacalalad/lolcode/internal/value"
)

// BlockResult carries the accumulated lexemes, VISIBLE output, and the
// line index execution resumes from after an if-else/switch block.
type BlockResult struct {
	Lex       []Lexeme
	Output    string
	NextIndex int
}

// EvalIfElse executes an O RLY?/YA RLY/NO WAI/OIC block starting at
// lines[index] (the O RLY? line), per spec.md §6.1. IT must hold a
// TROOF before the block is entered. Exactly one branch's statements
// run, chosen by IT's value; the other branch is lexed only.
func EvalIfElse(lines []string, index int, sym *SymbolTable, in Reader) (*BlockResult, int, *errors.Diagnostic) {
	it, ok := sym.Get("IT")
	if !ok || it.Type() == value.Noob {
		return nil, index, errors.New(errors.ItEmptyError, "")
	}
	if it.Type() != value.Troof {
		return nil, index, errors.New(errors.ConditionError, "")
	}
	condition := value.IsTruthy(it)

	lex := []Lexeme{{Text: "O RLY?", Classification: ClassFunctionIdentifier}}
	var out strings.Builder

	withIf, withElse := false, false
	ignoring := false
	blockIndex := index + 1

	for {
		if blockIndex >= len(lines) {
			return nil, blockIndex, errors.New(errors.NoOIC, "")
		}
		line := lines[blockIndex]

		if blockIndex == index+1 && !yarlyRe.MatchString(line) {
			return nil, blockIndex, errors.New(errors.NoYARLY, "")
		}

		switch {
		case yarlyRe.MatchString(line):
			if withIf {
				return nil, blockIndex, errors.New(errors.MultiYARLY, "")
			}
			withIf = true
			ignoring = !condition
			lex = append(lex, Lexeme{Text: "YA RLY", Classification: ClassFunctionIdentifier})

		case nowaiRe.MatchString(line):
			if withElse {
				return nil, blockIndex, errors.New(errors.MultiNOWAI, "")
			}
			withElse = true
			ignoring = condition
			lex = append(lex, Lexeme{Text: "NO WAI", Classification: ClassFunctionIdentifier})

		case oicRe.MatchString(line):
			lex = append(lex, Lexeme{Text: "OIC", Classification: ClassFunctionIdentifier})
			if !withElse {
				return nil, blockIndex, errors.New(errors.NoNOWAI, "")
			}
			return &BlockResult{Lex: lex, Output: out.String(), NextIndex: blockIndex + 1}, -1, nil

		case orlyRe.MatchString(line):
			return nil, blockIndex, errors.New(errors.MultiORLY, "")

		default:
			if ignoring {
				stmtLex, diag := LexOnly(line, sym)
				if diag != nil {
					return nil, blockIndex, diag
				}
				lex = append(lex, stmtLex...)
			} else {
				stmtLex, output, diag := Dispatch(line, sym, false, in)
				if diag != nil {
					return nil, blockIndex, diag
				}
				lex = append(lex, stmtLex...)
				out.WriteString(output)
			}
		}
		blockIndex++
	}
}
