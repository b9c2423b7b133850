package interp

import "github.com/jemacalalad/lolcode/internal/errors"

// Result is the full product of one program run: the text written by
// VISIBLE, the lexeme table built along the way, and the final symbol
// table contents.
type Result struct {
	Output  string
	Lexemes *LexemeTable
	Symbols *SymbolTable
}

// Run preprocesses source and executes it line by line, per spec.md §6.
// Execution halts at the first Diagnostic; the reference implementation
// discards partial output on error, so Run does too: a non-nil
// Diagnostic return carries no Result. line is the offending source
// line when known, for WithLine-style reporting.
func Run(source string, in Reader) (*Result, string, *errors.Diagnostic) {
	lines, diag := Preprocess(source)
	if diag != nil {
		return nil, "", diag
	}

	sym := NewSymbolTable()
	lexemes := &LexemeTable{}
	lexemes.Append("HAI", ClassCodeDelimiter)
	var output string

	index := 0
	for index < len(lines) {
		line := lines[index]

		switch {
		case orlyRe.MatchString(line):
			block, errIndex, diag := EvalIfElse(lines, index, sym, in)
			if diag != nil {
				return nil, lineAt(lines, errIndex), diag
			}
			lexemes.AppendAll(block.Lex)
			output += block.Output
			index = block.NextIndex

		case wtfRe.MatchString(line):
			block, errIndex, diag := EvalSwitch(lines, index, sym, in)
			if diag != nil {
				return nil, lineAt(lines, errIndex), diag
			}
			lexemes.AppendAll(block.Lex)
			output += block.Output
			index = block.NextIndex

		case yarlyRe.MatchString(line) || nowaiRe.MatchString(line):
			return nil, line, errors.New(errors.NoORLY, "")

		case omgRe.MatchString(line) || omgwtfRe.MatchString(line):
			return nil, line, errors.New(errors.NoWTF, "")

		case oicRe.MatchString(line):
			return nil, line, errors.New(errors.LoneOIC, "")

		default:
			stmtLex, stmtOutput, diag := Dispatch(line, sym, true, in)
			if diag != nil {
				return nil, line, diag
			}
			lexemes.AppendAll(stmtLex)
			output += stmtOutput
			index++
		}
	}

	lexemes.Append("KTHXBYE", ClassCodeDelimiter)
	return &Result{Output: output, Lexemes: lexemes, Symbols: sym}, "", nil
}

// lineAt returns lines[i] if i is in range, or the last line as a
// fallback when a block error was raised past the end of the program
// (e.g. a missing OIC discovered only at EOF).
func lineAt(lines []string, i int) string {
	if i < 0 || i >= len(lines) {
		if len(lines) == 0 {
			return ""
		}
		return lines[len(lines)-1]
	}
	return lines[i]
}
