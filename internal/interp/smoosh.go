package interp

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/jemacalalad/lolcode/internal/errors"
	"github.com/jemacalalad/lolcode/internal/value"
)

// EvalSmoosh evaluates a SMOOSH string-concatenation expression, per
// spec.md §4.6. Every AN-separated argument is coerced to its display text
// and joined with no separator; the joined result is NFC-normalized so
// that YARN values built from differently-composed Unicode input compare
// and print consistently. A trailing MKAY is optional; when present it is
// lexed as an expression delimiter and is not part of the result.
func EvalSmoosh(line string, sym *SymbolTable) (value.Value, []Lexeme, *errors.Diagnostic) {
	lex := []Lexeme{{Text: "SMOOSH", Classification: ClassFunctionIdentifier}}

	region := operandRegion(line, smooshRe)
	mkay := mkayRe.FindStringIndex(region)
	if mkay != nil {
		region = region[:mkay[0]]
	}
	fragments := anSepRe.Split(region, -1)
	if len(fragments) < 2 {
		return nil, nil, errors.New(errors.MinTwoArgs, "")
	}

	var out strings.Builder
	for i, frag := range fragments {
		if frag == "" {
			return nil, nil, errors.New(errors.MissingArg, "")
		}
		switch {
		case yarnRe.MatchString(frag):
			out.WriteString(strings.ReplaceAll(frag, "\"", ""))
			lex = append(lex, Lexeme{Text: frag, Classification: ClassLiteral})
		case troofAnchoredRe.MatchString(frag):
			out.WriteString(frag)
			lex = append(lex, Lexeme{Text: frag, Classification: ClassLiteral})
		case varNameRe.MatchString(frag) && sym.Has(frag):
			v, _ := sym.Get(frag)
			out.WriteString(v.Payload())
			lex = append(lex, Lexeme{Text: frag, Classification: ClassVariableReference})
		case numbrRe.MatchString(frag):
			out.WriteString(frag)
			lex = append(lex, Lexeme{Text: frag, Classification: ClassLiteral})
		default:
			return nil, nil, errors.New(errors.UnknownRef, frag+".")
		}
		if i != len(fragments)-1 {
			lex = append(lex, Lexeme{Text: "AN", Classification: ClassOperandsIdentifier})
		}
	}
	if mkay != nil {
		lex = append(lex, Lexeme{Text: "MKAY", Classification: ClassExpessionDelimiter})
	}

	return value.YarnValue{Val: norm.NFC.String(out.String())}, lex, nil
}
