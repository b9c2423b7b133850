package interp

import (
	"strconv"
	"strings"

	"github.com/jemacalalad/lolcode/internal/errors"
	"github.com/jemacalalad/lolcode/internal/value"
)

// StructuralKeyword reports whether line is a bare if/else/switch
// structural token (O RLY?, YA RLY, NO WAI, OIC, WTF?, OMG ..., OMGWTF,
// GTFO). Driver and the block evaluators recognize these directly;
// Dispatch/LexOnly must never try to parse them as ordinary statements.
func StructuralKeyword(line string) bool {
	return orlyRe.MatchString(line) || yarlyRe.MatchString(line) || nowaiRe.MatchString(line) ||
		oicRe.MatchString(line) || wtfRe.MatchString(line) || omgRe.MatchString(line) ||
		omgwtfRe.MatchString(line) || gtfoRe.MatchString(line)
}

// Reader supplies one line of user input for GIMMEH, decoupling the
// interpreter from any particular I/O source.
type Reader interface {
	ReadLine() (string, bool)
}

// Dispatch executes a single ordinary statement line (I HAS A, VISIBLE,
// GIMMEH, a bare expression, or an R assignment), mutating sym and
// returning any VISIBLE output text. allowDecl is false while inside an
// O RLY?/WTF? block, where I HAS A is rejected (spec.md §5's
// NotVarDec rule).
func Dispatch(line string, sym *SymbolTable, allowDecl bool, in Reader) ([]Lexeme, string, *errors.Diagnostic) {
	switch {
	case ihasaRe.MatchString(line):
		if !allowDecl {
			return nil, "", errors.New(errors.NotVarDec, "")
		}
		lex, name, v, diag := evalVarDecl(line, sym)
		if diag != nil {
			return nil, "", diag
		}
		sym.Set(name, v)
		return lex, "", nil

	case visibleRe.MatchString(line):
		return evalVisible(line, sym)

	case gimmehRe.MatchString(line):
		lex, name, v, diag := evalGimmeh(line, sym, in)
		if diag != nil {
			return nil, "", diag
		}
		sym.Set(name, v)
		return lex, "", nil

	case mathRe.MatchString(line) || compRe.MatchString(line) || smooshRe.MatchString(line) || boolRe.MatchString(line):
		v, lex, diag := EvalExpression(line, sym)
		if diag != nil {
			return nil, "", diag
		}
		sym.Set("IT", v)
		return lex, "", nil

	case varAssignRe.MatchString(line):
		lex, name, v, diag := evalAssignment(line, sym)
		if diag != nil {
			return nil, "", diag
		}
		sym.Set(name, v)
		return lex, "", nil

	case StructuralKeyword(line):
		return nil, "", nil

	default:
		return nil, "", errors.New(errors.UnrecognizedCommand, "")
	}
}

// LexOnly lexes a line the same way Dispatch would, without mutating sym
// or performing GIMMEH's input read. It backs the "ignored" body of the
// branch an if-else/switch block did not take (spec.md §5): the source
// is still tokenized for the lexeme table, but produces no side effects.
//
// GIMMEH inside an ignored branch is validated syntactically only; the
// reference implementation actually blocked on user input here even
// though the result was discarded; blocking on a branch that will never
// run has no reasonable definition, so it is treated as a no-op.
func LexOnly(line string, sym *SymbolTable) ([]Lexeme, *errors.Diagnostic) {
	switch {
	case ihasaRe.MatchString(line):
		return nil, errors.New(errors.NotVarDec, "")

	case visibleRe.MatchString(line):
		lex, _, diag := evalVisible(line, sym)
		return lex, diag

	case gimmehRe.MatchString(line):
		lex, _, _, diag := evalGimmeh(line, sym, nil)
		return lex, diag

	case mathRe.MatchString(line) || compRe.MatchString(line) || smooshRe.MatchString(line) || boolRe.MatchString(line):
		_, lex, diag := EvalExpression(line, sym)
		return lex, diag

	case varAssignRe.MatchString(line):
		lex, _, _, diag := evalAssignment(line, sym)
		return lex, diag

	case StructuralKeyword(line):
		return nil, nil

	default:
		return nil, errors.New(errors.UnrecognizedCommand, "")
	}
}

func parseYarnLiteral(token string) (string, *errors.Diagnostic) {
	if len(token) < 2 || token[0] != '"' || token[len(token)-1] != '"' {
		return "", errors.New(errors.UnpairedQuotes, "")
	}
	return token[1 : len(token)-1], nil
}

// evalVarDecl implements I HAS A [name] [ITZ value], per spec.md §5.
func evalVarDecl(line string, sym *SymbolTable) ([]Lexeme, string, value.Value, *errors.Diagnostic) {
	rest := operandRegion(line, ihasaRe)

	var name, rhs string
	if itzRe.MatchString(rest) {
		parts := itzRe.Split(rest, 2)
		name, rhs = parts[0], parts[1]
		if strings.TrimSpace(rhs) == "" {
			return nil, "", nil, errors.New(errors.NoValue, name)
		}
	} else {
		name, rhs = rest, ""
	}
	name = strings.TrimSpace(name)
	if !varNameRe.MatchString(name) {
		return nil, "", nil, errors.New(errors.InvalidVarName, name+".")
	}

	lex := []Lexeme{
		{Text: "I HAS A", Classification: ClassVariableDeclaration},
		{Text: name, Classification: ClassVariableIdentifier},
	}
	rhs = strings.TrimSpace(rhs)
	if rhs == "" {
		return lex, name, value.NoobValue{}, nil
	}
	lex = append(lex, Lexeme{Text: "ITZ", Classification: ClassVariableAssignment})

	v, exprLex, diag := evalRHS(rhs, sym)
	if diag != nil {
		return nil, "", nil, diag
	}
	return append(lex, exprLex...), name, v, nil
}

// evalRHS resolves the right-hand side shared by I HAS A ... ITZ and R
// assignment: an expression, a quoted YARN, a raw TROOF, a variable
// reference, or a bare NUMBR/NUMBAR literal, in that priority order.
func evalRHS(rhs string, sym *SymbolTable) (value.Value, []Lexeme, *errors.Diagnostic) {
	switch {
	case expressionRe.MatchString(rhs):
		v, lex, diag := EvalExpression(rhs, sym)
		return v, lex, diag

	case yarnRe.MatchString(rhs):
		content, diag := parseYarnLiteral(rhs)
		if diag != nil {
			return nil, nil, diag
		}
		return value.YarnValue{Val: content}, []Lexeme{
			{Text: "\"", Classification: ClassStringDelimiter},
			{Text: content, Classification: ClassLiteral},
			{Text: "\"", Classification: ClassStringDelimiter},
		}, nil

	case troofAnchoredRe.MatchString(rhs):
		v := value.Fail()
		if rhs == "WIN" {
			v = value.Win()
		}
		return v, []Lexeme{{Text: rhs, Classification: ClassLiteral}}, nil

	case varNameRe.MatchString(rhs):
		if !sym.Has(rhs) {
			return nil, nil, errors.New(errors.UnknownRef, rhs+".")
		}
		v, _ := sym.Get(rhs)
		return v, []Lexeme{{Text: rhs, Classification: ClassVariableReference}}, nil

	case numbarAnchoredRe.MatchString(rhs):
		f, _ := strconv.ParseFloat(rhs, 64)
		return value.NumbarValue{Val: f}, []Lexeme{{Text: rhs, Classification: ClassLiteral}}, nil

	case numbrAnchoredRe.MatchString(rhs):
		n, _ := strconv.ParseInt(rhs, 10, 64)
		return value.NumbrValue{Val: n}, []Lexeme{{Text: rhs, Classification: ClassLiteral}}, nil

	default:
		return nil, nil, errors.New(errors.InvalidValue, rhs)
	}
}

// evalVisible implements VISIBLE, printing every space-separated
// argument concatenated with no separator beyond the single trailing
// space each argument contributes, per spec.md §5.
func evalVisible(line string, sym *SymbolTable) ([]Lexeme, string, *errors.Diagnostic) {
	rest := operandRegion(line, visibleRe)
	if rest == "" {
		return nil, "", errors.New(errors.MissingVisible, "")
	}
	if strings.Count(rest, "\"")%2 != 0 {
		return nil, "", errors.New(errors.MissingQuote, "")
	}

	lex := []Lexeme{{Text: "VISIBLE", Classification: ClassFunctionIdentifier}}
	var out strings.Builder

	segments := splitYarnAndRest(rest)
	for _, seg := range segments {
		if seg.isYarn {
			lex = append(lex,
				Lexeme{Text: "\"", Classification: ClassStringDelimiter},
				Lexeme{Text: seg.text, Classification: ClassLiteral},
				Lexeme{Text: "\"", Classification: ClassStringDelimiter},
			)
			out.WriteString(seg.text)
			out.WriteString(" ")
			continue
		}
		if expressionRe.MatchString(seg.text) {
			v, exprLex, diag := EvalExpression(seg.text, sym)
			if diag != nil {
				return nil, "", diag
			}
			lex = append(lex, exprLex...)
			out.WriteString(v.Payload())
			out.WriteString(" ")
			continue
		}
		for _, tok := range strings.Fields(seg.text) {
			switch {
			case troofAnchoredRe.MatchString(tok):
				lex = append(lex, Lexeme{Text: tok, Classification: ClassLiteral})
				out.WriteString(tok)
			case varNameRe.MatchString(tok):
				if !sym.Has(tok) {
					return nil, "", errors.New(errors.UnknownRef, tok+".")
				}
				v, _ := sym.Get(tok)
				lex = append(lex, Lexeme{Text: tok, Classification: ClassVariableReference})
				out.WriteString(v.Payload())
			case numbarAnchoredRe.MatchString(tok):
				lex = append(lex, Lexeme{Text: tok, Classification: ClassLiteral})
				out.WriteString(tok)
			case numbrAnchoredRe.MatchString(tok):
				lex = append(lex, Lexeme{Text: tok, Classification: ClassLiteral})
				out.WriteString(tok)
			default:
				return nil, "", errors.New(errors.InvalidValue, tok)
			}
			out.WriteString(" ")
		}
	}
	return lex, out.String() + "\n", nil
}

type visibleSegment struct {
	text   string
	isYarn bool
}

// splitYarnAndRest splits a VISIBLE argument string on double quotes,
// tagging the quoted segments so they are printed and lexed verbatim
// rather than re-parsed as expressions or literals.
func splitYarnAndRest(s string) []visibleSegment {
	parts := strings.Split(s, "\"")
	segments := make([]visibleSegment, 0, len(parts))
	for i, p := range parts {
		trimmed := strings.Trim(p, " ")
		if trimmed == "" {
			continue
		}
		segments = append(segments, visibleSegment{text: trimmed, isYarn: i%2 == 1})
	}
	return segments
}

// evalGimmeh implements GIMMEH, reading one line from in and coercing it
// to NUMBAR, NUMBR, or YARN, per spec.md §5. When in is nil (lexing a
// branch that will not execute), the target is validated but no read is
// attempted.
func evalGimmeh(line string, sym *SymbolTable, in Reader) ([]Lexeme, string, value.Value, *errors.Diagnostic) {
	rest := strings.TrimSpace(operandRegion(line, gimmehRe))
	fields := strings.Fields(rest)
	if len(fields) > 1 {
		return nil, "", nil, errors.New(errors.MultipleGimmeh, "")
	}
	if len(fields) == 0 || fields[0] == "" {
		return nil, "", nil, errors.New(errors.MissingGimmeh, "")
	}
	name := fields[0]
	if !varNameRe.MatchString(name) || !sym.Has(name) {
		return nil, "", nil, errors.New(errors.UnknownRef, name+".")
	}
	lex := []Lexeme{
		{Text: "GIMMEH", Classification: ClassFunctionIdentifier},
		{Text: name, Classification: ClassVariableReference},
	}

	if in == nil {
		return lex, name, value.NoobValue{}, nil
	}
	raw, ok := in.ReadLine()
	if !ok {
		return nil, "", nil, errors.New(errors.NoInput, "")
	}

	switch {
	case numbarAnchoredRe.MatchString(raw):
		f, _ := strconv.ParseFloat(raw, 64)
		return lex, name, value.NumbarValue{Val: f}, nil
	case numbrAnchoredRe.MatchString(raw):
		n, _ := strconv.ParseInt(raw, 10, 64)
		return lex, name, value.NumbrValue{Val: n}, nil
	default:
		return lex, name, value.YarnValue{Val: raw}, nil
	}
}

// evalAssignment implements <name> R <rhs>, per spec.md §5.
func evalAssignment(line string, sym *SymbolTable) ([]Lexeme, string, value.Value, *errors.Diagnostic) {
	parts := varAssignRe.Split(line, 2)
	if len(parts) != 2 {
		return nil, "", nil, errors.New(errors.NoRLeft, "")
	}
	left := strings.TrimSpace(parts[0])
	right := strings.TrimSpace(parts[1])
	if left == "" {
		return nil, "", nil, errors.New(errors.NoRLeft, "")
	}
	if right == "" {
		return nil, "", nil, errors.New(errors.NoRRight, "")
	}
	if len(strings.Fields(left)) > 1 {
		return nil, "", nil, errors.New(errors.ManyRLeft, "")
	}
	if !varNameRe.MatchString(left) {
		return nil, "", nil, errors.New(errors.InvalidVarName, left+".")
	}
	if !sym.Has(left) {
		return nil, "", nil, errors.New(errors.UnknownRef, left+".")
	}

	if !expressionRe.MatchString(right) && !yarnRe.MatchString(right) {
		if len(strings.Fields(right)) > 1 {
			return nil, "", nil, errors.New(errors.ManyRRight, "")
		}
	}

	refClass := ClassVariableReference
	if left == "IT" {
		refClass = ClassImplicitVariable
	}
	lex := []Lexeme{
		{Text: left, Classification: refClass},
		{Text: "R", Classification: ClassAssignmentOperator},
	}

	v, rhsLex, diag := evalRHS(right, sym)
	if diag != nil {
		return nil, "", nil, diag
	}
	return append(lex, rhsLex...), left, v, nil
}
