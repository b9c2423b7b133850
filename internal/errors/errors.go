// Package errors provides the LOLCODE core's fixed, numbered diagnostic
// catalog and the source-line-plus-message formatting used to surface a
// diagnostic to the output stream. Adapted from the teacher's
// CompilerError (source context + message), but trimmed to the single-
// diagnostic model the core actually needs: there is no partial success,
// so a run produces at most one Diagnostic, never a slice of them.
package errors

import "fmt"

// Code is one of the fixed numbered diagnostics enumerated in spec.md.
// Two pairs of constants intentionally share a display number (26 and 27)
// because the reference implementation shipped with that duplication; see
// SPEC_FULL.md §7.3 and DESIGN.md for the decision to preserve it exactly.
type Code int

const (
	NoHAI                  Code = iota + 1 // 01
	NoKTHXBYE                              // 02
	UnpairedOBTW                           // 03
	DoubleHAI                              // 04
	DoubleKTHXBYE                          // 05
	InvalidVarName                         // 06
	InvalidValue                           // 07
	NoValue                                // 08
	UnknownRef                             // 09
	MissingVisible                         // 10
	MissingGimmeh                          // 11
	MultipleGimmeh                         // 12
	NotSubscriptable                       // 13
	UnknownOp                              // 14
	QuotedOperand                          // 15
	MinTwoArgs                             // 16
	MaxTwoArgs                             // 17
	MissingArg                             // 18
	NoRLeft                                // 19
	NoRRight                               // 20
	ManyRLeft                              // 21
	ManyRRight                             // 22
	UnpairedQuotes                         // 23
	BoolRecursive                          // 24
	NoMKAY                                 // 25
	DoubleMKAY                             // 26 (shares display number with NoOIC)
	NoOIC                                  // 26
	MissingOperand                         // 27 (shares display number with LoneOIC)
	LoneOIC                                // 27
	NoYARLY                                // 28
	NoNOWAI                                // 29
	ConditionError                         // 30
	MissingCaseValue                       // 31
	MultiCaseValue                         // 32
	MissingDefault                         // 33
	ItEmptyError                           // 34
	NoWTF                                  // 35
	NoOMG                                  // 36
	MissingQuote                           // 37
	InvalidCase                            // 38
	MultiYARLY                             // 39
	MultiNOWAI                             // 40
	MultiOMGWTF                            // 41
	NoORLY                                 // 42
	UnrecognizedCommand                    // 43
	InvalidLiteral                         // 44
	NoInput                                // 45
	NotVarDec                              // 46
	MultiORLY                              // 47
	MultiWTF                               // 48
)

// number returns the display number used in "Error NN: ..." output,
// preserving the catalog's two duplicated numbers exactly.
func (c Code) number() int {
	switch {
	case c <= DoubleMKAY:
		return int(c)
	case c == NoOIC:
		return 26
	case c == MissingOperand:
		return 27
	case c == LoneOIC:
		return 27
	default:
		return int(c) - 2
	}
}

var messages = map[Code]string{
	NoHAI:                "Program has no HAI code delimiter.",
	NoKTHXBYE:            "Program has no KTHXBYE code delimiter.",
	UnpairedOBTW:         "Missing OBTW.",
	DoubleHAI:            "Double HAI keyword.",
	DoubleKTHXBYE:        "Double KTHXBYE keyword.",
	InvalidVarName:       "Invalid variable name ",
	InvalidValue:         "Invalid value/expression for variable: ",
	NoValue:              "No value given to variable ",
	UnknownRef:           "Unknown/Undeclared variable reference ",
	MissingVisible:       "Missing statement after VISIBLE.",
	MissingGimmeh:        "Missing statement after GIMMEH.",
	MultipleGimmeh:       "Multiple arguments after GIMMEH is not allowed.",
	NotSubscriptable:     "Unpermitted data type for ",
	UnknownOp:            "Unidentified operation: ",
	QuotedOperand:        "Quoted operand is not of type NUMBR/NUMBAR.",
	MinTwoArgs:           "Expression must have at least 2 operands.",
	MaxTwoArgs:           "Expression must have at most 2 operands.",
	MissingArg:           "Missing operand on expression.",
	NoRLeft:              "Missing variable before R.",
	NoRRight:             "Missing literal/variable/expression after R.",
	ManyRLeft:            "Multiple variables before R is not allowed.",
	ManyRRight:           "Multiple statements after R is not allowed.",
	UnpairedQuotes:       "Unpaired double quotes.",
	BoolRecursive:        "ALL OF/ANY OF cannot be called recursively.",
	NoMKAY:               "ALL OF/ANY OF must be terminated in MKAY.",
	DoubleMKAY:           "Double MKAY found.",
	NoOIC:                "If-else/Switch blocks must be terminated by OIC",
	MissingOperand:       "Lacking operand/s. Please check the expression again.",
	LoneOIC:              "If-else blocks must be preceded by O RLY?/Switch blocks must be preceded by WTF?",
	NoYARLY:              "O RLY? must be succeeded by YA RLY",
	NoNOWAI:              "Missing NO WAI.",
	ConditionError:       "Preceding expression of If-else blocks must result to the type \"TROOF\"",
	MissingCaseValue:     "The succeeding expression after OMG is missing.",
	MultiCaseValue:       "Only one succeeding expression after OMG is allowed.",
	MissingDefault:       "Missing OMGWTF statement.",
	ItEmptyError:         "The Implicit Variable does not contain any value.",
	NoWTF:                "Switch blocks must be preceded by WTF?",
	NoOMG:                "WTF? must be succeeded by a proper OMG statement.",
	MissingQuote:         "YARN literals must start and end with quotation marks.",
	InvalidCase:          "This case value is invalid: ",
	MultiYARLY:           "Only one YA RLY is allowed per block.",
	MultiNOWAI:           "Only one NO WAI is allowed per block.",
	MultiOMGWTF:          "Only one OMGWTF is allowed per block.",
	NoORLY:               "Missing O RLY? statement.",
	UnrecognizedCommand:  "Unrecognizable command.",
	InvalidLiteral:       "Invalid literal: ",
	NoInput:              "Please add an input.",
	NotVarDec:            "Variable declaration is not allowed inside If-Else/Switch blocks.",
	MultiORLY:            "Only one ORLY? is allowed per block.",
	MultiWTF:             "Only one WTF? is allowed per block.",
}

// Diagnostic is the single error value a handler may return instead of a
// success payload. Per spec.md §7 there is no partial success and no
// aggregation: a run halts on the first Diagnostic produced.
type Diagnostic struct {
	Code   Code
	Detail string // appended after the catalog message, e.g. an identifier
}

// New builds a Diagnostic for code, with an optional detail suffix
// (identifiers, offending literals) appended to the catalog message.
func New(code Code, detail string) *Diagnostic {
	return &Diagnostic{Code: code, Detail: detail}
}

// Error implements the error interface, rendering "Error NN: <message>".
func (d *Diagnostic) Error() string {
	msg := messages[d.Code]
	if d.Detail != "" {
		return fmt.Sprintf("Error %02d: %s%s", d.Code.number(), msg, d.Detail)
	}
	return fmt.Sprintf("Error %02d: %s", d.Code.number(), msg)
}

// WithLine prefixes the diagnostic's rendered message with the offending
// source line, matching spec.md §7: "the line on which the error occurred
// is echoed to the output preceding the error where possible."
func (d *Diagnostic) WithLine(line string) string {
	if line == "" {
		return d.Error()
	}
	return line + "\n" + d.Error()
}
