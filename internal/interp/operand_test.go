package interp

import (
	"testing"

	"github.com/jemacalalad/lolcode/internal/errors"
	"github.com/jemacalalad/lolcode/internal/value"
)

func TestEvalOperandMathLiterals(t *testing.T) {
	sym := NewSymbolTable()

	v, _, diag := EvalOperand("5", sym, ModeMath, OpAdd)
	if diag != nil {
		t.Fatalf("unexpected error: %v", diag)
	}
	if v.Type() != value.Numbr || v.Payload() != "5" {
		t.Errorf("got %v %v", v.Type(), v.Payload())
	}

	v, _, diag = EvalOperand("2.5", sym, ModeMath, OpAdd)
	if diag != nil {
		t.Fatalf("unexpected error: %v", diag)
	}
	if v.Type() != value.Numbar || v.Payload() != "2.5" {
		t.Errorf("got %v %v", v.Type(), v.Payload())
	}
}

func TestEvalOperandBoolCoercesNonZeroLiteral(t *testing.T) {
	sym := NewSymbolTable()

	v, _, diag := EvalOperand("5", sym, ModeBool, OpAnd)
	if diag != nil {
		t.Fatalf("unexpected error: %v", diag)
	}
	if !value.IsTruthy(v) {
		t.Error("non-zero NUMBR literal should coerce to WIN in bool mode")
	}

	v, _, diag = EvalOperand("0", sym, ModeBool, OpAnd)
	if diag != nil {
		t.Fatalf("unexpected error: %v", diag)
	}
	if value.IsTruthy(v) {
		t.Error("zero NUMBR literal should coerce to FAIL in bool mode")
	}

	v, _, diag = EvalOperand("0.0", sym, ModeBool, OpAnd)
	if diag != nil {
		t.Fatalf("unexpected error: %v", diag)
	}
	if value.IsTruthy(v) {
		t.Error("zero NUMBAR literal should coerce to FAIL in bool mode")
	}
}

func TestEvalOperandVariableReference(t *testing.T) {
	sym := NewSymbolTable()
	sym.Set("X", value.NumbrValue{Val: 10})

	v, lex, diag := EvalOperand("X", sym, ModeMath, OpAdd)
	if diag != nil {
		t.Fatalf("unexpected error: %v", diag)
	}
	if v.Payload() != "10" {
		t.Errorf("got %v", v.Payload())
	}
	if len(lex) != 1 || lex[0].Classification != ClassVariableReference {
		t.Errorf("got %#v", lex)
	}
}

func TestEvalOperandUnknownReference(t *testing.T) {
	sym := NewSymbolTable()
	_, _, diag := EvalOperand("UNDECLARED", sym, ModeMath, OpAdd)
	if diag == nil || diag.Code != errors.UnknownRef {
		t.Fatalf("got %v, want UnknownRef", diag)
	}
}

func TestEvalOperandMathModeRejectsYarnVariable(t *testing.T) {
	sym := NewSymbolTable()
	sym.Set("S", value.YarnValue{Val: "hello"})
	_, _, diag := EvalOperand("S", sym, ModeMath, OpAdd)
	if diag == nil || diag.Code != errors.NotSubscriptable {
		t.Fatalf("got %v, want NotSubscriptable", diag)
	}
}

func TestEvalOperandEquAcceptsAnyVariableType(t *testing.T) {
	sym := NewSymbolTable()
	sym.Set("S", value.YarnValue{Val: "hello"})
	v, _, diag := EvalOperand("S", sym, ModeMath, OpEqu)
	if diag != nil {
		t.Fatalf("unexpected error: %v", diag)
	}
	if v.Payload() != "hello" {
		t.Errorf("got %v", v.Payload())
	}
}

func TestEvalOperandBoolModeTroofLiteral(t *testing.T) {
	sym := NewSymbolTable()
	v, _, diag := EvalOperand("WIN", sym, ModeBool, OpAnd)
	if diag != nil {
		t.Fatalf("unexpected error: %v", diag)
	}
	if !value.IsTruthy(v) {
		t.Error("WIN literal should be truthy")
	}
}
