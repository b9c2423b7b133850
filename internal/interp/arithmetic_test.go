package interp

import (
	"testing"

	"github.com/jemacalalad/lolcode/internal/value"
)

func TestEvalArithmeticBasic(t *testing.T) {
	sym := NewSymbolTable()

	tests := []struct {
		line string
		want string
		tag  value.Tag
	}{
		{"SUM OF 2 AN 3", "5", value.Numbr},
		{"DIFF OF 5 AN 3", "2", value.Numbr},
		{"PRODUKT OF 4 AN 3", "12", value.Numbr},
		{"QUOSHUNT OF 7 AN 2", "3", value.Numbr},
		{"MOD OF 7 AN 3", "1", value.Numbr},
		{"BIGGR OF 7 AN 3", "7", value.Numbr},
		{"SMALLR OF 7 AN 3", "3", value.Numbr},
		{"SUM OF 2.5 AN 1", "3.5", value.Numbar},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			v, _, diag := EvalArithmetic(tt.line, sym)
			if diag != nil {
				t.Fatalf("unexpected error: %v", diag)
			}
			if v.Type() != tt.tag || v.Payload() != tt.want {
				t.Errorf("got %s %s, want %s %s", v.Type(), v.Payload(), tt.tag, tt.want)
			}
		})
	}
}

func TestEvalArithmeticFlooredMod(t *testing.T) {
	sym := NewSymbolTable()
	v, _, diag := EvalArithmetic("MOD OF -7 AN 3", sym)
	if diag != nil {
		t.Fatalf("unexpected error: %v", diag)
	}
	// Floored-division remainder: sign follows the divisor, so -7 % 3 == 2
	// (not Go's math.Mod -1).
	if v.Payload() != "2" {
		t.Errorf("got %s, want 2", v.Payload())
	}
}

func TestEvalArithmeticComparison(t *testing.T) {
	sym := NewSymbolTable()

	v, _, diag := EvalArithmetic("BOTH SAEM 3 AN 3", sym)
	if diag != nil {
		t.Fatalf("unexpected error: %v", diag)
	}
	if v.Payload() != "WIN" {
		t.Errorf("got %s, want WIN", v.Payload())
	}

	v, _, diag = EvalArithmetic("DIFFRINT 3 AN 4", sym)
	if diag != nil {
		t.Fatalf("unexpected error: %v", diag)
	}
	if v.Payload() != "WIN" {
		t.Errorf("got %s, want WIN", v.Payload())
	}
}

func TestEvalArithmeticNested(t *testing.T) {
	sym := NewSymbolTable()
	v, _, diag := EvalArithmetic("SUM OF 1 AN SUM OF 2 AN 3", sym)
	if diag != nil {
		t.Fatalf("unexpected error: %v", diag)
	}
	if v.Payload() != "6" {
		t.Errorf("got %s, want 6", v.Payload())
	}
}
