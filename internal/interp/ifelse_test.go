package interp

import (
	"strings"
	"testing"

	"github.com/jemacalalad/lolcode/internal/errors"
	"github.com/jemacalalad/lolcode/internal/value"
)

func TestEvalIfElseTakesYaRlyBranch(t *testing.T) {
	sym := NewSymbolTable()
	sym.Set("IT", value.Win())
	lines := []string{
		"O RLY?",
		"YA RLY",
		`VISIBLE "yes"`,
		"NO WAI",
		`VISIBLE "no"`,
		"OIC",
	}
	block, _, diag := EvalIfElse(lines, 0, sym, nil)
	if diag != nil {
		t.Fatalf("unexpected error: %v", diag)
	}
	if !strings.Contains(block.Output, "yes") {
		t.Errorf("got output %q, want it to contain yes", block.Output)
	}
	if strings.Contains(block.Output, "no") {
		t.Errorf("got output %q, want it not to contain no", block.Output)
	}
	if block.NextIndex != len(lines) {
		t.Errorf("NextIndex = %d, want %d", block.NextIndex, len(lines))
	}
}

func TestEvalIfElseTakesNoWaiBranch(t *testing.T) {
	sym := NewSymbolTable()
	sym.Set("IT", value.Fail())
	lines := []string{
		"O RLY?",
		"YA RLY",
		`VISIBLE "yes"`,
		"NO WAI",
		`VISIBLE "no"`,
		"OIC",
	}
	block, _, diag := EvalIfElse(lines, 0, sym, nil)
	if diag != nil {
		t.Fatalf("unexpected error: %v", diag)
	}
	if !strings.Contains(block.Output, "no") || strings.Contains(block.Output, "yes") {
		t.Errorf("got output %q", block.Output)
	}
}

func TestEvalIfElseRequiresTroofIT(t *testing.T) {
	sym := NewSymbolTable()
	sym.Set("IT", value.NumbrValue{Val: 1})
	lines := []string{"O RLY?", "YA RLY", "NO WAI", "OIC"}
	_, _, diag := EvalIfElse(lines, 0, sym, nil)
	if diag == nil || diag.Code != errors.ConditionError {
		t.Fatalf("got %v, want ConditionError", diag)
	}
}

func TestEvalIfElseRequiresYaRlyImmediately(t *testing.T) {
	sym := NewSymbolTable()
	sym.Set("IT", value.Win())
	lines := []string{"O RLY?", "NO WAI", "OIC"}
	_, _, diag := EvalIfElse(lines, 0, sym, nil)
	if diag == nil || diag.Code != errors.NoYARLY {
		t.Fatalf("got %v, want NoYARLY", diag)
	}
}

func TestEvalIfElseRequiresNoWai(t *testing.T) {
	sym := NewSymbolTable()
	sym.Set("IT", value.Win())
	lines := []string{"O RLY?", "YA RLY", "OIC"}
	_, _, diag := EvalIfElse(lines, 0, sym, nil)
	if diag == nil || diag.Code != errors.NoNOWAI {
		t.Fatalf("got %v, want NoNOWAI", diag)
	}
}

func TestEvalIfElseMissingOic(t *testing.T) {
	sym := NewSymbolTable()
	sym.Set("IT", value.Win())
	lines := []string{"O RLY?", "YA RLY", "NO WAI"}
	_, _, diag := EvalIfElse(lines, 0, sym, nil)
	if diag == nil || diag.Code != errors.NoOIC {
		t.Fatalf("got %v, want NoOIC", diag)
	}
}
