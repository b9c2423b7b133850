package interp

import (
	"strings"
	"testing"

	"github.com/jemacalalad/lolcode/internal/errors"
	"github.com/jemacalalad/lolcode/internal/value"
)

func TestEvalSwitchMatchesCase(t *testing.T) {
	sym := NewSymbolTable()
	sym.Set("IT", value.NumbrValue{Val: 2})
	lines := []string{
		"WTF?",
		"OMG 1",
		`VISIBLE "one"`,
		"GTFO",
		"OMG 2",
		`VISIBLE "two"`,
		"GTFO",
		"OMGWTF",
		`VISIBLE "default"`,
		"OIC",
	}
	block, _, diag := EvalSwitch(lines, 0, sym, nil)
	if diag != nil {
		t.Fatalf("unexpected error: %v", diag)
	}
	if !strings.Contains(block.Output, "two") || strings.Contains(block.Output, "one") {
		t.Errorf("got output %q", block.Output)
	}
}

func TestEvalSwitchFallsThroughWithoutGtfo(t *testing.T) {
	sym := NewSymbolTable()
	sym.Set("IT", value.NumbrValue{Val: 1})
	lines := []string{
		"WTF?",
		"OMG 1",
		`VISIBLE "one"`,
		"OMG 2",
		`VISIBLE "two"`,
		"GTFO",
		"OMGWTF",
		`VISIBLE "default"`,
		"OIC",
	}
	block, _, diag := EvalSwitch(lines, 0, sym, nil)
	if diag != nil {
		t.Fatalf("unexpected error: %v", diag)
	}
	if !strings.Contains(block.Output, "one") || !strings.Contains(block.Output, "two") {
		t.Errorf("got output %q, want both one and two (fallthrough)", block.Output)
	}
}

func TestEvalSwitchDefaultAlwaysRuns(t *testing.T) {
	sym := NewSymbolTable()
	sym.Set("IT", value.NumbrValue{Val: 1})
	lines := []string{
		"WTF?",
		"OMG 1",
		`VISIBLE "one"`,
		"GTFO",
		"OMGWTF",
		`VISIBLE "default"`,
		"OIC",
	}
	block, _, diag := EvalSwitch(lines, 0, sym, nil)
	if diag != nil {
		t.Fatalf("unexpected error: %v", diag)
	}
	if !strings.Contains(block.Output, "one") || !strings.Contains(block.Output, "default") {
		t.Errorf("got output %q, want both one and default", block.Output)
	}
}

func TestEvalSwitchRequiresDefault(t *testing.T) {
	sym := NewSymbolTable()
	sym.Set("IT", value.NumbrValue{Val: 1})
	lines := []string{"WTF?", "OMG 1", `VISIBLE "one"`, "OIC"}
	_, _, diag := EvalSwitch(lines, 0, sym, nil)
	if diag == nil || diag.Code != errors.MissingDefault {
		t.Fatalf("got %v, want MissingDefault", diag)
	}
}

func TestEvalSwitchRequiresOmgFirst(t *testing.T) {
	sym := NewSymbolTable()
	sym.Set("IT", value.NumbrValue{Val: 1})
	lines := []string{"WTF?", "OMGWTF", `VISIBLE "default"`, "OIC"}
	_, _, diag := EvalSwitch(lines, 0, sym, nil)
	if diag == nil || diag.Code != errors.NoOMG {
		t.Fatalf("got %v, want NoOMG", diag)
	}
}
