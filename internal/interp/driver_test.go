package interp

import (
	"strings"
	"testing"

	"github.com/jemacalalad/lolcode/internal/errors"
)

func TestRunFullProgram(t *testing.T) {
	source := strings.Join([]string{
		"HAI 1.2",
		"I HAS A NAME ITZ \"WORLD\"",
		"VISIBLE \"HAI \" NAME",
		"KTHXBYE",
	}, "\n")

	res, lineErr, diag := Run(source, nil)
	if diag != nil {
		t.Fatalf("unexpected error: %v (line %q)", diag, lineErr)
	}
	if !strings.Contains(res.Output, "HAI WORLD") {
		t.Errorf("got output %q", res.Output)
	}
	if res.Lexemes == nil || res.Symbols == nil {
		t.Fatal("expected non-nil lexemes and symbols")
	}
	if _, ok := res.Symbols.Get("NAME"); !ok {
		t.Error("expected NAME to remain in the symbol table")
	}
}

func TestRunOrphanYaRly(t *testing.T) {
	source := strings.Join([]string{"HAI 1.2", "YA RLY", "KTHXBYE"}, "\n")
	_, _, diag := Run(source, nil)
	if diag == nil || diag.Code != errors.NoORLY {
		t.Fatalf("got %v, want NoORLY", diag)
	}
}

func TestRunOrphanNoWai(t *testing.T) {
	source := strings.Join([]string{"HAI 1.2", "NO WAI", "KTHXBYE"}, "\n")
	_, _, diag := Run(source, nil)
	if diag == nil || diag.Code != errors.NoORLY {
		t.Fatalf("got %v, want NoORLY", diag)
	}
}

func TestRunOrphanOmg(t *testing.T) {
	source := strings.Join([]string{"HAI 1.2", "OMG 1", "KTHXBYE"}, "\n")
	_, _, diag := Run(source, nil)
	if diag == nil || diag.Code != errors.NoWTF {
		t.Fatalf("got %v, want NoWTF", diag)
	}
}

func TestRunOrphanOmgwtf(t *testing.T) {
	source := strings.Join([]string{"HAI 1.2", "OMGWTF", "KTHXBYE"}, "\n")
	_, _, diag := Run(source, nil)
	if diag == nil || diag.Code != errors.NoWTF {
		t.Fatalf("got %v, want NoWTF", diag)
	}
}

func TestRunOrphanOic(t *testing.T) {
	source := strings.Join([]string{"HAI 1.2", "OIC", "KTHXBYE"}, "\n")
	_, _, diag := Run(source, nil)
	if diag == nil || diag.Code != errors.LoneOIC {
		t.Fatalf("got %v, want LoneOIC", diag)
	}
}

func TestRunPropagatesStatementError(t *testing.T) {
	source := strings.Join([]string{"HAI 1.2", "X R 9", "KTHXBYE"}, "\n")
	_, lineErr, diag := Run(source, nil)
	if diag == nil || diag.Code != errors.UnknownRef {
		t.Fatalf("got %v, want UnknownRef", diag)
	}
	if lineErr != "X R 9" {
		t.Errorf("got line %q", lineErr)
	}
}

func TestLineAtFallsBackToLastLine(t *testing.T) {
	lines := []string{"HAI 1.2", "KTHXBYE"}
	if got := lineAt(lines, 5); got != "KTHXBYE" {
		t.Errorf("got %q, want last line", got)
	}
	if got := lineAt(lines, -1); got != "KTHXBYE" {
		t.Errorf("got %q, want last line", got)
	}
	if got := lineAt(nil, 0); got != "" {
		t.Errorf("got %q, want empty string", got)
	}
}

func TestRunIfElseInsideProgram(t *testing.T) {
	source := strings.Join([]string{
		"HAI 1.2",
		"BOTH SAEM 1 AN 1",
		"O RLY?",
		"YA RLY",
		"VISIBLE \"MATCH\"",
		"NO WAI",
		"VISIBLE \"NOMATCH\"",
		"OIC",
		"KTHXBYE",
	}, "\n")
	res, _, diag := Run(source, nil)
	if diag != nil {
		t.Fatalf("unexpected error: %v", diag)
	}
	if !strings.Contains(res.Output, "MATCH") || strings.Contains(res.Output, "NOMATCH") {
		t.Errorf("got output %q", res.Output)
	}
}
