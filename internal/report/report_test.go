package report

import (
	"strings"
	"testing"

	"github.com/tidwall/gjson"

	"github.com/jemacalalad/lolcode/internal/interp"
	"github.com/jemacalalad/lolcode/internal/value"
)

func TestBuildIncludesOutputLexemesAndSymbols(t *testing.T) {
	lexemes := &interp.LexemeTable{}
	lexemes.Append("HAI", interp.ClassCodeDelimiter)
	lexemes.Append("KTHXBYE", interp.ClassCodeDelimiter)

	symbols := interp.NewSymbolTable()
	symbols.Set("NAME", value.YarnValue{Val: "WORLD"})

	doc, err := Build("HAI WORLD\n", lexemes, symbols)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := gjson.Get(doc, "output").String(); got != "HAI WORLD\n" {
		t.Errorf("output = %q", got)
	}
	if got := gjson.Get(doc, "lexemes.0.text").String(); got != "HAI" {
		t.Errorf("lexemes.0.text = %q", got)
	}
	if got := gjson.Get(doc, "lexemes.1.text").String(); got != "KTHXBYE" {
		t.Errorf("lexemes.1.text = %q", got)
	}
	if got := gjson.Get(doc, "symbols.NAME.type").String(); got != "YARN" {
		t.Errorf("symbols.NAME.type = %q", got)
	}
	if got := gjson.Get(doc, "symbols.NAME.payload").String(); got != "WORLD" {
		t.Errorf("symbols.NAME.payload = %q", got)
	}
}

func TestBuildEmptyLexemesAndSymbols(t *testing.T) {
	lexemes := &interp.LexemeTable{}
	symbols := interp.NewSymbolTable()

	doc, err := Build("", lexemes, symbols)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(doc, `"output":""`) {
		t.Errorf("got %q", doc)
	}
	// IT is pre-seeded as NOOB even with no other symbols declared.
	if got := gjson.Get(doc, "symbols.IT.type").String(); got != "NOOB" {
		t.Errorf("symbols.IT.type = %q", got)
	}
}
