// Package report builds the JSON document emitted by `lolcode run --json`:
// output text, lexeme table, and final symbol table, assembled
// incrementally with sjson.Set and queryable back out with gjson.
package report

import (
	"strconv"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/jemacalalad/lolcode/internal/interp"
)

// Build renders a run's output, lexeme table, and symbol table as a JSON
// document. Fields are set one at a time with sjson rather than built
// through a struct and json.Marshal, matching the incremental-document
// style tidwall/sjson is meant for.
func Build(output string, lexemes *interp.LexemeTable, symbols *interp.SymbolTable) (string, error) {
	doc := "{}"
	var err error

	doc, err = sjson.Set(doc, "output", output)
	if err != nil {
		return "", err
	}

	for i, lex := range lexemes.Entries() {
		idx := strconv.Itoa(i)
		doc, err = sjson.Set(doc, "lexemes."+idx+".text", lex.Text)
		if err != nil {
			return "", err
		}
		doc, err = sjson.Set(doc, "lexemes."+idx+".classification", string(lex.Classification))
		if err != nil {
			return "", err
		}
	}

	for _, entry := range symbols.Entries() {
		name := entry.Name
		doc, err = sjson.Set(doc, "symbols."+name+".type", string(entry.Value.Type()))
		if err != nil {
			return "", err
		}
		doc, err = sjson.Set(doc, "symbols."+name+".payload", entry.Value.Payload())
		if err != nil {
			return "", err
		}
	}

	return gjson.Parse(doc).String(), nil
}
