package interp

import "github.com/jemacalalad/lolcode/internal/value"

// SymbolTable maps a declared variable name to its current Value,
// preserving insertion order for reporting (spec.md §3). IT is reserved
// and pre-declared by NewSymbolTable.
type SymbolTable struct {
	values map[string]value.Value
	order  []string
}

func NewSymbolTable() *SymbolTable {
	t := &SymbolTable{values: make(map[string]value.Value)}
	t.Set("IT", value.NoobValue{})
	return t
}

// Set assigns name's value, recording insertion order on first sight.
func (t *SymbolTable) Set(name string, v value.Value) {
	if _, exists := t.values[name]; !exists {
		t.order = append(t.order, name)
	}
	t.values[name] = v
}

// Get returns name's value and whether it is declared.
func (t *SymbolTable) Get(name string) (value.Value, bool) {
	v, ok := t.values[name]
	return v, ok
}

// Has reports whether name is declared.
func (t *SymbolTable) Has(name string) bool {
	_, ok := t.values[name]
	return ok
}

// Entry pairs a symbol name with its value, in declaration order.
type Entry struct {
	Name  string
	Value value.Value
}

// Entries returns the symbol table contents in insertion order.
func (t *SymbolTable) Entries() []Entry {
	entries := make([]Entry, 0, len(t.order))
	for _, name := range t.order {
		entries = append(entries, Entry{Name: name, Value: t.values[name]})
	}
	return entries
}
