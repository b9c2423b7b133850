// Package value implements the four LOLCODE value kinds plus the
// uninitialized NOOB kind, as a tagged Value interface in the style of
// the teacher's own runtime value hierarchy (one concrete type per kind,
// dispatched through an interface rather than interface{}).
package value

import "strconv"

// Tag is one of the five closed LOLCODE type tags.
type Tag string

const (
	Numbr  Tag = "NUMBR"  // signed integer
	Numbar Tag = "NUMBAR" // IEEE-754 double
	Yarn   Tag = "YARN"   // string
	Troof  Tag = "TROOF"  // WIN / FAIL
	Noob   Tag = "NOOB"   // uninitialized
)

// Value is a runtime LOLCODE value: a payload paired with its type tag.
type Value interface {
	Type() Tag
	// Payload returns the value's display payload, matching the textual
	// form stored in the symbol table (e.g. "5", "2.5", "WIN", "").
	Payload() string
}

// NumbrValue holds a signed integer payload.
type NumbrValue struct {
	Val int64
}

func (n NumbrValue) Type() Tag        { return Numbr }
func (n NumbrValue) Payload() string  { return strconv.FormatInt(n.Val, 10) }

// NumbarValue holds a floating-point payload.
type NumbarValue struct {
	Val float64
}

func (n NumbarValue) Type() Tag { return Numbar }
func (n NumbarValue) Payload() string {
	return strconv.FormatFloat(n.Val, 'f', -1, 64)
}

// YarnValue holds a string payload. Val is the unescaped string content,
// without surrounding quotes.
type YarnValue struct {
	Val string
}

func (y YarnValue) Type() Tag       { return Yarn }
func (y YarnValue) Payload() string { return y.Val }

// TroofValue holds a boolean payload, displayed as WIN or FAIL.
type TroofValue struct {
	Val bool
}

func (t TroofValue) Type() Tag { return Troof }
func (t TroofValue) Payload() string {
	if t.Val {
		return "WIN"
	}
	return "FAIL"
}

// NoobValue is the uninitialized value: empty payload, NOOB as its Tag.
// The symbol listings (the CLI's --show-symbols and the JSON report) show
// NOOB in the type column; the type is never rendered as an empty string.
type NoobValue struct{}

func (NoobValue) Type() Tag       { return Noob }
func (NoobValue) Payload() string { return "" }

// Win and Fail are the two TROOF literals.
func Win() Value  { return TroofValue{Val: true} }
func Fail() Value { return TroofValue{Val: false} }

// IsTruthy reports whether a TROOF value is WIN.
func IsTruthy(v Value) bool {
	t, ok := v.(TroofValue)
	return ok && t.Val
}

// Numeric extracts a float64 view of a NUMBR or NUMBAR value, for use in
// contexts (boolean coercion, arithmetic) that only care about magnitude.
func Numeric(v Value) (float64, bool) {
	switch n := v.(type) {
	case NumbrValue:
		return float64(n.Val), true
	case NumbarValue:
		return n.Val, true
	default:
		return 0, false
	}
}

// Equal implements BOTH SAEM / DIFFRINT comparison semantics: numeric
// values compare by magnitude across NUMBR/NUMBAR (so 3 == 3.0), every
// other pairing requires identical type tag and payload. This deviates
// from strict typed equality, matching the reference implementation's use
// of native numeric comparison for arithmetic operands.
func Equal(a, b Value) bool {
	af, aNum := Numeric(a)
	bf, bNum := Numeric(b)
	if aNum && bNum {
		return af == bf
	}
	return a.Type() == b.Type() && a.Payload() == b.Payload()
}
