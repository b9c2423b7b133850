package errors

import "testing"

func TestDisplayNumbers(t *testing.T) {
	tests := []struct {
		code Code
		want int
	}{
		{NoHAI, 1},
		{MaxTwoArgs, 17},
		{DoubleMKAY, 26},
		{NoOIC, 26},
		{MissingOperand, 27},
		{LoneOIC, 27},
		{NoYARLY, 28},
		{MultiWTF, 48},
	}
	for _, tt := range tests {
		if got := tt.code.number(); got != tt.want {
			t.Errorf("Code(%d).number() = %d, want %d", tt.code, got, tt.want)
		}
	}
}

func TestErrorRendersDetail(t *testing.T) {
	d := New(UnknownRef, "foo.")
	want := "Error 09: Unknown/Undeclared variable reference foo."
	if got := d.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestErrorWithoutDetail(t *testing.T) {
	d := New(NoHAI, "")
	want := "Error 01: Program has no HAI code delimiter."
	if got := d.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestWithLine(t *testing.T) {
	d := New(NoOIC, "")
	got := d.WithLine("O RLY?")
	want := "O RLY?\nError 26: If-else/Switch blocks must be terminated by OIC"
	if got != want {
		t.Errorf("WithLine() = %q, want %q", got, want)
	}
}

func TestWithLineEmpty(t *testing.T) {
	d := New(NoHAI, "")
	if got := d.WithLine(""); got != d.Error() {
		t.Errorf("WithLine(\"\") = %q, want %q", got, d.Error())
	}
}
