// Modul: input_test.go
// Beschreibung: Unit Tests fuer Zeilen-Prompts und die Confirm-Schleife.

package input

import (
	"strings"
	"testing"

	"github.com/7blacky7/termkit/keyread"
)

// TestLine testet das Lesen und Trimmen einer Eingabezeile
func TestLine(t *testing.T) {
	t.Setenv("TERMKIT_NO_COLOR", "1")

	tests := []struct {
		name, in, want string
	}{
		{"Plain", "hello\n", "hello"},
		{"Trimmed", "  spaced  \n", "spaced"},
		{"Empty", "\n", ""},
		{"NoNewlineAtEOF", "last", "last"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out strings.Builder
			p := NewPrompter(strings.NewReader(tt.in), &out)
			got, err := p.Line("value")
			if err != nil {
				t.Fatalf("Line() err = %v", err)
			}
			if got != tt.want {
				t.Errorf("Line() = %q, want %q", got, tt.want)
			}
			if !strings.Contains(out.String(), "value") {
				t.Errorf("prompt label missing from output: %q", out.String())
			}
		})
	}
}

// TestInt testet die Wiederholung bei unparsebarer Eingabe
func TestInt(t *testing.T) {
	t.Setenv("TERMKIT_NO_COLOR", "1")

	var out strings.Builder
	p := NewPrompter(strings.NewReader("abc\n42\n"), &out)
	v, ok, err := p.Int("count")
	if err != nil {
		t.Fatalf("Int() err = %v", err)
	}
	if !ok || v != 42 {
		t.Errorf("Int() = (%d, %v), want (42, true)", v, ok)
	}
	if !strings.Contains(out.String(), "invalid input") {
		t.Error("retry notice missing after unparsable input")
	}
}

// TestIntEmpty testet dass eine leere Zeile ok=false liefert
func TestIntEmpty(t *testing.T) {
	t.Setenv("TERMKIT_NO_COLOR", "1")

	p := NewPrompter(strings.NewReader("\n"), &strings.Builder{})
	_, ok, err := p.Int("count")
	if err != nil {
		t.Fatalf("Int() err = %v", err)
	}
	if ok {
		t.Error("Int() ok = true for empty input")
	}
}

// TestFloat testet das Parsen von Gleitkommazahlen
func TestFloat(t *testing.T) {
	t.Setenv("TERMKIT_NO_COLOR", "1")

	p := NewPrompter(strings.NewReader("2.5\n"), &strings.Builder{})
	v, ok, err := p.Float("ratio")
	if err != nil {
		t.Fatalf("Float() err = %v", err)
	}
	if !ok || v != 2.5 {
		t.Errorf("Float() = (%v, %v), want (2.5, true)", v, ok)
	}
}

// TestConfirmLoop testet die Tasten-Zuordnung der Bestaetigung
func TestConfirmLoop(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"Yes", "y", true},
		{"YesUpper", "Y", true},
		{"Enter", "\r", true},
		{"No", "n", false},
		{"Escape", "\x1b", false},
		{"NoUpper", "N", false},
		{"IgnoresOtherKeys", "xq n", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dec := keyread.NewDecoderReader(strings.NewReader(tt.in))
			got, err := confirmLoop(dec)
			if err != nil {
				t.Fatalf("confirmLoop() err = %v", err)
			}
			if got != tt.want {
				t.Errorf("confirmLoop() = %v, want %v", got, tt.want)
			}
		})
	}
}
