// Modul: styled_test.go
// Beschreibung: Unit Tests fuer ANSI-Styling.

package styled

import "testing"

// TestRender testet die SGR-Sequenzen fuer Farben und Attribute
func TestRender(t *testing.T) {
	t.Setenv("TERMKIT_NO_COLOR", "")
	t.Setenv("NO_COLOR", "")

	tests := []struct {
		name  string
		style Style
		want  string
	}{
		{"Zero", Style{}, "x"},
		{"Red", Style{Fg: Red}, "\033[31mx\033[0m"},
		{"BrightCyan", Style{Fg: BrightCyan}, "\033[96mx\033[0m"},
		{"BgGreen", Style{Bg: Green}, "\033[42mx\033[0m"},
		{"BgBrightBlack", Style{Bg: BrightBlack}, "\033[100mx\033[0m"},
		{"Palette", Style{Fg: ANSI(208)}, "\033[38;5;208mx\033[0m"},
		{"PaletteBg", Style{Bg: ANSI(17)}, "\033[48;5;17mx\033[0m"},
		{"Bold", Style{Bold: true}, "\033[1mx\033[0m"},
		{"BoldRed", Style{Fg: Red, Bold: true}, "\033[1;31mx\033[0m"},
		{"Everything", Style{
			Fg: White, Bg: Blue,
			Bold: true, Italic: true, Underline: true,
			Blink: true, Reverse: true, Strikethrough: true,
		}, "\033[1;3;4;5;7;9;37;44mx\033[0m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.style.Render("x"); got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestNoColor testet dass NO_COLOR die Ausgabe unformatiert laesst
func TestNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	if got := (Style{Fg: Red, Bold: true}).Render("plain"); got != "plain" {
		t.Errorf("Render() with NO_COLOR = %q, want %q", got, "plain")
	}
	if got := Bold("plain"); got != "plain" {
		t.Errorf("Bold() with NO_COLOR = %q, want %q", got, "plain")
	}
}

// TestShorthands testet Fg und Bold
func TestShorthands(t *testing.T) {
	t.Setenv("TERMKIT_NO_COLOR", "")
	t.Setenv("NO_COLOR", "")
	if got := Fg(Cyan, "x"); got != "\033[36mx\033[0m" {
		t.Errorf("Fg() = %q", got)
	}
	if got := Bold("x"); got != "\033[1mx\033[0m" {
		t.Errorf("Bold() = %q", got)
	}
}
