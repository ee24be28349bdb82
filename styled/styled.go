// Modul: styled.go
// Beschreibung: ANSI-Farb- und Attribut-Formatierung fuer Terminal-Text.
// Reine String-Dekoration ohne Terminal-Zustand.

// Package styled renders strings with ANSI colors and text attributes.
// Output degrades to the plain string when colors are disabled via
// TERMKIT_NO_COLOR or NO_COLOR.
package styled

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/7blacky7/termkit/envconfig"
)

const ansiReset = "\033[0m"

// Color is a terminal color: one of the 16 named colors or an
// ANSI 256-color palette index via ANSI(n).
type Color int

const (
	// colorNone is the zero value: no color set.
	colorNone Color = iota
	Black
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	BrightBlack
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite
)

// ansiBase marks palette colors; ANSI(n) maps n onto [ansiBase, ansiBase+255].
const ansiBase Color = 1000

// ANSI returns the 256-color palette color with the given index.
func ANSI(n uint8) Color {
	return ansiBase + Color(n)
}

// fgCode gibt den SGR-Parameter fuer die Vordergrundfarbe zurueck
func (c Color) fgCode() string {
	switch {
	case c >= ansiBase:
		return "38;5;" + strconv.Itoa(int(c-ansiBase))
	case c >= BrightBlack:
		return strconv.Itoa(90 + int(c-BrightBlack))
	case c >= Black:
		return strconv.Itoa(30 + int(c-Black))
	}
	return ""
}

// bgCode gibt den SGR-Parameter fuer die Hintergrundfarbe zurueck
func (c Color) bgCode() string {
	switch {
	case c >= ansiBase:
		return "48;5;" + strconv.Itoa(int(c-ansiBase))
	case c >= BrightBlack:
		return strconv.Itoa(100 + int(c-BrightBlack))
	case c >= Black:
		return strconv.Itoa(40 + int(c-Black))
	}
	return ""
}

// Style describes foreground/background colors and text attributes.
// The zero value renders text unchanged.
type Style struct {
	Fg, Bg        Color
	Bold          bool
	Italic        bool
	Underline     bool
	Blink         bool
	Reverse       bool
	Strikethrough bool
}

// codes sammelt alle SGR-Parameter des Styles
func (s Style) codes() []string {
	var codes []string
	if s.Bold {
		codes = append(codes, "1")
	}
	if s.Italic {
		codes = append(codes, "3")
	}
	if s.Underline {
		codes = append(codes, "4")
	}
	if s.Blink {
		codes = append(codes, "5")
	}
	if s.Reverse {
		codes = append(codes, "7")
	}
	if s.Strikethrough {
		codes = append(codes, "9")
	}
	if c := s.Fg.fgCode(); c != "" {
		codes = append(codes, c)
	}
	if c := s.Bg.bgCode(); c != "" {
		codes = append(codes, c)
	}
	return codes
}

// Render wraps text in the style's escape sequence followed by a reset.
// With no attributes set, or with colors disabled, text passes through.
func (s Style) Render(text string) string {
	codes := s.codes()
	if len(codes) == 0 || envconfig.NoColor() {
		return text
	}
	return fmt.Sprintf("\033[%sm%s%s", strings.Join(codes, ";"), text, ansiReset)
}

// Fg colors text with the given foreground color.
func Fg(c Color, text string) string {
	return Style{Fg: c}.Render(text)
}

// Bold renders text bold.
func Bold(text string) string {
	return Style{Bold: true}.Render(text)
}
