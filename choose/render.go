// Modul: render.go
// Beschreibung: Zeichnet den Auswahl-Zustand in-place ins Terminal.
// Jede Options-Zeile wird geloescht und neu geschrieben; es wird nie
// ueber die Liste hinaus gescrollt.

package choose

import (
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"

	"github.com/7blacky7/termkit/cursor"
	"github.com/7blacky7/termkit/styled"
)

// render repaints exactly the lines occupied by the option list and
// returns the number of lines written. Every line is cleared before the
// rewrite so residual glyphs from a previous, wider render never survive.
// Lines are terminated with \r\n (the terminal is in raw mode, so \n alone
// would not return the carriage).
func render(w io.Writer, s *State, width int) int {
	for i, label := range s.options {
		cursor.ClearLineF(w)
		fmt.Fprintf(w, "%s\r\n", renderLine(s, i, label, width))
	}
	return len(s.options)
}

// renderLine baut eine einzelne Options-Zeile mit Cursor-Markierung und,
// im Multi-Modus, einer Checkbox
func renderLine(s *State, i int, label string, width int) string {
	onCursor := i == s.cursor

	marker := "  "
	if onCursor {
		marker = styled.Fg(styled.Cyan, " ›")
	}

	var body string
	switch s.mode {
	case Multi:
		box := "[ ]"
		if s.checked[i] {
			box = "[x]"
		}
		body = box + " " + truncate(label, width-7)
		switch {
		case s.checked[i]:
			body = styled.Fg(styled.Green, body)
		case onCursor:
			body = styled.Fg(styled.Cyan, body)
		}
	default:
		body = truncate(label, width-3)
		if onCursor {
			body = styled.Fg(styled.Cyan, body)
		}
	}

	return marker + " " + body
}

// truncate kuerzt das Label auf die Terminal-Breite, damit keine Zeile
// umbricht (ein Umbruch wuerde die In-Place-Neuzeichnung verschieben).
// Auch auf extrem schmalen Terminals wird gekuerzt, nie durchgereicht.
func truncate(label string, max int) string {
	if max < 1 {
		max = 1
	}
	if runewidth.StringWidth(label) <= max {
		return label
	}
	return runewidth.Truncate(label, max, "…")
}

// clearList entfernt die gezeichnete Liste wieder vom Bildschirm
func clearList(w io.Writer, lines int) {
	if lines > 0 {
		cursor.UpF(w, lines)
		cursor.ClearDownF(w)
	}
}
