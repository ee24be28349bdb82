// Modul: reveal.go
// Beschreibung: Gibt einen Text Zeichen fuer Zeichen aus (Schreibmaschinen-
// Effekt).

package progress

import (
	"fmt"
	"io"
	"time"
)

// Reveal prints text one rune at a time with the given delay between
// runes. Multi-byte runes are written whole, never split.
func Reveal(w io.Writer, text string, every time.Duration) {
	for _, r := range text {
		fmt.Fprint(w, string(r))
		if every > 0 {
			time.Sleep(every)
		}
	}
}
