// Modul: cursor.go
// Beschreibung: Zustandslose ANSI-Escape-Primitiven fuer Cursor-Bewegung
// und Zeilen-Loeschung. Alle Funktionen schreiben direkt, ohne Puffer-Zustand.

// Package cursor emits ANSI escape sequences for cursor movement and
// line clearing. Every function has an io.Writer variant (F-suffix) and a
// package-level variant writing to stdout.
package cursor

import (
	"fmt"
	"io"
	"os"
)

// ANSI escape sequences for cursor control.
const (
	ansiHideCursor = "\033[?25l"
	ansiShowCursor = "\033[?25h"
	ansiClearLine  = "\r\033[2K"
	ansiClearDown  = "\033[J"
)

// UpF moves the cursor up by n lines.
func UpF(w io.Writer, n int) {
	if n > 0 {
		fmt.Fprintf(w, "\033[%dA", n)
	}
}

// DownF moves the cursor down by n lines.
func DownF(w io.Writer, n int) {
	if n > 0 {
		fmt.Fprintf(w, "\033[%dB", n)
	}
}

// ForwardF moves the cursor right by n columns.
func ForwardF(w io.Writer, n int) {
	if n > 0 {
		fmt.Fprintf(w, "\033[%dC", n)
	}
}

// BackF moves the cursor left by n columns.
func BackF(w io.Writer, n int) {
	if n > 0 {
		fmt.Fprintf(w, "\033[%dD", n)
	}
}

// ToF moves the cursor to column x, row y (both zero-based).
func ToF(w io.Writer, x, y int) {
	fmt.Fprintf(w, "\033[%d;%dH", y+1, x+1)
}

// ClearLineF erases the current line and returns the cursor to column 0.
func ClearLineF(w io.Writer) {
	fmt.Fprint(w, ansiClearLine)
}

// ClearDownF erases from the cursor to the end of the screen.
func ClearDownF(w io.Writer) {
	fmt.Fprint(w, ansiClearDown)
}

// HideF hides the terminal cursor.
func HideF(w io.Writer) {
	fmt.Fprint(w, ansiHideCursor)
}

// ShowF shows the terminal cursor.
func ShowF(w io.Writer) {
	fmt.Fprint(w, ansiShowCursor)
}

// Stdout-Varianten

func Up(n int)      { UpF(os.Stdout, n) }
func Down(n int)    { DownF(os.Stdout, n) }
func Forward(n int) { ForwardF(os.Stdout, n) }
func Back(n int)    { BackF(os.Stdout, n) }
func To(x, y int)   { ToF(os.Stdout, x, y) }
func ClearLine()    { ClearLineF(os.Stdout) }
func ClearDown()    { ClearDownF(os.Stdout) }
func Hide()         { HideF(os.Stdout) }
func Show()         { ShowF(os.Stdout) }

// Flush syncs stdout. Raw-mode output is unbuffered on POSIX, so this is
// only needed where the host program wrapped stdout in its own buffering.
func Flush() {
	os.Stdout.Sync() //nolint:errcheck
}
