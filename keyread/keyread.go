// Modul: keyread.go
// Beschreibung: Typen und Fehler fuer das plattformuebergreifende Lesen
// einzelner Tastendruecke im Raw-Mode.

// Package keyread reads single keypresses from a terminal in raw mode and
// normalizes them into platform-independent key events.
//
// The package has two layers: a Guard that owns the raw-mode terminal state
// for the lifetime of one interactive session, and a Decoder that turns raw
// input bytes into Key values. ReadKey combines both for one-shot reads.
package keyread

import "errors"

var (
	// ErrNotTerminal is returned when stdin is not an interactive
	// terminal (piped or redirected input). Callers should fall back to
	// non-interactive behavior instead of treating this as fatal.
	ErrNotTerminal = errors.New("stdin is not a terminal")

	// ErrReadFailed wraps an I/O error on the underlying input stream.
	// Reads are not retried; repeated failure usually means the terminal
	// detached.
	ErrReadFailed = errors.New("key read failed")
)

// Kind classifies a decoded keypress.
type Kind int

const (
	KindUnknown Kind = iota
	KindChar
	KindUp
	KindDown
	KindLeft
	KindRight
	KindEnter
	KindSpace
	KindEscape
	KindBackspace
	KindTab
)

// kindNames fuer String() und die CLI-Tabelle
var kindNames = map[Kind]string{
	KindUnknown:   "Unknown",
	KindChar:      "Char",
	KindUp:        "Up",
	KindDown:      "Down",
	KindLeft:      "Left",
	KindRight:     "Right",
	KindEnter:     "Enter",
	KindSpace:     "Space",
	KindEscape:    "Escape",
	KindBackspace: "Backspace",
	KindTab:       "Tab",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Unknown"
}

// Key is one normalized keypress. Rune is set for KindChar. Raw carries the
// undecoded input bytes for KindUnknown so callers can log or ignore them;
// unrecognized sequences are never silently dropped.
type Key struct {
	Kind Kind
	Rune rune
	Raw  []byte
}
