//go:build windows

// Modul: wait_windows.go
// Beschreibung: Windows-Seite des Key-Decoders. Die Console liefert
// Eingaben atomar, daher entfaellt das Sequenz-Nachlesen; Legacy-Konsolen
// melden Sondertasten als Extended-Codes mit 0x00/0xE0-Praefix.

package keyread

import (
	"os"
	"time"
)

// waitBytes: the Windows console delivers key sequences in one read, so
// there is nothing to disambiguate; a lone ESC is already a lone ESC.
func waitBytes(_ *os.File, _ []byte, _ time.Duration) int {
	return 0
}

// extendedKeys maps legacy console scan codes (after a 0x00/0xE0 prefix
// byte) to key kinds.
var extendedKeys = map[byte]Kind{
	'H': KindUp,
	'P': KindDown,
	'M': KindRight,
	'K': KindLeft,
}

// extendedPrefix reports whether b opens a legacy extended-code pair.
func extendedPrefix(b byte) bool {
	return b == 0x00 || b == 0xE0
}

// decodeExtended resolves 0x00/0xE0-prefixed extended codes from legacy
// console input. Modern terminals with VT input enabled send CSI sequences
// instead, which the portable table handles.
func decodeExtended(buf []byte) (Key, bool) {
	if len(buf) < 2 || (buf[0] != 0x00 && buf[0] != 0xE0) {
		return Key{}, false
	}
	if kind, ok := extendedKeys[buf[1]]; ok {
		return Key{Kind: kind}, true
	}
	return Key{Kind: KindUnknown, Raw: rawCopy(buf)}, true
}
