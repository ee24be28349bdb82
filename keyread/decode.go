// Modul: decode.go
// Beschreibung: Zuordnung roher Eingabe-Bytes zu normalisierten Key-Events.
// Die CSI-Tabelle ist portabel (moderne Windows-Terminals liefern ebenfalls
// VT-Sequenzen); Legacy-Extended-Codes werden pro Plattform aufgeloest.

package keyread

import "unicode/utf8"

// Steuer-Bytes
const (
	charInterrupt = 3
	charCtrlH     = 8
	charTab       = 9
	charCtrlJ     = 10
	charEnter     = 13
	charEsc       = 27
	charSpace     = 32
	charBackspace = 127
)

// csiKeys maps the final byte of an `ESC [` (CSI) or `ESC O` (SS3)
// sequence to a key kind. Terminals im Application-Cursor-Mode senden
// Pfeiltasten als SS3 mit denselben Endbytes.
var csiKeys = map[byte]Kind{
	'A': KindUp,
	'B': KindDown,
	'C': KindRight,
	'D': KindLeft,
}

// decodeKey wandelt die Bytes eines logischen Tastendrucks in ein Key um.
// Unbekannte Sequenzen werden nie verworfen, sondern als KindUnknown mit
// den Roh-Bytes zurueckgegeben.
func decodeKey(buf []byte) Key {
	if len(buf) == 0 {
		return Key{Kind: KindUnknown}
	}

	if k, ok := decodeExtended(buf); ok {
		return k
	}

	if buf[0] == charEsc {
		if len(buf) == 1 {
			return Key{Kind: KindEscape}
		}
		if len(buf) >= 3 && (buf[1] == '[' || buf[1] == 'O') {
			if kind, ok := csiKeys[buf[2]]; ok {
				return Key{Kind: kind}
			}
		}
		return Key{Kind: KindUnknown, Raw: rawCopy(buf)}
	}

	switch buf[0] {
	case charEnter, charCtrlJ:
		return Key{Kind: KindEnter}
	case charSpace:
		return Key{Kind: KindSpace}
	case charTab:
		return Key{Kind: KindTab}
	case charBackspace, charCtrlH:
		return Key{Kind: KindBackspace}
	case charInterrupt:
		// Ctrl+C im Raw-Mode wie Escape behandeln (Abbruch-Pfad)
		return Key{Kind: KindEscape}
	}

	if buf[0] < charSpace {
		return Key{Kind: KindUnknown, Raw: rawCopy(buf)}
	}

	r, size := utf8.DecodeRune(buf)
	if r == utf8.RuneError && size <= 1 {
		return Key{Kind: KindUnknown, Raw: rawCopy(buf)}
	}
	return Key{Kind: KindChar, Rune: r}
}

// rawCopy loest die Bytes vom Lese-Puffer, der wiederverwendet wird
func rawCopy(buf []byte) []byte {
	raw := make([]byte, len(buf))
	copy(raw, buf)
	return raw
}
