// Modul: decoder.go
// Beschreibung: Blockierender Stream-Decoder fuer Tastendruecke sowie die
// One-Shot-Funktion ReadKey mit eigenem Raw-Mode-Guard.

package keyread

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/7blacky7/termkit/envconfig"
)

// Decoder reads logical keypresses from an input stream. It performs no
// terminal mode changes; the caller holds a Guard for the session. The
// decoder is deliberately mode-agnostic: it never applies menu policies
// such as 'w'/'s' navigation aliases, so it stays reusable for any caller.
type Decoder struct {
	f  *os.File // non-nil when reading a real terminal; enables the escape deadline
	br *bufio.Reader
}

// NewDecoder returns a Decoder over a terminal file (normally os.Stdin).
func NewDecoder(f *os.File) *Decoder {
	return &Decoder{f: f, br: bufio.NewReader(f)}
}

// NewDecoderReader returns a Decoder over a plain reader, used for tests
// and buffered replays. Without a terminal there is nothing to wait for, so
// a lone ESC at the end of the stream decodes to Escape immediately.
func NewDecoderReader(r io.Reader) *Decoder {
	return &Decoder{br: bufio.NewReader(r)}
}

// ReadKey blocks until one logical keypress is available and returns its
// normalized form. A lone Escape byte is distinguished from the start of a
// multi-byte sequence by waiting up to envconfig.EscapeTimeout (default
// 50ms) for follow-up bytes. I/O errors are wrapped in ErrReadFailed and
// never retried.
func (d *Decoder) ReadKey() (Key, error) {
	b0, err := d.br.ReadByte()
	if err != nil {
		return Key{}, fmt.Errorf("%w: %w", ErrReadFailed, err)
	}

	seq := make([]byte, 1, 8)
	seq[0] = b0

	switch {
	case b0 == charEsc:
		seq = d.collectEscape(seq)
	case extendedPrefix(b0):
		if b1, ok := d.nextByte(); ok {
			seq = append(seq, b1)
		}
	case b0 >= utf8.RuneSelf:
		// UTF-8-Fortsetzungsbytes eines Mehrbyte-Zeichens einsammeln
		for len(seq) < utf8.UTFMax && !utf8.FullRune(seq) {
			b, ok := d.nextByte()
			if !ok {
				break
			}
			seq = append(seq, b)
		}
	}

	return decodeKey(seq), nil
}

// collectEscape liest die restlichen Bytes einer Escape-Sequenz. Kommt
// innerhalb der Deadline nichts nach, war es ein einzelnes ESC.
func (d *Decoder) collectEscape(seq []byte) []byte {
	b1, ok := d.nextByte()
	if !ok {
		return seq
	}
	seq = append(seq, b1)

	switch b1 {
	case '[':
		for len(seq) < cap(seq) {
			b, ok := d.nextByte()
			if !ok {
				break
			}
			seq = append(seq, b)
			// CSI-Sequenzen enden mit einem Byte aus 0x40..0x7E
			if b >= 0x40 && b <= 0x7E {
				break
			}
		}
	case 'O':
		// SS3-Sequenzen (Application-Mode-Pfeiltasten) sind genau ein
		// Byte lang
		if b, ok := d.nextByte(); ok {
			seq = append(seq, b)
		}
	}
	return seq
}

// nextByte liefert ein weiteres Byte derselben Tastensequenz: erst aus dem
// Puffer, sonst per Nachlesen mit Deadline vom Terminal.
func (d *Decoder) nextByte() (byte, bool) {
	if d.br.Buffered() > 0 {
		b, err := d.br.ReadByte()
		return b, err == nil
	}
	if d.f == nil {
		return 0, false
	}
	var tmp [1]byte
	if waitBytes(d.f, tmp[:], envconfig.EscapeTimeout()) == 0 {
		return 0, false
	}
	return tmp[0], true
}

// ReadKey reads one keypress from stdin, switching the terminal into raw
// mode for the duration of the read. Inside an interactive session use a
// Decoder with the session's Guard instead. Returns ErrNotTerminal without
// blocking when stdin is not interactive.
func ReadKey() (Key, error) {
	g, err := AcquireRawMode()
	if err != nil {
		return Key{}, err
	}
	defer g.Release()

	return NewDecoder(os.Stdin).ReadKey()
}
