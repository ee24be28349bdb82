// Modul: confirm.go
// Beschreibung: Ja/Nein-Bestaetigung mit einem einzelnen Tastendruck im
// Raw-Mode.

package input

import (
	"fmt"
	"os"

	"github.com/7blacky7/termkit/keyread"
	"github.com/7blacky7/termkit/styled"
)

// Confirm asks a yes/no question answered with a single keypress:
// 'y' or Enter confirm, 'n' or Escape decline. Returns
// keyread.ErrNotTerminal without blocking when stdin is not interactive.
func Confirm(label string) (bool, error) {
	guard, err := keyread.AcquireRawMode()
	if err != nil {
		return false, err
	}
	defer guard.Release()

	fmt.Fprintf(os.Stdout, "%s %s (%s/n) ", styled.Fg(styled.Red, "?"), label, styled.Bold("y"))

	answer, err := confirmLoop(keyread.NewDecoder(os.Stdin))
	if err != nil {
		return false, err
	}

	if answer {
		fmt.Fprint(os.Stdout, "yes\r\n")
	} else {
		fmt.Fprint(os.Stdout, "no\r\n")
	}
	return answer, nil
}

// confirmLoop liest Tasten bis eine gueltige Antwort kommt
func confirmLoop(dec *keyread.Decoder) (bool, error) {
	for {
		key, err := dec.ReadKey()
		if err != nil {
			return false, err
		}

		switch key.Kind {
		case keyread.KindEnter:
			return true, nil
		case keyread.KindEscape:
			return false, nil
		case keyread.KindChar:
			switch key.Rune {
			case 'y', 'Y':
				return true, nil
			case 'n', 'N':
				return false, nil
			}
		}
	}
}
