// Modul: choose.go
// Beschreibung: Oeffentliche API des Auswahl-Menues. Komponiert Guard,
// Key-Decoder, State-Machine und Renderer zu einer blockierenden Session.

// Package choose renders an interactive list-selection menu on the
// terminal: Select picks one option, MultiSelect toggles any number of
// options with the space bar.
//
// Navigation: arrow keys (or 'w'/'s'), Enter confirms, Escape cancels.
// A session owns the calling goroutine for its whole duration and must not
// run concurrently with another interactive session on the same terminal.
package choose

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/7blacky7/termkit/cursor"
	"github.com/7blacky7/termkit/keyread"
	"github.com/7blacky7/termkit/styled"
)

// Select prompts the user to pick one option and returns its index.
// Returns ErrEmptyOptions for an empty option list, ErrCancelled when the
// user presses Escape, and keyread.ErrNotTerminal without blocking when
// stdin is not interactive.
func Select(prompt string, options []string) (int, error) {
	result, err := run(prompt, options, Single)
	if err != nil {
		return 0, err
	}
	return result[0], nil
}

// MultiSelect prompts the user to check any number of options and returns
// the checked indices in toggle order. Confirming with nothing checked is
// ignored unless WithAllowEmpty is given. Error behavior matches Select.
func MultiSelect(prompt string, options []string, opts ...Option) ([]int, error) {
	return run(prompt, options, Multi, opts...)
}

// run fuehrt eine komplette Auswahl-Session aus: Prompt ausgeben,
// Raw-Mode aktivieren, Zeichnen/Lesen/Uebergang-Schleife, Terminal
// wiederherstellen
func run(prompt string, options []string, mode Mode, opts ...Option) ([]int, error) {
	if len(options) == 0 {
		return nil, ErrEmptyOptions
	}

	// Vor dem Raw-Mode pruefen, damit nicht-interaktive Aufrufer sofort
	// zurueckkehren statt auf Eingabe zu warten
	guard, err := keyread.AcquireRawMode()
	if err != nil {
		return nil, err
	}
	defer guard.Release()

	out := os.Stdout
	fmt.Fprintf(out, "%s %s %s\r\n", styled.Fg(styled.Red, "?"), prompt, styled.Fg(styled.BrightBlack, "›"))

	cursor.HideF(out)
	defer cursor.ShowF(out)

	width := 80
	if w, _, err := term.GetSize(int(out.Fd())); err == nil && w > 0 {
		width = w
	}

	state := newState(options, mode, opts...)
	lines := render(out, state, width)
	defer func() { clearList(out, lines) }()

	dec := keyread.NewDecoder(os.Stdin)
	for {
		key, err := dec.ReadKey()
		if err != nil {
			return nil, err
		}

		changed := state.Apply(key)

		switch state.Status() {
		case Confirmed:
			return state.Result(), nil
		case Cancelled:
			return nil, ErrCancelled
		}

		if changed {
			cursor.UpF(out, lines)
			lines = render(out, state, width)
		}
	}
}
