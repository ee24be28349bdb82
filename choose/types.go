// Modul: types.go
// Beschreibung: Typen, Konstanten und Fehler fuer das interaktive
// Auswahl-Menue (Single- und Multi-Select).

package choose

import "errors"

var (
	// ErrEmptyOptions is returned before any terminal state changes when
	// a session is started with zero options. Empty input is a caller
	// configuration error, not a runtime state.
	ErrEmptyOptions = errors.New("no options to select from")

	// ErrCancelled is returned when the user leaves the menu with Escape.
	ErrCancelled = errors.New("cancelled")
)

// Mode unterscheidet Einzel- und Mehrfachauswahl
type Mode int

const (
	Single Mode = iota
	Multi
)

// Status ist der Zustand der Auswahl-Session. Confirmed und Cancelled
// sind terminal: danach finden keine Uebergaenge mehr statt.
type Status int

const (
	Active Status = iota
	Confirmed
	Cancelled
)

// Option configures a selection session.
type Option func(*State)

// WithAllowEmpty permits confirming a multi-select with zero checked
// items. By default Enter is ignored while nothing is checked, keeping
// the session active until at least one item is toggled or the user
// cancels.
func WithAllowEmpty() Option {
	return func(s *State) {
		s.allowEmpty = true
	}
}
