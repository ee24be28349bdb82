// Modul: state.go
// Beschreibung: State-Machine der Auswahl-Session. Verwaltet Cursor,
// Checked-Menge und Status und wendet dekodierte Key-Events an.

package choose

import (
	"github.com/emirpasic/gods/v2/lists/arraylist"

	"github.com/7blacky7/termkit/keyread"
)

// State is the selection state machine for one session: the option labels
// (immutable for the session), the cursor position, and for multi-select
// the set of checked indices plus their toggle order. The cursor index is
// always valid while options are non-empty.
type State struct {
	options    []string
	cursor     int
	checked    map[int]bool
	checkOrder *arraylist.List[int]
	mode       Mode
	status     Status
	allowEmpty bool
}

// newState erstellt einen frischen Session-Zustand
func newState(options []string, mode Mode, opts ...Option) *State {
	s := &State{
		options:    options,
		checked:    make(map[int]bool),
		checkOrder: arraylist.New[int](),
		mode:       mode,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Status gibt den aktuellen Session-Status zurueck
func (s *State) Status() Status {
	return s.status
}

// Cursor gibt die aktuelle Cursor-Position zurueck
func (s *State) Cursor() int {
	return s.cursor
}

// Checked reports whether option i is checked.
func (s *State) Checked(i int) bool {
	return s.checked[i]
}

// Result returns the confirmed selection: the cursor index for single
// select, the checked indices in toggle order for multi-select.
func (s *State) Result() []int {
	if s.mode == Single {
		return []int{s.cursor}
	}
	return s.checkOrder.Values()
}

// Apply fuehrt genau einen Zustandsuebergang fuer ein Key-Event aus und
// meldet, ob sich der sichtbare Zustand geaendert hat (steuert das Redraw;
// No-op-Events loesen kein Neuzeichnen aus).
func (s *State) Apply(k keyread.Key) bool {
	if s.status != Active {
		return false
	}

	switch resolveAlias(k) {
	case keyread.KindUp:
		return s.move(-1)
	case keyread.KindDown:
		return s.move(1)
	case keyread.KindSpace:
		if s.mode == Multi {
			s.toggle(s.cursor)
			return true
		}
	case keyread.KindEnter:
		if s.mode == Multi && !s.allowEmpty && s.checkOrder.Size() == 0 {
			// Leere Bestaetigung ist per Policy nicht erlaubt
			return false
		}
		s.status = Confirmed
	case keyread.KindEscape:
		s.status = Cancelled
	}
	return false
}

// move verschiebt den Cursor mit Wrap-Around: die Liste hat keine Kanten,
// was schnelles Navigieren in langen Listen erlaubt
func (s *State) move(delta int) bool {
	n := len(s.options)
	next := ((s.cursor+delta)%n + n) % n
	if next == s.cursor {
		return false
	}
	s.cursor = next
	return true
}

// toggle kehrt die Zugehoerigkeit von Index i zur Checked-Menge um
func (s *State) toggle(i int) {
	if s.checked[i] {
		delete(s.checked, i)
		if pos := s.checkOrder.IndexOf(i); pos >= 0 {
			s.checkOrder.Remove(pos)
		}
		return
	}
	s.checked[i] = true
	s.checkOrder.Add(i)
}

// resolveAlias maps 'w'/'s' onto the arrow kinds. The alias is a menu
// policy, not a decoding rule, so it lives here and not in keyread.
func resolveAlias(k keyread.Key) keyread.Kind {
	if k.Kind == keyread.KindChar {
		switch k.Rune {
		case 'w', 'W':
			return keyread.KindUp
		case 's', 'S':
			return keyread.KindDown
		}
	}
	return k.Kind
}
