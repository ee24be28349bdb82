// Modul: state_test.go
// Beschreibung: Unit Tests fuer die Auswahl-State-Machine: Wrap-Around,
// Toggle-Verhalten, Bestaetigung, Abbruch und die AllowEmpty-Policy.

package choose

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/7blacky7/termkit/keyread"
)

func key(kind keyread.Kind) keyread.Key {
	return keyread.Key{Kind: kind}
}

func char(r rune) keyread.Key {
	return keyread.Key{Kind: keyread.KindChar, Rune: r}
}

// TestWrapAround testet das Wrap-Around-Gesetz: nach k mal ArrowDown
// steht der Cursor auf k mod n
func TestWrapAround(t *testing.T) {
	for _, n := range []int{1, 2, 3, 5, 8} {
		options := make([]string, n)
		for i := range options {
			options[i] = "option"
		}

		s := newState(options, Single)
		for k := 1; k <= 2*n+3; k++ {
			s.Apply(key(keyread.KindDown))
			if want := k % n; s.Cursor() != want {
				t.Fatalf("n=%d: cursor after %d ArrowDown = %d, want %d", n, k, s.Cursor(), want)
			}
		}
	}
}

// TestWrapAroundUp testet das Wrap-Around nach oben
func TestWrapAroundUp(t *testing.T) {
	s := newState([]string{"a", "b", "c"}, Single)
	s.Apply(key(keyread.KindUp))
	if s.Cursor() != 2 {
		t.Errorf("cursor after ArrowUp from 0 = %d, want 2", s.Cursor())
	}
	s.Apply(key(keyread.KindUp))
	if s.Cursor() != 1 {
		t.Errorf("cursor after second ArrowUp = %d, want 1", s.Cursor())
	}
}

// TestAliases testet die 'w'/'s'-Navigation
func TestAliases(t *testing.T) {
	s := newState([]string{"a", "b", "c"}, Single)
	for _, r := range []rune{'s', 'S'} {
		before := s.Cursor()
		s.Apply(char(r))
		if want := (before + 1) % 3; s.Cursor() != want {
			t.Errorf("cursor after %q = %d, want %d", r, s.Cursor(), want)
		}
	}
	for _, r := range []rune{'w', 'W'} {
		before := s.Cursor()
		s.Apply(char(r))
		if want := (before + 2) % 3; s.Cursor() != want {
			t.Errorf("cursor after %q = %d, want %d", r, s.Cursor(), want)
		}
	}
}

// TestEscapePure testet dass Escape jederzeit Cancelled liefert, ohne die
// Checked-Menge zu veraendern
func TestEscapePure(t *testing.T) {
	s := newState([]string{"a", "b", "c"}, Multi)
	s.Apply(key(keyread.KindSpace))
	s.Apply(key(keyread.KindDown))
	s.Apply(key(keyread.KindSpace))

	s.Apply(key(keyread.KindEscape))
	if s.Status() != Cancelled {
		t.Fatalf("status = %v, want Cancelled", s.Status())
	}
	if !s.Checked(0) || !s.Checked(1) || s.Checked(2) {
		t.Error("Escape mutated the checked set")
	}

	// Terminal: keine weiteren Uebergaenge
	s.Apply(key(keyread.KindDown))
	s.Apply(key(keyread.KindSpace))
	if s.Cursor() != 1 || !s.Checked(1) {
		t.Error("state mutated after Cancelled")
	}
}

// TestSpaceIdempotentPairs testet dass eine gerade Anzahl von Toggles die
// Zugehoerigkeit unveraendert laesst
func TestSpaceIdempotentPairs(t *testing.T) {
	s := newState([]string{"a", "b"}, Multi)
	for i := 0; i < 4; i++ {
		s.Apply(key(keyread.KindSpace))
	}
	if s.Checked(0) {
		t.Error("even number of toggles changed membership")
	}
	s.Apply(key(keyread.KindSpace))
	if !s.Checked(0) {
		t.Error("odd number of toggles did not check the item")
	}
}

// TestSpaceNoopInSingle testet dass Space im Single-Modus nichts tut
func TestSpaceNoopInSingle(t *testing.T) {
	s := newState([]string{"a", "b"}, Single)
	if s.Apply(key(keyread.KindSpace)) {
		t.Error("Space reported a state change in single mode")
	}
	if s.Checked(0) {
		t.Error("Space checked an item in single mode")
	}
}

// TestSingleConfirm testet dass Enter im Single-Modus genau den
// Cursor-Index liefert
func TestSingleConfirm(t *testing.T) {
	s := newState([]string{"A", "B", "C"}, Single)
	s.Apply(key(keyread.KindDown))
	s.Apply(key(keyread.KindDown))
	s.Apply(key(keyread.KindEnter))

	if s.Status() != Confirmed {
		t.Fatalf("status = %v, want Confirmed", s.Status())
	}
	if diff := cmp.Diff([]int{2}, s.Result()); diff != "" {
		t.Errorf("Result() mismatch (-want +got):\n%s", diff)
	}
}

// TestMultiScenario testet das Szenario [Space, Down, Down, Space, Enter]
func TestMultiScenario(t *testing.T) {
	s := newState([]string{"A", "B", "C"}, Multi)
	for _, k := range []keyread.Kind{
		keyread.KindSpace,
		keyread.KindDown,
		keyread.KindDown,
		keyread.KindSpace,
		keyread.KindEnter,
	} {
		s.Apply(key(k))
	}

	if s.Status() != Confirmed {
		t.Fatalf("status = %v, want Confirmed", s.Status())
	}
	if diff := cmp.Diff([]int{0, 2}, s.Result()); diff != "" {
		t.Errorf("Result() mismatch (-want +got):\n%s", diff)
	}
}

// TestEmptyConfirmPolicy testet dass Enter ohne Auswahl ignoriert wird,
// solange AllowEmpty nicht gesetzt ist
func TestEmptyConfirmPolicy(t *testing.T) {
	s := newState([]string{"a", "b"}, Multi)
	s.Apply(key(keyread.KindEnter))
	if s.Status() != Active {
		t.Fatalf("status = %v, want Active (empty confirm must be ignored)", s.Status())
	}

	allowed := newState([]string{"a", "b"}, Multi, WithAllowEmpty())
	allowed.Apply(key(keyread.KindEnter))
	if allowed.Status() != Confirmed {
		t.Fatalf("status = %v, want Confirmed with WithAllowEmpty", allowed.Status())
	}
	if len(allowed.Result()) != 0 {
		t.Errorf("Result() = %v, want empty", allowed.Result())
	}
}

// TestToggleOrder testet dass Result die Toggle-Reihenfolge liefert
func TestToggleOrder(t *testing.T) {
	s := newState([]string{"a", "b", "c"}, Multi)
	s.Apply(key(keyread.KindDown))
	s.Apply(key(keyread.KindSpace)) // check 1
	s.Apply(key(keyread.KindUp))
	s.Apply(key(keyread.KindSpace)) // check 0
	s.Apply(key(keyread.KindDown))
	s.Apply(key(keyread.KindSpace)) // uncheck 1
	s.Apply(key(keyread.KindSpace)) // re-check 1
	s.Apply(key(keyread.KindEnter))

	if diff := cmp.Diff([]int{0, 1}, s.Result()); diff != "" {
		t.Errorf("Result() mismatch (-want +got):\n%s", diff)
	}
}

// TestUnknownIsNoop testet dass unbekannte Events keine Uebergaenge ausloesen
func TestUnknownIsNoop(t *testing.T) {
	s := newState([]string{"a", "b"}, Multi)
	unknown := keyread.Key{Kind: keyread.KindUnknown, Raw: []byte{27, '[', 'Z'}}
	if s.Apply(unknown) {
		t.Error("unknown key reported a state change")
	}
	if s.Status() != Active || s.Cursor() != 0 {
		t.Error("unknown key mutated the state")
	}
	if s.Apply(char('x')) {
		t.Error("plain character reported a state change")
	}
}
