// Modul: choose_test.go
// Beschreibung: API-Tests fuer Select/MultiSelect auf den
// nicht-interaktiven Pfaden. Interaktive Sessions werden ueber die
// State-Machine- und Render-Tests sowie das CLI abgedeckt.

package choose

import (
	"errors"
	"os"
	"testing"

	"golang.org/x/term"

	"github.com/7blacky7/termkit/keyread"
)

// TestEmptyOptions testet den Konfigurationsfehler vor dem Raw-Mode
func TestEmptyOptions(t *testing.T) {
	if _, err := Select("pick one", nil); !errors.Is(err, ErrEmptyOptions) {
		t.Errorf("Select(nil) err = %v, want ErrEmptyOptions", err)
	}
	if _, err := MultiSelect("pick some", []string{}); !errors.Is(err, ErrEmptyOptions) {
		t.Errorf("MultiSelect(empty) err = %v, want ErrEmptyOptions", err)
	}
}

// TestNotTerminal testet dass eine Session ohne TTY sofort zurueckkehrt
func TestNotTerminal(t *testing.T) {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		t.Skip("stdin is a terminal; pipe test input to run this test")
	}

	done := make(chan error, 1)
	go func() {
		_, err := Select("pick one", []string{"a", "b"})
		done <- err
	}()

	if err := <-done; !errors.Is(err, keyread.ErrNotTerminal) {
		t.Fatalf("Select() err = %v, want keyread.ErrNotTerminal", err)
	}
}
