// config.go - Haupt-Konfigurationsfunktionen fuer termkit
//
// Dieses Modul enthaelt:
// - LogLevel: Gibt Log-Level zurueck (TERMKIT_DEBUG)
// - NoColor: Deaktiviert ANSI-Farben (TERMKIT_NO_COLOR)
// - EscapeTimeout: Timeout fuer Escape-Sequenz-Disambiguierung (TERMKIT_ESCAPE_TIMEOUT_MS)
// - SpinnerInterval: Frame-Intervall fuer Spinner (TERMKIT_SPINNER_INTERVAL_MS)
//
// Utility-Funktionen sind ausgelagert:
// - config_utils.go: Getter-Fabriken und AsMap/Values
package envconfig

import (
	"log/slog"
	"time"
)

// Debug meldet, ob TERMKIT_DEBUG gesetzt ist.
var Debug = Bool("TERMKIT_DEBUG")

// NoColor meldet, ob ANSI-Farbausgabe unterdrueckt werden soll.
// NO_COLOR (https://no-color.org) wird ebenfalls respektiert.
func NoColor() bool {
	if Var("NO_COLOR") != "" {
		return true
	}
	return Bool("TERMKIT_NO_COLOR")()
}

// LogLevel gibt das slog-Level abhaengig von TERMKIT_DEBUG zurueck
func LogLevel() slog.Level {
	if Debug() {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// EscapeTimeout is the deadline used to tell a lone Escape keypress apart
// from the first byte of a multi-byte escape sequence. The default of 50ms
// is generous for local terminals and still imperceptible to the user;
// raise it via TERMKIT_ESCAPE_TIMEOUT_MS over slow SSH links.
func EscapeTimeout() time.Duration {
	ms := Uint("TERMKIT_ESCAPE_TIMEOUT_MS", 50)()
	return time.Duration(ms) * time.Millisecond
}

// SpinnerInterval is the delay between spinner animation frames
// (default 75ms, matching the classic /-\| cadence).
func SpinnerInterval() time.Duration {
	ms := Uint("TERMKIT_SPINNER_INTERVAL_MS", 75)()
	return time.Duration(ms) * time.Millisecond
}
