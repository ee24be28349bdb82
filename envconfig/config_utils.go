// config_utils.go - Utility-Funktionen und Export fuer Konfiguration
//
// Dieses Modul enthaelt:
// - Var: Roh-Getter fuer Environment-Variablen
// - Bool: Boolean-Getter (Default: false)
// - Uint: Integer-Getter mit Default-Wert
// - EnvVar: Struktur fuer Environment-Variablen-Info
// - AsMap: Gibt alle Konfigurationen als Map zurueck
// - Values: Gibt alle Konfigurationswerte als String-Map zurueck
package envconfig

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Var liest eine Environment-Variable und trimmt Whitespace und Quotes
func Var(key string) string {
	return strings.Trim(strings.TrimSpace(os.Getenv(key)), "\"'")
}

// Bool gibt eine Funktion zurueck, die einen Bool liest (Default: false)
func Bool(k string) func() bool {
	return func() bool {
		if s := Var(k); s != "" {
			b, err := strconv.ParseBool(s)
			if err != nil {
				return true
			}
			return b
		}
		return false
	}
}

// Uint gibt eine Funktion zurueck, die einen uint mit Default-Wert liest
func Uint(key string, defaultValue uint) func() uint {
	return func() uint {
		if s := Var(key); s != "" {
			if n, err := strconv.ParseUint(s, 10, 64); err != nil {
				slog.Warn("invalid environment variable, using default", "key", key, "value", s, "default", defaultValue)
			} else {
				return uint(n)
			}
		}
		return defaultValue
	}
}

// EnvVar repraesentiert eine Environment-Variable mit Metadaten
type EnvVar struct {
	Name        string
	Value       any
	Description string
}

// AsMap gibt alle Konfigurationen als Map zurueck
// Enthaelt Namen, aktuelle Werte und Beschreibungen
func AsMap() map[string]EnvVar {
	return map[string]EnvVar{
		"TERMKIT_DEBUG":               {"TERMKIT_DEBUG", Debug(), "Show additional debug information (e.g. TERMKIT_DEBUG=1)"},
		"TERMKIT_NO_COLOR":            {"TERMKIT_NO_COLOR", NoColor(), "Disable ANSI color output (NO_COLOR is also honored)"},
		"TERMKIT_ESCAPE_TIMEOUT_MS":   {"TERMKIT_ESCAPE_TIMEOUT_MS", EscapeTimeout(), "Deadline for escape-sequence disambiguation (default 50ms)"},
		"TERMKIT_SPINNER_INTERVAL_MS": {"TERMKIT_SPINNER_INTERVAL_MS", SpinnerInterval(), "Delay between spinner frames (default 75ms)"},
	}
}

// Values gibt alle Konfigurationswerte als String-Map zurueck
func Values() map[string]string {
	vals := make(map[string]string)
	for k, v := range AsMap() {
		vals[k] = fmt.Sprintf("%v", v.Value)
	}
	return vals
}
