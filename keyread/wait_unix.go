//go:build !windows

// Modul: wait_unix.go
// Beschreibung: Nicht-blockierendes Nachlesen von Sequenz-Bytes auf POSIX.
// Unterscheidet ein einzelnes ESC von einem Escape-Sequenz-Anfang.

package keyread

import (
	"os"
	"time"

	"golang.org/x/sys/unix"
)

// waitBytes tries to read follow-up bytes into buf within the deadline.
// Returns the number of bytes read, 0 when the deadline expires. The fd is
// switched to non-blocking for the poll and always switched back.
func waitBytes(f *os.File, buf []byte, timeout time.Duration) int {
	fd := int(f.Fd())
	if err := unix.SetNonblock(fd, true); err != nil {
		return 0
	}
	defer unix.SetNonblock(fd, false) //nolint:errcheck

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		n, err := f.Read(buf)
		if n > 0 {
			return n
		}
		if err != nil && !os.IsTimeout(err) {
			return 0
		}
		time.Sleep(2 * time.Millisecond)
	}
	return 0
}

// decodeExtended: Legacy-Extended-Codes existieren nur auf Windows
func decodeExtended([]byte) (Key, bool) {
	return Key{}, false
}

// extendedPrefix: siehe decodeExtended
func extendedPrefix(byte) bool {
	return false
}
