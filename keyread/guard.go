// Modul: guard.go
// Beschreibung: Terminal-Mode-Guard. Schaltet das Terminal in den Raw-Mode
// und garantiert die Wiederherstellung des vorherigen Modus auf jedem
// Exit-Pfad, inklusive SIGINT/SIGTERM.

package keyread

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"golang.org/x/term"
)

// Guard owns the terminal mode snapshot taken before entering raw mode.
// It is created by AcquireRawMode and must be released (usually via defer)
// on every exit path. At most one Guard may be active per process, since
// raw mode is a property of the terminal device itself; running two
// interactive sessions on the same terminal concurrently is a caller error
// and is not guarded against with locking.
type Guard struct {
	fd   int
	old  *term.State
	sig  chan os.Signal
	done chan struct{}
	once sync.Once
}

// AcquireRawMode switches stdin to raw, non-canonical, no-echo mode and
// returns a Guard holding the prior state. It fails with ErrNotTerminal
// before touching any terminal state when stdin is not interactive, so
// non-interactive callers never block and never end up half-configured.
//
// While the Guard is active, SIGINT and SIGTERM restore the terminal before
// the signal takes its default effect.
func AcquireRawMode() (*Guard, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil, ErrNotTerminal
	}

	old, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("enter raw mode: %w", err)
	}

	g := &Guard{
		fd:   fd,
		old:  old,
		sig:  make(chan os.Signal, 1),
		done: make(chan struct{}),
	}

	signal.Notify(g.sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		select {
		case s := <-g.sig:
			g.Release()
			// Signal erneut ausloesen, damit das Default-Verhalten greift
			if p, err := os.FindProcess(os.Getpid()); err == nil {
				p.Signal(s) //nolint:errcheck
			}
		case <-g.done:
		}
	}()

	return g, nil
}

// Release restores the terminal mode captured at acquisition. It is
// idempotent; calling it more than once is safe.
func (g *Guard) Release() {
	g.once.Do(func() {
		close(g.done)
		signal.Stop(g.sig)
		//nolint:errcheck // Best-effort restore; nothing useful to do on failure.
		term.Restore(g.fd, g.old)
	})
}
