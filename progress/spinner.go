// Modul: spinner.go
// Beschreibung: Konsolen-Spinner fuer laufende Operationen. Die Frames
// werden in-place auf einer Zeile animiert.

// Package progress provides console animations: an in-place spinner for
// long-running work and a gradual text reveal. Both consume the cursor
// primitives and never scroll the screen.
package progress

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/7blacky7/termkit/cursor"
	"github.com/7blacky7/termkit/envconfig"
)

// SpinnerType waehlt den Frame-Satz der Animation
type SpinnerType int

const (
	Standard SpinnerType = iota
	Dots
	Box
	Flip
)

// Frames returns the animation frames for the spinner type.
func (t SpinnerType) Frames() []string {
	switch t {
	case Dots:
		return []string{".", "..", "...", "....", "...", ".."}
	case Box:
		return []string{"▌", "▀", "▐", "▄"}
	case Flip:
		return []string{"_", "_", "_", "-", "`", "`", "'", "´", "-", "_", "_", "_"}
	default:
		return []string{"/", "-", "\\", "|"}
	}
}

// Spinner animates a frame set on the current line until stopped. Start
// spawns the animation goroutine; Stop joins it and clears the line.
type Spinner struct {
	w        io.Writer
	frames   []string
	interval time.Duration

	mu      sync.Mutex
	done    chan struct{}
	stopped sync.WaitGroup
}

// NewSpinner returns a spinner writing to w. The frame interval comes from
// envconfig.SpinnerInterval (default 75ms).
func NewSpinner(w io.Writer, t SpinnerType) *Spinner {
	return NewSpinnerFrames(w, t.Frames())
}

// NewSpinnerFrames returns a spinner with a custom frame set.
func NewSpinnerFrames(w io.Writer, frames []string) *Spinner {
	if len(frames) == 0 {
		frames = Standard.Frames()
	}
	return &Spinner{
		w:        w,
		frames:   frames,
		interval: envconfig.SpinnerInterval(),
	}
}

// Start beginnt die Animation. Ein zweiter Start ohne Stop ist ein No-op.
func (s *Spinner) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.done != nil {
		return
	}
	s.done = make(chan struct{})
	s.stopped.Add(1)

	go func(done chan struct{}) {
		defer s.stopped.Done()
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		i := 0
		for {
			cursor.ClearLineF(s.w)
			fmt.Fprint(s.w, s.frames[i])
			i = (i + 1) % len(s.frames)

			select {
			case <-done:
				cursor.ClearLineF(s.w)
				return
			case <-ticker.C:
			}
		}
	}(s.done)
}

// Stop beendet die Animation, wartet auf die Goroutine und loescht die
// Zeile. Stop ist idempotent.
func (s *Spinner) Stop() {
	s.mu.Lock()
	done := s.done
	s.done = nil
	s.mu.Unlock()

	if done == nil {
		return
	}
	close(done)
	s.stopped.Wait()
}

// Spin blocks while animating the spinner for the given duration.
func Spin(w io.Writer, t SpinnerType, d time.Duration) {
	s := NewSpinner(w, t)
	s.Start()
	time.Sleep(d)
	s.Stop()
}
