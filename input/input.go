// Modul: input.go
// Beschreibung: Zeilen-orientierte Benutzer-Eingaben mit Prompt-Praefix
// und typisierter Auswertung. Nutzt normales Line-Buffering, kein Raw-Mode.

// Package input prompts the user for line-oriented values: plain strings,
// integers, floats, and single-key yes/no confirmation.
package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/7blacky7/termkit/styled"
)

// Prompter reads prompted values from an input stream. The zero source is
// stdin/stdout via the package-level functions.
type Prompter struct {
	r *bufio.Reader
	w io.Writer
}

// NewPrompter returns a Prompter over the given streams.
func NewPrompter(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{r: bufio.NewReader(r), w: w}
}

var std = NewPrompter(os.Stdin, os.Stdout)

// prompt gibt das Prompt-Praefix im gewohnten Stil aus
func (p *Prompter) prompt(label string) {
	fmt.Fprintf(p.w, "%s %s %s ", styled.Fg(styled.Red, "?"), label, styled.Fg(styled.BrightBlack, "›"))
}

// Line prompts for one line of input and returns it trimmed. An empty
// line is a valid answer.
func (p *Prompter) Line(label string) (string, error) {
	p.prompt(label)
	line, err := p.r.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// Int prompts until the input parses as an integer. An empty line returns
// ok=false without a value.
func (p *Prompter) Int(label string) (value int, ok bool, err error) {
	for {
		line, err := p.Line(label)
		if err != nil {
			return 0, false, err
		}
		if line == "" {
			return 0, false, nil
		}
		if v, err := strconv.Atoi(line); err == nil {
			return v, true, nil
		}
		fmt.Fprintf(p.w, "%s invalid input, expected an integer\n", styled.Fg(styled.Red, "X"))
	}
}

// Float prompts until the input parses as a float. An empty line returns
// ok=false without a value.
func (p *Prompter) Float(label string) (value float64, ok bool, err error) {
	for {
		line, err := p.Line(label)
		if err != nil {
			return 0, false, err
		}
		if line == "" {
			return 0, false, nil
		}
		if v, err := strconv.ParseFloat(line, 64); err == nil {
			return v, true, nil
		}
		fmt.Fprintf(p.w, "%s invalid input, expected a number\n", styled.Fg(styled.Red, "X"))
	}
}

// Line prompts on stdin/stdout. See Prompter.Line.
func Line(label string) (string, error) { return std.Line(label) }

// Int prompts on stdin/stdout. See Prompter.Int.
func Int(label string) (int, bool, error) { return std.Int(label) }

// Float prompts on stdin/stdout. See Prompter.Float.
func Float(label string) (float64, bool, error) { return std.Float(label) }
