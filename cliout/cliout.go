package cliout

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"golang.org/x/term"
)

// ANSI sequences emitted by difft in front of line numbers.
const (
	Reset           = "\x1b[0m"
	Dim             = "\x1b[2m"
	BrightRedBold   = "\x1b[91;1m"
	BrightGreenBold = "\x1b[92;1m"
)

// Strip removes ANSI escape sequences from s. CSI sequences (ESC '[' up to
// the final letter) are removed whole; an unterminated CSI runs to the end
// of s. Any other escape drops only ESC and the byte after it, so
// character-set selections such as ESC ( B leave their last byte and OSC
// strings (hyperlinks, titles) leave their payload.
func Strip(s string) string {
	var out bytes.Buffer
	out.Grow(len(s))
	_, _ = colorable.NewNonColorable(&out).Write([]byte(s))
	return out.String()
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Diagnostics writes one-line user-facing messages.
type Diagnostics struct {
	out io.Writer
	red *color.Color
}

// NewDiagnostics creates a Diagnostics writing to w. Color is used only when
// w is a terminal.
func NewDiagnostics(w io.Writer) *Diagnostics {
	red := color.New(color.FgRed)
	if IsTerminal(w) {
		red.EnableColor()
	} else {
		red.DisableColor()
	}
	return &Diagnostics{out: w, red: red}
}

// Plain disables coloring regardless of the destination.
func (d *Diagnostics) Plain() *Diagnostics {
	d.red.DisableColor()
	return d
}

// Error prints a one-line error message.
func (d *Diagnostics) Error(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	_, _ = d.red.Fprintln(d.out, msg)
}

// Hint prints a follow-up line without color.
func (d *Diagnostics) Hint(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(d.out, format+"\n", args...)
}
