// Package transform rewrites difft's inline output into a unified-diff-like
// form. difft colors line numbers dim for context, bright red for removals
// and bright green for additions; each line gets a ' ', '-' or '+' marker
// in front of its number so the output stays readable without color.
package transform

import (
	"strings"
	"unicode"

	"github.com/jongio/difftw/cliout"
)

// Kind is the classification of one line of difft output.
type Kind int

const (
	Plain Kind = iota
	Context
	Removed
	Added
)

func (k Kind) String() string {
	switch k {
	case Context:
		return "context"
	case Removed:
		return "removed"
	case Added:
		return "added"
	default:
		return "plain"
	}
}

// Line is a classified line of difft output, without its terminator.
type Line struct {
	Kind Kind
	// Raw is the line as read.
	Raw string
	// Indent is the leading whitespace of Raw.
	Indent string
	// Rest follows the recognized escape sequence. Empty for Plain and Context.
	Rest string
}

// Classify inspects the first bytes after the leading whitespace.
func Classify(raw string) Line {
	trimmed := strings.TrimLeftFunc(raw, unicode.IsSpace)
	indent := raw[:len(raw)-len(trimmed)]

	switch {
	case strings.HasPrefix(trimmed, cliout.Dim):
		return Line{Kind: Context, Raw: raw, Indent: indent}
	case strings.HasPrefix(trimmed, cliout.BrightRedBold):
		return Line{Kind: Removed, Raw: raw, Indent: indent, Rest: trimmed[len(cliout.BrightRedBold):]}
	case strings.HasPrefix(trimmed, cliout.BrightGreenBold):
		return Line{Kind: Added, Raw: raw, Indent: indent, Rest: trimmed[len(cliout.BrightGreenBold):]}
	default:
		return Line{Kind: Plain, Raw: raw, Indent: indent}
	}
}

// Render produces the rewritten line, without a terminator.
func Render(l Line) string {
	switch l.Kind {
	case Context:
		return " " + l.Raw
	case Removed:
		return l.Indent + cliout.BrightRedBold + "-" + l.Rest
	case Added:
		return cliout.BrightGreenBold + "+" + l.Indent + l.Rest
	default:
		return l.Raw
	}
}

// Process rewrites one line and terminates it with a newline. When strip is
// set, escape sequences are removed from the composed result, so inserted
// markers survive.
func Process(raw string, strip bool) string {
	return emit(Classify(raw), strip)
}

// emit strips before terminating: an unfinished escape at the end of a line
// would otherwise swallow the newline.
func emit(l Line, strip bool) string {
	out := Render(l)
	if strip {
		out = cliout.Strip(out)
	}
	return out + "\n"
}
