// Package argutil normalizes the argument list forwarded to difft.
//
// difftw only understands difft's inline display, and it must always see
// colored output to classify lines. Normalize validates --display, removes
// --color (its value becomes difftw's own color policy), and prepends the
// flags difft needs:
//
//	res, err := argutil.Normalize([]string{"a.txt", "b.txt"}, os.Getenv, "")
//	// res.Args == ["--color=always", "--display=inline", "a.txt", "b.txt"]
package argutil

import (
	"fmt"
	"strings"

	"github.com/jongio/difftw/colorpolicy"
	"github.com/spf13/pflag"
)

// Forced flags placed in front of the forwarded arguments.
const (
	ForcedColor    = "--color=always"
	DefaultDisplay = "--display=inline"
)

// SupportedDisplay is the only --display value difftw can rewrite.
const SupportedDisplay = "inline"

// FlagError reports an unusable value for a recognized flag.
type FlagError struct {
	Flag    string
	Value   string
	Allowed []string
	Missing bool
	Err     error
}

func (e *FlagError) Error() string {
	if e.Missing {
		return fmt.Sprintf("flag --%s needs an argument", e.Flag)
	}
	if len(e.Allowed) == 1 {
		return fmt.Sprintf("difftw only supports --%s=%s", e.Flag, e.Allowed[0])
	}
	return fmt.Sprintf("difftw only supports --%s=%s (got %q)", e.Flag, strings.Join(e.Allowed, "|"), e.Value)
}

func (e *FlagError) Unwrap() error {
	return e.Err
}

// Result is the outcome of Normalize.
type Result struct {
	// Args is the argument list to pass to difft.
	Args []string
	// Color is difftw's own output policy.
	Color colorpolicy.Setting
	// ColorSource tells where Color was decided.
	ColorSource colorpolicy.Source
}

// Normalize validates args and builds the forwarded argument list plus the
// wrapper's color policy. configuredColor is the color value from the config
// file, or empty.
func Normalize(args []string, getenv colorpolicy.Getenv, configuredColor string) (*Result, error) {
	forwarded, colorFlag, err := Forward(args)
	if err != nil {
		return nil, err
	}

	setting, source, err := colorpolicy.Resolve(colorFlag, getenv, configuredColor)
	if err != nil {
		return nil, err
	}

	return &Result{Args: forwarded, Color: setting, ColorSource: source}, nil
}

// newColorFlags returns a flag set holding difftw's own --color flag. Values
// are fed to it with Set, never parsed from the command line, so difft's
// flags are left alone.
func newColorFlags() (*pflag.FlagSet, *colorpolicy.Setting) {
	var setting colorpolicy.Setting
	fs := pflag.NewFlagSet("difftw", pflag.ContinueOnError)
	fs.Var(&setting, FlagColor, "when to color difftw's output (always|auto|never)")
	return fs, &setting
}

// Forward validates recognized flags and returns the arguments for difft
// together with the last --color value (nil when absent). It does no I/O.
func Forward(args []string) ([]string, *string, error) {
	tokens := Scan(args)
	colorFlags, setting := newColorFlags()

	hasDisplay := false
	kept := make([]string, 0, len(args)+2)

	for _, tok := range tokens {
		if tok.Kind == KindMissingValue {
			return nil, nil, &FlagError{Flag: tok.Name, Missing: true}
		}

		switch {
		case tok.Kind == KindPassthrough:
			kept = append(kept, tok.Raw...)
		case tok.Name == FlagDisplay:
			if tok.Value != SupportedDisplay {
				return nil, nil, &FlagError{Flag: FlagDisplay, Value: tok.Value, Allowed: []string{SupportedDisplay}}
			}
			hasDisplay = true
			kept = append(kept, tok.Raw...)
		case tok.Name == FlagColor:
			if err := colorFlags.Set(FlagColor, tok.Value); err != nil {
				return nil, nil, &FlagError{Flag: FlagColor, Value: tok.Value, Allowed: colorpolicy.Values, Err: err}
			}
		}
	}

	var colorFlag *string
	if colorFlags.Changed(FlagColor) {
		value := setting.String()
		colorFlag = &value
	}

	prefix := []string{ForcedColor}
	if !hasDisplay {
		prefix = append(prefix, DefaultDisplay)
	}
	return append(prefix, kept...), colorFlag, nil
}
