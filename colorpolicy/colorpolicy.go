// Package colorpolicy decides whether difftw keeps or strips color in its own
// output. The child process is always asked for color; this policy only
// governs what difftw emits after rewriting.
package colorpolicy

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/term"
)

// EnvColor overrides the color policy when --color is not given.
const EnvColor = "DIFFTW_COLOR"

// Setting is the wrapper's output color policy.
type Setting int

const (
	// Auto strips color when stdout is not a terminal.
	Auto Setting = iota
	// Always keeps color.
	Always
	// Never strips color.
	Never
)

var _ pflag.Value = (*Setting)(nil)

// Values lists the accepted spellings in display order.
var Values = []string{"always", "auto", "never"}

// Parse converts a user-supplied value into a Setting.
func Parse(s string) (Setting, error) {
	switch s {
	case "always":
		return Always, nil
	case "auto":
		return Auto, nil
	case "never":
		return Never, nil
	default:
		return Auto, fmt.Errorf("invalid color value %q (valid options: %s)", s, strings.Join(Values, ", "))
	}
}

func (s Setting) String() string {
	switch s {
	case Always:
		return "always"
	case Never:
		return "never"
	default:
		return "auto"
	}
}

// Set implements pflag.Value.
func (s *Setting) Set(v string) error {
	parsed, err := Parse(v)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Type implements pflag.Value.
func (s *Setting) Type() string {
	return "when"
}

// Source records where a Setting came from.
type Source int

const (
	SourceDefault Source = iota
	SourceConfig
	SourceEnv
	SourceFlag
)

func (s Source) String() string {
	switch s {
	case SourceConfig:
		return "config"
	case SourceEnv:
		return "env"
	case SourceFlag:
		return "flag"
	default:
		return "default"
	}
}

// Getenv looks up an environment variable. os.Getenv satisfies it.
type Getenv func(key string) string

// Resolve applies the precedence flag > DIFFTW_COLOR > configured > Auto.
// flag is nil when --color was not on the command line. Empty env and
// configured values count as unset.
func Resolve(flag *string, getenv Getenv, configured string) (Setting, Source, error) {
	if flag != nil {
		s, err := Parse(*flag)
		if err != nil {
			return Auto, SourceFlag, fmt.Errorf("--color: %w", err)
		}
		return s, SourceFlag, nil
	}

	if getenv != nil {
		if v := getenv(EnvColor); v != "" {
			s, err := Parse(v)
			if err != nil {
				return Auto, SourceEnv, fmt.Errorf("%s: %w", EnvColor, err)
			}
			return s, SourceEnv, nil
		}
	}

	if configured != "" {
		s, err := Parse(configured)
		if err != nil {
			return Auto, SourceConfig, fmt.Errorf("config color: %w", err)
		}
		return s, SourceConfig, nil
	}

	return Auto, SourceDefault, nil
}

// ShouldStrip reports whether escape sequences must be removed from output.
// isTerminal is consulted only for Auto.
func ShouldStrip(s Setting, isTerminal func() bool) bool {
	switch s {
	case Always:
		return false
	case Never:
		return true
	default:
		return isTerminal == nil || !isTerminal()
	}
}

// StdoutIsTerminal reports whether the process's stdout is a terminal.
func StdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
