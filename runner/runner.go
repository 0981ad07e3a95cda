// Package runner executes one difftw invocation: it normalizes the
// arguments, decides the color policy, runs difft and rewrites its output.
package runner

import (
	"context"
	"io"
	"os"

	"github.com/jongio/difftw/argutil"
	"github.com/jongio/difftw/cmdutil"
	"github.com/jongio/difftw/colorpolicy"
	"github.com/jongio/difftw/config"
	"github.com/jongio/difftw/logutil"
	"github.com/jongio/difftw/pathutil"
	"github.com/jongio/difftw/transform"
)

// ConfigError marks a problem with user input (flags, environment or the
// configuration file). It is reported before any child process starts.
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string {
	return e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Options configures Run. Nil fields fall back to the process's own
// environment, stdio and terminal state.
type Options struct {
	Args       []string
	Getenv     colorpolicy.Getenv
	Stdin      io.Reader
	Stdout     io.Writer
	Stderr     io.Writer
	IsTerminal func() bool
	// Env is the child environment; nil inherits os.Environ().
	Env []string
}

func (o *Options) defaults() {
	if o.Getenv == nil {
		o.Getenv = os.Getenv
	}
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.IsTerminal == nil {
		o.IsTerminal = colorpolicy.StdoutIsTerminal
	}
}

// Run executes difft with normalized arguments and streams its rewritten
// output to opts.Stdout. The returned code is difft's exit status.
func Run(ctx context.Context, opts Options) (int, error) {
	opts.defaults()
	cfgPath := config.Path(opts.Getenv)
	log := logutil.NewLogger("runner").WithFields("config", cfgPath)

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return 0, &ConfigError{Err: err}
	}

	res, err := argutil.Normalize(opts.Args, opts.Getenv, cfg.Color)
	if err != nil {
		return 0, &ConfigError{Err: err}
	}

	strip := colorpolicy.ShouldStrip(res.Color, opts.IsTerminal)
	log.Debug("resolved color policy",
		"color", res.Color.String(),
		"source", res.ColorSource.String(),
		"strip", strip)

	tool := opts.Getenv(pathutil.EnvTool)
	if tool == "" {
		tool = cfg.Difft
	}
	path, err := pathutil.Locate(tool)
	if err != nil {
		if tool == "" {
			tool = pathutil.DefaultTool
		}
		return 0, &cmdutil.StartError{Name: tool, Err: err}
	}
	log.Debug("starting child", "path", path, "args", res.Args)

	stream := log.WithOperation("stream").WithFields("strip", strip)
	code, err := cmdutil.RunWithLineFilter(ctx, path, res.Args, cmdutil.Options{
		Env:    opts.Env,
		Stdin:  opts.Stdin,
		Stderr: opts.Stderr,
	}, func(stdout io.Reader) error {
		stats, err := transform.StreamStats(stdout, opts.Stdout, strip)
		stream.Debug("stream finished",
			"lines", stats.Lines,
			"context", stats.Context,
			"removed", stats.Removed,
			"added", stats.Added,
			"plain", stats.Plain)
		return err
	})
	if err != nil {
		return 0, err
	}

	log.Debug("child exited", "code", code)
	return code, nil
}
