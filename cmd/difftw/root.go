package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jongio/difftw/cliout"
	"github.com/jongio/difftw/logutil"
	"github.com/jongio/difftw/pathutil"
	"github.com/jongio/difftw/runner"
	"github.com/jongio/difftw/version"
	"github.com/spf13/cobra"
)

// Exit codes for failures that happen before or outside difft.
const (
	exitConfigError  = 1
	exitRuntimeError = 2
)

// versionFlag prints difftw's own version when it is the only argument.
// Every other argument, including --version, belongs to difft.
const versionFlag = "--difftw-version"

// envNoColor turns off color in difftw's own diagnostics (https://no-color.org).
// The diff output follows the color policy instead.
const envNoColor = "NO_COLOR"

// exitStatus carries the code the process should exit with.
type exitStatus struct {
	code int
}

func (e *exitStatus) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

// newRootCommand builds the root command for one invocation. difftArgs are
// captured here rather than handed to cobra: cobra's command lookup would
// route "__complete" and "completion" to its own handlers before RunE.
func newRootCommand(difftArgs []string, stdout, stderr io.Writer) *cobra.Command {
	info := version.New("difftw")

	cmd := &cobra.Command{
		Use:   "difftw [difft flags] OLD NEW",
		Short: "Run difft and show its inline output with +/- markers",
		Long: `difftw runs difft with --display=inline --color=always and rewrites each line
into a unified-diff style: removed lines get '-', added lines get '+', context
lines get a leading space.

--color=always|auto|never controls difftw's own output (default auto, or
DIFFTW_COLOR). All other arguments are passed to difft unchanged.`,
		Version:               info.Version,
		DisableFlagParsing:    true,
		DisableFlagsInUseLine: true,
		SilenceUsage:          true,
		SilenceErrors:         true,
		Args:                  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(difftArgs) == 1 && difftArgs[0] == versionFlag {
				_, err := fmt.Fprintln(stdout, info.String())
				return err
			}

			logutil.SetupFromEnv(os.Getenv)
			logutil.Debug("starting", "version", info.String())

			code, err := runner.Run(cmd.Context(), runner.Options{
				Args:   difftArgs,
				Stdout: stdout,
				Stderr: stderr,
			})
			if err != nil {
				return err
			}
			if code != 0 {
				return &exitStatus{code: code}
			}
			return nil
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.SetArgs([]string{})
	return cmd
}

// execute runs the root command and maps its outcome to a process exit code.
func execute(args []string) int {
	return run(context.Background(), args, os.Stdout, os.Stderr)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCommand(args, stdout, stderr)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	var status *exitStatus
	if errors.As(err, &status) {
		return status.code
	}

	diag := cliout.NewDiagnostics(stderr)
	if os.Getenv(envNoColor) != "" {
		diag.Plain()
	}
	var cfgErr *runner.ConfigError
	if errors.As(err, &cfgErr) {
		diag.Error("%s", cfgErr.Error())
		return exitConfigError
	}

	logutil.Debug("aborted", "error", err)
	diag.Error("difftw: %v", err)
	var notFound *pathutil.NotFoundError
	if errors.As(err, &notFound) {
		diag.Hint("%s", pathutil.GetInstallSuggestion(notFound.Tool))
	}
	return exitRuntimeError
}
