// Package cliout holds the terminal escape sequences difftw recognizes in
// difft output, the ANSI stripping used when color is turned off, and the
// one-line diagnostics difftw writes to stderr.
//
// # Escape Sequences
//
// difft, run with --color=always --display=inline, starts every numbered line
// with one of three sequences right after the leading whitespace:
//   - Dim ("\x1b[2m"): unchanged context lines
//   - BrightRedBold ("\x1b[91;1m"): lines removed from the old file
//   - BrightGreenBold ("\x1b[92;1m"): lines added in the new file
//
// # Stripping
//
// Strip removes every escape sequence from a string and keeps the rest byte
// for byte:
//
//	cliout.Strip("\x1b[91;1m-3  old text") // "-3  old text"
//
// # Diagnostics
//
//	d := cliout.NewDiagnostics(os.Stderr)
//	d.Error("difftw only supports --display=inline")
//
// Diagnostics are colored only when the destination is a terminal.
package cliout
