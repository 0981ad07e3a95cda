// Command difftw runs difft and rewrites its inline output into a
// unified-diff style with +/- markers.
package main

import (
	"os"
)

func main() {
	os.Exit(execute(os.Args[1:]))
}
