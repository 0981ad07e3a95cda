// Package pathutil locates the difft executable.
//
// Lookup order for a bare name:
//  1. PATH (exec.LookPath, with .exe appended on Windows)
//  2. Common install directories that are often missing from PATH:
//     ~/.cargo/bin, /usr/local/bin, /opt/homebrew/bin, ~/.local/bin,
//     ~/.nix-profile/bin (scoop and winget shims on Windows)
//
// A name containing a path separator is used as given.
//
// # Example
//
//	path, err := pathutil.Locate(pathutil.DefaultTool)
//	if err != nil {
//	    // err explains how to install difftastic
//	}
package pathutil
