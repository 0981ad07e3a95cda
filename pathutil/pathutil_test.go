// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package pathutil

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func writeExecutable(t *testing.T, dir, name string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
		t.Fatalf("failed to write executable: %v", err)
	}
	return path
}

func TestFindToolInPath(t *testing.T) {
	dir := t.TempDir()
	want := writeExecutable(t, dir, "difft-fake")
	t.Setenv("PATH", dir)

	if got := FindToolInPath("difft-fake"); got != want {
		t.Errorf("FindToolInPath() = %q, want %q", got, want)
	}
	if got := FindToolInPath("nonexistent-tool-xyz-12345"); got != "" {
		t.Errorf("FindToolInPath(nonexistent) = %q, want empty", got)
	}
	if got := FindToolInPath(""); got != "" {
		t.Errorf("FindToolInPath(\"\") = %q, want empty", got)
	}
}

func TestSearchToolInSystemPathCargo(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	cargoBin := filepath.Join(home, ".cargo", "bin")
	if err := os.MkdirAll(cargoBin, 0o755); err != nil {
		t.Fatal(err)
	}
	want := writeExecutable(t, cargoBin, "difft-cargo-only")

	if got := SearchToolInSystemPath("difft-cargo-only"); got != want {
		t.Errorf("SearchToolInSystemPath() = %q, want %q", got, want)
	}
}

func TestLocate(t *testing.T) {
	dir := t.TempDir()
	want := writeExecutable(t, dir, "difft-on-path")
	t.Setenv("PATH", dir)

	got, err := Locate("difft-on-path")
	if err != nil {
		t.Fatalf("Locate() error = %v", err)
	}
	if got != want {
		t.Errorf("Locate() = %q, want %q", got, want)
	}

	got, err = Locate(want)
	if err != nil || got != want {
		t.Errorf("Locate(%q) = %q, %v; want the path back", want, got, err)
	}
}

func TestLocateNotFound(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	t.Setenv("PATH", t.TempDir())

	_, err := Locate("nonexistent-tool-xyz-12345")
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("Locate() error = %v, want *NotFoundError", err)
	}

	_, err = Locate(filepath.Join(home, "missing", "difft"))
	if !errors.As(err, &nf) {
		t.Fatalf("Locate(missing path) error = %v, want *NotFoundError", err)
	}
}

func TestGetInstallSuggestion(t *testing.T) {
	if got := GetInstallSuggestion("difft"); !strings.Contains(got, "difftastic") {
		t.Errorf("GetInstallSuggestion(difft) = %q, want mention of difftastic", got)
	}
	if got := GetInstallSuggestion("/opt/bin/difft"); !strings.Contains(got, "difftastic") {
		t.Errorf("GetInstallSuggestion(path) = %q, want mention of difftastic", got)
	}
	if got := GetInstallSuggestion("unknown-tool"); got != "Please install unknown-tool" {
		t.Errorf("GetInstallSuggestion(unknown) = %q", got)
	}
}

func TestNotFoundErrorMessage(t *testing.T) {
	err := &NotFoundError{Tool: "difft"}
	if err.Error() != "difft not found in PATH" {
		t.Errorf("Error() = %q", err.Error())
	}
}
