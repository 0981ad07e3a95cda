// Package testutil provides common testing helpers for difftw packages.
//
//	getenv := testutil.Getenv(map[string]string{"DIFFTW_COLOR": "never"})
//	path := testutil.WriteFile(t, t.TempDir(), "config.yaml", "color: auto\n")
//
// All helpers that take a *testing.T call t.Helper().
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// Getenv returns an environment lookup backed by vars, so tests never touch
// the process environment. A nil map yields an empty environment.
func Getenv(vars map[string]string) func(string) string {
	return func(key string) string {
		return vars[key]
	}
}

// WriteFile writes content to dir/name and returns the full path. The test
// fails immediately if the file cannot be written.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("Failed to create directory for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}
