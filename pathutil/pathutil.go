// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package pathutil

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// DefaultTool is the executable difftw wraps.
const DefaultTool = "difft"

// EnvTool overrides the executable to run.
const EnvTool = "DIFFTW_DIFFT"

// NotFoundError reports that a tool could not be located. Callers show
// GetInstallSuggestion(Tool) alongside it.
type NotFoundError struct {
	Tool string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found in PATH", e.Tool)
}

// FindToolInPath searches for a tool executable in the system PATH.
// Returns the full path to the executable if found, empty string otherwise.
func FindToolInPath(toolName string) string {
	if toolName == "" {
		return ""
	}

	searchName := toolName
	if runtime.GOOS == "windows" && !strings.HasSuffix(strings.ToLower(toolName), ".exe") {
		searchName = toolName + ".exe"
	}

	path, err := exec.LookPath(searchName)
	if err != nil {
		return ""
	}

	return path
}

// SearchToolInSystemPath looks in directories where difft is commonly
// installed but which may be missing from PATH, such as ~/.cargo/bin.
func SearchToolInSystemPath(toolName string) string {
	if toolName == "" {
		return ""
	}

	exeName := toolName
	if runtime.GOOS == "windows" && !strings.HasSuffix(strings.ToLower(toolName), ".exe") {
		exeName = toolName + ".exe"
	}

	for _, dir := range systemSearchPaths() {
		fullPath := filepath.Join(dir, exeName)
		if info, err := os.Stat(fullPath); err == nil && !info.IsDir() {
			return fullPath
		}
	}

	return ""
}

func systemSearchPaths() []string {
	homeDir, _ := os.UserHomeDir()

	if runtime.GOOS == "windows" {
		return []string{
			filepath.Join(homeDir, ".cargo", "bin"),
			filepath.Join(os.Getenv("USERPROFILE"), "scoop", "shims"),
			filepath.Join(os.Getenv("LOCALAPPDATA"), "Microsoft", "WinGet", "Links"),
		}
	}

	return []string{
		filepath.Join(homeDir, ".cargo", "bin"),
		"/usr/local/bin",
		"/usr/bin",
		"/bin",
		"/opt/homebrew/bin",
		filepath.Join(homeDir, ".local", "bin"),
		filepath.Join(homeDir, ".nix-profile", "bin"),
	}
}

// Locate resolves tool to an executable path. A name containing a path
// separator is used as-is if it exists; bare names are looked up in PATH
// and then in common install directories.
func Locate(tool string) (string, error) {
	if tool == "" {
		tool = DefaultTool
	}

	if strings.ContainsRune(tool, os.PathSeparator) || strings.ContainsRune(tool, '/') {
		if _, err := os.Stat(tool); err != nil {
			return "", &NotFoundError{Tool: tool}
		}
		return tool, nil
	}

	if path := FindToolInPath(tool); path != "" {
		return path, nil
	}
	if path := SearchToolInSystemPath(tool); path != "" {
		return path, nil
	}

	return "", &NotFoundError{Tool: tool}
}

// GetInstallSuggestion returns a suggestion for how to install a missing tool.
func GetInstallSuggestion(toolName string) string {
	suggestions := map[string]string{
		"difft": "Install difftastic with 'cargo install --locked difftastic' or see https://difftastic.wilfred.me.uk/installation.html",
	}

	if suggestion, ok := suggestions[filepath.Base(toolName)]; ok {
		return suggestion
	}

	return fmt.Sprintf("Please install %s", toolName)
}
