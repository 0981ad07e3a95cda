// Package config loads difftw's optional YAML configuration file.
//
// The file lives at $DIFFTW_CONFIG, or difftw/config.yaml under the user
// config directory (os.UserConfigDir). A missing file is not an error.
//
//	# ~/.config/difftw/config.yaml
//	color: never       # always | auto | never
//	difft: /opt/difftastic/bin/difft
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jongio/difftw/colorpolicy"
	"gopkg.in/yaml.v3"
)

// EnvConfig points at an alternative configuration file.
const EnvConfig = "DIFFTW_CONFIG"

// Config holds user defaults. Command-line flags and environment variables
// take precedence over every field.
type Config struct {
	Color string `yaml:"color"`
	Difft string `yaml:"difft"`
}

// Error reports an unreadable or invalid configuration file.
type Error struct {
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("config %s: %v", e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Path returns the configuration file location, or empty if none can be
// determined.
func Path(getenv colorpolicy.Getenv) string {
	if getenv != nil {
		if p := getenv(EnvConfig); p != "" {
			return p
		}
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "difftw", "config.yaml")
}

// Load reads the configuration file at path. An empty path or a missing file
// yields a zero Config.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, &Error{Path: path, Err: err}
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, &Error{Path: path, Err: fmt.Errorf("failed to parse: %w", err)}
	}

	if cfg.Color != "" {
		if _, err := colorpolicy.Parse(cfg.Color); err != nil {
			return nil, &Error{Path: path, Err: err}
		}
	}

	return cfg, nil
}
