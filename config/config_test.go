package config

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/jongio/difftw/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	return testutil.WriteFile(t, t.TempDir(), "config.yaml", content)
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, "color: never\ndifft: /opt/difft\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "never", cfg.Color)
	assert.Equal(t, "/opt/difft", cfg.Difft)
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)
}

func TestLoadInvalidColor(t *testing.T) {
	path := writeConfig(t, "color: sometimes\n")

	_, err := Load(path)
	var cfgErr *Error
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, path, cfgErr.Path)
	assert.Contains(t, err.Error(), "sometimes")
}

func TestLoadMalformed(t *testing.T) {
	path := writeConfig(t, "color: [unterminated\n")

	_, err := Load(path)
	var cfgErr *Error
	require.True(t, errors.As(err, &cfgErr))
	assert.Contains(t, err.Error(), "failed to parse")
}

func TestPath(t *testing.T) {
	env := testutil.Getenv(map[string]string{EnvConfig: "/tmp/custom.yaml"})
	assert.Equal(t, "/tmp/custom.yaml", Path(env))

	p := Path(testutil.Getenv(nil))
	if p != "" {
		assert.Equal(t, filepath.Join("difftw", "config.yaml"), filepath.Join(filepath.Base(filepath.Dir(p)), filepath.Base(p)))
	}
}
