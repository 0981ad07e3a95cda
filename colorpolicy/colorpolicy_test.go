package colorpolicy

import (
	"testing"

	"github.com/jongio/difftw/testutil"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Setting
		wantErr bool
	}{
		{"always", Always, false},
		{"auto", Auto, false},
		{"never", Never, false},
		{"ALWAYS", Auto, true},
		{"", Auto, true},
		{"yes", Auto, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.in, got.String())
		})
	}
}

func TestSettingAsPflagValue(t *testing.T) {
	var s Setting
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Var(&s, "color", "when to use color")

	require.NoError(t, fs.Parse([]string{"--color=never"}))
	assert.Equal(t, Never, s)

	err := fs.Parse([]string{"--color", "sometimes"})
	assert.Error(t, err)
	assert.Equal(t, "when", s.Type())
}

func TestResolvePrecedence(t *testing.T) {
	tests := []struct {
		name       string
		flag       *string
		env        map[string]string
		configured string
		want       Setting
		wantSource Source
	}{
		{"default", nil, nil, "", Auto, SourceDefault},
		{"config only", nil, nil, "never", Never, SourceConfig},
		{"env beats config", nil, map[string]string{EnvColor: "always"}, "never", Always, SourceEnv},
		{"flag beats env", strPtr("never"), map[string]string{EnvColor: "always"}, "always", Never, SourceFlag},
		{"empty env ignored", nil, map[string]string{EnvColor: ""}, "", Auto, SourceDefault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, source, err := Resolve(tt.flag, testutil.Getenv(tt.env), tt.configured)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantSource, source)
		})
	}
}

func TestResolveInvalid(t *testing.T) {
	_, _, err := Resolve(strPtr("rainbow"), nil, "")
	assert.ErrorContains(t, err, "--color")

	_, _, err = Resolve(nil, testutil.Getenv(map[string]string{EnvColor: "rainbow"}), "")
	assert.ErrorContains(t, err, EnvColor)

	_, _, err = Resolve(nil, nil, "rainbow")
	assert.ErrorContains(t, err, "config")
}

func TestResolveInvalidEnvIgnoredWhenFlagGiven(t *testing.T) {
	got, _, err := Resolve(strPtr("always"), testutil.Getenv(map[string]string{EnvColor: "rainbow"}), "")
	require.NoError(t, err)
	assert.Equal(t, Always, got)
}

func TestShouldStrip(t *testing.T) {
	tty := func() bool { return true }
	pipe := func() bool { return false }

	assert.False(t, ShouldStrip(Always, pipe))
	assert.True(t, ShouldStrip(Never, tty))
	assert.False(t, ShouldStrip(Auto, tty))
	assert.True(t, ShouldStrip(Auto, pipe))
	assert.True(t, ShouldStrip(Auto, nil))
}
