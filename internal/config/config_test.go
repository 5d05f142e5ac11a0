package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "avatarforge.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "vrm_in", cfg.Dirs.Input)
	assert.Equal(t, "export_out", cfg.Dirs.Output)
	assert.Equal(t, "vrm_done", cfg.Dirs.Done)
	assert.Equal(t, "vrm_failed", cfg.Dirs.Failed)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, []string{"mtoon", "vrm"}, cfg.Shader.Markers)
	assert.Equal(t, []string{"face", "eyelash", "eye", "hair"}, cfg.Transparency.ClipNames)
	assert.Equal(t, 0.5, cfg.Transparency.AlphaThreshold)
	assert.False(t, cfg.Rig.Disabled)
	assert.Empty(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[dirs]
input = "/drop/in"
output = "/drop/out"

[log]
level = "debug"

[shader]
markers = ["mtoon", "custom_toon"]

[transparency]
clip_names = ["face"]
alpha_threshold = 0.75

[rig]
disabled = true

[history]
path = "/var/lib/avatarforge/history.db"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/drop/in", cfg.Dirs.Input)
	assert.Equal(t, "/drop/out", cfg.Dirs.Output)
	assert.Equal(t, "vrm_done", cfg.Dirs.Done, "unset dirs keep defaults")
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, []string{"mtoon", "custom_toon"}, cfg.Shader.Markers)
	assert.Equal(t, []string{"face"}, cfg.Transparency.ClipNames)
	assert.Equal(t, 0.75, cfg.Transparency.AlphaThreshold)
	assert.True(t, cfg.Rig.Disabled)
	assert.Equal(t, "/var/lib/avatarforge/history.db", cfg.History.Path)
}

func TestLoad_EnvSubstitution(t *testing.T) {
	t.Setenv("AVATARFORGE_TEST_IN", "/env/in")

	path := writeConfig(t, `
[dirs]
input = "${AVATARFORGE_TEST_IN}"
output = "${AVATARFORGE_TEST_UNSET}"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/env/in", cfg.Dirs.Input)
	assert.Equal(t, "${AVATARFORGE_TEST_UNSET}", cfg.Dirs.Output, "unset variables stay literal")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoad_BadTOML(t *testing.T) {
	path := writeConfig(t, "[dirs\ninput=")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.Log.Level = "verbose" },
			wantErr: "log.level",
		},
		{
			name:    "threshold out of range",
			mutate:  func(c *Config) { c.Transparency.AlphaThreshold = 1.5 },
			wantErr: "alpha_threshold",
		},
		{
			name:    "done same as input",
			mutate:  func(c *Config) { c.Dirs.Done = c.Dirs.Input },
			wantErr: "dirs.done",
		},
		{
			name:    "empty marker",
			mutate:  func(c *Config) { c.Shader.Markers = []string{"mtoon", " "} },
			wantErr: "shader.markers",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			errs := cfg.Validate()
			require.NotEmpty(t, errs)
			assert.Contains(t, errs[0], tt.wantErr)
		})
	}
}

func TestConfigError(t *testing.T) {
	e := &ConfigError{
		Missing: []string{"API_KEY"},
		Errors:  []string{"log.level: bad"},
	}
	require.True(t, e.HasErrors())
	msg := e.Error()
	assert.Contains(t, msg, "missing environment variables: API_KEY")
	assert.Contains(t, msg, "log.level: bad")

	assert.False(t, (&ConfigError{}).HasErrors())
	assert.Empty(t, (&ConfigError{}).Error())
}
