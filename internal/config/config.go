// Package config handles TOML configuration loading with environment variable substitution.
package config

import (
	"fmt"
	"os"
	"regexp"

	"github.com/BurntSushi/toml"
)

// Config is the root configuration structure.
type Config struct {
	Dirs         DirsConfig         `toml:"dirs"`
	Log          LogConfig          `toml:"log"`
	Shader       ShaderConfig       `toml:"shader"`
	Transparency TransparencyConfig `toml:"transparency"`
	Rig          RigConfig          `toml:"rig"`
	History      HistoryConfig      `toml:"history"`
}

// DirsConfig holds the four batch folders. Command-line positionals take
// precedence over these values.
type DirsConfig struct {
	Input  string `toml:"input"`
	Output string `toml:"output"`
	Done   string `toml:"done"`
	Failed string `toml:"failed"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

// ShaderConfig controls toon material detection.
type ShaderConfig struct {
	// Markers are lowercase substrings matched against group, node and
	// material names.
	Markers []string `toml:"markers"`
}

// TransparencyConfig is the name-based clip classification applied to
// real-time exports.
type TransparencyConfig struct {
	ClipNames      []string `toml:"clip_names"`
	AlphaThreshold float64  `toml:"alpha_threshold"`
}

type RigConfig struct {
	// Disabled forces conversion-only export for the whole run.
	Disabled bool `toml:"disabled"`
}

type HistoryConfig struct {
	// Path of the sqlite history database. Empty means <output>/history.db.
	Path     string `toml:"path"`
	Disabled bool   `toml:"disabled"`
}

// Default returns the stock configuration used when no config file is given.
func Default() *Config {
	var cfg Config
	cfg.applyDefaults()
	return &cfg
}

// Load reads and parses the configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	// Substitute environment variables
	content := substituteEnvVars(string(data))

	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Dirs.Input == "" {
		c.Dirs.Input = "vrm_in"
	}
	if c.Dirs.Output == "" {
		c.Dirs.Output = "export_out"
	}
	if c.Dirs.Done == "" {
		c.Dirs.Done = "vrm_done"
	}
	if c.Dirs.Failed == "" {
		c.Dirs.Failed = "vrm_failed"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if len(c.Shader.Markers) == 0 {
		c.Shader.Markers = []string{"mtoon", "vrm"}
	}
	if len(c.Transparency.ClipNames) == 0 {
		c.Transparency.ClipNames = []string{"face", "eyelash", "eye", "hair"}
	}
	if c.Transparency.AlphaThreshold == 0 {
		c.Transparency.AlphaThreshold = 0.5
	}
}

// substituteEnvVars replaces ${VAR_NAME} with environment variable values.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

func substituteEnvVars(content string) string {
	return envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		varName := match[2 : len(match)-1] // Strip ${ and }
		if value, ok := os.LookupEnv(varName); ok {
			return value
		}
		return match // Leave unchanged if not found
	})
}
