// internal/config/validate.go
package config

import (
	"fmt"
	"strings"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	if !validLogLevels[c.Log.Level] {
		errs = append(errs, fmt.Sprintf("log.level: must be one of debug, info, warn, error; got %q", c.Log.Level))
	}

	// Dirs validation
	if c.Dirs.Input == "" {
		errs = append(errs, "dirs.input: required")
	}
	if c.Dirs.Output == "" {
		errs = append(errs, "dirs.output: required")
	}
	if c.Dirs.Done == "" {
		errs = append(errs, "dirs.done: required")
	}
	if c.Dirs.Failed == "" {
		errs = append(errs, "dirs.failed: required")
	}
	if c.Dirs.Input != "" && c.Dirs.Input == c.Dirs.Done {
		errs = append(errs, "dirs.done: must differ from dirs.input")
	}
	if c.Dirs.Input != "" && c.Dirs.Input == c.Dirs.Failed {
		errs = append(errs, "dirs.failed: must differ from dirs.input")
	}

	// Shader markers must survive lowercase matching
	for _, m := range c.Shader.Markers {
		if strings.TrimSpace(m) == "" {
			errs = append(errs, "shader.markers: empty marker not allowed")
			break
		}
	}

	// Transparency validation
	if c.Transparency.AlphaThreshold < 0 || c.Transparency.AlphaThreshold > 1 {
		errs = append(errs, fmt.Sprintf("transparency.alpha_threshold: must be between 0 and 1, got %g", c.Transparency.AlphaThreshold))
	}
	for _, n := range c.Transparency.ClipNames {
		if strings.TrimSpace(n) == "" {
			errs = append(errs, "transparency.clip_names: empty entry not allowed")
			break
		}
	}

	return errs
}
