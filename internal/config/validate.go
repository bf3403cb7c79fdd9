package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks the configuration for required fields and valid values.
// All problems are reported together, each prefixed with its field path.
func (c *Config) Validate() error {
	var errs []error

	if c.Assets.Dir == "" {
		errs = append(errs, fmt.Errorf("assets.dir is required"))
	}
	if c.Challenge.Display < 1 {
		errs = append(errs, fmt.Errorf("challenge.display must be > 0, got %d", c.Challenge.Display))
	}
	if c.Challenge.Keyboard < 1 {
		errs = append(errs, fmt.Errorf("challenge.keyboard must be > 0, got %d", c.Challenge.Keyboard))
	}
	if c.Challenge.Width <= 0 || c.Challenge.Height <= 0 {
		errs = append(errs, fmt.Errorf("challenge size must be positive, got %dx%d", c.Challenge.Width, c.Challenge.Height))
	}
	if c.Challenge.Spacing < 0 {
		errs = append(errs, fmt.Errorf("challenge.spacing must be >= 0, got %d", c.Challenge.Spacing))
	}
	if !isHexColor(c.Challenge.Background) {
		errs = append(errs, fmt.Errorf("challenge.background must be a hex color, got %q", c.Challenge.Background))
	}
	if c.Output.Path == "" {
		errs = append(errs, fmt.Errorf("output.path is required"))
	}
	if c.Output.Count < 1 {
		errs = append(errs, fmt.Errorf("output.count must be > 0, got %d", c.Output.Count))
	}
	if c.Backend == "" {
		errs = append(errs, fmt.Errorf("backend is required"))
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log_level must be one of debug, info, warn, error, got %q", c.LogLevel))
	}

	return errors.Join(errs...)
}

// isHexColor accepts "RGB", "RGBA", "RRGGBB" and "RRGGBBAA" with an optional
// leading '#'.
func isHexColor(s string) bool {
	s = strings.TrimPrefix(s, "#")
	switch len(s) {
	case 3, 4, 6, 8:
	default:
		return false
	}
	for _, r := range s {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return false
		}
	}
	return true
}
