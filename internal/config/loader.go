package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Load loads configuration from a layered set of sources.
//
// The loading order is:
//  1. Built-in defaults
//  2. YAML config file (explicit path or EMOJICAP_CONFIG env)
//  3. EMOJICAP_* environment variables
//
// Command-line flags are applied by the caller, which then calls Validate.
func Load(configPath string) (*Config, error) {
	cfg := Defaults()

	if configPath == "" {
		configPath = os.Getenv("EMOJICAP_CONFIG")
	}
	if configPath != "" {
		if err := loadYAMLFile(configPath, &cfg); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	if err := applyEnvOverrides(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// loadYAMLFile reads and parses a YAML file into cfg.
// Fields not present in the YAML retain their current values.
func loadYAMLFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// applyEnvOverrides maps environment variables to config fields.
func applyEnvOverrides(cfg *Config) error {
	strs := []struct {
		env string
		dst *string
	}{
		{"EMOJICAP_ASSETS_DIR", &cfg.Assets.Dir},
		{"EMOJICAP_EXTENSION", &cfg.Assets.Extension},
		{"EMOJICAP_BACKGROUND", &cfg.Challenge.Background},
		{"EMOJICAP_OUTPUT", &cfg.Output.Path},
		{"EMOJICAP_BACKEND", &cfg.Backend},
		{"EMOJICAP_LOG_LEVEL", &cfg.LogLevel},
	}
	for _, s := range strs {
		if v := os.Getenv(s.env); v != "" {
			*s.dst = v
		}
	}

	ints := []struct {
		env string
		dst *int
	}{
		{"EMOJICAP_DISPLAY", &cfg.Challenge.Display},
		{"EMOJICAP_KEYBOARD", &cfg.Challenge.Keyboard},
		{"EMOJICAP_COUNT", &cfg.Output.Count},
	}
	for _, i := range ints {
		v := os.Getenv(i.env)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", i.env, err)
		}
		*i.dst = n
	}

	if v := os.Getenv("EMOJICAP_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("EMOJICAP_SEED: %w", err)
		}
		cfg.Challenge.Seed = seed
	}
	return nil
}
