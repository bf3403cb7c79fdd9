package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	if cfg.Challenge.Display != 5 {
		t.Errorf("default challenge.display = %d, want 5", cfg.Challenge.Display)
	}
	if cfg.Challenge.Keyboard != 10 {
		t.Errorf("default challenge.keyboard = %d, want 10", cfg.Challenge.Keyboard)
	}
	if cfg.Challenge.Width != 550 || cfg.Challenge.Height != 180 || cfg.Challenge.Spacing != 20 {
		t.Errorf("default geometry = %dx%d/%d, want 550x180/20",
			cfg.Challenge.Width, cfg.Challenge.Height, cfg.Challenge.Spacing)
	}
	if cfg.Assets.Extension != "png" {
		t.Errorf("default assets.extension = %q, want \"png\"", cfg.Assets.Extension)
	}
	if cfg.Backend != "software" {
		t.Errorf("default backend = %q, want \"software\"", cfg.Backend)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadFromYAML(t *testing.T) {
	yamlContent := `
assets:
  dir: /srv/emoji
  extension: webp
challenge:
  display: 3
  keyboard: 6
  background: "#202020"
  seed: 99
output:
  path: out
  count: 4
backend: canvas
`
	path := filepath.Join(t.TempDir(), "emojicap.yaml")
	if err := os.WriteFile(path, []byte(yamlContent), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Assets.Dir != "/srv/emoji" || cfg.Assets.Extension != "webp" {
		t.Errorf("assets = %+v", cfg.Assets)
	}
	if cfg.Challenge.Display != 3 || cfg.Challenge.Keyboard != 6 {
		t.Errorf("challenge counts = %d/%d, want 3/6", cfg.Challenge.Display, cfg.Challenge.Keyboard)
	}
	if cfg.Challenge.Seed != 99 {
		t.Errorf("challenge.seed = %d, want 99", cfg.Challenge.Seed)
	}
	if cfg.Output.Path != "out" || cfg.Output.Count != 4 {
		t.Errorf("output = %+v", cfg.Output)
	}
	if cfg.Backend != "canvas" {
		t.Errorf("backend = %q, want \"canvas\"", cfg.Backend)
	}
	// Fields absent from the file keep their defaults.
	if cfg.Challenge.Width != 550 || cfg.LogLevel != "info" {
		t.Errorf("defaults not preserved: width=%d log_level=%q", cfg.Challenge.Width, cfg.LogLevel)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("challenge: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("EMOJICAP_ASSETS_DIR", "/tmp/glyphs")
	t.Setenv("EMOJICAP_DISPLAY", "7")
	t.Setenv("EMOJICAP_BACKEND", "canvas")
	t.Setenv("EMOJICAP_SEED", "12")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Assets.Dir != "/tmp/glyphs" {
		t.Errorf("assets.dir = %q", cfg.Assets.Dir)
	}
	if cfg.Challenge.Display != 7 {
		t.Errorf("challenge.display = %d, want 7", cfg.Challenge.Display)
	}
	if cfg.Backend != "canvas" {
		t.Errorf("backend = %q", cfg.Backend)
	}
	if cfg.Challenge.Seed != 12 {
		t.Errorf("challenge.seed = %d, want 12", cfg.Challenge.Seed)
	}
}

func TestEnvOverridesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "emojicap.yaml")
	if err := os.WriteFile(path, []byte("challenge:\n  keyboard: 4\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("EMOJICAP_CONFIG", path)
	t.Setenv("EMOJICAP_KEYBOARD", "8")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Challenge.Keyboard != 8 {
		t.Errorf("challenge.keyboard = %d, want env value 8", cfg.Challenge.Keyboard)
	}
}

func TestEnvInvalidNumber(t *testing.T) {
	t.Setenv("EMOJICAP_COUNT", "many")
	_, err := Load("")
	if err == nil || !strings.Contains(err.Error(), "EMOJICAP_COUNT") {
		t.Errorf("Load() error = %v, want EMOJICAP_COUNT parse error", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		want   string
	}{
		{"missing assets dir", func(c *Config) { c.Assets.Dir = "" }, "assets.dir"},
		{"zero display", func(c *Config) { c.Challenge.Display = 0 }, "challenge.display"},
		{"negative keyboard", func(c *Config) { c.Challenge.Keyboard = -1 }, "challenge.keyboard"},
		{"zero width", func(c *Config) { c.Challenge.Width = 0 }, "challenge size"},
		{"negative spacing", func(c *Config) { c.Challenge.Spacing = -2 }, "challenge.spacing"},
		{"bad background", func(c *Config) { c.Challenge.Background = "white" }, "challenge.background"},
		{"zero count", func(c *Config) { c.Output.Count = 0 }, "output.count"},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, "log_level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.modify(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestIsHexColor(t *testing.T) {
	for _, s := range []string{"#fff", "fff", "#FFFFFF", "#ffffff80", "1234"} {
		if !isHexColor(s) {
			t.Errorf("isHexColor(%q) = false", s)
		}
	}
	for _, s := range []string{"", "#ff", "#gggggg", "#12345"} {
		if isHexColor(s) {
			t.Errorf("isHexColor(%q) = true", s)
		}
	}
}
