// Package config holds the command-line tool configuration.
package config

// Config is the complete emojicap CLI configuration.
type Config struct {
	Assets    AssetsConfig    `yaml:"assets"`
	Challenge ChallengeConfig `yaml:"challenge"`
	Output    OutputConfig    `yaml:"output"`
	Backend   string          `yaml:"backend"`
	LogLevel  string          `yaml:"log_level"`
}

// AssetsConfig locates the glyph bitmaps.
type AssetsConfig struct {
	Dir       string `yaml:"dir"`
	Extension string `yaml:"extension"`
}

// ChallengeConfig controls challenge composition.
type ChallengeConfig struct {
	Display    int    `yaml:"display"`
	Keyboard   int    `yaml:"keyboard"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Spacing    int    `yaml:"spacing"`
	Background string `yaml:"background"`
	Seed       uint64 `yaml:"seed"` // 0 means unseeded
}

// OutputConfig controls where challenges are written.
type OutputConfig struct {
	// Path is the PNG file for a single challenge, or the directory for a
	// batch.
	Path     string `yaml:"path"`
	Count    int    `yaml:"count"`
	Manifest bool   `yaml:"manifest"`
}

// Defaults returns a Config populated with default values.
func Defaults() Config {
	return Config{
		Assets: AssetsConfig{
			Dir:       "emojis",
			Extension: "png",
		},
		Challenge: ChallengeConfig{
			Display:    5,
			Keyboard:   10,
			Width:      550,
			Height:     180,
			Spacing:    20,
			Background: "#ffffff",
		},
		Output: OutputConfig{
			Path:     "captcha.png",
			Count:    1,
			Manifest: true,
		},
		Backend:  "software",
		LogLevel: "info",
	}
}
