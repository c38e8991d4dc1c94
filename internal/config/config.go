// Package config loads the game configuration. Settings come from three
// layers, later layers overriding earlier ones: built-in defaults, an
// optional TOML or YAML file, and WORDSTORM_-prefixed environment
// variables. Configuration is read once at startup and never reloaded.
package config

// Config is the root configuration.
type Config struct {
	Logging Logging `toml:"logging" yaml:"logging"`
	Words   Words   `toml:"words" yaml:"words"`
	UI      UI      `toml:"ui" yaml:"ui"`
}

// Logging configures the debug log. The terminal itself belongs to the
// display backend, so logs always go to a file.
type Logging struct {
	// Level is a zerolog level name; "disabled" turns logging off.
	Level string `toml:"level" yaml:"level"`
	// File is the log file path. Empty disables logging regardless of level.
	File string `toml:"file" yaml:"file"`
}

// Words points at replacement corpora. Empty paths use the embedded lists.
type Words struct {
	AnswersFile string `toml:"answers_file" yaml:"answers_file"`
	AllowedFile string `toml:"allowed_file" yaml:"allowed_file"`
}

// UI holds the board theme as hex color strings.
type UI struct {
	Correct string `toml:"correct" yaml:"correct"`
	Present string `toml:"present" yaml:"present"`
	Absent  string `toml:"absent" yaml:"absent"`
	Border  string `toml:"border" yaml:"border"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Logging: Logging{
			Level: "info",
			File:  "",
		},
		UI: UI{
			Correct: "#538D4E",
			Present: "#B59F3B",
			Absent:  "#787C7E",
			Border:  "",
		},
	}
}

// Load produces the effective configuration: defaults, then the file at
// path (skipped when path is empty or the file does not exist), then the
// environment overlay.
func Load(path string) (Config, error) {
	cfg := Default()
	if err := loadFile(&cfg, path); err != nil {
		return cfg, err
	}
	applyEnv(&cfg)
	return cfg, nil
}
