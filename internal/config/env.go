package config

import "os"

// Environment variables overriding individual settings. The prefix follows
// the project name; values are plain strings, no type coercion needed.
const (
	envLogLevel    = "WORDSTORM_LOG_LEVEL"
	envLogFile     = "WORDSTORM_LOG_FILE"
	envAnswersFile = "WORDSTORM_ANSWERS_FILE"
	envAllowedFile = "WORDSTORM_ALLOWED_FILE"
	envUICorrect   = "WORDSTORM_UI_CORRECT"
	envUIPresent   = "WORDSTORM_UI_PRESENT"
	envUIAbsent    = "WORDSTORM_UI_ABSENT"
	envUIBorder    = "WORDSTORM_UI_BORDER"
)

// applyEnv overlays environment variables onto cfg. Unset variables leave
// the existing value alone; empty values are treated as unset.
func applyEnv(cfg *Config) {
	overlay(&cfg.Logging.Level, envLogLevel)
	overlay(&cfg.Logging.File, envLogFile)
	overlay(&cfg.Words.AnswersFile, envAnswersFile)
	overlay(&cfg.Words.AllowedFile, envAllowedFile)
	overlay(&cfg.UI.Correct, envUICorrect)
	overlay(&cfg.UI.Present, envUIPresent)
	overlay(&cfg.UI.Absent, envUIAbsent)
	overlay(&cfg.UI.Border, envUIBorder)
}

func overlay(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
