package config

import (
	"path/filepath"
	"time"

	"github.com/alexisbeaulieu97/extman/internal/loader"
	"github.com/alexisbeaulieu97/extman/internal/prefs"
)

// Config is the runtime configuration for extman.
type Config struct {
	DataSource   string        `yaml:"data_source" env:"EXTMAN_DATA_SOURCE" validate:"required"`
	FetchTimeout time.Duration `yaml:"fetch_timeout" env:"EXTMAN_FETCH_TIMEOUT" validate:"gte=0"`
	Preferences  Preferences   `yaml:"preferences"`
	Log          Log           `yaml:"log"`
}

// Preferences selects the durable key/value backend.
type Preferences struct {
	Backend string `yaml:"backend" env:"EXTMAN_PREFS_BACKEND" validate:"oneof=file sqlite bolt"`
	Path    string `yaml:"path" env:"EXTMAN_PREFS_PATH"`
}

// Log configures the diagnostic channel.
type Log struct {
	Level string `yaml:"level" env:"EXTMAN_LOG_LEVEL" validate:"oneof=debug info warn error"`
	File  string `yaml:"file" env:"EXTMAN_LOG_FILE"`
}

// Default returns the configuration used when nothing is overridden. dir is
// the state directory, normally ~/.extman.
func Default(dir string) *Config {
	return &Config{
		DataSource: loader.DefaultSource,
		Preferences: Preferences{
			Backend: prefs.BackendFile,
		},
		Log: Log{
			Level: "info",
			File:  filepath.Join(dir, "extman.log"),
		},
	}
}

// defaultPreferencesPath picks the store file for a backend.
func defaultPreferencesPath(dir, backend string) string {
	switch backend {
	case prefs.BackendSQLite:
		return filepath.Join(dir, "preferences.db")
	case prefs.BackendBolt:
		return filepath.Join(dir, "preferences.bolt")
	}
	return filepath.Join(dir, "preferences.json")
}
