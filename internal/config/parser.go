package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	extmanerrors "github.com/alexisbeaulieu97/extman/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// LoadOptions controls where configuration is read from.
type LoadOptions struct {
	// Path of the YAML file. A missing file is only an error when Required.
	Path     string
	Required bool
	// StateDir anchors default file locations.
	StateDir string
}

// Load builds the configuration from defaults, the YAML file and environment
// overrides (in that order of precedence), then validates it.
func Load(opts LoadOptions) (*Config, error) {
	cfg := Default(opts.StateDir)

	if opts.Path != "" {
		if err := parseFile(opts.Path, cfg, opts.Required); err != nil {
			return nil, err
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, extmanerrors.NewValidationError("env", err.Error(), fmt.Errorf("parse env: %w", err))
	}

	Finalize(cfg, opts.StateDir)

	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Finalize fills derived defaults and expands home-relative paths. It is
// safe to call again after flags have modified cfg.
func Finalize(cfg *Config, stateDir string) {
	cfg.Preferences.Backend = strings.ToLower(strings.TrimSpace(cfg.Preferences.Backend))
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	if cfg.Preferences.Path == "" {
		cfg.Preferences.Path = defaultPreferencesPath(stateDir, cfg.Preferences.Backend)
	}
	cfg.Preferences.Path = expandHome(cfg.Preferences.Path)
	cfg.Log.File = expandHome(cfg.Log.File)
}

func parseFile(path string, cfg *Config, required bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return nil
		}
		return extmanerrors.NewParseError(path, 0, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return extmanerrors.NewParseError(path, extractLine(err), err)
	}
	return nil
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
