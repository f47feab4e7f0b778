package app

import (
	"fmt"
	"slices"

	"github.com/specialistvlad/citylink/internal/config"
)

// Config holds everything the entrypoint knows before settings are resolved.
type Config struct {
	// SettingsPath is an optional settings file (HCL).
	SettingsPath string
	// Flags holds only the values given explicitly on the command line.
	Flags config.Settings
}

// NewConfig validates the values that can be checked before the settings file
// is read.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Flags.LogLevel != "" && !slices.Contains(config.LogLevels, cfg.Flags.LogLevel) {
		return nil, fmt.Errorf("invalid log-level %q: must be one of %v", cfg.Flags.LogLevel, config.LogLevels)
	}
	if cfg.Flags.LogFormat != "" && !slices.Contains(config.LogFormats, cfg.Flags.LogFormat) {
		return nil, fmt.Errorf("invalid log-format %q: must be one of %v", cfg.Flags.LogFormat, config.LogFormats)
	}
	return &cfg, nil
}
