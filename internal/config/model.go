package config

import (
	"errors"
	"fmt"
	"slices"
)

// DefaultInputPath is read when no input path is configured anywhere.
const DefaultInputPath = "cities.txt"

// LogLevels and LogFormats list the accepted values, in help-text order.
var (
	LogLevels  = []string{"debug", "info", "warn", "error"}
	LogFormats = []string{"text", "json"}
)

// Settings is the unified configuration for a run. The zero value of a field
// means "not set" so that layers can be merged.
type Settings struct {
	InputPath string
	LogLevel  string
	LogFormat string

	// EchoConnections controls the `connection: ...` lines on stdout.
	EchoConnections *bool
}

// Defaults returns the built-in settings.
func Defaults() Settings {
	echo := true
	return Settings{
		InputPath:       DefaultInputPath,
		LogLevel:        "warn",
		LogFormat:       "text",
		EchoConnections: &echo,
	}
}

// Merge returns a copy of s where every field set in over wins.
func (s Settings) Merge(over Settings) Settings {
	if over.InputPath != "" {
		s.InputPath = over.InputPath
	}
	if over.LogLevel != "" {
		s.LogLevel = over.LogLevel
	}
	if over.LogFormat != "" {
		s.LogFormat = over.LogFormat
	}
	if over.EchoConnections != nil {
		echo := *over.EchoConnections
		s.EchoConnections = &echo
	}
	return s
}

// Echo reports whether connection lines should be echoed. Unset means yes.
func (s Settings) Echo() bool {
	return s.EchoConnections == nil || *s.EchoConnections
}

// Validate checks a fully merged Settings value.
func (s Settings) Validate() error {
	if s.InputPath == "" {
		return errors.New("input path is a required configuration field and cannot be empty")
	}
	if !slices.Contains(LogLevels, s.LogLevel) {
		return fmt.Errorf("invalid log level %q: must be one of %v", s.LogLevel, LogLevels)
	}
	if !slices.Contains(LogFormats, s.LogFormat) {
		return fmt.Errorf("invalid log format %q: must be one of %v", s.LogFormat, LogFormats)
	}
	return nil
}
