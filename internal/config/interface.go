package config

import "context"

// Loader is the interface for a format-specific settings loader.
type Loader interface {
	// Load reads the settings file at path and translates it into the
	// format-agnostic model. Fields the file does not mention stay zero.
	Load(ctx context.Context, path string) (*Settings, error)
}
