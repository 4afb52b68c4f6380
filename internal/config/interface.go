package config

import "context"

// Loader is the interface for a format-specific settings loader.
type Loader interface {
	// Load reads the settings file at path. Attributes absent from the file
	// are left nil in the returned Settings.
	Load(ctx context.Context, path string) (*Settings, error)
}
