// Package config loads the engine configuration from TOML files using the
// fs.FS interface, so the demo can run from an embedded default and tools
// can point the loader at a directory on disk.
package config

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Loader loads engine configuration from TOML files using fs.FS interface
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{fsys: os.DirFS(basePath)}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// LoadEngine loads and validates engine.toml
func (l *Loader) LoadEngine() (*EngineConfig, error) {
	data, err := fs.ReadFile(l.fsys, "engine.toml")
	if err != nil {
		return nil, fmt.Errorf("failed to read engine.toml: %w", err)
	}

	var cfg EngineConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse engine.toml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid engine.toml: %w", err)
	}

	return &cfg, nil
}
