// Package storage persists game state as JSON files, one file per key,
// wrapped in a versioned envelope so older saves stay readable.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

const version = "1.0"

// envelope wraps every saved value with provenance.
type envelope struct {
	Version string          `json:"version"`
	Session string          `json:"session"`
	SavedAt string          `json:"savedAt"`
	Data    json.RawMessage `json:"data"`
}

// Store is a file-backed key/value store implementing scene.StateStore.
// Keys map to <dir>/<key>.json.
type Store struct {
	dir     string
	session uuid.UUID
}

// NewStore creates a store rooted at dir, creating it if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create save dir: %w", err)
	}
	return &Store{dir: dir, session: uuid.New()}, nil
}

// Save writes v under key.
func (s *Store) Save(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %q: %w", key, err)
	}

	file, err := os.Create(s.path(key))
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	env := envelope{
		Version: version,
		Session: s.session.String(),
		SavedAt: time.Now().Format(time.RFC3339),
		Data:    data,
	}
	if err := encoder.Encode(env); err != nil {
		return fmt.Errorf("failed to encode save: %w", err)
	}
	return nil
}

// Load reads the value saved under key into v.
func (s *Store) Load(key string, v any) error {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		return fmt.Errorf("failed to read save %q: %w", key, err)
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return fmt.Errorf("failed to parse save %q: %w", key, err)
	}
	if env.Version != version {
		return fmt.Errorf("unsupported save version %q for %q", env.Version, key)
	}
	if err := json.Unmarshal(env.Data, v); err != nil {
		return fmt.Errorf("failed to decode save %q: %w", key, err)
	}
	return nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
