package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/abmoura/vida/internal/logger"
)

// JSONStore keeps the whole snapshot in a single indented JSON file.
type JSONStore struct {
	path string
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	return s.SaveState(DefaultState())
}

func (s *JSONStore) Close() error {
	return nil
}

// LoadState reads the snapshot file. A missing file or a file that no
// longer parses falls back to empty defaults; the broken file is left in
// place and a warning is logged.
func (s *JSONStore) LoadState() (*State, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultState(), nil
		}
		return nil, fmt.Errorf("failed to read storage: %w", err)
	}

	state := &State{}
	if err := json.Unmarshal(data, state); err != nil {
		logger.Warn("Snapshot is corrupt, starting from empty state", "path", s.path, "error", err)
		return DefaultState(), nil
	}

	state.Normalize()
	return state, nil
}

func (s *JSONStore) SaveState(state *State) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

// GetConfigPath returns the path to the underlying snapshot file.
func (s *JSONStore) GetConfigPath() string {
	return s.path
}
