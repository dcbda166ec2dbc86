package prefs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const uiStateVersion = 1

// UIState is the on-disk shape of the JSON preference file. Only keys the
// viewer explicitly changed are stored.
type UIState struct {
	Version int             `json:"version"`
	Flags   map[string]bool `json:"flags"`
}

// LoadUIState reads path. A missing file is an empty state, not an error.
func LoadUIState(path string) (UIState, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return UIState{Version: uiStateVersion, Flags: map[string]bool{}}, nil
	}
	if err != nil {
		return UIState{}, fmt.Errorf("reading ui state: %w", err)
	}
	var st UIState
	if err := json.Unmarshal(data, &st); err != nil {
		return UIState{}, fmt.Errorf("parsing ui state: %w", err)
	}
	if st.Flags == nil {
		st.Flags = map[string]bool{}
	}
	return st, nil
}

// SaveUIState writes st atomically through a temp file and rename.
func SaveUIState(path string, st UIState) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating state directory: %w", err)
	}
	st.Version = uiStateVersion
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding ui state: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".ui_state-*.json")
	if err != nil {
		return fmt.Errorf("creating temp state file: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing ui state: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing ui state: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replacing ui state: %w", err)
	}
	return nil
}

// FileStore keeps preferences in a single JSON file.
type FileStore struct {
	path string
	mu   sync.Mutex
	st   UIState
}

func NewFileStore(path string) (*FileStore, error) {
	st, err := LoadUIState(path)
	if err != nil {
		return nil, err
	}
	return &FileStore{path: path, st: st}, nil
}

func (s *FileStore) LoadBool(ctx context.Context, key string) (bool, bool, error) {
	if err := ctx.Err(); err != nil {
		return false, false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.st.Flags[key]
	return v, ok, nil
}

func (s *FileStore) SaveBool(ctx context.Context, key string, value bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if old, ok := s.st.Flags[key]; ok && old == value {
		return nil
	}
	next := UIState{Flags: make(map[string]bool, len(s.st.Flags)+1)}
	for k, v := range s.st.Flags {
		next.Flags[k] = v
	}
	next.Flags[key] = value
	if err := SaveUIState(s.path, next); err != nil {
		return err
	}
	s.st = next
	return nil
}

func (s *FileStore) Close() error { return nil }
