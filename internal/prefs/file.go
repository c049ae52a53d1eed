package prefs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	extmanerrors "github.com/alexisbeaulieu97/extman/pkg/errors"
)

// preferencesFile is the JSON file format for the file backend
type preferencesFile struct {
	Version string            `json:"version"`
	Values  map[string]string `json:"values"`
}

// FileStore persists preferences as a single JSON document
type FileStore struct {
	path    string
	mu      sync.RWMutex
	version string
	values  map[string]string
}

// NewFileStore creates a FileStore and loads it from disk
func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{
		path:    path,
		version: "1.0",
		values:  make(map[string]string),
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, extmanerrors.NewStorageError(BackendFile, "create directory", "", err)
	}

	if err := s.load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, extmanerrors.NewStorageError(BackendFile, "load", "", err)
		}
	}

	return s, nil
}

func (s *FileStore) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return err
	}

	var file preferencesFile
	if err := json.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse preferences: %w", err)
	}

	if file.Version != "" {
		s.version = file.Version
	}
	s.values = file.Values
	if s.values == nil {
		s.values = make(map[string]string)
	}

	return nil
}

// save writes the file atomically; callers hold the lock
func (s *FileStore) save() error {
	file := preferencesFile{
		Version: s.version,
		Values:  s.values,
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return nil
}

// Get returns the stored value for key.
func (s *FileStore) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	return value, ok, nil
}

// Set stores value under key and flushes the file to disk.
func (s *FileStore) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	previous, existed := s.values[key]
	s.values[key] = value
	if err := s.save(); err != nil {
		if existed {
			s.values[key] = previous
		} else {
			delete(s.values, key)
		}
		return extmanerrors.NewStorageError(BackendFile, "set", key, err)
	}
	return nil
}

// Close is a no-op; every Set is already flushed.
func (s *FileStore) Close() error {
	return nil
}

var _ Store = (*FileStore)(nil)
