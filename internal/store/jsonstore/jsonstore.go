package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/idilsaglam/todolist/internal/model"
)

// JSON-backed seed file that the demo endpoint publishes.
// Single file, human-readable, portable. No locking; one writer at a time.

// DefaultFileName is used when no seed file is configured.
const DefaultFileName = "todos.json"

// Store reads and writes records at Path.
type Store struct {
	Path string
}

// New returns a store for path, defaulting to todos.json in the working dir.
func New(path string) (*Store, error) {
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getwd: %w", err)
		}
		path = filepath.Join(wd, DefaultFileName)
	}
	return &Store{Path: path}, nil
}

// Load returns the stored records. A missing file is an empty list.
func (s *Store) Load() ([]model.Record, error) {
	b, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.Record{}, nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	var records []model.Record
	if err := json.Unmarshal(b, &records); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	if records == nil {
		records = []model.Record{}
	}
	return records, nil
}

// Save replaces the file contents with records.
func (s *Store) Save(records []model.Record) error {
	if records == nil {
		records = []model.Record{}
	}
	b, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	tmp := s.Path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	if err := os.Rename(tmp, s.Path); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}

// Add appends one record and saves the result.
func (s *Store) Add(r model.Record) ([]model.Record, error) {
	records, err := s.Load()
	if err != nil {
		return nil, err
	}
	records = model.Append(records, r)
	if err := s.Save(records); err != nil {
		return nil, err
	}
	return records, nil
}
