// Package prefstore persists preferences to a YAML file on disk.
package prefstore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/PizzaHomicide/lumix/internal/domain"
	"github.com/PizzaHomicide/lumix/internal/log"
	"gopkg.in/yaml.v3"
)

type FileStore struct {
	path string
}

func NewFileStore(path string) domain.PreferenceRepository {
	return &FileStore{path: path}
}

type preferencesFile struct {
	Preferences domain.Preferences `yaml:"preferences"`
}

// Load reads the preferences file.  A missing file is not an error, it means nothing has been saved yet.
func (s *FileStore) Load(ctx context.Context) (*domain.Preferences, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		log.Debug("No saved preferences found", "path", s.path)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("unable to read preferences file: %w", err)
	}

	var file preferencesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("unable to parse preferences file: %w", err)
	}

	return &file.Preferences, nil
}

// Save writes the full preference set.  The file is written to a temporary file first and renamed into place so a
// failed write never leaves a truncated file behind.
func (s *FileStore) Save(ctx context.Context, prefs domain.Preferences) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	data, err := yaml.Marshal(preferencesFile{Preferences: prefs})
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".preferences-*.yaml")
	if err != nil {
		return fmt.Errorf("unable to create temporary preferences file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("unable to write preferences: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("unable to write preferences: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("unable to replace preferences file: %w", err)
	}
	return nil
}
