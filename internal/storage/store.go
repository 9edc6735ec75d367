package storage

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pixil98/go-errors"
)

// Storer looks up validated specs by asset id.
type Storer[T ValidatingSpec] interface {
	Get(id string) T
	GetAll() map[string]T
}

// FileStore is a read-only set of JSON assets loaded from a directory tree.
// Hidden files and files without a .json extension are ignored.
type FileStore[T ValidatingSpec] struct {
	path    string
	records map[string]T

	mu sync.RWMutex
}

// NewFileStore loads every asset under path. All invalid assets are reported
// together.
func NewFileStore[T ValidatingSpec](path string) (*FileStore[T], error) {
	s := &FileStore[T]{
		path:    path,
		records: map[string]T{},
	}

	if err := s.load(); err != nil {
		return nil, err
	}

	slog.Info("assets loaded", "path", path, "count", len(s.records))
	return s, nil
}

func (s *FileStore[T]) load() error {
	records := map[string]T{}
	sources := map[string]string{}
	el := errors.NewErrorList()

	err := filepath.WalkDir(s.path, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() || strings.HasPrefix(d.Name(), ".") || filepath.Ext(path) != ".json" {
			return nil
		}

		rel, _ := filepath.Rel(s.path, path)

		asset, err := readAsset[T](path)
		if err != nil {
			el.Add(fmt.Errorf("loading %s: %w", rel, err))
			return nil
		}
		if err := asset.Validate(); err != nil {
			el.Add(fmt.Errorf("validating %s: %w", rel, err))
			return nil
		}

		if prev, ok := sources[asset.Id()]; ok {
			el.Add(fmt.Errorf("duplicate key detected: %s (%s and %s)", asset.Id(), prev, rel))
			return nil
		}
		sources[asset.Id()] = rel
		records[asset.Id()] = asset.Spec

		return nil
	})
	if err != nil {
		return fmt.Errorf("walking %s: %w", s.path, err)
	}
	if err := el.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	s.records = records
	s.mu.Unlock()

	return nil
}

// Get returns the spec for id, or the zero value when there is none.
func (s *FileStore[T]) Get(id string) T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.records[id]
}

// GetAll returns a copy of every loaded spec keyed by asset id.
func (s *FileStore[T]) GetAll() map[string]T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return maps.Clone(s.records)
}

func readAsset[T ValidatingSpec](path string) (*Asset[T], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	asset := &Asset[T]{}
	if err := json.Unmarshal(data, asset); err != nil {
		return nil, fmt.Errorf("unmarshalling asset: %w", err)
	}

	return asset, nil
}
