// Package settings implements the persisted key-value settings store.
//
// The store is a flat string-to-string map serialized as TOML. It loads
// lazily on first access, tolerates a missing file (empty store), and is
// written back atomically-enough for a single-process CLI: a full rewrite
// on every Flush.
package settings

import (
	"os"
	"path/filepath"
	"sync"

	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/iconswap/pkg/errors"
	"github.com/arthur-debert/iconswap/pkg/logging"
	"github.com/arthur-debert/iconswap/pkg/types"
)

// FileStore is a TOML-file-backed types.Store.
type FileStore struct {
	path string

	mu     sync.Mutex
	loaded bool
	values map[string]string
}

var _ types.Store = (*FileStore)(nil)

// NewFileStore creates a store backed by the TOML file at path.
// The file and its parent directory are created on the first Flush.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Get returns the value for key, lazily loading the backing file.
func (s *FileStore) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(); err != nil {
		logger := logging.GetLogger("settings")
		logger.Warn().Err(err).Str("path", s.path).
			Msg("Failed to load settings, treating store as empty")
	}
	v, ok := s.values[key]
	return v, ok
}

// Set stages a value and flushes the store to disk.
func (s *FileStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(); err != nil {
		return err
	}
	s.values[key] = value
	return s.flushLocked()
}

// Flush writes the current values to the backing file.
func (s *FileStore) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(); err != nil {
		return err
	}
	return s.flushLocked()
}

func (s *FileStore) load() error {
	if s.loaded {
		return nil
	}
	s.values = make(map[string]string)
	s.loaded = true

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, errors.ErrSettingsLoad, "failed to read settings from %s", s.path)
	}
	if err := gotoml.Unmarshal(data, &s.values); err != nil {
		return errors.Wrapf(err, errors.ErrSettingsLoad, "failed to parse settings from %s", s.path)
	}
	return nil
}

func (s *FileStore) flushLocked() error {
	data, err := gotoml.Marshal(s.values)
	if err != nil {
		return errors.Wrap(err, errors.ErrSettingsSave, "failed to serialize settings")
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create settings directory %s", filepath.Dir(s.path))
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrSettingsSave, "failed to write settings to %s", s.path)
	}
	return nil
}
