package storage

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/compasshq/compass/internal/errors"
)

// Directory and file permission constants.
const (
	dirPerm  = 0o750 // Secure directory permissions
	filePerm = 0o600 // Secure file permissions
)

// FileKV implements KV on the local filesystem. Each key is stored as one
// pretty-printed JSON file under the data directory, written atomically
// via write-then-rename.
type FileKV struct {
	dir string
	log zerolog.Logger
}

// NewFileKV creates a FileKV rooted at dir, creating the directory if
// needed. This is the only point where a storage failure is reported as an
// error; once constructed, all operations are total.
func NewFileKV(dir string, log zerolog.Logger) (*FileKV, error) {
	if dir == "" {
		return nil, errors.Wrap(errors.ErrEmptyValue, "data directory")
	}
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return nil, errors.Wrapf(err, "failed to create data directory %s", dir)
	}
	return &FileKV{dir: dir, log: log}, nil
}

// Dir returns the directory the store writes to.
func (s *FileKV) Dir() string {
	return s.dir
}

// Get reads and decodes the JSON file for key into out.
func (s *FileKV) Get(key string, out any) bool {
	data, err := os.ReadFile(s.path(key)) //#nosec G304 -- path is constructed from a fixed key set
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn().Err(err).Str("key", key).Msg("storage read failed")
		}
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("storage payload corrupt")
		return false
	}
	return true
}

// Set encodes value as JSON and writes it atomically.
func (s *FileKV) Set(key string, value any) bool {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		s.log.Error().Err(err).Str("key", key).Msg("storage encode failed")
		return false
	}
	if err := atomicWrite(s.path(key), data); err != nil {
		s.log.Error().Err(err).Str("key", key).Msg("storage write failed")
		return false
	}
	return true
}

// Remove deletes the file for key. An already-absent file is a success.
func (s *FileKV) Remove(key string) bool {
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		s.log.Error().Err(err).Str("key", key).Msg("storage remove failed")
		return false
	}
	return true
}

func (s *FileKV) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// atomicWrite writes data to a file atomically using write-then-rename.
// Uses filePerm (0o600) for secure file permissions.
func atomicWrite(path string, data []byte) error {
	tmpPath := path + ".tmp"
	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePerm) //#nosec G304 -- path is constructed internally
	if err != nil {
		return errors.Wrap(err, "failed to create temp file")
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(tmpPath)
		return errors.Wrap(err, "failed to write data")
	}

	// Sync to disk (ensure data is persisted before rename)
	if err := f.Sync(); err != nil {
		_ = f.Close()
		_ = os.Remove(tmpPath)
		return errors.Wrap(err, "failed to sync file")
	}

	if err := f.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return errors.Wrap(err, "failed to close file")
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return errors.Wrap(err, "failed to rename file")
	}

	return nil
}

// Ensure FileKV implements KV.
var _ KV = (*FileKV)(nil)
