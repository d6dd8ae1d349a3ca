// Package localfs stores blobs under a directory tree keyed by
// {section}/{filename}. Objects here have no provider URL; clients reach
// them through the static uploads route or the serve endpoint.
package localfs

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"folio/internal/domain/entity"
	"folio/internal/domain/repository/storage"
)

type Config struct {
	Root string `yaml:"root"`
}

type Storage struct {
	root string
}

func NewStorage(cfg *Config) *Storage {
	return &Storage{root: cfg.Root}
}

func (s *Storage) Put(_ context.Context, key string, body io.Reader, _ int64,
	_ string, upsert bool,
) (entity.StoredObject, error) {
	path, err := s.resolve(key)
	if err != nil {
		return entity.StoredObject{}, err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return entity.StoredObject{}, err
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_EXCL
	if upsert {
		flags = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	}

	file, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return entity.StoredObject{}, storage.ErrKeyExists
		}

		return entity.StoredObject{}, err
	}

	if _, err := io.Copy(file, body); err != nil {
		_ = file.Close()
		_ = os.Remove(path)

		return entity.StoredObject{}, err
	}

	if err := file.Close(); err != nil {
		return entity.StoredObject{}, err
	}

	// No PublicURL: the read side derives /uploads/{key} instead.
	return entity.StoredObject{Key: key}, nil
}

// Remove tolerates missing files so retried deletions stay no-ops.
func (s *Storage) Remove(_ context.Context, key string) error {
	path, err := s.resolve(key)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}

	return nil
}

func (s *Storage) Get(_ context.Context, key string) (io.ReadCloser, int64, string, error) {
	path, err := s.resolve(key)
	if err != nil {
		return nil, 0, "", err
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, 0, "", storage.ErrNotFound
		}

		return nil, 0, "", err
	}

	contentType := "application/octet-stream"
	if detected, err := mimetype.DetectFile(path); err == nil {
		contentType = detected.String()
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, 0, "", err
	}

	return file, info.Size(), contentType, nil
}

// resolve rejects keys that would escape the root directory.
func (s *Storage) resolve(key string) (string, error) {
	cleaned := filepath.Clean(filepath.FromSlash(key))
	if cleaned == "." || strings.HasPrefix(cleaned, "..") || filepath.IsAbs(cleaned) {
		return "", storage.ErrNotFound
	}

	return filepath.Join(s.root, cleaned), nil
}
