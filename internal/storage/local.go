// internal/storage/local.go
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/oklog/ulid/v2"
)

// LocalStore writes images to a directory served under /uploads when blob
// storage is disabled.
type LocalStore struct {
	dir     string
	baseURL string
}

func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &LocalStore{dir: dir, baseURL: "/uploads"}, nil
}

// Dir returns the directory static files are served from.
func (s *LocalStore) Dir() string {
	return s.dir
}

func (s *LocalStore) Save(ctx context.Context, up Upload) (*StoredImage, error) {
	key := ulid.Make().String() + safeExt(up.Filename)

	f, err := os.Create(filepath.Join(s.dir, key))
	if err != nil {
		return nil, fmt.Errorf("failed to create upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, up.Data); err != nil {
		os.Remove(f.Name())
		return nil, fmt.Errorf("failed to write upload file: %w", err)
	}

	return &StoredImage{URL: s.baseURL + "/" + key, Key: key}, nil
}

func (s *LocalStore) Delete(ctx context.Context, key string) error {
	// The key is generated server-side, but never trust it as a path.
	if key != filepath.Base(key) {
		return fmt.Errorf("invalid storage key %q", key)
	}
	if err := os.Remove(filepath.Join(s.dir, key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete upload file: %w", err)
	}
	return nil
}

func safeExt(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp":
		return ext
	}
	return ".jpg"
}
