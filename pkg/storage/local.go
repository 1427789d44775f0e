package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/saramhq/aegis/pkg/config"
)

// LocalStore writes artefacts under a directory served as static files.
type LocalStore struct {
	dir     string
	baseURL string
}

// NewLocalStore creates the filesystem adapter.
func NewLocalStore(cfg config.StorageConfig) *LocalStore {
	return &LocalStore{
		dir:     cfg.LocalDir,
		baseURL: strings.TrimSuffix(cfg.PublicBaseURL, "/"),
	}
}

// Put implements Store.
func (s *LocalStore) Put(_ context.Context, key string, data []byte, _ string) (string, error) {
	dest := filepath.Join(s.dir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return "", fmt.Errorf("create asset directory: %w", err)
	}
	if err := os.WriteFile(dest, data, 0o644); err != nil {
		return "", fmt.Errorf("write asset %s: %w", key, err)
	}
	return s.baseURL + "/" + key, nil
}
