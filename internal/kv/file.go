package kv

import (
	"context"
	"errors"
	"net/url"
	"os"
	"path/filepath"
)

type fileStore struct{ base string }

// NewFileStore returns a Store keeping one JSON file per key under base.
func NewFileStore(base string) (Store, error) {
	if base == "" {
		base = "./data"
	}
	if err := os.MkdirAll(base, 0o755); err != nil {
		return nil, err
	}
	return &fileStore{base: base}, nil
}

func (s *fileStore) path(key string) string {
	// keys may contain separators ("progress:<id>"); escape to one flat name
	return filepath.Join(s.base, url.PathEscape(key)+".json")
}

func (s *fileStore) Get(_ context.Context, key string) ([]byte, error) {
	b, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (s *fileStore) Put(_ context.Context, key string, value []byte) error {
	return os.WriteFile(s.path(key), value, 0o644)
}

func (s *fileStore) Delete(_ context.Context, key string) error {
	if err := os.Remove(s.path(key)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
