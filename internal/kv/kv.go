package kv

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("key not found")

// Store abstracts flat key-value persistence.
// Implementations: in-memory (tests / dev), filesystem, or SQL (sqlite/postgres).
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
