package storage

import (
	"context"
)

// Store is a durable key-value store of opaque blobs.
// Get returns domain.ErrKeyNotFound for a missing key.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, keys ...string) error
	Ping(ctx context.Context) error
	Close() error
}
