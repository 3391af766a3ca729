package store

import (
	"context"
	"errors"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")

	// ErrStorage wraps every failure reported by a KV driver.
	ErrStorage = errors.New("store: storage failure")
)

// KV is the flat string key-value store every record lives in. Concrete
// drivers (memory, sqlite, badger) implement this.
type KV interface {
	// Get returns ok=false with no error when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set replaces the value at key. A single Set never leaves a partial
	// value behind.
	Set(ctx context.Context, key, value string) error

	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error

	// Ping verifies the backing storage is still usable.
	Ping(ctx context.Context) error

	// Close releases any underlying resources.
	Close() error
}
