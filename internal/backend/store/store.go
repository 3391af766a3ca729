package store

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/caffeinepub/task-queue/pkg/slogx"
)

// Store is a prefixed view over a KV. Views created with Namespace share the
// underlying KV and the per-key locks, so two views that resolve to the same
// physical key serialise against each other.
type Store struct {
	kv     KV
	prefix string
	locks  *keyLocks
	log    *slog.Logger
}

// New wraps kv. A nil logger discards.
func New(kv KV, logger *slog.Logger) *Store {
	return &Store{
		kv:    kv,
		locks: newKeyLocks(),
		log:   slogx.OrDiscard(logger),
	}
}

// Namespace returns a view whose keys are additionally prefixed with p.
func (s *Store) Namespace(p string) *Store {
	return &Store{
		kv:     s.kv,
		prefix: s.prefix + p,
		locks:  s.locks,
		log:    s.log,
	}
}

// Prefix is the full key prefix of this view.
func (s *Store) Prefix() string { return s.prefix }

// Logger returns the logger storage warnings are written to.
func (s *Store) Logger() *slog.Logger { return s.log }

func (s *Store) fullKey(key string) string { return s.prefix + key }

// Get reads key. Absent keys return ok=false.
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	v, ok, err := s.kv.Get(ctx, s.fullKey(key))
	if err != nil {
		return "", false, fmt.Errorf("%w: get %s: %w", ErrStorage, key, err)
	}
	return v, ok, nil
}

// Set writes key.
func (s *Store) Set(ctx context.Context, key, value string) error {
	if err := s.kv.Set(ctx, s.fullKey(key), value); err != nil {
		return fmt.Errorf("%w: set %s: %w", ErrStorage, key, err)
	}
	return nil
}

// Remove deletes key.
func (s *Store) Remove(ctx context.Context, key string) error {
	if err := s.kv.Remove(ctx, s.fullKey(key)); err != nil {
		return fmt.Errorf("%w: remove %s: %w", ErrStorage, key, err)
	}
	return nil
}

// Lock acquires the mutex for key and returns its release func. The lock is
// not reentrant.
func (s *Store) Lock(key string) (unlock func()) {
	return s.locks.lock(s.fullKey(key))
}

// Ping checks the underlying KV.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.kv.Ping(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrStorage, err)
	}
	return nil
}

// Close closes the underlying KV. Every view shares it, so only the owner
// of the root Store should call this.
func (s *Store) Close() error { return s.kv.Close() }
