package store

import (
	"context"
	"encoding/json"
	"fmt"
)

// RecordMap stores a map of tenant key to T as a single JSON document under
// one storage key. Every read decodes a fresh copy, so callers never share
// state with storage.
type RecordMap[T any] struct {
	store *Store
	key   string
}

// NewRecordMap binds a RecordMap to key within s.
func NewRecordMap[T any](s *Store, key string) *RecordMap[T] {
	return &RecordMap[T]{store: s, key: key}
}

// Key is the storage key, without the Store prefix.
func (m *RecordMap[T]) Key() string { return m.key }

// ReadAll returns the whole map. Absent or malformed data reads as empty.
func (m *RecordMap[T]) ReadAll(ctx context.Context) (map[string]T, error) {
	raw, ok, err := m.store.Get(ctx, m.key)
	if err != nil {
		return nil, err
	}
	if !ok || raw == "" {
		return map[string]T{}, nil
	}

	var out map[string]T
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		m.store.log.WarnContext(ctx, "discarding malformed record map",
			"key", m.store.fullKey(m.key),
			"err", err,
		)
		return map[string]T{}, nil
	}
	if out == nil {
		out = map[string]T{}
	}
	return out, nil
}

// WriteAll replaces the stored map with all.
func (m *RecordMap[T]) WriteAll(ctx context.Context, all map[string]T) error {
	unlock := m.store.Lock(m.key)
	defer unlock()
	return m.write(ctx, all)
}

func (m *RecordMap[T]) write(ctx context.Context, all map[string]T) error {
	if all == nil {
		all = map[string]T{}
	}
	b, err := json.Marshal(all)
	if err != nil {
		return fmt.Errorf("%w: encode %s: %w", ErrStorage, m.key, err)
	}
	return m.store.Set(ctx, m.key, string(b))
}

// Get returns the entry for tenant.
func (m *RecordMap[T]) Get(ctx context.Context, tenant string) (T, bool, error) {
	all, err := m.ReadAll(ctx)
	if err != nil {
		var zero T
		return zero, false, err
	}
	v, ok := all[tenant]
	return v, ok, nil
}

// Update runs fn over the current map and writes the result, holding the
// key lock across the read and the write. If fn fails nothing is written.
func (m *RecordMap[T]) Update(ctx context.Context, fn func(all map[string]T) error) error {
	unlock := m.store.Lock(m.key)
	defer unlock()

	all, err := m.ReadAll(ctx)
	if err != nil {
		return err
	}
	if err := fn(all); err != nil {
		return err
	}
	return m.write(ctx, all)
}

// Put sets the entry for tenant.
func (m *RecordMap[T]) Put(ctx context.Context, tenant string, v T) error {
	return m.Update(ctx, func(all map[string]T) error {
		all[tenant] = v
		return nil
	})
}

// Delete removes the entry for tenant. Absent entries are not an error.
func (m *RecordMap[T]) Delete(ctx context.Context, tenant string) error {
	unlock := m.store.Lock(m.key)
	defer unlock()

	all, err := m.ReadAll(ctx)
	if err != nil {
		return err
	}
	if _, ok := all[tenant]; !ok {
		return nil
	}
	delete(all, tenant)
	return m.write(ctx, all)
}
