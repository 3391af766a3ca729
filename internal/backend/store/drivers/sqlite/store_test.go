package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/caffeinepub/task-queue/internal/backend/store"
	"github.com/caffeinepub/task-queue/internal/backend/store/storetest"
	"github.com/stretchr/testify/require"
)

// newTestStore opens a migrated database in a temp file. A file rather than
// :memory: because every pooled connection to :memory: sees its own empty
// database.
func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := NewStore(filepath.Join(t.TempDir(), "kv.db"))
	require.NoError(t, err)
	require.NoError(t, s.ApplyMigrations())
	return s
}

func TestConformance(t *testing.T) {
	storetest.Run(t, func(t *testing.T) store.KV { return newTestStore(t) })
}

func TestApplyMigrationsIsIdempotent(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
}

func TestDataSurvivesReopen(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "kv.db")

	s, err := NewStore(path)
	require.NoError(t, err)
	require.NoError(t, s.ApplyMigrations())
	require.NoError(t, s.Set(ctx, "ironclad_session", "alice@example.com"))
	require.NoError(t, s.Close())

	s, err = NewStore(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.ApplyMigrations())

	v, ok, err := s.Get(ctx, "ironclad_session")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "alice@example.com", v)
}
