package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/caffeinepub/task-queue/internal/backend/domain"
	"github.com/caffeinepub/task-queue/internal/backend/store"
	"github.com/caffeinepub/task-queue/internal/backend/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

func TestSQLiteBackendFlow(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	b := newSQLiteBackend(t)
	registerVerified(t, b, "alice@example.com")

	_, err := b.Workouts.Append(ctx, domain.WorkoutInput{ExerciseName: "Deadlift", Sets: 1, Reps: 5, WeightKg: 140})
	require.NoError(t, err)

	raw, ok, err := b.Store.Get(ctx, store.KeyWorkouts)
	require.NoError(t, err)
	require.True(t, ok)
	require.Contains(t, raw, `"sets":"1"`)

	entries, err := b.Leaderboard.Rank(ctx, "all_time", 3)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, int64(1), entries[0].WorkoutCount)
}

func TestSessionSurvivesRestart(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "backend.db")
	open := func() (*Backend, func()) {
		kv, err := sqlite.NewStore(path)
		require.NoError(t, err)
		require.NoError(t, kv.ApplyMigrations())
		return NewBackend(store.New(kv, nil).Namespace("ironclad_"), Options{}), func() { _ = kv.Close() }
	}

	b, closeFn := open()
	register(t, b, "alice@example.com")
	closeFn()

	b, closeFn = open()
	defer closeFn()

	u, err := b.Auth.GetProfile(ctx)
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", u.Email)
}
