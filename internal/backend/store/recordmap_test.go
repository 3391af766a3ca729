package store

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/caffeinepub/task-queue/internal/backend/domain"
	"github.com/caffeinepub/task-queue/internal/backend/store/drivers/memory"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, KV) {
	t.Helper()

	kv := memory.NewStore()
	t.Cleanup(func() { _ = kv.Close() })
	return New(kv, nil), kv
}

func TestRecordMapReadAll(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	for name, raw := range map[string]*string{
		"absent":     nil,
		"malformed":  ptr("{not json"),
		"null":       ptr("null"),
		"empty":      ptr(""),
		"wrong type": ptr(`[1,2,3]`),
	} {
		t.Run(name, func(t *testing.T) {
			s, kv := newTestStore(t)
			if raw != nil {
				require.NoError(t, kv.Set(ctx, KeyNotif, *raw))
			}

			all, err := NewRecordMap[domain.NotificationPreferences](s, KeyNotif).ReadAll(ctx)
			require.NoError(t, err)
			require.NotNil(t, all)
			require.Empty(t, all)
		})
	}
}

func TestRecordMapUpdate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("writes result", func(t *testing.T) {
		s, kv := newTestStore(t)
		m := NewRecordMap[domain.NotificationPreferences](s, KeyNotif)

		require.NoError(t, m.Put(ctx, "a@b.c", domain.NotificationPreferences{ReminderTime: "07:00"}))

		raw, _, err := kv.Get(ctx, KeyNotif)
		require.NoError(t, err)
		require.JSONEq(t, `{"a@b.c":{"workoutReminders":false,"mealReminders":false,"hydrationReminders":false,"reminderTime":"07:00"}}`, raw)
	})

	t.Run("failing fn writes nothing", func(t *testing.T) {
		s, kv := newTestStore(t)
		m := NewRecordMap[[]domain.ProgressEntry](s, KeyProgress)
		require.NoError(t, m.Put(ctx, "a@b.c", []domain.ProgressEntry{{Date: "2024-01-01"}}))

		before, _, err := kv.Get(ctx, KeyProgress)
		require.NoError(t, err)

		boom := errors.New("boom")
		err = m.Update(ctx, func(all map[string][]domain.ProgressEntry) error {
			all["a@b.c"] = nil
			all["x@y.z"] = []domain.ProgressEntry{{}}
			return boom
		})
		require.ErrorIs(t, err, boom)

		after, _, err := kv.Get(ctx, KeyProgress)
		require.NoError(t, err)
		require.Equal(t, before, after)
	})

	t.Run("replaces malformed data", func(t *testing.T) {
		s, kv := newTestStore(t)
		require.NoError(t, kv.Set(ctx, KeyProgress, "garbage"))

		m := NewRecordMap[[]domain.ProgressEntry](s, KeyProgress)
		require.NoError(t, m.Put(ctx, "a@b.c", []domain.ProgressEntry{{Date: "2024-01-01"}}))

		got, ok, err := m.Get(ctx, "a@b.c")
		require.NoError(t, err)
		require.True(t, ok)
		require.Len(t, got, 1)
	})
}

func TestRecordMapReturnsCopies(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s, _ := newTestStore(t)
	m := NewRecordMap[[]domain.ProgressEntry](s, KeyProgress)
	require.NoError(t, m.Put(ctx, "a@b.c", []domain.ProgressEntry{{Notes: "first"}}))

	got, _, err := m.Get(ctx, "a@b.c")
	require.NoError(t, err)
	got[0].Notes = "mutated"

	again, _, err := m.Get(ctx, "a@b.c")
	require.NoError(t, err)
	require.Equal(t, "first", again[0].Notes)
}

func TestRecordMapDelete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s, _ := newTestStore(t)
	m := NewRecordMap[domain.OnboardingData](s, KeyOnboarding)

	require.NoError(t, m.Put(ctx, "a@b.c", domain.OnboardingData{Age: 30}))
	require.NoError(t, m.Put(ctx, "x@y.z", domain.OnboardingData{Age: 40}))
	require.NoError(t, m.Delete(ctx, "a@b.c"))
	require.NoError(t, m.Delete(ctx, "missing@b.c"))

	all, err := m.ReadAll(ctx)
	require.NoError(t, err)
	require.Equal(t, map[string]domain.OnboardingData{"x@y.z": {Age: 40}}, all)
}

func ptr(s string) *string { return &s }

func TestRecordMapEncodeFailureIsStorageError(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s, kv := newTestStore(t)
	require.NoError(t, kv.Set(ctx, "weights", `{"a@example.com":1.5}`))

	m := NewRecordMap[float64](s, "weights")
	err := m.Put(ctx, "b@example.com", math.NaN())
	require.ErrorIs(t, err, ErrStorage)

	raw, _, err := kv.Get(ctx, "weights")
	require.NoError(t, err)
	require.JSONEq(t, `{"a@example.com":1.5}`, raw, "failed write leaves stored map alone")
}
