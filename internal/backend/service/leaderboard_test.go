package service

import (
	"context"
	"testing"

	"github.com/caffeinepub/task-queue/internal/backend/domain"
	"github.com/stretchr/testify/require"
)

func TestLeaderboard(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	b := newTestBackend(t, Options{})
	logWorkouts := func(email string, n int) {
		registerVerified(t, b, email)
		for range n {
			_, err := b.Workouts.Append(ctx, domain.WorkoutInput{ExerciseName: "Run"})
			require.NoError(t, err)
		}
	}
	logWorkouts("carol@example.com", 2)
	logWorkouts("alice@example.com", 5)
	logWorkouts("bob@example.com", 2)
	logWorkouts("dave@example.com", 0)
	require.NoError(t, b.Auth.Logout(ctx))

	t.Run("ranked by count then tenant, no session needed", func(t *testing.T) {
		entries, err := b.Leaderboard.Rank(ctx, "all_time", 10)
		require.NoError(t, err)

		var order []string
		for _, e := range entries {
			order = append(order, e.TenantKey)
		}
		require.Equal(t, []string{"alice@example.com", "bob@example.com", "carol@example.com", "dave@example.com"}, order)
		require.Equal(t, int64(5), entries[0].WorkoutCount)
		require.Equal(t, int64(0), entries[3].WorkoutCount)
		require.Equal(t, testNow.UnixNano(), entries[0].MemberSince)
		require.Equal(t, "alice@example.com", entries[0].DisplayName)
	})

	t.Run("top n", func(t *testing.T) {
		entries, err := b.Leaderboard.Rank(ctx, "week", 2)
		require.NoError(t, err)
		require.Len(t, entries, 2)

		for _, n := range []int{0, -1} {
			entries, err = b.Leaderboard.Rank(ctx, "month", n)
			require.NoError(t, err)
			require.NotNil(t, entries)
			require.Empty(t, entries)
		}
	})

	t.Run("period does not change counts", func(t *testing.T) {
		all, err := b.Leaderboard.Rank(ctx, "all_time", 10)
		require.NoError(t, err)
		week, err := b.Leaderboard.Rank(ctx, "week", 10)
		require.NoError(t, err)
		require.Equal(t, all, week)
	})

	t.Run("unknown period", func(t *testing.T) {
		_, err := b.Leaderboard.Rank(ctx, "decade", 10)
		require.ErrorIs(t, err, ErrInvalidPeriod)
	})
}

func TestLeaderboardEmpty(t *testing.T) {
	t.Parallel()

	b := newTestBackend(t, Options{})
	entries, err := b.Leaderboard.Rank(context.Background(), "", 5)
	require.NoError(t, err)
	require.Empty(t, entries)
}
