package service

import (
	"context"
	"testing"
	"time"

	"github.com/caffeinepub/task-queue/internal/backend/domain"
	"github.com/stretchr/testify/require"
)

func TestWorkouts(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	now := testNow
	b := newTestBackend(t, Options{Now: func() time.Time { return now }})
	registerVerified(t, b, "alice@example.com")

	logs, err := b.Workouts.List(ctx)
	require.NoError(t, err)
	require.NotNil(t, logs)
	require.Empty(t, logs)

	first, err := b.Workouts.Append(ctx, domain.WorkoutInput{ExerciseName: "Squat", MuscleGroup: "Legs", Sets: 3, Reps: 10, WeightKg: 80})
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", first.UserID)
	require.Equal(t, now.UnixMilli(), first.LoggedAt)

	now = now.Add(time.Hour)
	_, err = b.Workouts.Append(ctx, domain.WorkoutInput{ExerciseName: "Bench", Sets: 5, Reps: 5})
	require.NoError(t, err)

	logs, err = b.Workouts.List(ctx)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	require.Equal(t, "Squat", logs[0].ExerciseName)
	require.Equal(t, "Bench", logs[1].ExerciseName)

	t.Run("invalid input", func(t *testing.T) {
		_, err := b.Workouts.Append(ctx, domain.WorkoutInput{})
		require.ErrorIs(t, err, ErrInvalidInput)
		_, err = b.Workouts.Append(ctx, domain.WorkoutInput{ExerciseName: "x", Sets: -1})
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("range bounds are inclusive", func(t *testing.T) {
		got, err := b.Workouts.ListInRange(ctx, testNow, testNow)
		require.NoError(t, err)
		require.Len(t, got, 1)

		got, err = b.Workouts.ListInRange(ctx, testNow, testNow.Add(time.Hour))
		require.NoError(t, err)
		require.Len(t, got, 2)

		got, err = b.Workouts.ListInRange(ctx, testNow.Add(time.Millisecond), testNow.Add(time.Hour-time.Millisecond))
		require.NoError(t, err)
		require.Empty(t, got)

		got, err = b.Workouts.ListInRange(ctx, testNow.Add(time.Hour), testNow)
		require.NoError(t, err)
		require.Empty(t, got)
	})

	t.Run("range without session is empty", func(t *testing.T) {
		other := newTestBackend(t, Options{})
		got, err := other.Workouts.ListInRange(ctx, time.UnixMilli(0), testNow.Add(time.Hour))
		require.NoError(t, err)
		require.NotNil(t, got)
		require.Empty(t, got)
	})
}

func TestTenantIsolation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	b := newTestBackend(t, Options{})

	registerVerified(t, b, "alice@example.com")
	_, err := b.Workouts.Append(ctx, domain.WorkoutInput{ExerciseName: "Squat"})
	require.NoError(t, err)
	require.NoError(t, b.Notifications.Save(ctx, domain.NotificationPreferences{MealReminders: true}))

	registerVerified(t, b, "bob@example.com")

	logs, err := b.Workouts.List(ctx)
	require.NoError(t, err)
	require.Empty(t, logs)

	_, ok, err := b.Notifications.Get(ctx)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, b.Auth.Login(ctx, "alice@example.com", "hash-alice@example.com"))
	logs, err = b.Workouts.List(ctx)
	require.NoError(t, err)
	require.Len(t, logs, 1)
}

func TestOnboardingAndNotifications(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	b := newTestBackend(t, Options{})
	registerVerified(t, b, "alice@example.com")

	_, ok, err := b.Onboarding.Get(ctx)
	require.NoError(t, err)
	require.False(t, ok)

	answers := domain.OnboardingData{Age: 31, Weight: 70.5, PrimaryGoal: "strength", MealsPerDay: 3}
	require.NoError(t, b.Onboarding.Save(ctx, answers))
	answers.Age = 32
	require.NoError(t, b.Onboarding.Save(ctx, answers))

	got, ok, err := b.Onboarding.Get(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, answers, got)

	prefs := domain.NotificationPreferences{WorkoutReminders: true, ReminderTime: "06:30"}
	require.NoError(t, b.Notifications.Save(ctx, prefs))
	gotPrefs, ok, err := b.Notifications.Get(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, prefs, gotPrefs)
}

func TestProgress(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	b := newTestBackend(t, Options{})
	registerVerified(t, b, "alice@example.com")

	require.NoError(t, b.Progress.Append(ctx, domain.ProgressEntry{Date: "2024-01-01", WeightKg: 80}))
	require.NoError(t, b.Progress.Append(ctx, domain.ProgressEntry{Date: "2024-02-01", WeightKg: 78}))

	entries, err := b.Progress.List(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"2024-01-01", "2024-02-01"}, []string{entries[0].Date, entries[1].Date})
}

func TestRequireVerifiedPolicy(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	b := newTestBackend(t, Options{RequireVerified: true})
	register(t, b, "alice@example.com")

	_, err := b.Workouts.List(ctx)
	require.ErrorIs(t, err, ErrUnverified)
	require.ErrorIs(t, b.Onboarding.Save(ctx, domain.OnboardingData{}), ErrUnverified)

	_, err = b.Workouts.ListInRange(ctx, time.UnixMilli(0), testNow)
	require.ErrorIs(t, err, ErrUnverified)

	// Account operations stay reachable.
	_, err = b.Auth.GetProfile(ctx)
	require.NoError(t, err)
	code, err := b.Auth.GenerateVerificationCode(ctx)
	require.NoError(t, err)
	require.NoError(t, b.Auth.ConfirmVerification(ctx, code))

	_, err = b.Workouts.List(ctx)
	require.NoError(t, err)
}
