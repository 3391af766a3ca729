package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTenantKey(t *testing.T) {
	t.Parallel()

	require.Equal(t, "alice@example.com", TenantKey("  Alice@Example.COM\n"))
	require.Equal(t, "", TenantKey("   "))
}

func TestCreatedAtNanos(t *testing.T) {
	t.Parallel()

	u := UserRecord{CreatedAt: 1700000000123}
	require.Equal(t, int64(1700000000123000000), u.CreatedAtNanos())
}

func TestWorkoutLogStoredForm(t *testing.T) {
	t.Parallel()

	raw := `{"userId":"a@b.c","exerciseName":"Squat","muscleGroup":"Legs","sets":"3","reps":"10","weightKg":80.5,"notes":"","loggedAt":"1700000000000"}`

	var w WorkoutLog
	require.NoError(t, json.Unmarshal([]byte(raw), &w))
	require.Equal(t, int64(3), w.Sets)
	require.Equal(t, int64(10), w.Reps)
	require.Equal(t, int64(1700000000000), w.LoggedAt)

	out, err := json.Marshal(w)
	require.NoError(t, err)
	require.JSONEq(t, raw, string(out))
}

func TestCategoryEntryLegacyForm(t *testing.T) {
	t.Parallel()

	var got []CategoryEntry
	require.NoError(t, json.Unmarshal([]byte(`["Garden",{"name":"Gym","icon":"🏋️"}]`), &got))
	require.Equal(t, []CategoryEntry{
		{Name: "Garden", Icon: DefaultCategoryIcon},
		{Name: "Gym", Icon: "🏋️"},
	}, got)
}

func TestIsBuiltinCategory(t *testing.T) {
	t.Parallel()

	for _, c := range DefaultCategories() {
		require.True(t, IsBuiltinCategory(c.Name), c.Name)
	}
	require.False(t, IsBuiltinCategory("work"))
	require.False(t, IsBuiltinCategory("Garden"))
}

func TestTaskValidate(t *testing.T) {
	t.Parallel()

	ok := Task{Title: "Ship", Status: TaskPending, Priority: PriorityHigh}
	require.NoError(t, ok.Validate())

	t.Run("missing title", func(t *testing.T) {
		bad := ok
		bad.Title = " "
		require.Error(t, bad.Validate())
	})

	t.Run("unknown status", func(t *testing.T) {
		bad := ok
		bad.Status = "done"
		require.Error(t, bad.Validate())
	})

	t.Run("unknown priority", func(t *testing.T) {
		bad := ok
		bad.Priority = "urgent"
		require.Error(t, bad.Validate())
	})
}

func TestParsePeriod(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]Period{
		"":         PeriodAllTime,
		"all_time": PeriodAllTime,
		"month":    PeriodMonth,
		"week":     PeriodWeek,
	} {
		got, err := ParsePeriod(in)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	_, err := ParsePeriod("year")
	require.Error(t, err)
}
