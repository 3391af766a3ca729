package http

import (
	"github.com/caffeinepub/task-queue/internal/backend/domain"
	"github.com/caffeinepub/task-queue/pkg/backendsdk"
)

// Conversions between stored records and API types. Secrets on the user
// record never leave this package.

func toProfile(u domain.UserRecord) backendsdk.Profile {
	return backendsdk.Profile{
		FirstName:              u.FirstName,
		LastName:               u.LastName,
		DisplayName:            u.DisplayName,
		Email:                  u.Email,
		IsVerified:             u.IsVerified,
		HasCompletedOnboarding: u.HasCompletedOnboarding,
		CreatedAt:              u.CreatedAtNanos(),
	}
}

func toWorkoutLog(w domain.WorkoutLog) backendsdk.WorkoutLog {
	return backendsdk.WorkoutLog{
		ExerciseName: w.ExerciseName,
		MuscleGroup:  w.MuscleGroup,
		Sets:         w.Sets,
		Reps:         w.Reps,
		WeightKg:     w.WeightKg,
		Notes:        w.Notes,
		LoggedAt:     w.LoggedAt,
	}
}

func toWorkoutLogs(in []domain.WorkoutLog) []backendsdk.WorkoutLog {
	out := make([]backendsdk.WorkoutLog, len(in))
	for i, w := range in {
		out[i] = toWorkoutLog(w)
	}
	return out
}

func toTask(t domain.Task) backendsdk.Task {
	return backendsdk.Task{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Category:    t.Category,
		Status:      string(t.Status),
		DueDate:     t.DueDate,
		Priority:    string(t.Priority),
		CreatedAt:   t.CreatedAt,
	}
}

func toTasks(in []domain.Task) []backendsdk.Task {
	out := make([]backendsdk.Task, len(in))
	for i, t := range in {
		out[i] = toTask(t)
	}
	return out
}

// fromTask leaves UserID empty; the service stamps the owner.
func fromTask(t backendsdk.Task) domain.Task {
	return domain.Task{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Category:    t.Category,
		Status:      domain.TaskStatus(t.Status),
		DueDate:     t.DueDate,
		Priority:    domain.TaskPriority(t.Priority),
		CreatedAt:   t.CreatedAt,
	}
}
