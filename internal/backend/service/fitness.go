package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/caffeinepub/task-queue/internal/backend/domain"
	"github.com/caffeinepub/task-queue/internal/backend/store"
)

type OnboardingService struct {
	Gate    *SessionGate
	Answers *store.RecordMap[domain.OnboardingData]
}

// Save replaces the tenant's onboarding answers.
func (s *OnboardingService) Save(ctx context.Context, data domain.OnboardingData) error {
	tenant, err := s.Gate.RequireVerifiedSession(ctx)
	if err != nil {
		return err
	}
	return s.Answers.Put(ctx, tenant, data)
}

// Get returns ok=false when the tenant has not answered yet.
func (s *OnboardingService) Get(ctx context.Context) (domain.OnboardingData, bool, error) {
	tenant, err := s.Gate.RequireVerifiedSession(ctx)
	if err != nil {
		return domain.OnboardingData{}, false, err
	}
	return s.Answers.Get(ctx, tenant)
}

type WorkoutService struct {
	Gate *SessionGate
	Logs *store.RecordMap[[]domain.WorkoutLog]
	Now  func() time.Time
}

// Append logs a workout stamped with the current time.
func (s *WorkoutService) Append(ctx context.Context, in domain.WorkoutInput) (domain.WorkoutLog, error) {
	tenant, err := s.Gate.RequireVerifiedSession(ctx)
	if err != nil {
		return domain.WorkoutLog{}, err
	}
	if err := in.Validate(); err != nil {
		return domain.WorkoutLog{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}

	entry := domain.WorkoutLog{
		UserID:       tenant,
		ExerciseName: in.ExerciseName,
		MuscleGroup:  in.MuscleGroup,
		Sets:         in.Sets,
		Reps:         in.Reps,
		WeightKg:     in.WeightKg,
		Notes:        in.Notes,
		LoggedAt:     now().UnixMilli(),
	}

	err = s.Logs.Update(ctx, func(all map[string][]domain.WorkoutLog) error {
		all[tenant] = append(all[tenant], entry)
		return nil
	})
	if err != nil {
		return domain.WorkoutLog{}, err
	}
	return entry, nil
}

// List returns the tenant's workouts in logging order.
func (s *WorkoutService) List(ctx context.Context) ([]domain.WorkoutLog, error) {
	tenant, err := s.Gate.RequireVerifiedSession(ctx)
	if err != nil {
		return nil, err
	}
	logs, _, err := s.Logs.Get(ctx, tenant)
	if err != nil {
		return nil, err
	}
	return nonNil(logs), nil
}

// ListInRange returns workouts logged within [start, end], compared at
// millisecond precision. Without a session the result is empty rather than
// an error.
func (s *WorkoutService) ListInRange(ctx context.Context, start, end time.Time) ([]domain.WorkoutLog, error) {
	logs, err := s.List(ctx)
	if errors.Is(err, ErrNoSession) {
		return []domain.WorkoutLog{}, nil
	}
	if err != nil {
		return nil, err
	}

	lo, hi := start.UnixMilli(), end.UnixMilli()
	out := make([]domain.WorkoutLog, 0, len(logs))
	for _, l := range logs {
		if l.LoggedAt >= lo && l.LoggedAt <= hi {
			out = append(out, l)
		}
	}
	return out, nil
}

type ProgressService struct {
	Gate    *SessionGate
	Entries *store.RecordMap[[]domain.ProgressEntry]
}

// Append adds a body measurement entry.
func (s *ProgressService) Append(ctx context.Context, e domain.ProgressEntry) error {
	tenant, err := s.Gate.RequireVerifiedSession(ctx)
	if err != nil {
		return err
	}
	return s.Entries.Update(ctx, func(all map[string][]domain.ProgressEntry) error {
		all[tenant] = append(all[tenant], e)
		return nil
	})
}

func (s *ProgressService) List(ctx context.Context) ([]domain.ProgressEntry, error) {
	tenant, err := s.Gate.RequireVerifiedSession(ctx)
	if err != nil {
		return nil, err
	}
	entries, _, err := s.Entries.Get(ctx, tenant)
	if err != nil {
		return nil, err
	}
	return nonNil(entries), nil
}

type NotificationService struct {
	Gate  *SessionGate
	Prefs *store.RecordMap[domain.NotificationPreferences]
}

func (s *NotificationService) Save(ctx context.Context, p domain.NotificationPreferences) error {
	tenant, err := s.Gate.RequireVerifiedSession(ctx)
	if err != nil {
		return err
	}
	return s.Prefs.Put(ctx, tenant, p)
}

func (s *NotificationService) Get(ctx context.Context) (domain.NotificationPreferences, bool, error) {
	tenant, err := s.Gate.RequireVerifiedSession(ctx)
	if err != nil {
		return domain.NotificationPreferences{}, false, err
	}
	return s.Prefs.Get(ctx, tenant)
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
