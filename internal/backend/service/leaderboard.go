package service

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/caffeinepub/task-queue/internal/backend/domain"
	"github.com/caffeinepub/task-queue/internal/backend/store"
)

// LeaderboardService ranks every tenant by logged workouts. It needs no
// session.
type LeaderboardService struct {
	Identity *store.IdentityStore
	Workouts *store.RecordMap[[]domain.WorkoutLog]
}

// Rank returns at most topN entries ordered by workout count, highest
// first, ties broken by tenant key. The period is validated but every
// period currently counts all workouts.
func (s *LeaderboardService) Rank(ctx context.Context, period string, topN int) ([]domain.LeaderboardEntry, error) {
	if _, err := domain.ParsePeriod(period); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPeriod, err)
	}
	if topN <= 0 {
		return []domain.LeaderboardEntry{}, nil
	}

	users, err := s.Identity.All(ctx)
	if err != nil {
		return nil, err
	}
	workouts, err := s.Workouts.ReadAll(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.LeaderboardEntry, 0, len(users))
	for tenant, u := range users {
		entries = append(entries, domain.LeaderboardEntry{
			TenantKey:    tenant,
			DisplayName:  u.DisplayName,
			WorkoutCount: int64(len(workouts[tenant])),
			MemberSince:  u.CreatedAtNanos(),
		})
	}

	slices.SortFunc(entries, func(a, b domain.LeaderboardEntry) int {
		if c := cmp.Compare(b.WorkoutCount, a.WorkoutCount); c != 0 {
			return c
		}
		return cmp.Compare(a.TenantKey, b.TenantKey)
	})

	if len(entries) > topN {
		entries = entries[:topN]
	}
	return entries, nil
}
