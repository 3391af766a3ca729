package service

import (
	"time"

	"github.com/caffeinepub/task-queue/internal/backend/domain"
	"github.com/caffeinepub/task-queue/internal/backend/store"
)

type Options struct {
	// RequireVerified blocks tenant data collections until the account has
	// confirmed its email.
	RequireVerified bool

	Now func() time.Time
}

// Backend wires every service over one Store view. Building one is cheap;
// all state lives in the store.
type Backend struct {
	Store    *store.Store
	Identity *store.IdentityStore
	Gate     *SessionGate

	Auth          *AuthService
	Onboarding    *OnboardingService
	Workouts      *WorkoutService
	Progress      *ProgressService
	Notifications *NotificationService
	Tasks         *TaskService
	Categories    *CategoryService
	Leaderboard   *LeaderboardService
}

func NewBackend(s *store.Store, opts Options) *Backend {
	identity := store.NewIdentityStore(s)
	gate := &SessionGate{Identity: identity, RequireVerified: opts.RequireVerified}

	onboarding := store.NewRecordMap[domain.OnboardingData](s, store.KeyOnboarding)
	workouts := store.NewRecordMap[[]domain.WorkoutLog](s, store.KeyWorkouts)
	progress := store.NewRecordMap[[]domain.ProgressEntry](s, store.KeyProgress)
	notif := store.NewRecordMap[domain.NotificationPreferences](s, store.KeyNotif)
	tasks := store.NewRecordMap[[]domain.Task](s, store.KeyTasks)
	categories := store.NewRecordMap[[]domain.CategoryEntry](s, store.KeyCategories)

	return &Backend{
		Store:    s,
		Identity: identity,
		Gate:     gate,
		Auth: &AuthService{
			Identity:    identity,
			Gate:        gate,
			Collections: []TenantCollection{onboarding, workouts, progress, notif, tasks, categories},
			Now:         opts.Now,
		},
		Onboarding:    &OnboardingService{Gate: gate, Answers: onboarding},
		Workouts:      &WorkoutService{Gate: gate, Logs: workouts, Now: opts.Now},
		Progress:      &ProgressService{Gate: gate, Entries: progress},
		Notifications: &NotificationService{Gate: gate, Prefs: notif},
		Tasks:         &TaskService{Gate: gate, Tasks: tasks, Now: opts.Now},
		Categories:    &CategoryService{Gate: gate, Custom: categories},
		Leaderboard:   &LeaderboardService{Identity: identity, Workouts: workouts},
	}
}
