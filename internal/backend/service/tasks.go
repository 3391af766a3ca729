package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/caffeinepub/task-queue/internal/backend/domain"
	"github.com/caffeinepub/task-queue/internal/backend/store"
	"github.com/caffeinepub/task-queue/pkg/idx"
)

type TaskService struct {
	Gate  *SessionGate
	Tasks *store.RecordMap[[]domain.Task]
	Now   func() time.Time
}

func (s *TaskService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *TaskService) List(ctx context.Context) ([]domain.Task, error) {
	tenant, err := s.Gate.RequireVerifiedSession(ctx)
	if err != nil {
		return nil, err
	}
	tasks, _, err := s.Tasks.Get(ctx, tenant)
	if err != nil {
		return nil, err
	}
	return nonNil(tasks), nil
}

// Set replaces the tenant's whole task list. Tasks without an id get one.
func (s *TaskService) Set(ctx context.Context, tasks []domain.Task) ([]domain.Task, error) {
	tenant, err := s.Gate.RequireVerifiedSession(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Task, 0, len(tasks))
	seen := make(map[string]struct{}, len(tasks))
	for _, t := range tasks {
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		t = s.stamp(tenant, t)
		if _, dup := seen[t.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate task id %s", ErrInvalidInput, t.ID)
		}
		seen[t.ID] = struct{}{}
		out = append(out, t)
	}

	if err := s.Tasks.Put(ctx, tenant, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Save inserts t, or replaces the task with the same id keeping its
// original creation time.
func (s *TaskService) Save(ctx context.Context, t domain.Task) (domain.Task, error) {
	tenant, err := s.Gate.RequireVerifiedSession(ctx)
	if err != nil {
		return domain.Task{}, err
	}
	if err := t.Validate(); err != nil {
		return domain.Task{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	err = s.Tasks.Update(ctx, func(all map[string][]domain.Task) error {
		tasks := all[tenant]
		i := slices.IndexFunc(tasks, func(x domain.Task) bool { return t.ID != "" && x.ID == t.ID })
		if i >= 0 {
			t.CreatedAt = tasks[i].CreatedAt
			t = s.stamp(tenant, t)
			tasks[i] = t
		} else {
			t = s.stamp(tenant, t)
			tasks = append(tasks, t)
		}
		all[tenant] = tasks
		return nil
	})
	if err != nil {
		return domain.Task{}, err
	}
	return t, nil
}

// Delete removes the task with id.
func (s *TaskService) Delete(ctx context.Context, id string) error {
	tenant, err := s.Gate.RequireVerifiedSession(ctx)
	if err != nil {
		return err
	}

	return s.Tasks.Update(ctx, func(all map[string][]domain.Task) error {
		tasks := all[tenant]
		i := slices.IndexFunc(tasks, func(x domain.Task) bool { return x.ID == id })
		if i < 0 {
			return ErrNotFound
		}
		all[tenant] = slices.Delete(tasks, i, i+1)
		return nil
	})
}

func (s *TaskService) stamp(tenant string, t domain.Task) domain.Task {
	if strings.TrimSpace(t.ID) == "" {
		t.ID = idx.New().String()
	}
	if t.CreatedAt == "" {
		t.CreatedAt = s.now().UTC().Format(time.RFC3339)
	}
	t.UserID = tenant
	return t
}

type CategoryService struct {
	Gate   *SessionGate
	Custom *store.RecordMap[[]domain.CategoryEntry]
}

// List returns the built-in categories followed by the tenant's own.
func (s *CategoryService) List(ctx context.Context) ([]domain.CategoryEntry, error) {
	tenant, err := s.Gate.RequireVerifiedSession(ctx)
	if err != nil {
		return nil, err
	}
	custom, _, err := s.Custom.Get(ctx, tenant)
	if err != nil {
		return nil, err
	}
	return append(domain.DefaultCategories(), custom...), nil
}

// Add creates a custom category. Adding an existing name is a no-op.
func (s *CategoryService) Add(ctx context.Context, name, icon string) error {
	tenant, err := s.Gate.RequireVerifiedSession(ctx)
	if err != nil {
		return err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: category name is required", ErrInvalidInput)
	}
	if domain.IsBuiltinCategory(name) {
		return nil
	}
	if strings.TrimSpace(icon) == "" {
		icon = domain.DefaultCategoryIcon
	}

	return s.Custom.Update(ctx, func(all map[string][]domain.CategoryEntry) error {
		custom := all[tenant]
		if slices.ContainsFunc(custom, func(c domain.CategoryEntry) bool { return c.Name == name }) {
			return nil
		}
		all[tenant] = append(custom, domain.CategoryEntry{Name: name, Icon: icon})
		return nil
	})
}

// Delete removes a custom category. Tasks filed under it keep the name.
func (s *CategoryService) Delete(ctx context.Context, name string) error {
	tenant, err := s.Gate.RequireVerifiedSession(ctx)
	if err != nil {
		return err
	}

	name = strings.TrimSpace(name)
	if domain.IsBuiltinCategory(name) {
		return ErrBuiltinCategory
	}

	return s.Custom.Update(ctx, func(all map[string][]domain.CategoryEntry) error {
		all[tenant] = slices.DeleteFunc(all[tenant], func(c domain.CategoryEntry) bool {
			return c.Name == name
		})
		return nil
	})
}
