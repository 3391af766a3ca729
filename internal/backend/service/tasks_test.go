package service

import (
	"context"
	"testing"

	"github.com/caffeinepub/task-queue/internal/backend/domain"
	"github.com/caffeinepub/task-queue/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTask(title string) domain.Task {
	return domain.Task{Title: title, Category: "Work", Status: domain.TaskNotStarted, Priority: domain.PriorityMedium}
}

func TestTasks(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	b := newTestBackend(t, Options{})
	registerVerified(t, b, "alice@example.com")

	saved, err := b.Tasks.Save(ctx, newTask("Write report"))
	require.NoError(t, err)
	_, err = idx.Parse(saved.ID)
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", saved.UserID)
	require.Equal(t, testNow.UTC().Format("2006-01-02T15:04:05Z07:00"), saved.CreatedAt)

	t.Run("save with existing id updates in place", func(t *testing.T) {
		update := saved
		update.Status = domain.TaskCompleted
		update.CreatedAt = ""

		got, err := b.Tasks.Save(ctx, update)
		require.NoError(t, err)
		require.Equal(t, saved.CreatedAt, got.CreatedAt)

		tasks, err := b.Tasks.List(ctx)
		require.NoError(t, err)
		require.Len(t, tasks, 1)
		require.Equal(t, domain.TaskCompleted, tasks[0].Status)
	})

	t.Run("invalid task", func(t *testing.T) {
		bad := newTask("x")
		bad.Priority = "urgent"
		_, err := b.Tasks.Save(ctx, bad)
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("delete", func(t *testing.T) {
		require.ErrorIs(t, b.Tasks.Delete(ctx, "missing"), ErrNotFound)
		require.NoError(t, b.Tasks.Delete(ctx, saved.ID))

		tasks, err := b.Tasks.List(ctx)
		require.NoError(t, err)
		require.Empty(t, tasks)
	})

	t.Run("set replaces the list", func(t *testing.T) {
		_, err := b.Tasks.Save(ctx, newTask("old"))
		require.NoError(t, err)

		out, err := b.Tasks.Set(ctx, []domain.Task{newTask("a"), newTask("b")})
		require.NoError(t, err)
		require.Len(t, out, 2)
		require.NotEqual(t, out[0].ID, out[1].ID)

		tasks, err := b.Tasks.List(ctx)
		require.NoError(t, err)
		require.Equal(t, out, tasks)

		dup := newTask("c")
		dup.ID = "same"
		_, err = b.Tasks.Set(ctx, []domain.Task{dup, dup})
		require.ErrorIs(t, err, ErrInvalidInput)

		tasks, err = b.Tasks.List(ctx)
		require.NoError(t, err)
		require.Equal(t, out, tasks, "failed set leaves tasks untouched")
	})
}

func TestCategories(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	b := newTestBackend(t, Options{})
	registerVerified(t, b, "alice@example.com")

	cats, err := b.Categories.List(ctx)
	require.NoError(t, err)
	require.Equal(t, domain.DefaultCategories(), cats)

	require.NoError(t, b.Categories.Add(ctx, "Garden", ""))
	require.NoError(t, b.Categories.Add(ctx, "Garden", "🌱"))
	require.NoError(t, b.Categories.Add(ctx, "Work", "🔥"))
	require.NoError(t, b.Categories.Add(ctx, "Gym", "🏋️"))
	require.ErrorIs(t, b.Categories.Add(ctx, "  ", ""), ErrInvalidInput)

	cats, err = b.Categories.List(ctx)
	require.NoError(t, err)
	require.Len(t, cats, len(domain.DefaultCategories())+2)
	require.Equal(t, domain.CategoryEntry{Name: "Garden", Icon: domain.DefaultCategoryIcon}, cats[len(cats)-2])
	require.Equal(t, domain.CategoryEntry{Name: "Gym", Icon: "🏋️"}, cats[len(cats)-1])

	t.Run("built-ins cannot be deleted", func(t *testing.T) {
		require.ErrorIs(t, b.Categories.Delete(ctx, "Work"), ErrBuiltinCategory)
	})

	t.Run("delete keeps tasks filed under it", func(t *testing.T) {
		task := newTask("Plant tomatoes")
		task.Category = "Garden"
		_, err := b.Tasks.Save(ctx, task)
		require.NoError(t, err)

		require.NoError(t, b.Categories.Delete(ctx, "Garden"))
		require.NoError(t, b.Categories.Delete(ctx, "Garden"))

		cats, err := b.Categories.List(ctx)
		require.NoError(t, err)
		require.Len(t, cats, len(domain.DefaultCategories())+1)

		tasks, err := b.Tasks.List(ctx)
		require.NoError(t, err)
		require.Equal(t, "Garden", tasks[len(tasks)-1].Category)
	})

	t.Run("delete trims like add", func(t *testing.T) {
		require.NoError(t, b.Categories.Add(ctx, " Pond ", ""))
		require.NoError(t, b.Categories.Delete(ctx, " Pond "))
		require.ErrorIs(t, b.Categories.Delete(ctx, " Work "), ErrBuiltinCategory)

		cats, err := b.Categories.List(ctx)
		require.NoError(t, err)
		require.NotContains(t, cats, domain.CategoryEntry{Name: "Pond", Icon: domain.DefaultCategoryIcon})
		require.Len(t, cats, len(domain.DefaultCategories())+1)
	})

	t.Run("legacy name-only storage", func(t *testing.T) {
		fresh := newTestBackend(t, Options{})
		registerVerified(t, fresh, "carol@example.com")
		require.NoError(t, fresh.Store.Set(ctx, "categories", `{"carol@example.com":["Books"]}`))

		cats, err := fresh.Categories.List(ctx)
		require.NoError(t, err)
		require.Equal(t, domain.CategoryEntry{Name: "Books", Icon: domain.DefaultCategoryIcon}, cats[len(cats)-1])
	})
}
