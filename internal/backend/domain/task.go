package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
)

type TaskStatus string

const (
	TaskCompleted  TaskStatus = "completed"
	TaskPending    TaskStatus = "pending"
	TaskNotStarted TaskStatus = "not-started"
)

type TaskPriority string

const (
	PriorityHigh   TaskPriority = "high"
	PriorityMedium TaskPriority = "medium"
	PriorityLow    TaskPriority = "low"
)

type Task struct {
	ID          string       `json:"id"`
	UserID      string       `json:"userId"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Category    string       `json:"category"`
	Status      TaskStatus   `json:"status"`
	DueDate     string       `json:"dueDate"`
	Priority    TaskPriority `json:"priority"`
	CreatedAt   string       `json:"createdAt"` // RFC 3339
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return errors.New("title is required")
	}
	switch t.Status {
	case TaskCompleted, TaskPending, TaskNotStarted:
	default:
		return fmt.Errorf("unknown status %q", t.Status)
	}
	switch t.Priority {
	case PriorityHigh, PriorityMedium, PriorityLow:
	default:
		return fmt.Errorf("unknown priority %q", t.Priority)
	}
	return nil
}

// DefaultCategoryIcon is used for custom categories added without an icon
// and for categories stored in the legacy name-only form.
const DefaultCategoryIcon = "📁"

type CategoryEntry struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// UnmarshalJSON accepts both {"name","icon"} objects and bare name strings.
func (c *CategoryEntry) UnmarshalJSON(b []byte) error {
	var name string
	if err := json.Unmarshal(b, &name); err == nil {
		*c = CategoryEntry{Name: name, Icon: DefaultCategoryIcon}
		return nil
	}

	type plain CategoryEntry
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*c = CategoryEntry(p)
	return nil
}

// DefaultCategories are available to every tenant and cannot be removed.
func DefaultCategories() []CategoryEntry {
	return []CategoryEntry{
		{Name: "Work", Icon: "💼"},
		{Name: "Personal", Icon: "👤"},
		{Name: "Education", Icon: "📚"},
		{Name: "Household", Icon: "🏠"},
		{Name: "Shopping", Icon: "🛒"},
		{Name: "Health", Icon: "❤️"},
		{Name: "Other", Icon: "📌"},
	}
}

// IsBuiltinCategory reports whether name is one of DefaultCategories.
func IsBuiltinCategory(name string) bool {
	return slices.ContainsFunc(DefaultCategories(), func(c CategoryEntry) bool {
		return c.Name == name
	})
}
