package backendsdk

import (
	"context"
	"net/http"
	"net/url"
)

func (o *Origin) ListTasks(ctx context.Context) ([]Task, error) {
	resp, err := o.do(ctx, http.MethodGet, "/v1/tasks", nil)
	if err != nil {
		return nil, err
	}

	var out TasksResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Tasks, nil
}

// SaveTask creates the task, or replaces the task with the same ID.
func (o *Origin) SaveTask(ctx context.Context, task Task) (*Task, error) {
	resp, err := o.do(ctx, http.MethodPost, "/v1/tasks", task)
	if err != nil {
		return nil, err
	}

	var out Task
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ReplaceTasks overwrites the whole task list.
func (o *Origin) ReplaceTasks(ctx context.Context, tasks []Task) ([]Task, error) {
	resp, err := o.do(ctx, http.MethodPut, "/v1/tasks", TasksResponse{Tasks: tasks})
	if err != nil {
		return nil, err
	}

	var out TasksResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Tasks, nil
}

func (o *Origin) DeleteTask(ctx context.Context, id string) error {
	resp, err := o.do(ctx, http.MethodDelete, "/v1/tasks/"+url.PathEscape(id), nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

func (o *Origin) ListCategories(ctx context.Context) ([]Category, error) {
	resp, err := o.do(ctx, http.MethodGet, "/v1/categories", nil)
	if err != nil {
		return nil, err
	}

	var out CategoriesResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Categories, nil
}

func (o *Origin) AddCategory(ctx context.Context, name, icon string) error {
	resp, err := o.do(ctx, http.MethodPost, "/v1/categories", AddCategoryRequest{Name: name, Icon: icon})
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

func (o *Origin) DeleteCategory(ctx context.Context, name string) error {
	resp, err := o.do(ctx, http.MethodDelete, "/v1/categories/"+url.PathEscape(name), nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}
