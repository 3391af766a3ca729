package http

import (
	"net/http"

	"github.com/caffeinepub/task-queue/internal/backend/domain"
	"github.com/caffeinepub/task-queue/internal/backend/service"
	"github.com/caffeinepub/task-queue/pkg/backendsdk"
	"github.com/caffeinepub/task-queue/pkg/httpx"
)

// TasksHandler serves the task queue collections of the signed in account.
type TasksHandler struct{}

// HandleList handles GET /v1/tasks
//
//	@Summary	List tasks
//	@Tags		Tasks
//	@Produce	json
//	@Success	200	{object}	backendsdk.TasksResponse
//	@Failure	401	{object}	backendsdk.ErrorResponse	"No session or invalid origin token"
//	@Failure	403	{object}	backendsdk.ErrorResponse	"Account not verified"
//	@Security	BearerAuth
//	@Router		/v1/tasks [get].
func (h *TasksHandler) HandleList(w http.ResponseWriter, r *http.Request, b *service.Backend) {
	tasks, err := b.Tasks.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, backendsdk.TasksResponse{Tasks: toTasks(tasks)})
}

// HandleSave handles POST /v1/tasks
//
//	@Summary		Create or update a task
//	@Description	A task without an id is created. A task whose id exists replaces it and keeps its creation time.
//	@Tags			Tasks
//	@Accept			json
//	@Produce		json
//	@Param			request	body		backendsdk.Task	true	"Task"
//	@Success		200		{object}	backendsdk.Task
//	@Failure		400		{object}	backendsdk.ErrorResponse	"Invalid task"
//	@Failure		401		{object}	backendsdk.ErrorResponse	"No session or invalid origin token"
//	@Failure		403		{object}	backendsdk.ErrorResponse	"Account not verified"
//	@Security		BearerAuth
//	@Router			/v1/tasks [post].
func (h *TasksHandler) HandleSave(w http.ResponseWriter, r *http.Request, b *service.Backend) {
	var req backendsdk.Task
	if !decodeBody(w, r, &req) {
		return
	}

	saved, err := b.Tasks.Save(r.Context(), fromTask(req))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toTask(saved))
}

// HandleReplace handles PUT /v1/tasks
//
//	@Summary	Replace the whole task list
//	@Tags		Tasks
//	@Accept		json
//	@Produce	json
//	@Param		request	body		backendsdk.TasksResponse	true	"Tasks"
//	@Success	200		{object}	backendsdk.TasksResponse
//	@Failure	400		{object}	backendsdk.ErrorResponse	"Invalid task or duplicate id"
//	@Failure	401		{object}	backendsdk.ErrorResponse	"No session or invalid origin token"
//	@Failure	403		{object}	backendsdk.ErrorResponse	"Account not verified"
//	@Security	BearerAuth
//	@Router		/v1/tasks [put].
func (h *TasksHandler) HandleReplace(w http.ResponseWriter, r *http.Request, b *service.Backend) {
	var req backendsdk.TasksResponse
	if !decodeBody(w, r, &req) {
		return
	}

	in := make([]domain.Task, len(req.Tasks))
	for i, t := range req.Tasks {
		in[i] = fromTask(t)
	}

	out, err := b.Tasks.Set(r.Context(), in)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, backendsdk.TasksResponse{Tasks: toTasks(out)})
}

// HandleDelete handles DELETE /v1/tasks/{id}
//
//	@Summary	Delete a task
//	@Tags		Tasks
//	@Param		id	path	string	true	"Task id"
//	@Success	204
//	@Failure	401	{object}	backendsdk.ErrorResponse	"No session or invalid origin token"
//	@Failure	403	{object}	backendsdk.ErrorResponse	"Account not verified"
//	@Failure	404	{object}	backendsdk.ErrorResponse	"No such task"
//	@Security	BearerAuth
//	@Router		/v1/tasks/{id} [delete].
func (h *TasksHandler) HandleDelete(w http.ResponseWriter, r *http.Request, b *service.Backend) {
	if err := b.Tasks.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleListCategories handles GET /v1/categories
//
//	@Summary		List categories
//	@Description	Built-in categories come first, followed by the account's own.
//	@Tags			Tasks
//	@Produce		json
//	@Success		200	{object}	backendsdk.CategoriesResponse
//	@Failure		401	{object}	backendsdk.ErrorResponse	"No session or invalid origin token"
//	@Failure		403	{object}	backendsdk.ErrorResponse	"Account not verified"
//	@Security		BearerAuth
//	@Router			/v1/categories [get].
func (h *TasksHandler) HandleListCategories(w http.ResponseWriter, r *http.Request, b *service.Backend) {
	cats, err := b.Categories.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp := backendsdk.CategoriesResponse{Categories: make([]backendsdk.Category, len(cats))}
	for i, c := range cats {
		resp.Categories[i] = backendsdk.Category{
			Name:    c.Name,
			Icon:    c.Icon,
			Builtin: domain.IsBuiltinCategory(c.Name),
		}
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleAddCategory handles POST /v1/categories
//
//	@Summary		Add a custom category
//	@Description	Adding an existing name is a no-op.
//	@Tags			Tasks
//	@Accept			json
//	@Param			request	body	backendsdk.AddCategoryRequest	true	"Category"
//	@Success		204
//	@Failure		400	{object}	backendsdk.ErrorResponse	"Missing name"
//	@Failure		401	{object}	backendsdk.ErrorResponse	"No session or invalid origin token"
//	@Failure		403	{object}	backendsdk.ErrorResponse	"Account not verified"
//	@Security		BearerAuth
//	@Router			/v1/categories [post].
func (h *TasksHandler) HandleAddCategory(w http.ResponseWriter, r *http.Request, b *service.Backend) {
	var req backendsdk.AddCategoryRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := b.Categories.Add(r.Context(), req.Name, req.Icon); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleDeleteCategory handles DELETE /v1/categories/{name}
//
//	@Summary		Delete a custom category
//	@Description	Tasks filed under the category keep its name.
//	@Tags			Tasks
//	@Param			name	path	string	true	"Category name"
//	@Success		204
//	@Failure		401	{object}	backendsdk.ErrorResponse	"No session or invalid origin token"
//	@Failure		403	{object}	backendsdk.ErrorResponse	"Account not verified"
//	@Failure		409	{object}	backendsdk.ErrorResponse	"Built-in category"
//	@Security		BearerAuth
//	@Router			/v1/categories/{name} [delete].
func (h *TasksHandler) HandleDeleteCategory(w http.ResponseWriter, r *http.Request, b *service.Backend) {
	if err := b.Categories.Delete(r.Context(), r.PathValue("name")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
