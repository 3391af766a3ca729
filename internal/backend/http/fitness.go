package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/caffeinepub/task-queue/internal/backend/domain"
	"github.com/caffeinepub/task-queue/internal/backend/service"
	"github.com/caffeinepub/task-queue/pkg/backendsdk"
	"github.com/caffeinepub/task-queue/pkg/httpx"
)

const (
	defaultLeaderboardTop = 10
	maxLeaderboardTop     = 100
)

// FitnessHandler serves the fitness collections of the signed in account.
type FitnessHandler struct{}

// HandleGetOnboarding handles GET /v1/onboarding
//
//	@Summary		Get onboarding answers
//	@Description	Answers 204 when nothing has been saved yet.
//	@Tags			Fitness
//	@Produce		json
//	@Success		200	{object}	backendsdk.OnboardingData
//	@Success		204
//	@Failure		401	{object}	backendsdk.ErrorResponse	"No session or invalid origin token"
//	@Failure		403	{object}	backendsdk.ErrorResponse	"Account not verified"
//	@Security		BearerAuth
//	@Router			/v1/onboarding [get].
func (h *FitnessHandler) HandleGetOnboarding(w http.ResponseWriter, r *http.Request, b *service.Backend) {
	data, ok, err := b.Onboarding.Get(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, backendsdk.OnboardingData(data))
}

// HandleSaveOnboarding handles PUT /v1/onboarding
//
//	@Summary	Save onboarding answers
//	@Tags		Fitness
//	@Accept		json
//	@Param		request	body	backendsdk.OnboardingData	true	"Answers"
//	@Success	204
//	@Failure	400	{object}	backendsdk.ErrorResponse	"Invalid request body"
//	@Failure	401	{object}	backendsdk.ErrorResponse	"No session or invalid origin token"
//	@Failure	403	{object}	backendsdk.ErrorResponse	"Account not verified"
//	@Security	BearerAuth
//	@Router		/v1/onboarding [put].
func (h *FitnessHandler) HandleSaveOnboarding(w http.ResponseWriter, r *http.Request, b *service.Backend) {
	var req backendsdk.OnboardingData
	if !decodeBody(w, r, &req) {
		return
	}
	if err := b.Onboarding.Save(r.Context(), domain.OnboardingData(req)); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleListWorkouts handles GET /v1/workouts
//
//	@Summary		List workouts
//	@Description	With start and end (unix milliseconds, inclusive) only workouts logged in that range are returned.
//	@Tags			Fitness
//	@Produce		json
//	@Param			start	query		int	false	"Range start, unix ms"
//	@Param			end		query		int	false	"Range end, unix ms"
//	@Success		200		{object}	backendsdk.WorkoutsResponse
//	@Failure		400		{object}	backendsdk.ErrorResponse	"Malformed range"
//	@Failure		401		{object}	backendsdk.ErrorResponse	"No session or invalid origin token"
//	@Failure		403		{object}	backendsdk.ErrorResponse	"Account not verified"
//	@Security		BearerAuth
//	@Router			/v1/workouts [get].
func (h *FitnessHandler) HandleListWorkouts(w http.ResponseWriter, r *http.Request, b *service.Backend) {
	ctx := r.Context()
	q := r.URL.Query()

	var (
		logs []domain.WorkoutLog
		err  error
	)
	if q.Has("start") || q.Has("end") {
		start, serr := parseMillis(q.Get("start"), 0)
		end, eerr := parseMillis(q.Get("end"), time.Now().UnixMilli())
		if serr != nil || eerr != nil {
			backendsdk.ErrInvalidRequest.WithDescription("start and end must be unix milliseconds").WriteError(w)
			return
		}
		logs, err = b.Workouts.ListInRange(ctx, start, end)
	} else {
		logs, err = b.Workouts.List(ctx)
	}
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, backendsdk.WorkoutsResponse{Workouts: toWorkoutLogs(logs)})
}

// HandleLogWorkout handles POST /v1/workouts
//
//	@Summary	Log a workout
//	@Tags		Fitness
//	@Accept		json
//	@Produce	json
//	@Param		request	body		backendsdk.WorkoutRequest	true	"Workout"
//	@Success	201		{object}	backendsdk.WorkoutLog
//	@Failure	400		{object}	backendsdk.ErrorResponse	"Invalid workout"
//	@Failure	401		{object}	backendsdk.ErrorResponse	"No session or invalid origin token"
//	@Failure	403		{object}	backendsdk.ErrorResponse	"Account not verified"
//	@Security	BearerAuth
//	@Router		/v1/workouts [post].
func (h *FitnessHandler) HandleLogWorkout(w http.ResponseWriter, r *http.Request, b *service.Backend) {
	var req backendsdk.WorkoutRequest
	if !decodeBody(w, r, &req) {
		return
	}

	entry, err := b.Workouts.Append(r.Context(), domain.WorkoutInput(req))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toWorkoutLog(entry))
}

// HandleListProgress handles GET /v1/progress
//
//	@Summary	List progress entries
//	@Tags		Fitness
//	@Produce	json
//	@Success	200	{object}	backendsdk.ProgressResponse
//	@Failure	401	{object}	backendsdk.ErrorResponse	"No session or invalid origin token"
//	@Failure	403	{object}	backendsdk.ErrorResponse	"Account not verified"
//	@Security	BearerAuth
//	@Router		/v1/progress [get].
func (h *FitnessHandler) HandleListProgress(w http.ResponseWriter, r *http.Request, b *service.Backend) {
	entries, err := b.Progress.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]backendsdk.ProgressEntry, len(entries))
	for i, e := range entries {
		out[i] = backendsdk.ProgressEntry(e)
	}
	httpx.WriteJSON(w, http.StatusOK, backendsdk.ProgressResponse{Entries: out})
}

// HandleAddProgress handles POST /v1/progress
//
//	@Summary	Record a progress entry
//	@Tags		Fitness
//	@Accept		json
//	@Param		request	body	backendsdk.ProgressEntry	true	"Measurements"
//	@Success	204
//	@Failure	400	{object}	backendsdk.ErrorResponse	"Invalid request body"
//	@Failure	401	{object}	backendsdk.ErrorResponse	"No session or invalid origin token"
//	@Failure	403	{object}	backendsdk.ErrorResponse	"Account not verified"
//	@Security	BearerAuth
//	@Router		/v1/progress [post].
func (h *FitnessHandler) HandleAddProgress(w http.ResponseWriter, r *http.Request, b *service.Backend) {
	var req backendsdk.ProgressEntry
	if !decodeBody(w, r, &req) {
		return
	}
	if err := b.Progress.Append(r.Context(), domain.ProgressEntry(req)); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleGetNotifications handles GET /v1/notifications
//
//	@Summary		Get notification preferences
//	@Description	Answers 204 when nothing has been saved yet.
//	@Tags			Fitness
//	@Produce		json
//	@Success		200	{object}	backendsdk.NotificationPreferences
//	@Success		204
//	@Failure		401	{object}	backendsdk.ErrorResponse	"No session or invalid origin token"
//	@Failure		403	{object}	backendsdk.ErrorResponse	"Account not verified"
//	@Security		BearerAuth
//	@Router			/v1/notifications [get].
func (h *FitnessHandler) HandleGetNotifications(w http.ResponseWriter, r *http.Request, b *service.Backend) {
	prefs, ok, err := b.Notifications.Get(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, backendsdk.NotificationPreferences(prefs))
}

// HandleSaveNotifications handles PUT /v1/notifications
//
//	@Summary	Save notification preferences
//	@Tags		Fitness
//	@Accept		json
//	@Param		request	body	backendsdk.NotificationPreferences	true	"Preferences"
//	@Success	204
//	@Failure	400	{object}	backendsdk.ErrorResponse	"Invalid request body"
//	@Failure	401	{object}	backendsdk.ErrorResponse	"No session or invalid origin token"
//	@Failure	403	{object}	backendsdk.ErrorResponse	"Account not verified"
//	@Security	BearerAuth
//	@Router		/v1/notifications [put].
func (h *FitnessHandler) HandleSaveNotifications(w http.ResponseWriter, r *http.Request, b *service.Backend) {
	var req backendsdk.NotificationPreferences
	if !decodeBody(w, r, &req) {
		return
	}
	if err := b.Notifications.Save(r.Context(), domain.NotificationPreferences(req)); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleLeaderboard handles GET /v1/leaderboard
//
//	@Summary		Workout leaderboard
//	@Description	Ranks every account in the origin by workouts logged. No session required.
//	@Tags			Fitness
//	@Produce		json
//	@Param			period	query		string	false	"all_time, month or week"	default(all_time)
//	@Param			top		query		int		false	"Maximum entries"			default(10)
//	@Success		200		{object}	backendsdk.LeaderboardResponse
//	@Failure		400		{object}	backendsdk.ErrorResponse	"Unknown period or malformed top"
//	@Failure		401		{object}	backendsdk.ErrorResponse	"Invalid origin token"
//	@Security		BearerAuth
//	@Router			/v1/leaderboard [get].
func (h *FitnessHandler) HandleLeaderboard(w http.ResponseWriter, r *http.Request, b *service.Backend) {
	q := r.URL.Query()

	top := defaultLeaderboardTop
	if raw := q.Get("top"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			backendsdk.ErrInvalidRequest.WithDescription("top must be an integer").WriteError(w)
			return
		}
		top = min(n, maxLeaderboardTop)
	}

	period := q.Get("period")
	entries, err := b.Leaderboard.Rank(r.Context(), period, top)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	p, _ := domain.ParsePeriod(period)
	resp := backendsdk.LeaderboardResponse{
		Period:  string(p),
		Entries: make([]backendsdk.LeaderboardEntry, len(entries)),
	}
	for i, e := range entries {
		resp.Entries[i] = backendsdk.LeaderboardEntry{
			DisplayName:  e.DisplayName,
			WorkoutCount: e.WorkoutCount,
			MemberSince:  e.MemberSince,
		}
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// parseMillis parses a unix millisecond timestamp, using def when raw is
// empty.
func parseMillis(raw string, def int64) (time.Time, error) {
	if raw == "" {
		return time.UnixMilli(def), nil
	}
	ms, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return time.Time{}, err
	}
	return time.UnixMilli(ms), nil
}
