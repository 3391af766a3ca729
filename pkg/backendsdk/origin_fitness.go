package backendsdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

func (o *Origin) SaveOnboarding(ctx context.Context, data OnboardingData) error {
	resp, err := o.do(ctx, http.MethodPut, "/v1/onboarding", data)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// GetOnboarding returns nil when no answers have been saved.
func (o *Origin) GetOnboarding(ctx context.Context) (*OnboardingData, error) {
	resp, err := o.do(ctx, http.MethodGet, "/v1/onboarding", nil)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusNoContent {
		_ = resp.Body.Close()
		return nil, nil
	}

	var out OnboardingData
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (o *Origin) LogWorkout(ctx context.Context, req WorkoutRequest) (*WorkoutLog, error) {
	resp, err := o.do(ctx, http.MethodPost, "/v1/workouts", req)
	if err != nil {
		return nil, err
	}

	var out WorkoutLog
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (o *Origin) ListWorkouts(ctx context.Context) ([]WorkoutLog, error) {
	return o.listWorkouts(ctx, "/v1/workouts")
}

// ListWorkoutsInRange returns workouts logged between start and end,
// inclusive.
func (o *Origin) ListWorkoutsInRange(ctx context.Context, start, end time.Time) ([]WorkoutLog, error) {
	q := url.Values{}
	q.Set("start", strconv.FormatInt(start.UnixMilli(), 10))
	q.Set("end", strconv.FormatInt(end.UnixMilli(), 10))
	return o.listWorkouts(ctx, "/v1/workouts?"+q.Encode())
}

func (o *Origin) listWorkouts(ctx context.Context, path string) ([]WorkoutLog, error) {
	resp, err := o.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var out WorkoutsResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Workouts, nil
}

func (o *Origin) AddProgress(ctx context.Context, entry ProgressEntry) error {
	resp, err := o.do(ctx, http.MethodPost, "/v1/progress", entry)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

func (o *Origin) ListProgress(ctx context.Context) ([]ProgressEntry, error) {
	resp, err := o.do(ctx, http.MethodGet, "/v1/progress", nil)
	if err != nil {
		return nil, err
	}

	var out ProgressResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Entries, nil
}

func (o *Origin) SaveNotifications(ctx context.Context, prefs NotificationPreferences) error {
	resp, err := o.do(ctx, http.MethodPut, "/v1/notifications", prefs)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// GetNotifications returns nil when no preferences have been saved.
func (o *Origin) GetNotifications(ctx context.Context) (*NotificationPreferences, error) {
	resp, err := o.do(ctx, http.MethodGet, "/v1/notifications", nil)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusNoContent {
		_ = resp.Body.Close()
		return nil, nil
	}

	var out NotificationPreferences
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Leaderboard ranks accounts in this origin by workouts logged in period
// (all_time, month or week).
func (o *Origin) Leaderboard(ctx context.Context, period string, top int) ([]LeaderboardEntry, error) {
	q := url.Values{}
	q.Set("period", period)
	q.Set("top", fmt.Sprint(top))

	resp, err := o.do(ctx, http.MethodGet, "/v1/leaderboard?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	var out LeaderboardResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Entries, nil
}
