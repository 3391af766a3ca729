package backendsdk

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, h http.HandlerFunc) *SDKClient {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewSDKClient(srv.URL + "/")
}

func TestNewSDKClientTrimsSlash(t *testing.T) {
	t.Parallel()

	c := NewSDKClient("http://example.test/")
	require.Equal(t, "http://example.test", c.BaseURL)
	require.Equal(t, 10*time.Second, c.HTTPClient.Timeout)
}

func TestMintOrigin(t *testing.T) {
	t.Parallel()

	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "POST /v1/origins", r.Method+" "+r.URL.Path)
		require.Empty(t, r.Header.Get("Authorization"))

		var req MintOriginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "laptop", req.Label)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(OriginResponse{OriginID: "o1", Token: "tok", TokenType: "Bearer"})
	})

	origin, err := c.MintOrigin(context.Background(), "laptop")
	require.NoError(t, err)
	require.Equal(t, "o1", origin.ID())
	require.Equal(t, "tok", origin.Token())
}

func TestOriginSendsBearerToken(t *testing.T) {
	t.Parallel()

	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer saved-token", r.Header.Get("Authorization"))
		require.Equal(t, "a+b@example.com", r.URL.Query().Get("email"))
		_ = json.NewEncoder(w).Encode(EmailExistsResponse{Exists: true})
	})

	exists, err := c.ResumeOrigin("saved-token").EmailExists(context.Background(), "a+b@example.com")
	require.NoError(t, err)
	require.True(t, exists)
}

func TestErrorResponses(t *testing.T) {
	t.Parallel()

	t.Run("typed error body", func(t *testing.T) {
		t.Parallel()
		c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			ErrNoSession.WriteError(w)
		})

		_, err := c.ResumeOrigin("t").GetProfile(context.Background())
		require.Error(t, err)
		require.True(t, IsCode(err, ErrorCodeNoSession))

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	})

	t.Run("foreign error body", func(t *testing.T) {
		t.Parallel()
		c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte("<html>bad gateway</html>"))
		})

		err := c.ResumeOrigin("t").Logout(context.Background())
		require.True(t, IsCode(err, ErrorCodeServerError))
		require.Contains(t, err.Error(), "HTTP 502")
	})

	t.Run("no content expected", func(t *testing.T) {
		t.Parallel()
		c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			ErrBuiltinCategory.WithDescription("Work is built in").WriteError(w)
		})

		err := c.ResumeOrigin("t").DeleteCategory(context.Background(), "Work")
		require.True(t, IsCode(err, ErrorCodeBuiltinCategory))
		require.Contains(t, err.Error(), "Work is built in")
	})
}

func TestWithDescriptionCopies(t *testing.T) {
	t.Parallel()

	e := ErrNotFound.WithDescription("task not found")
	require.Equal(t, "task not found", e.Description)
	require.NotEqual(t, e.Description, ErrNotFound.Description)
	require.Equal(t, ErrNotFound.StatusCode, e.StatusCode)
}

func TestOptionalRecords(t *testing.T) {
	t.Parallel()

	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/onboarding":
			w.WriteHeader(http.StatusNoContent)
		case "/v1/notifications":
			_ = json.NewEncoder(w).Encode(NotificationPreferences{ReminderTime: "07:30", MealReminders: true})
		}
	})
	o := c.ResumeOrigin("t")

	data, err := o.GetOnboarding(context.Background())
	require.NoError(t, err)
	require.Nil(t, data)

	prefs, err := o.GetNotifications(context.Background())
	require.NoError(t, err)
	require.Equal(t, "07:30", prefs.ReminderTime)
	require.True(t, prefs.MealReminders)
}

func TestWorkoutRangeQuery(t *testing.T) {
	t.Parallel()

	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "1000", r.URL.Query().Get("start"))
		require.Equal(t, "2000", r.URL.Query().Get("end"))
		_ = json.NewEncoder(w).Encode(WorkoutsResponse{Workouts: []WorkoutLog{{ExerciseName: "Squat", LoggedAt: 1500}}})
	})

	logs, err := c.ResumeOrigin("t").ListWorkoutsInRange(context.Background(), time.UnixMilli(1000), time.UnixMilli(2000))
	require.NoError(t, err)
	require.Len(t, logs, 1)
	require.Equal(t, "Squat", logs[0].ExerciseName)
}

func TestDeleteTaskEscapesID(t *testing.T) {
	t.Parallel()

	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/v1/tasks/a%2Fb", r.URL.EscapedPath())
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, c.ResumeOrigin("t").DeleteTask(context.Background(), "a/b"))
}

func TestHealth(t *testing.T) {
	t.Parallel()

	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/readyz" {
			w.WriteHeader(http.StatusServiceUnavailable)
			_ = json.NewEncoder(w).Encode(HealthResponse{Status: "degraded"})
			return
		}
		_ = json.NewEncoder(w).Encode(HealthResponse{Status: "ok", Version: "test"})
	})

	live, err := c.GetLiveness(context.Background())
	require.NoError(t, err)
	require.Equal(t, "ok", live.Status)

	_, err = c.GetReadiness(context.Background())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)
}
