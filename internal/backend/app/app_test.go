package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/caffeinepub/task-queue/internal/backend/store"
	"github.com/caffeinepub/task-queue/internal/backend/store/drivers/memory"
	"github.com/caffeinepub/task-queue/pkg/backendsdk"
	"github.com/caffeinepub/task-queue/pkg/slogx"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T, driver string) Config {
	t.Helper()
	dir := t.TempDir()

	return Config{
		StorageDriver:       driver,
		DatabaseFile:        filepath.Join(dir, "backend.db"),
		BadgerDir:           filepath.Join(dir, "badger"),
		KeyPrefix:           "ironclad_",
		PepperFile:          filepath.Join(dir, "pepper"),
		RequireVerified:     true,
		Issuer:              "test-issuer",
		OriginTokenTTL:      time.Hour,
		Env:                 "dev",
		LogLevel:            "error",
		LogFormat:           "json",
		Port:                8080,
		ShutdownGracePeriod: time.Second,
	}
}

func TestInitOriginKeysPersists(t *testing.T) {
	t.Parallel()

	kv := memory.NewStore()
	root := store.New(kv, nil)
	ctx := context.Background()

	first, err := InitOriginKeys(ctx, root, "iss", slogx.Discard())
	require.NoError(t, err)
	require.True(t, first.KeySet.IsReady())

	second, err := InitOriginKeys(ctx, root, "iss", slogx.Discard())
	require.NoError(t, err)
	require.Equal(t, first.Signer.KID(), second.Signer.KID())

	raw, ok, err := kv.Get(ctx, "system/signing_key")
	require.NoError(t, err)
	require.True(t, ok)
	require.Contains(t, raw, first.Signer.KID())
}

func TestApplicationDrivers(t *testing.T) {
	for _, driver := range []string{DriverMemory, DriverSQLite, DriverBadger} {
		t.Run(driver, func(t *testing.T) {
			app, err := New(testConfig(t, driver))
			require.NoError(t, err)
			t.Cleanup(func() { _ = app.Shutdown() })

			srv := httptest.NewServer(app.Handler())
			t.Cleanup(srv.Close)

			client := backendsdk.NewSDKClient(srv.URL)
			ctx := context.Background()

			ready, err := client.GetReadiness(ctx)
			require.NoError(t, err)
			require.Equal(t, "ok", ready.Status)

			origin, err := client.MintOrigin(ctx, driver)
			require.NoError(t, err)
			require.NoError(t, origin.Register(ctx, backendsdk.RegisterRequest{
				Email:    "a@example.com",
				Password: "secret",
			}))

			// Dev mode echoes the code.
			code, err := origin.RequestVerificationCode(ctx)
			require.NoError(t, err)
			require.NoError(t, origin.ConfirmVerification(ctx, code))

			task, err := origin.SaveTask(ctx, backendsdk.Task{Title: "ship", Status: "pending", Priority: "high"})
			require.NoError(t, err)

			tasks, err := origin.ListTasks(ctx)
			require.NoError(t, err)
			require.Equal(t, []backendsdk.Task{*task}, tasks)
		})
	}
}

func TestOriginTokensSurviveRestart(t *testing.T) {
	cfg := testConfig(t, DriverSQLite)
	ctx := context.Background()

	first, err := New(cfg)
	require.NoError(t, err)
	srv := httptest.NewServer(first.Handler())

	origin, err := backendsdk.NewSDKClient(srv.URL).MintOrigin(ctx, "restart")
	require.NoError(t, err)
	require.NoError(t, origin.Register(ctx, backendsdk.RegisterRequest{Email: "a@example.com", Password: "secret"}))

	srv.Close()
	require.NoError(t, first.Shutdown())

	second, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = second.Shutdown() })
	srv = httptest.NewServer(second.Handler())
	t.Cleanup(srv.Close)

	resumed := backendsdk.NewSDKClient(srv.URL).ResumeOrigin(origin.Token())
	profile, err := resumed.GetProfile(ctx)
	require.NoError(t, err)
	require.Equal(t, "a@example.com", profile.Email)
}

func TestRejectsForeignTokens(t *testing.T) {
	t.Parallel()

	a, err := New(testConfig(t, DriverMemory))
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Shutdown() })
	b, err := New(testConfig(t, DriverMemory))
	require.NoError(t, err)
	t.Cleanup(func() { _ = b.Shutdown() })

	srvA := httptest.NewServer(a.Handler())
	t.Cleanup(srvA.Close)
	srvB := httptest.NewServer(b.Handler())
	t.Cleanup(srvB.Close)

	origin, err := backendsdk.NewSDKClient(srvA.URL).MintOrigin(context.Background(), "")
	require.NoError(t, err)

	_, err = backendsdk.NewSDKClient(srvB.URL).ResumeOrigin(origin.Token()).GetProfile(context.Background())
	require.True(t, backendsdk.IsCode(err, backendsdk.ErrorCodeInvalidToken), err)

	var apiErr *backendsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}
