package backend_test

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/caffeinepub/task-queue/pkg/backendsdk"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * Container setup and shared assertions for the backend end-to-end tests.
 * The image is built once in TestMain. When Docker is unavailable every
 * test is skipped.
 */

const testImageName = "task-queue-backend-test:latest"

var buildErr error

func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building backend Docker image...")

	buildErr = buildDockerImage()
	if buildErr != nil {
		fmt.Fprintf(os.Stdout, " skipped: %v\n", buildErr)
	} else {
		fmt.Fprintf(os.Stdout, " done\n")
	}

	exitCode := m.Run()

	if buildErr == nil {
		fmt.Fprintf(os.Stdout, "Cleaning up backend Docker image...")
		cleanupDockerImage()
		fmt.Fprintf(os.Stdout, " done\n")
	}

	os.Exit(exitCode)
}

func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/backend/Dockerfile",
		"../../../")
	cmd.Dir = "."
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // image might not exist
}

// relaxedLimits lifts the rate limits so flows with many calls do not trip
// them.
var relaxedLimits = map[string]string{
	"RATELIMIT_STRICT_REQUESTS":   "1000",
	"RATELIMIT_STRICT_WINDOW_SEC": "60",
	"RATELIMIT_STRICT_BURST":      "1000",
	"RATELIMIT_MODERATE_REQUESTS": "1000",
	"RATELIMIT_MODERATE_BURST":    "1000",
}

// setupBackendContainer starts the backend with the given extra environment
// and returns its base URL.
func setupBackendContainer(t *testing.T, env map[string]string) string {
	t.Helper()
	testcontainers.SkipIfProviderIsNotHealthy(t)
	if buildErr != nil {
		t.Skipf("backend image not built: %v", buildErr)
	}

	ctx := context.Background()

	containerEnv := map[string]string{
		"BACKEND_STORAGE_DRIVER": "sqlite",
		"ENV":                    "dev", // echo verification codes
		"LOG_LEVEL":              "info",
		"LOG_FORMAT":             "json",
	}
	for k, v := range env {
		containerEnv[k] = v
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        testImageName,
			ExposedPorts: []string{"8080/tcp"},
			Env:          containerEnv,
			WaitingFor: wait.ForHTTP("/livez").
				WithPort("8080/tcp").
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	return fmt.Sprintf("http://%s:%s", host, mappedPort.Port())
}

// newVerifiedOrigin mints an origin and registers and verifies email in it.
func newVerifiedOrigin(t *testing.T, client *backendsdk.SDKClient, email string) *backendsdk.Origin {
	t.Helper()
	ctx := t.Context()

	origin, err := client.MintOrigin(ctx, "e2e")
	require.NoError(t, err)

	require.NoError(t, origin.Register(ctx, backendsdk.RegisterRequest{
		FirstName:   "E2E",
		Email:       email,
		Password:    "pw-" + email,
		DisplayName: email,
	}))

	code, err := origin.RequestVerificationCode(ctx)
	require.NoError(t, err)
	require.Len(t, code, 6, "dev mode should echo the code")
	require.NoError(t, origin.ConfirmVerification(ctx, code))

	return origin
}

func assertHealthy(t *testing.T, health *backendsdk.HealthResponse, err error) {
	t.Helper()
	require.NoError(t, err)
	require.NotNil(t, health)
	require.Equal(t, "ok", health.Status)
}

func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	require.True(t, backendsdk.IsCode(err, code), "expected %s, got %v", code, err)
}
