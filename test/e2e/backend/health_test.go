package backend_test

import (
	"testing"

	"github.com/caffeinepub/task-queue/pkg/backendsdk"
	"github.com/stretchr/testify/require"
)

func TestHealthEndpoints(t *testing.T) {
	client := backendsdk.NewSDKClient(setupBackendContainer(t, nil))

	live, err := client.GetLiveness(t.Context())
	assertHealthy(t, live, err)

	ready, err := client.GetReadiness(t.Context())
	assertHealthy(t, ready, err)
	require.Equal(t, "ok", ready.Checks.Storage)
	require.Equal(t, "ok", ready.Checks.Signer)
}
