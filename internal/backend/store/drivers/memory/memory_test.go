package memory

import (
	"context"
	"testing"

	"github.com/caffeinepub/task-queue/internal/backend/store"
	"github.com/caffeinepub/task-queue/internal/backend/store/storetest"
	"github.com/stretchr/testify/require"
)

func TestConformance(t *testing.T) {
	storetest.Run(t, func(t *testing.T) store.KV { return NewStore() })
}

func TestClosed(t *testing.T) {
	t.Parallel()

	s := NewStore()
	require.NoError(t, s.Close())

	ctx := context.Background()
	_, _, err := s.Get(ctx, "k")
	require.ErrorIs(t, err, ErrClosed)
	require.ErrorIs(t, s.Set(ctx, "k", "v"), ErrClosed)
	require.ErrorIs(t, s.Ping(ctx), ErrClosed)
}
