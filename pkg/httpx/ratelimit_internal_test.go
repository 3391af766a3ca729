package httpx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBucketsSweepIdleKeys(t *testing.T) {
	t.Parallel()

	b := newBuckets(RateLimitConfig{RequestsPerWindow: 60, Window: time.Minute, Burst: 2})
	start := time.Now()

	busy := b.get("busy", start)
	require.True(t, busy.AllowN(start, 1))
	require.True(t, busy.AllowN(start, 1))
	b.get("idle", start)
	require.Equal(t, 2, b.size())

	// "busy" is still draining when the sweep runs; "idle" never spent.
	later := start.Add(idleSweep)
	busy.AllowN(later.Add(-time.Millisecond), 2)
	b.get("new", later)

	require.Equal(t, 2, b.size(), "idle bucket dropped, busy and new kept")
	require.Same(t, busy, b.get("busy", later))
}
