// Package storetest is a conformance suite shared by every KV driver.
package storetest

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/caffeinepub/task-queue/internal/backend/domain"
	"github.com/caffeinepub/task-queue/internal/backend/store"
	"github.com/stretchr/testify/require"
)

// Run exercises a KV driver. newKV must return a fresh, empty store; Run
// closes it.
func Run(t *testing.T, newKV func(t *testing.T) store.KV) {
	t.Helper()

	open := func(t *testing.T) store.KV {
		kv := newKV(t)
		t.Cleanup(func() { _ = kv.Close() })
		return kv
	}

	t.Run("absent key", func(t *testing.T) {
		kv := open(t)

		v, ok, err := kv.Get(context.Background(), "missing")
		require.NoError(t, err)
		require.False(t, ok)
		require.Empty(t, v)
	})

	t.Run("set then get", func(t *testing.T) {
		kv := open(t)
		ctx := context.Background()

		require.NoError(t, kv.Set(ctx, "k", `{"a":1}`))
		v, ok, err := kv.Get(ctx, "k")
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, `{"a":1}`, v)
	})

	t.Run("set overwrites", func(t *testing.T) {
		kv := open(t)
		ctx := context.Background()

		require.NoError(t, kv.Set(ctx, "k", "one"))
		require.NoError(t, kv.Set(ctx, "k", "two"))
		v, _, err := kv.Get(ctx, "k")
		require.NoError(t, err)
		require.Equal(t, "two", v)
	})

	t.Run("empty value is present", func(t *testing.T) {
		kv := open(t)
		ctx := context.Background()

		require.NoError(t, kv.Set(ctx, "k", ""))
		_, ok, err := kv.Get(ctx, "k")
		require.NoError(t, err)
		require.True(t, ok)
	})

	t.Run("remove", func(t *testing.T) {
		kv := open(t)
		ctx := context.Background()

		require.NoError(t, kv.Set(ctx, "k", "v"))
		require.NoError(t, kv.Remove(ctx, "k"))
		_, ok, err := kv.Get(ctx, "k")
		require.NoError(t, err)
		require.False(t, ok)

		require.NoError(t, kv.Remove(ctx, "k"), "removing an absent key")
	})

	t.Run("unicode values", func(t *testing.T) {
		kv := open(t)
		ctx := context.Background()

		require.NoError(t, kv.Set(ctx, "cat", `[{"name":"Health","icon":"❤️"}]`))
		v, _, err := kv.Get(ctx, "cat")
		require.NoError(t, err)
		require.Equal(t, `[{"name":"Health","icon":"❤️"}]`, v)
	})

	t.Run("ping", func(t *testing.T) {
		kv := open(t)
		require.NoError(t, kv.Ping(context.Background()))
	})

	t.Run("concurrent record map updates are not lost", func(t *testing.T) {
		s := store.New(open(t), nil)
		m := store.NewRecordMap[[]domain.ProgressEntry](s, store.KeyProgress)
		ctx := context.Background()

		const writers = 16
		errs := make(chan error, writers)
		var wg sync.WaitGroup
		for i := range writers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				errs <- m.Update(ctx, func(all map[string][]domain.ProgressEntry) error {
					all["t"] = append(all["t"], domain.ProgressEntry{Notes: fmt.Sprint(i)})
					return nil
				})
			}()
		}
		wg.Wait()
		close(errs)
		for err := range errs {
			require.NoError(t, err)
		}

		got, _, err := m.Get(ctx, "t")
		require.NoError(t, err)
		require.Len(t, got, writers)
	})
}
