package cache

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMemoryGetMissing(t *testing.T) {
	m := NewMemory()

	value, ok, err := m.Get(context.Background(), "users_1")
	require.NoError(t, err)
	require.False(t, ok)
	require.Nil(t, value)
}

func TestMemorySetAndGet(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "jobs_0_10", []byte(`[{"id":1}]`), 0))

	value, ok, err := m.Get(ctx, "jobs_0_10")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, `[{"id":1}]`, string(value))
}

func TestMemoryOverwriteLastWriteWins(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "users_1", []byte("first"), 0))
	require.NoError(t, m.Set(ctx, "users_1", []byte("second"), 0))

	value, ok, err := m.Get(ctx, "users_1")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "second", string(value))
}

func TestMemoryTTLExpiry(t *testing.T) {
	current := time.Unix(1000, 0)
	var mu sync.Mutex
	now := func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return current
	}
	advance := func(d time.Duration) {
		mu.Lock()
		defer mu.Unlock()
		current = current.Add(d)
	}

	m := NewMemory(WithNow(now))
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "users_7", []byte(`{"id":7}`), 300*time.Second))

	// still served inside the window
	advance(299 * time.Second)
	_, ok, err := m.Get(ctx, "users_7")
	require.NoError(t, err)
	require.True(t, ok)

	// treated as absent once the window elapses
	advance(2 * time.Second)
	_, ok, err = m.Get(ctx, "users_7")
	require.NoError(t, err)
	require.False(t, ok)
	require.Zero(t, m.Len()) // lazily removed
}

func TestMemoryZeroTTLNeverExpires(t *testing.T) {
	current := time.Unix(1000, 0)
	m := NewMemory(WithNow(func() time.Time { return current }))
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "jobs_0_10000", []byte("[]"), 0))

	current = current.Add(24 * 365 * time.Hour)
	_, ok, err := m.Get(ctx, "jobs_0_10000")
	require.NoError(t, err)
	require.True(t, ok)
}

func TestMemoryGetReturnsCopy(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "k", []byte("abc"), 0))

	value, _, err := m.Get(ctx, "k")
	require.NoError(t, err)
	value[0] = 'x'

	again, _, err := m.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, "abc", string(again))
}

func TestMemoryConcurrentAccess(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := fmt.Sprintf("users_%d", n%4)
			for j := 0; j < 100; j++ {
				require.NoError(t, m.Set(ctx, key, []byte(key), 0))
				_, _, err := m.Get(ctx, key)
				require.NoError(t, err)
			}
		}(i)
	}
	wg.Wait()

	require.Equal(t, 4, m.Len())
}
