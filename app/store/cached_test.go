package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCached_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("caches on first read, returns cached on second", func(t *testing.T) {
		cached := newTestCached(t)
		require.NoError(t, cached.Set(ctx, "key1", "1"))

		val, err := cached.Get(ctx, "key1")
		require.NoError(t, err)
		assert.Equal(t, "1", val)
		stats := cached.Stats()
		assert.Equal(t, int64(1), stats.Misses)
		assert.Equal(t, int64(0), stats.Hits)

		val, err = cached.Get(ctx, "key1")
		require.NoError(t, err)
		assert.Equal(t, "1", val)
		stats = cached.Stats()
		assert.Equal(t, int64(1), stats.Misses)
		assert.Equal(t, int64(1), stats.Hits)
	})

	t.Run("caches misses", func(t *testing.T) {
		cached := newTestCached(t)

		_, err := cached.Get(ctx, "absent")
		require.ErrorIs(t, err, ErrNotFound)
		_, err = cached.Get(ctx, "absent")
		require.ErrorIs(t, err, ErrNotFound)

		stats := cached.Stats()
		assert.Equal(t, int64(1), stats.Misses)
		assert.Equal(t, int64(1), stats.Hits)
	})

	t.Run("invalidates cache on Set", func(t *testing.T) {
		cached := newTestCached(t)
		_, err := cached.Get(ctx, "key1")
		require.ErrorIs(t, err, ErrNotFound)

		require.NoError(t, cached.Set(ctx, "key1", "1"))
		val, err := cached.Get(ctx, "key1")
		require.NoError(t, err)
		assert.Equal(t, "1", val)
		assert.Equal(t, int64(2), cached.Stats().Misses)
	})

	t.Run("direct backend writes show up after ttl", func(t *testing.T) {
		underlying, err := New(filepath.Join(t.TempDir(), "test.db"))
		require.NoError(t, err)
		cached, err := NewCached(underlying, 100, 50*time.Millisecond)
		require.NoError(t, err)
		defer cached.Close()

		_, err = cached.Get(ctx, "v/theme_light")
		require.ErrorIs(t, err, ErrNotFound)

		require.NoError(t, underlying.Set(ctx, "v/theme_light", "1"))
		require.Eventually(t, func() bool {
			val, getErr := cached.Get(ctx, "v/theme_light")
			return getErr == nil && val == "1"
		}, time.Second, 10*time.Millisecond)
	})
}

func newTestCached(t *testing.T) *Cached {
	t.Helper()
	underlying, err := New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	cached, err := NewCached(underlying, 100, 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cached.Close() })
	return cached
}
