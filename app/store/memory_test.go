package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	_, err := m.Get(ctx, "k")
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, m.Set(ctx, "k", "1"))
	v, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "1", v)

	require.NoError(t, m.Set(ctx, "k", "0"))
	v, err = m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "0", v)
	require.NoError(t, m.Close())
}

func TestMemory_AsCachedBackend(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	cached, err := NewCached(m, 10, time.Minute)
	require.NoError(t, err)

	require.NoError(t, cached.Set(ctx, "k", "1"))
	v, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "1", v)
	require.NoError(t, cached.Close())
}
