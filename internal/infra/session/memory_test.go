package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBackend_TTL(t *testing.T) {
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	backend := NewMemoryBackend()
	backend.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, backend.Set(ctx, "k", []byte("v"), time.Minute))

	val, found, err := backend.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte("v"), val)

	now = now.Add(time.Minute)
	_, found, err = backend.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryBackend_Sweep(t *testing.T) {
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	backend := NewMemoryBackend()
	backend.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, backend.Set(ctx, "short", []byte("1"), time.Second))
	require.NoError(t, backend.Set(ctx, "long", []byte("2"), time.Hour))
	require.NoError(t, backend.Set(ctx, "forever", []byte("3"), 0))

	now = now.Add(time.Minute)
	assert.Equal(t, 1, backend.Sweep())

	_, found, _ := backend.Get(ctx, "long")
	assert.True(t, found)
	_, found, _ = backend.Get(ctx, "forever")
	assert.True(t, found)
}

func TestMemoryBackend_CopiesValue(t *testing.T) {
	backend := NewMemoryBackend()
	ctx := context.Background()

	buf := []byte("abc")
	require.NoError(t, backend.Set(ctx, "k", buf, time.Hour))
	buf[0] = 'x'

	val, _, _ := backend.Get(ctx, "k")
	assert.Equal(t, []byte("abc"), val)
}
