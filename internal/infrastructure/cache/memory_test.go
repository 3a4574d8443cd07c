package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository_SetGet(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "key", "value", time.Minute))

	value, err := repo.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, "value", value)
}

func TestMemoryRepository_GetMissing(t *testing.T) {
	repo := NewMemoryRepository()

	_, err := repo.Get(context.Background(), "absent")
	require.Error(t, err)
	assert.True(t, repo.IsNotFound(err))
}

func TestMemoryRepository_Expiration(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "key", "value", time.Millisecond))
	time.Sleep(5 * time.Millisecond)

	_, err := repo.Get(ctx, "key")
	assert.True(t, repo.IsNotFound(err))
}

func TestMemoryRepository_ZeroTTLNeverExpires(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "key", "value", 0))

	value, err := repo.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, "value", value)
	assert.Equal(t, 0, repo.Sweep())
}

func TestMemoryRepository_Delete(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "key", "value", time.Minute))
	require.NoError(t, repo.Delete(ctx, "key"))

	_, err := repo.Get(ctx, "key")
	assert.True(t, repo.IsNotFound(err))
}

func TestMemoryRepository_Sweep(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "stale", "a", time.Millisecond))
	require.NoError(t, repo.Set(ctx, "fresh", "b", time.Minute))
	time.Sleep(5 * time.Millisecond)

	assert.Equal(t, 1, repo.Sweep())
	assert.Equal(t, 1, repo.Len())

	value, err := repo.Get(ctx, "fresh")
	require.NoError(t, err)
	assert.Equal(t, "b", value)
}
