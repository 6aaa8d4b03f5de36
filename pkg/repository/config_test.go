package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigRepository_Ensure(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	t.Run("creates new config", func(t *testing.T) {
		id, err := repos.Config.Ensure(ctx, 1, 2, 3)
		require.NoError(t, err)
		assert.NotZero(t, id)

		config, err := repos.Config.Get(ctx, id)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, config.W1, 1e-9)
		assert.InDelta(t, 2.0, config.W2, 1e-9)
		assert.InDelta(t, 3.0, config.W3, 1e-9)
		assert.True(t, config.Active)
		assert.False(t, config.CreatedAt.IsZero())
	})

	t.Run("idempotent for same triple", func(t *testing.T) {
		first, err := repos.Config.Ensure(ctx, 5, 5, 5)
		require.NoError(t, err)
		second, err := repos.Config.Ensure(ctx, 5, 5, 5)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("distinct triples get distinct rows", func(t *testing.T) {
		a, err := repos.Config.Ensure(ctx, 1, 1, 1)
		require.NoError(t, err)
		b, err := repos.Config.Ensure(ctx, 1, 1, 2)
		require.NoError(t, err)
		assert.NotEqual(t, a, b)
	})
}

func TestConfigRepository_GetActive(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	t.Run("no configs gives nil nil", func(t *testing.T) {
		config, err := repos.Config.GetActive(ctx)
		require.NoError(t, err)
		assert.Nil(t, config)
	})

	first, err := repos.Config.Ensure(ctx, 1, 1, 1)
	require.NoError(t, err)
	second, err := repos.Config.Ensure(ctx, 2, 2, 2)
	require.NoError(t, err)

	t.Run("most recent active wins", func(t *testing.T) {
		config, err := repos.Config.GetActive(ctx)
		require.NoError(t, err)
		require.NotNil(t, config)
		assert.Equal(t, second, config.ID)
	})

	t.Run("deactivation falls back to older config", func(t *testing.T) {
		require.NoError(t, repos.Config.SetActive(ctx, second, false))

		config, err := repos.Config.GetActive(ctx)
		require.NoError(t, err)
		require.NotNil(t, config)
		assert.Equal(t, first, config.ID)
	})

	t.Run("all inactive gives nil nil", func(t *testing.T) {
		require.NoError(t, repos.Config.SetActive(ctx, first, false))

		config, err := repos.Config.GetActive(ctx)
		require.NoError(t, err)
		assert.Nil(t, config)
	})
}

func TestConfigRepository_List(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	a, err := repos.Config.Ensure(ctx, 1, 0, 0)
	require.NoError(t, err)
	b, err := repos.Config.Ensure(ctx, 0, 1, 0)
	require.NoError(t, err)

	configs, err := repos.Config.List(ctx)
	require.NoError(t, err)
	require.Len(t, configs, 2)
	assert.Equal(t, a, configs[0].ID)
	assert.Equal(t, b, configs[1].ID)
}

func TestConfigRepository_SetActive(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	id, err := repos.Config.Ensure(ctx, 3, 3, 3)
	require.NoError(t, err)

	require.NoError(t, repos.Config.SetActive(ctx, id, false))
	config, err := repos.Config.Get(ctx, id)
	require.NoError(t, err)
	assert.False(t, config.Active)

	require.NoError(t, repos.Config.SetActive(ctx, id, true))
	config, err = repos.Config.Get(ctx, id)
	require.NoError(t, err)
	assert.True(t, config.Active)

	t.Run("missing config errors", func(t *testing.T) {
		err := repos.Config.SetActive(ctx, 424242, true)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}
