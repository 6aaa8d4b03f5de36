package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newsrec/pkg/domain"
)

func TestLogRepository_AddImpressions(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	userID := makeTestUser(t, repos, "henry")
	first := makeTestArticle(t, repos, "First", "https://example.com/imp-first")
	second := makeTestArticle(t, repos, "Second", "https://example.com/imp-second")
	configID, err := repos.Config.Ensure(ctx, 1, 1, 1)
	require.NoError(t, err)

	t.Run("scored batch", func(t *testing.T) {
		recs := []domain.Recommendation{
			{ArticleID: first, Title: "First", Score: 10},
			{ArticleID: second, Title: "Second", Score: 5},
		}
		require.NoError(t, repos.Log.AddImpressions(ctx, userID, recs, &configID))

		logs, err := repos.Log.Fetch(ctx, true)
		require.NoError(t, err)
		require.Len(t, logs, 2)
		for _, entry := range logs {
			assert.Equal(t, userID, entry.UserID)
			require.NotNil(t, entry.ConfigID)
			assert.Equal(t, configID, *entry.ConfigID)
			assert.False(t, entry.Clicked)
		}
	})

	t.Run("baseline batch keeps nil config", func(t *testing.T) {
		recs := []domain.Recommendation{{ArticleID: first, Title: "First"}}
		require.NoError(t, repos.Log.AddImpressions(ctx, userID, recs, nil))

		logs, err := repos.Log.Fetch(ctx, false)
		require.NoError(t, err)
		require.Len(t, logs, 1)
		assert.Nil(t, logs[0].ConfigID)
	})

	t.Run("empty batch is a no-op", func(t *testing.T) {
		require.NoError(t, repos.Log.AddImpressions(ctx, userID, nil, &configID))
	})
}

func TestLogRepository_MarkClicked(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	userID := makeTestUser(t, repos, "iris")
	articleID := makeTestArticle(t, repos, "Clicked", "https://example.com/marked")
	configID, err := repos.Config.Ensure(ctx, 1, 1, 1)
	require.NoError(t, err)

	recs := []domain.Recommendation{{ArticleID: articleID, Title: "Clicked"}}
	require.NoError(t, repos.Log.AddImpressions(ctx, userID, recs, &configID))
	require.NoError(t, repos.Log.AddImpressions(ctx, userID, recs, nil))

	t.Run("config click matches only the scored row", func(t *testing.T) {
		require.NoError(t, repos.Log.MarkClicked(ctx, userID, articleID, &configID))

		scored, err := repos.Log.Fetch(ctx, true)
		require.NoError(t, err)
		require.Len(t, scored, 1)
		assert.True(t, scored[0].Clicked)

		baseline, err := repos.Log.Fetch(ctx, false)
		require.NoError(t, err)
		require.Len(t, baseline, 1)
		assert.False(t, baseline[0].Clicked)
	})

	t.Run("nil click matches only the baseline row", func(t *testing.T) {
		require.NoError(t, repos.Log.MarkClicked(ctx, userID, articleID, nil))

		baseline, err := repos.Log.Fetch(ctx, false)
		require.NoError(t, err)
		require.Len(t, baseline, 1)
		assert.True(t, baseline[0].Clicked)
	})

	t.Run("click without impression inserts clicked row", func(t *testing.T) {
		other := makeTestArticle(t, repos, "Surprise", "https://example.com/surprise")
		require.NoError(t, repos.Log.MarkClicked(ctx, userID, other, &configID))

		scored, err := repos.Log.Fetch(ctx, true)
		require.NoError(t, err)
		require.Len(t, scored, 2)
		assert.Equal(t, other, scored[1].ArticleID)
		assert.True(t, scored[1].Clicked)
	})
}

func TestLogRepository_ConfigStats(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	userID := makeTestUser(t, repos, "judy")
	first := makeTestArticle(t, repos, "One", "https://example.com/stats-one")
	second := makeTestArticle(t, repos, "Two", "https://example.com/stats-two")

	goodConfig, err := repos.Config.Ensure(ctx, 1, 1, 1)
	require.NoError(t, err)
	poorConfig, err := repos.Config.Ensure(ctx, 9, 9, 9)
	require.NoError(t, err)

	// good config: 2 impressions, 1 click; poor config: 2 impressions, 0 clicks
	recs := []domain.Recommendation{{ArticleID: first}, {ArticleID: second}}
	require.NoError(t, repos.Log.AddImpressions(ctx, userID, recs, &goodConfig))
	require.NoError(t, repos.Log.AddImpressions(ctx, userID, recs, &poorConfig))
	require.NoError(t, repos.Log.MarkClicked(ctx, userID, first, &goodConfig))

	// baseline rows must not show up in per-config stats
	require.NoError(t, repos.Log.AddImpressions(ctx, userID, recs, nil))

	stats, err := repos.Log.ConfigStats(ctx)
	require.NoError(t, err)
	require.Len(t, stats, 2)

	assert.Equal(t, goodConfig, stats[0].ConfigID)
	assert.Equal(t, int64(2), stats[0].Impressions)
	assert.Equal(t, int64(1), stats[0].Clicks)
	assert.InDelta(t, 0.5, stats[0].CTR, 1e-9)

	assert.Equal(t, poorConfig, stats[1].ConfigID)
	assert.Equal(t, int64(2), stats[1].Impressions)
	assert.Equal(t, int64(0), stats[1].Clicks)
	assert.InDelta(t, 0.0, stats[1].CTR, 1e-9)
}

func TestLogRepository_FetchEmpty(t *testing.T) {
	repos := setupTestDB(t)

	logs, err := repos.Log.Fetch(context.Background(), true)
	require.NoError(t, err)
	assert.Empty(t, logs)
}
