package server

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newsrec/pkg/domain"
	"github.com/umputun/newsrec/pkg/repository"
)

func TestStoreAdapter(t *testing.T) {
	repos, err := repository.NewRepositories(context.Background(), repository.Config{
		DSN:             ":memory:",
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: 30 * time.Second,
	})
	require.NoError(t, err)
	defer func() { assert.NoError(t, repos.Close()) }()

	adapter := NewStoreAdapter(repos)
	ctx := context.Background()

	user := &domain.UserProfile{Username: "adapter-user"}
	require.NoError(t, repos.User.Create(ctx, user))

	article := &domain.Article{Title: "Adapter Story", Link: "https://example.com/adapter", Country: "us"}
	created, err := repos.Article.Create(ctx, article)
	require.NoError(t, err)
	require.True(t, created)

	t.Run("article lookup", func(t *testing.T) {
		got, err := adapter.GetArticle(ctx, article.ID)
		require.NoError(t, err)
		assert.Equal(t, "Adapter Story", got.Title)
	})

	t.Run("interaction and like", func(t *testing.T) {
		require.NoError(t, adapter.AddInteraction(ctx, &domain.Interaction{
			UserID: user.ID, ArticleID: article.ID, Type: domain.InteractionLiked,
		}))
		require.NoError(t, adapter.RegisterLike(ctx, user.ID, article.Title, "us", []string{"tech"}))

		profile, err := repos.User.GetProfile(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, profile.LikedCountries["us"])
	})

	t.Run("click and stats round trip", func(t *testing.T) {
		configID, err := repos.Config.Ensure(ctx, 1, 1, 1)
		require.NoError(t, err)

		recs := []domain.Recommendation{{ArticleID: article.ID, Title: article.Title}}
		require.NoError(t, repos.Log.AddImpressions(ctx, user.ID, recs, &configID))
		require.NoError(t, adapter.MarkClicked(ctx, user.ID, article.ID, &configID))

		stats, err := adapter.ConfigStats(ctx)
		require.NoError(t, err)
		require.Len(t, stats, 1)
		assert.Equal(t, int64(1), stats[0].Clicks)

		logs, err := adapter.FetchLogs(ctx, true)
		require.NoError(t, err)
		require.Len(t, logs, 1)
		assert.True(t, logs[0].Clicked)
	})
}
