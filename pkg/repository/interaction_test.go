package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newsrec/pkg/domain"
)

func TestInteractionRepository_Add(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	userID := makeTestUser(t, repos, "dave")
	articleID := makeTestArticle(t, repos, "Clicked Story", "https://example.com/clicked")

	interaction := &domain.Interaction{
		UserID:    userID,
		ArticleID: articleID,
		Type:      domain.InteractionOpened,
		TimeSpent: 45,
	}
	require.NoError(t, repos.Interaction.Add(ctx, interaction))
	assert.NotZero(t, interaction.ID)

	t.Run("unknown type recorded as-is", func(t *testing.T) {
		err := repos.Interaction.Add(ctx, &domain.Interaction{
			UserID: userID, ArticleID: articleID, Type: "shared",
		})
		require.NoError(t, err)
	})
}

func TestInteractionRepository_TimeSpent(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	userID := makeTestUser(t, repos, "erin")
	otherID := makeTestUser(t, repos, "frank")
	first := makeTestArticle(t, repos, "First", "https://example.com/first")
	second := makeTestArticle(t, repos, "Second", "https://example.com/second")

	add := func(uID, aID int64, secs int) {
		require.NoError(t, repos.Interaction.Add(ctx, &domain.Interaction{
			UserID: uID, ArticleID: aID, Type: domain.InteractionOpened, TimeSpent: secs,
		}))
	}
	add(userID, first, 30)
	add(userID, first, 120) // repeated read, max wins
	add(userID, second, 700)
	add(otherID, first, 999) // other user, must not leak

	spent, err := repos.Interaction.TimeSpent(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, map[int64]int{first: 120, second: 700}, spent)

	t.Run("no interactions gives empty map", func(t *testing.T) {
		quietID := makeTestUser(t, repos, "grace")
		spent, err := repos.Interaction.TimeSpent(ctx, quietID)
		require.NoError(t, err)
		assert.Empty(t, spent)
	})
}
