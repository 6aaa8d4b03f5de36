package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newsrec/pkg/domain"
	"github.com/umputun/newsrec/server/mocks"
)

// serverFixture wires a test server over mocks, tests override what they need
type serverFixture struct {
	recommender *mocks.RecommenderMock
	store       *mocks.StoreMock
}

func newServerFixture() *serverFixture {
	return &serverFixture{
		recommender: &mocks.RecommenderMock{
			RecommendFunc: func(ctx context.Context, userID int64, limit int) ([]domain.Recommendation, error) {
				return []domain.Recommendation{
					{ArticleID: 1, Title: "Top Story", Score: 12.5},
					{ArticleID: 2, Title: "Second Story", Score: 7.0},
				}, nil
			},
		},
		store: &mocks.StoreMock{
			GetArticleFunc: func(ctx context.Context, id int64) (*domain.Article, error) {
				return &domain.Article{
					ID: id, Title: "Liked Story", Country: "US", Categories: []string{"Tech"},
				}, nil
			},
			AddInteractionFunc: func(ctx context.Context, interaction *domain.Interaction) error { return nil },
			RegisterLikeFunc: func(ctx context.Context, userID int64, title, country string, categories []string) error {
				return nil
			},
			MarkClickedFunc: func(ctx context.Context, userID, articleID int64, configID *int64) error { return nil },
			ConfigStatsFunc: func(ctx context.Context) ([]domain.ConfigStats, error) { return nil, nil },
			FetchLogsFunc: func(ctx context.Context, scored bool) ([]domain.RecommendationLog, error) {
				return nil, nil
			},
		},
	}
}

func (f *serverFixture) testServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := New(Params{
		Config: &mocks.ConfigProviderMock{
			GetServerConfigFunc: func() (string, time.Duration) { return ":0", 30 * time.Second },
		},
		Recommender: f.recommender,
		Store:       f.store,
		Version:     "test",
	})
	ts := httptest.NewServer(srv.router)
	t.Cleanup(ts.Close)
	return ts
}

func TestServer_StatusHandler(t *testing.T) {
	ts := newServerFixture().testServer(t)

	resp, err := http.Get(ts.URL + "/api/v1/status")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "test", body["version"])
}

func TestServer_RecommendationsHandler(t *testing.T) {
	f := newServerFixture()
	ts := f.testServer(t)

	t.Run("returns ranked list", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/api/v1/recommendations/42")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			Recommendations []struct {
				ArticleID int64   `json:"article_id"`
				Title     string  `json:"title"`
				Score     float64 `json:"score"`
			} `json:"recommendations"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		require.Len(t, body.Recommendations, 2)
		assert.Equal(t, int64(1), body.Recommendations[0].ArticleID)
		assert.Equal(t, "Top Story", body.Recommendations[0].Title)
		assert.InDelta(t, 12.5, body.Recommendations[0].Score, 1e-9)

		require.Len(t, f.recommender.RecommendCalls(), 1)
		call := f.recommender.RecommendCalls()[0]
		assert.Equal(t, int64(42), call.UserID)
		assert.Equal(t, 10, call.Limit) // default limit
	})

	t.Run("explicit limit", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/api/v1/recommendations/42?limit=3")
		require.NoError(t, err)
		resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		calls := f.recommender.RecommendCalls()
		assert.Equal(t, 3, calls[len(calls)-1].Limit)
	})

	t.Run("empty result is an empty array", func(t *testing.T) {
		f := newServerFixture()
		f.recommender.RecommendFunc = func(ctx context.Context, userID int64, limit int) ([]domain.Recommendation, error) {
			return []domain.Recommendation{}, nil
		}
		ts := f.testServer(t)

		resp, err := http.Get(ts.URL + "/api/v1/recommendations/404")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			Recommendations []json.RawMessage `json:"recommendations"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.NotNil(t, body.Recommendations)
		assert.Empty(t, body.Recommendations)
	})

	t.Run("bad user id", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/api/v1/recommendations/abc")
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("bad limit", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/api/v1/recommendations/42?limit=zero")
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		resp, err = http.Get(ts.URL + "/api/v1/recommendations/42?limit=0")
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("recommender failure", func(t *testing.T) {
		f := newServerFixture()
		f.recommender.RecommendFunc = func(ctx context.Context, userID int64, limit int) ([]domain.Recommendation, error) {
			return nil, errors.New("db gone")
		}
		ts := f.testServer(t)

		resp, err := http.Get(ts.URL + "/api/v1/recommendations/42")
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	})
}

func TestServer_ClickHandler(t *testing.T) {
	t.Run("click with config", func(t *testing.T) {
		f := newServerFixture()
		ts := f.testServer(t)

		resp, err := http.Post(ts.URL+"/api/v1/clicks", "application/json",
			strings.NewReader(`{"user_id": 1, "article_id": 2, "config_id": 3}`))
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		require.Len(t, f.store.MarkClickedCalls(), 1)
		call := f.store.MarkClickedCalls()[0]
		assert.Equal(t, int64(1), call.UserID)
		assert.Equal(t, int64(2), call.ArticleID)
		require.NotNil(t, call.ConfigID)
		assert.Equal(t, int64(3), *call.ConfigID)
	})

	t.Run("click without config keeps nil", func(t *testing.T) {
		f := newServerFixture()
		ts := f.testServer(t)

		resp, err := http.Post(ts.URL+"/api/v1/clicks", "application/json",
			strings.NewReader(`{"user_id": 1, "article_id": 2}`))
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		require.Len(t, f.store.MarkClickedCalls(), 1)
		assert.Nil(t, f.store.MarkClickedCalls()[0].ConfigID)
	})

	t.Run("missing fields", func(t *testing.T) {
		ts := newServerFixture().testServer(t)

		resp, err := http.Post(ts.URL+"/api/v1/clicks", "application/json",
			strings.NewReader(`{"user_id": 1}`))
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("invalid body", func(t *testing.T) {
		ts := newServerFixture().testServer(t)

		resp, err := http.Post(ts.URL+"/api/v1/clicks", "application/json",
			strings.NewReader(`{not json`))
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("store failure", func(t *testing.T) {
		f := newServerFixture()
		f.store.MarkClickedFunc = func(ctx context.Context, userID, articleID int64, configID *int64) error {
			return errors.New("disk full")
		}
		ts := f.testServer(t)

		resp, err := http.Post(ts.URL+"/api/v1/clicks", "application/json",
			strings.NewReader(`{"user_id": 1, "article_id": 2}`))
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	})
}

func TestServer_InteractionHandler(t *testing.T) {
	t.Run("opened records interaction only", func(t *testing.T) {
		f := newServerFixture()
		ts := f.testServer(t)

		resp, err := http.Post(ts.URL+"/api/v1/interactions", "application/json",
			strings.NewReader(`{"user_id": 1, "article_id": 2, "type": "opened", "time_spent": 300}`))
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		require.Len(t, f.store.AddInteractionCalls(), 1)
		got := f.store.AddInteractionCalls()[0].Interaction
		assert.Equal(t, domain.InteractionOpened, got.Type)
		assert.Equal(t, 300, got.TimeSpent)

		assert.Empty(t, f.store.GetArticleCalls())
		assert.Empty(t, f.store.RegisterLikeCalls())
	})

	t.Run("liked also registers affinity", func(t *testing.T) {
		f := newServerFixture()
		ts := f.testServer(t)

		resp, err := http.Post(ts.URL+"/api/v1/interactions", "application/json",
			strings.NewReader(`{"user_id": 1, "article_id": 2, "type": "liked"}`))
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		require.Len(t, f.store.RegisterLikeCalls(), 1)
		call := f.store.RegisterLikeCalls()[0]
		assert.Equal(t, int64(1), call.UserID)
		assert.Equal(t, "Liked Story", call.Title)
		assert.Equal(t, "us", call.Country) // normalized
		assert.Equal(t, []string{"tech"}, call.Categories)
	})

	t.Run("missing type rejected", func(t *testing.T) {
		ts := newServerFixture().testServer(t)

		resp, err := http.Post(ts.URL+"/api/v1/interactions", "application/json",
			strings.NewReader(`{"user_id": 1, "article_id": 2}`))
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("negative time rejected", func(t *testing.T) {
		ts := newServerFixture().testServer(t)

		resp, err := http.Post(ts.URL+"/api/v1/interactions", "application/json",
			strings.NewReader(`{"user_id": 1, "article_id": 2, "type": "opened", "time_spent": -5}`))
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("liked article lookup failure", func(t *testing.T) {
		f := newServerFixture()
		f.store.GetArticleFunc = func(ctx context.Context, id int64) (*domain.Article, error) {
			return nil, errors.New("not found")
		}
		ts := f.testServer(t)

		resp, err := http.Post(ts.URL+"/api/v1/interactions", "application/json",
			strings.NewReader(`{"user_id": 1, "article_id": 2, "type": "liked"}`))
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	})
}

func TestServer_ConfigStatsHandler(t *testing.T) {
	f := newServerFixture()
	f.store.ConfigStatsFunc = func(ctx context.Context) ([]domain.ConfigStats, error) {
		return []domain.ConfigStats{
			{ConfigID: 1, Impressions: 100, Clicks: 10, CTR: 0.1},
			{ConfigID: 2, Impressions: 50, Clicks: 1, CTR: 0.02},
		}, nil
	}
	ts := f.testServer(t)

	resp, err := http.Get(ts.URL + "/api/v1/configs/stats")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Configs []struct {
			ConfigID    int64   `json:"config_id"`
			Impressions int64   `json:"impressions"`
			Clicks      int64   `json:"clicks"`
			CTR         float64 `json:"ctr"`
		} `json:"configs"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Configs, 2)
	assert.Equal(t, int64(1), body.Configs[0].ConfigID)
	assert.InDelta(t, 0.1, body.Configs[0].CTR, 1e-9)
}

func TestServer_ComparisonHandler(t *testing.T) {
	f := newServerFixture()
	f.store.FetchLogsFunc = func(ctx context.Context, scored bool) ([]domain.RecommendationLog, error) {
		if scored {
			return []domain.RecommendationLog{
				{UserID: 1, ArticleID: 1, Clicked: true},
				{UserID: 1, ArticleID: 2, Clicked: false},
			}, nil
		}
		return []domain.RecommendationLog{
			{UserID: 2, ArticleID: 1, Clicked: false},
			{UserID: 2, ArticleID: 2, Clicked: false},
		}, nil
	}
	ts := f.testServer(t)

	resp, err := http.Get(ts.URL + "/api/v1/metrics/comparison")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		ScoredCTR         float64 `json:"scored_ctr"`
		BaselineCTR       float64 `json:"baseline_ctr"`
		ScoredPrecision   float64 `json:"scored_precision"`
		BaselinePrecision float64 `json:"baseline_precision"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.InDelta(t, 0.5, body.ScoredCTR, 1e-9)
	assert.Zero(t, body.BaselineCTR)
	assert.InDelta(t, 0.5, body.ScoredPrecision, 1e-9)
	assert.Zero(t, body.BaselinePrecision)
}

func TestServer_Ping(t *testing.T) {
	ts := newServerFixture().testServer(t)

	resp, err := http.Get(ts.URL + "/ping")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
