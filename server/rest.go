package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/newsrec/pkg/domain"
	"github.com/umputun/newsrec/pkg/recommender"
)

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}
	renderJSON(w, r, http.StatusOK, status)
}

// recommendationsHandler serves the ranked article list for a user.
// Response shape: {"recommendations": [{"article_id", "title", "score"}]}
func (s *Server) recommendationsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := strconv.ParseInt(r.PathValue("user_id"), 10, 64)
	if err != nil {
		renderError(w, r, fmt.Errorf("invalid user ID"), http.StatusBadRequest)
		return
	}

	limit := s.defaultLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 {
			renderError(w, r, fmt.Errorf("invalid limit"), http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	recs, err := s.recommender.Recommend(ctx, userID, limit)
	if err != nil {
		lgr.Printf("[ERROR] failed to recommend for user %d: %v", userID, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	type recJSON struct {
		ArticleID int64   `json:"article_id"`
		Title     string  `json:"title"`
		Score     float64 `json:"score"`
	}
	response := struct {
		Recommendations []recJSON `json:"recommendations"`
	}{Recommendations: make([]recJSON, len(recs))}
	for i, rec := range recs {
		response.Recommendations[i] = recJSON{ArticleID: rec.ArticleID, Title: rec.Title, Score: rec.Score}
	}
	renderJSON(w, r, http.StatusOK, response)
}

// clickRequest is the payload of POST /clicks
type clickRequest struct {
	UserID    int64  `json:"user_id"`
	ArticleID int64  `json:"article_id"`
	ConfigID  *int64 `json:"config_id"`
}

// clickHandler records a click against a logged impression. A click without
// a prior impression is still accepted and stored.
func (s *Server) clickHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req clickRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}
	if req.UserID == 0 || req.ArticleID == 0 {
		renderError(w, r, fmt.Errorf("user_id and article_id are required"), http.StatusBadRequest)
		return
	}

	if err := s.store.MarkClicked(ctx, req.UserID, req.ArticleID, req.ConfigID); err != nil {
		lgr.Printf("[ERROR] failed to mark click: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// interactionRequest is the payload of POST /interactions
type interactionRequest struct {
	UserID    int64  `json:"user_id"`
	ArticleID int64  `json:"article_id"`
	Type      string `json:"type"`
	TimeSpent int    `json:"time_spent"`
}

// interactionHandler records an interaction. A "liked" interaction also bumps
// the user's affinity counters and stores the liked title for similarity.
func (s *Server) interactionHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req interactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}
	if req.UserID == 0 || req.ArticleID == 0 || req.Type == "" {
		renderError(w, r, fmt.Errorf("user_id, article_id and type are required"), http.StatusBadRequest)
		return
	}
	if req.TimeSpent < 0 {
		renderError(w, r, fmt.Errorf("time_spent must be non-negative"), http.StatusBadRequest)
		return
	}

	interaction := &domain.Interaction{
		UserID:    req.UserID,
		ArticleID: req.ArticleID,
		Type:      domain.InteractionType(req.Type),
		TimeSpent: req.TimeSpent,
	}
	if err := s.store.AddInteraction(ctx, interaction); err != nil {
		lgr.Printf("[ERROR] failed to add interaction: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	if interaction.Type == domain.InteractionLiked {
		article, err := s.store.GetArticle(ctx, req.ArticleID)
		if err != nil {
			lgr.Printf("[ERROR] failed to get liked article %d: %v", req.ArticleID, err)
			renderError(w, r, err, http.StatusInternalServerError)
			return
		}

		country := recommender.NormalizeCountry(article.Country)
		categories := make([]string, 0, len(article.Categories))
		for _, cat := range article.Categories {
			if trimmed := strings.ToLower(strings.TrimSpace(cat)); trimmed != "" {
				categories = append(categories, trimmed)
			}
		}

		if err := s.store.RegisterLike(ctx, req.UserID, article.Title, country, categories); err != nil {
			lgr.Printf("[ERROR] failed to register like: %v", err)
			renderError(w, r, err, http.StatusInternalServerError)
			return
		}
	}

	renderJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// configStatsHandler reports observed CTR per scoring configuration
func (s *Server) configStatsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := s.store.ConfigStats(r.Context())
	if err != nil {
		lgr.Printf("[ERROR] failed to get config stats: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	type statsJSON struct {
		ConfigID    int64   `json:"config_id"`
		Impressions int64   `json:"impressions"`
		Clicks      int64   `json:"clicks"`
		CTR         float64 `json:"ctr"`
	}
	response := struct {
		Configs []statsJSON `json:"configs"`
	}{Configs: make([]statsJSON, len(stats))}
	for i, stat := range stats {
		response.Configs[i] = statsJSON{
			ConfigID:    stat.ConfigID,
			Impressions: stat.Impressions,
			Clicks:      stat.Clicks,
			CTR:         stat.CTR,
		}
	}
	renderJSON(w, r, http.StatusOK, response)
}

// comparisonHandler contrasts scored recommendations with the random baseline
func (s *Server) comparisonHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	scored, err := s.store.FetchLogs(ctx, true)
	if err != nil {
		lgr.Printf("[ERROR] failed to fetch scored logs: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	baseline, err := s.store.FetchLogs(ctx, false)
	if err != nil {
		lgr.Printf("[ERROR] failed to fetch baseline logs: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusOK, recommender.Compare(scored, baseline))
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			lgr.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
