package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"github.com/umputun/newsrec/pkg/domain"
)

// LogRepository handles impression and click logging
type LogRepository struct {
	db *sqlx.DB
}

// logSQL represents a recommendation log row for SQL operations
type logSQL struct {
	ID        int64         `db:"id"`
	UserID    int64         `db:"user_id"`
	ArticleID int64         `db:"article_id"`
	ConfigID  sql.NullInt64 `db:"scoring_config_id"`
	Clicked   bool          `db:"clicked"`
	CreatedAt time.Time     `db:"created_at"`
}

// NewLogRepository creates a new recommendation log repository
func NewLogRepository(database *sqlx.DB) *LogRepository {
	return &LogRepository{db: database}
}

// AddImpressions appends one log row per recommended article, clicked=false,
// tagged with the scoring config (nil for baseline impressions). The batch is
// a single transaction so a failed ranking call never leaves a partial
// impression set to skew CTR. Lock errors are retried with backoff.
func (r *LogRepository) AddImpressions(ctx context.Context, userID int64, recs []domain.Recommendation, configID *int64) error {
	if len(recs) == 0 {
		return nil
	}

	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	err := retrier.Do(ctx, func() error {
		tx, err := r.db.BeginTxx(ctx, nil)
		if err != nil {
			if isLockError(err) {
				return err // repeater will retry this
			}
			return &criticalError{err: fmt.Errorf("begin impressions: %w", err)}
		}
		defer func() { _ = tx.Rollback() }()

		for _, rec := range recs {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO recommendation_logs (user_id, article_id, scoring_config_id)
				VALUES (?, ?, ?)`, userID, rec.ArticleID, nullableID(configID))
			if err != nil {
				if isLockError(err) {
					return err
				}
				return &criticalError{err: fmt.Errorf("insert impression: %w", err)}
			}
		}

		if err := tx.Commit(); err != nil {
			if isLockError(err) {
				return err
			}
			return &criticalError{err: fmt.Errorf("commit impressions: %w", err)}
		}
		return nil
	})
	if err != nil {
		return unwrapCritical(err, "add impressions")
	}
	return nil
}

// MarkClicked flips clicked=true on the matching (user, article, config) row.
// A nil configID matches rows logged without a config, not any row; the IS
// NULL branch is explicit because SQL equality never matches NULL. When no
// impression exists the click is still a valid signal and a new row is
// inserted directly as clicked.
func (r *LogRepository) MarkClicked(ctx context.Context, userID, articleID int64, configID *int64) error {
	var result sql.Result
	var err error

	if configID == nil {
		result, err = r.db.ExecContext(ctx, `
			UPDATE recommendation_logs SET clicked = 1
			WHERE user_id = ? AND article_id = ? AND scoring_config_id IS NULL`,
			userID, articleID)
	} else {
		result, err = r.db.ExecContext(ctx, `
			UPDATE recommendation_logs SET clicked = 1
			WHERE user_id = ? AND article_id = ? AND scoring_config_id = ?`,
			userID, articleID, *configID)
	}
	if err != nil {
		return fmt.Errorf("mark clicked: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if affected > 0 {
		return nil
	}

	// click without a recorded impression
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO recommendation_logs (user_id, article_id, scoring_config_id, clicked)
		VALUES (?, ?, ?, 1)`, userID, articleID, nullableID(configID))
	if err != nil {
		return fmt.Errorf("insert click: %w", err)
	}
	return nil
}

// ConfigStats returns observed impressions, clicks and CTR per scoring
// configuration, best CTR first. Baseline rows (NULL config) are excluded.
func (r *LogRepository) ConfigStats(ctx context.Context) ([]domain.ConfigStats, error) {
	rows := []struct {
		ConfigID    int64 `db:"scoring_config_id"`
		Impressions int64 `db:"impressions"`
		Clicks      int64 `db:"clicks"`
	}{}

	query := `
		SELECT scoring_config_id,
		       COUNT(*) AS impressions,
		       COALESCE(SUM(clicked), 0) AS clicks
		FROM recommendation_logs
		WHERE scoring_config_id IS NOT NULL
		GROUP BY scoring_config_id
	`
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("get config stats: %w", err)
	}

	stats := make([]domain.ConfigStats, len(rows))
	for i, row := range rows {
		stats[i] = domain.ConfigStats{
			ConfigID:    row.ConfigID,
			Impressions: row.Impressions,
			Clicks:      row.Clicks,
		}
		if row.Impressions > 0 {
			stats[i].CTR = float64(row.Clicks) / float64(row.Impressions)
		}
	}

	// best CTR first, stable on config id for equal rates
	sort.SliceStable(stats, func(i, j int) bool { return stats[i].CTR > stats[j].CTR })
	return stats, nil
}

// Fetch returns log rows in insert order, scored selects rows with a config
// attached, otherwise baseline rows. Used by offline evaluation.
func (r *LogRepository) Fetch(ctx context.Context, scored bool) ([]domain.RecommendationLog, error) {
	query := "SELECT * FROM recommendation_logs WHERE scoring_config_id IS NULL ORDER BY id"
	if scored {
		query = "SELECT * FROM recommendation_logs WHERE scoring_config_id IS NOT NULL ORDER BY id"
	}

	var sqlLogs []logSQL
	if err := r.db.SelectContext(ctx, &sqlLogs, query); err != nil {
		return nil, fmt.Errorf("fetch logs: %w", err)
	}

	logs := make([]domain.RecommendationLog, len(sqlLogs))
	for i, row := range sqlLogs {
		logs[i] = domain.RecommendationLog{
			ID:        row.ID,
			UserID:    row.UserID,
			ArticleID: row.ArticleID,
			Clicked:   row.Clicked,
			CreatedAt: row.CreatedAt,
		}
		if row.ConfigID.Valid {
			id := row.ConfigID.Int64
			logs[i].ConfigID = &id
		}
	}
	return logs, nil
}

// nullableID converts *int64 to a driver-friendly value
func nullableID(id *int64) sql.NullInt64 {
	if id == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *id, Valid: true}
}

// unwrapCritical unpacks a criticalError left by a retried operation
func unwrapCritical(err error, op string) error {
	var critical *criticalError
	if errors.As(err, &critical) {
		return critical.err
	}
	return fmt.Errorf("%s: %w", op, err)
}
