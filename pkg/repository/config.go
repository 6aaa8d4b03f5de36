package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"github.com/umputun/newsrec/pkg/domain"
)

// ConfigRepository handles scoring configuration storage
type ConfigRepository struct {
	db *sqlx.DB
}

// configSQL represents a scoring configuration for SQL operations
type configSQL struct {
	ID        int64     `db:"id"`
	W1        float64   `db:"w1"`
	W2        float64   `db:"w2"`
	W3        float64   `db:"w3"`
	Active    bool      `db:"is_active"`
	CreatedAt time.Time `db:"created_at"`
}

// NewConfigRepository creates a new scoring configuration repository
func NewConfigRepository(database *sqlx.DB) *ConfigRepository {
	return &ConfigRepository{db: database}
}

// Ensure returns the id of the configuration with the exact (w1, w2, w3)
// triple, creating it when absent. Safe under concurrent callers: a losing
// insert resolves to the winner's row instead of surfacing the constraint
// violation. Lock errors are retried with backoff.
func (r *ConfigRepository) Ensure(ctx context.Context, w1, w2, w3 float64) (int64, error) {
	var id int64
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	err := retrier.Do(ctx, func() error {
		err := r.db.GetContext(ctx, &id,
			"SELECT id FROM scoring_configurations WHERE w1 = ? AND w2 = ? AND w3 = ?", w1, w2, w3)
		if err == nil {
			return nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			if isLockError(err) {
				return err // repeater will retry this
			}
			return &criticalError{err: fmt.Errorf("lookup scoring config: %w", err)}
		}

		result, err := r.db.ExecContext(ctx,
			"INSERT INTO scoring_configurations (w1, w2, w3) VALUES (?, ?, ?)", w1, w2, w3)
		if err != nil {
			if isUniqueViolation(err) {
				// lost the insert race, read the winner's id
				if err := r.db.GetContext(ctx, &id,
					"SELECT id FROM scoring_configurations WHERE w1 = ? AND w2 = ? AND w3 = ?", w1, w2, w3); err != nil {
					return &criticalError{err: fmt.Errorf("resolve config race: %w", err)}
				}
				return nil
			}
			if isLockError(err) {
				return err
			}
			return &criticalError{err: fmt.Errorf("insert scoring config: %w", err)}
		}

		id, err = result.LastInsertId()
		if err != nil {
			return &criticalError{err: fmt.Errorf("get insert id: %w", err)}
		}
		return nil
	})
	if err != nil {
		var critical *criticalError
		if errors.As(err, &critical) {
			return 0, critical.err
		}
		return 0, fmt.Errorf("ensure scoring config: %w", err)
	}
	return id, nil
}

// Get retrieves a configuration by id
func (r *ConfigRepository) Get(ctx context.Context, id int64) (*domain.ScoringConfig, error) {
	var sqlConfig configSQL
	err := r.db.GetContext(ctx, &sqlConfig, "SELECT * FROM scoring_configurations WHERE id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("get scoring config: %w", err)
	}
	return toDomainConfig(&sqlConfig), nil
}

// GetActive returns the most recently created active configuration.
// Both return values are nil when no active configuration exists.
func (r *ConfigRepository) GetActive(ctx context.Context) (*domain.ScoringConfig, error) {
	var sqlConfig configSQL
	err := r.db.GetContext(ctx, &sqlConfig, `
		SELECT * FROM scoring_configurations
		WHERE is_active = 1
		ORDER BY created_at DESC, id DESC
		LIMIT 1`)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get active scoring config: %w", err)
	}
	return toDomainConfig(&sqlConfig), nil
}

// List retrieves all configurations, oldest first
func (r *ConfigRepository) List(ctx context.Context) ([]domain.ScoringConfig, error) {
	var sqlConfigs []configSQL
	err := r.db.SelectContext(ctx, &sqlConfigs, "SELECT * FROM scoring_configurations ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("list scoring configs: %w", err)
	}

	configs := make([]domain.ScoringConfig, len(sqlConfigs))
	for i := range sqlConfigs {
		configs[i] = *toDomainConfig(&sqlConfigs[i])
	}
	return configs, nil
}

// SetActive toggles the active flag, the only mutable field of a configuration
func (r *ConfigRepository) SetActive(ctx context.Context, id int64, active bool) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE scoring_configurations SET is_active = ? WHERE id = ?", active, id)
	if err != nil {
		return fmt.Errorf("set scoring config active: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("scoring config %d not found", id)
	}
	return nil
}

// toDomainConfig converts configSQL to domain.ScoringConfig
func toDomainConfig(sqlConfig *configSQL) *domain.ScoringConfig {
	return &domain.ScoringConfig{
		ID:        sqlConfig.ID,
		W1:        sqlConfig.W1,
		W2:        sqlConfig.W2,
		W3:        sqlConfig.W3,
		Active:    sqlConfig.Active,
		CreatedAt: sqlConfig.CreatedAt,
	}
}
