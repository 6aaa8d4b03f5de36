package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/newsrec/pkg/domain"
)

// InteractionRepository handles the append-only interaction log
type InteractionRepository struct {
	db *sqlx.DB
}

// NewInteractionRepository creates a new interaction repository
func NewInteractionRepository(database *sqlx.DB) *InteractionRepository {
	return &InteractionRepository{db: database}
}

// Add appends an interaction row, timestamp set by the database
func (r *InteractionRepository) Add(ctx context.Context, interaction *domain.Interaction) error {
	query := `
		INSERT INTO interactions (user_id, article_id, interaction_type, time_spent)
		VALUES (?, ?, ?, ?)
	`
	result, err := r.db.ExecContext(ctx, query,
		interaction.UserID, interaction.ArticleID, string(interaction.Type), interaction.TimeSpent)
	if err != nil {
		return fmt.Errorf("add interaction: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get insert id: %w", err)
	}

	interaction.ID = id
	return nil
}

// TimeSpent returns the user's time spent per article in seconds, taking the
// maximum across repeated interactions. Articles without interactions are
// simply absent from the map.
func (r *InteractionRepository) TimeSpent(ctx context.Context, userID int64) (map[int64]int, error) {
	rows := []struct {
		ArticleID int64 `db:"article_id"`
		TimeSpent int   `db:"time_spent"`
	}{}

	query := `
		SELECT article_id, MAX(time_spent) AS time_spent
		FROM interactions
		WHERE user_id = ?
		GROUP BY article_id
	`
	if err := r.db.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, fmt.Errorf("get time spent: %w", err)
	}

	result := make(map[int64]int, len(rows))
	for _, row := range rows {
		result[row.ArticleID] = row.TimeSpent
	}
	return result, nil
}
