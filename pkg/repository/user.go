package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/newsrec/pkg/domain"
)

// UserRepository handles user profiles, affinity counts and liked titles
type UserRepository struct {
	db *sqlx.DB
}

// userSQL represents a user for SQL operations
type userSQL struct {
	ID                  int64     `db:"id"`
	Username            string    `db:"username"`
	PreferredCategories tagsSQL   `db:"preferred_categories"`
	PreferredCountries  tagsSQL   `db:"preferred_countries"`
	LikedCategories     countsSQL `db:"liked_categories"`
	LikedCountries      countsSQL `db:"liked_countries"`
}

// NewUserRepository creates a new user repository
func NewUserRepository(database *sqlx.DB) *UserRepository {
	return &UserRepository{db: database}
}

// Create inserts a new user with the given explicit preferences
func (r *UserRepository) Create(ctx context.Context, user *domain.UserProfile) error {
	sqlUser := &userSQL{
		Username:            user.Username,
		PreferredCategories: tagsSQL(user.PreferredCategories),
		PreferredCountries:  tagsSQL(user.PreferredCountries),
		LikedCategories:     countsSQL(user.LikedCategories),
		LikedCountries:      countsSQL(user.LikedCountries),
	}

	query := `
		INSERT INTO users (username, preferred_categories, preferred_countries, liked_categories, liked_countries)
		VALUES (:username, :preferred_categories, :preferred_countries, :liked_categories, :liked_countries)
	`
	result, err := r.db.NamedExecContext(ctx, query, sqlUser)
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get insert id: %w", err)
	}

	user.ID = id
	return nil
}

// GetProfile retrieves a user profile by ID.
// A missing profile is not an error, both return values are nil.
func (r *UserRepository) GetProfile(ctx context.Context, userID int64) (*domain.UserProfile, error) {
	var sqlUser userSQL
	err := r.db.GetContext(ctx, &sqlUser, "SELECT * FROM users WHERE id = ?", userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user profile: %w", err)
	}
	return toDomainProfile(&sqlUser), nil
}

// RegisterLike records a liked interaction's implicit signals: increments the
// user's affinity counts for the given country and categories and appends the
// liked title. Keys must already be normalized (lowercased, country collapsed
// to a single value). All updates commit in one transaction.
func (r *UserRepository) RegisterLike(ctx context.Context, userID int64, title, country string, categories []string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin register like: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var sqlUser userSQL
	if err := tx.GetContext(ctx, &sqlUser, "SELECT * FROM users WHERE id = ?", userID); err != nil {
		return fmt.Errorf("get user for like: %w", err)
	}

	if sqlUser.LikedCategories == nil {
		sqlUser.LikedCategories = countsSQL{}
	}
	if sqlUser.LikedCountries == nil {
		sqlUser.LikedCountries = countsSQL{}
	}
	if country != "" {
		sqlUser.LikedCountries[country]++
	}
	for _, cat := range categories {
		if cat != "" {
			sqlUser.LikedCategories[cat]++
		}
	}

	_, err = tx.NamedExecContext(ctx, `
		UPDATE users SET liked_categories = :liked_categories, liked_countries = :liked_countries
		WHERE id = :id`, &sqlUser)
	if err != nil {
		return fmt.Errorf("update affinity counts: %w", err)
	}

	if title != "" {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO liked_titles (user_id, title) VALUES (?, ?)", userID, title); err != nil {
			return fmt.Errorf("insert liked title: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit register like: %w", err)
	}
	return nil
}

// GetLikedTitles retrieves all titles the user explicitly liked, in insert
// order. Duplicates are possible, the similarity oracle tolerates them.
func (r *UserRepository) GetLikedTitles(ctx context.Context, userID int64) ([]string, error) {
	var titles []string
	err := r.db.SelectContext(ctx, &titles,
		"SELECT title FROM liked_titles WHERE user_id = ? ORDER BY id", userID)
	if err != nil {
		return nil, fmt.Errorf("get liked titles: %w", err)
	}
	return titles, nil
}

// toDomainProfile converts userSQL to domain.UserProfile
func toDomainProfile(sqlUser *userSQL) *domain.UserProfile {
	return &domain.UserProfile{
		ID:                  sqlUser.ID,
		Username:            sqlUser.Username,
		PreferredCategories: sqlUser.PreferredCategories,
		PreferredCountries:  sqlUser.PreferredCountries,
		LikedCategories:     sqlUser.LikedCategories,
		LikedCountries:      sqlUser.LikedCountries,
	}
}
