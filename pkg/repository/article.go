package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/newsrec/pkg/domain"
)

// ArticleRepository handles article-related database operations
type ArticleRepository struct {
	db *sqlx.DB
}

// articleSQL represents an article for SQL operations
type articleSQL struct {
	ID          int64        `db:"id"`
	Title       string       `db:"title"`
	Link        string       `db:"link"`
	Description string       `db:"description"`
	Source      string       `db:"source"`
	Country     string       `db:"country"`
	Categories  tagsSQL      `db:"categories"`
	Language    string       `db:"language"`
	Published   sql.NullTime `db:"published"`
	CreatedAt   time.Time    `db:"created_at"`
}

// tagsSQL is a JSON array of tag strings for SQL operations
type tagsSQL []string

// Value implements driver.Valuer for database storage
func (t tagsSQL) Value() (driver.Value, error) {
	if t == nil {
		return "[]", nil
	}
	return json.Marshal(t)
}

// Scan implements sql.Scanner for database retrieval
func (t *tagsSQL) Scan(value interface{}) error {
	if value == nil {
		*t = tagsSQL{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		*t = tagsSQL{}
		return nil
	}

	return json.Unmarshal(data, t)
}

// countsSQL is a JSON object of string to non-negative count for SQL operations
type countsSQL map[string]int

// Value implements driver.Valuer for database storage
func (c countsSQL) Value() (driver.Value, error) {
	if c == nil {
		return "{}", nil
	}
	return json.Marshal(c)
}

// Scan implements sql.Scanner for database retrieval
func (c *countsSQL) Scan(value interface{}) error {
	if value == nil {
		*c = countsSQL{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		*c = countsSQL{}
		return nil
	}

	return json.Unmarshal(data, c)
}

// NewArticleRepository creates a new article repository
func NewArticleRepository(database *sqlx.DB) *ArticleRepository {
	return &ArticleRepository{db: database}
}

// Create inserts a new article, skipping duplicates by link.
// Returns false when the article already exists.
func (r *ArticleRepository) Create(ctx context.Context, article *domain.Article) (created bool, err error) {
	sqlArticle := &articleSQL{
		Title:       article.Title,
		Link:        article.Link,
		Description: article.Description,
		Source:      article.Source,
		Country:     article.Country,
		Categories:  tagsSQL(article.Categories),
		Language:    article.Language,
	}
	if !article.Published.IsZero() {
		sqlArticle.Published = sql.NullTime{Time: article.Published, Valid: true}
	}

	query := `
		INSERT INTO articles (title, link, description, source, country, categories, language, published)
		VALUES (:title, :link, :description, :source, :country, :categories, :language, :published)
	`
	result, err := r.db.NamedExecContext(ctx, query, sqlArticle)
	if err != nil {
		if isUniqueViolation(err) {
			return false, nil
		}
		return false, fmt.Errorf("create article: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return false, fmt.Errorf("get insert id: %w", err)
	}

	article.ID = id
	return true, nil
}

// Get retrieves an article by ID
func (r *ArticleRepository) Get(ctx context.Context, id int64) (*domain.Article, error) {
	var sqlArticle articleSQL
	err := r.db.GetContext(ctx, &sqlArticle, "SELECT * FROM articles WHERE id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	res := toDomainArticle(&sqlArticle)
	return &res, nil
}

// FetchAll retrieves the candidate article set, newest first, capped at limit.
// The cap guards the ranking path against unbounded memory on a large table.
func (r *ArticleRepository) FetchAll(ctx context.Context, limit int) ([]domain.Article, error) {
	query := `
		SELECT * FROM articles
		ORDER BY published DESC, id DESC
		LIMIT ?
	`
	var sqlArticles []articleSQL
	if err := r.db.SelectContext(ctx, &sqlArticles, query, limit); err != nil {
		return nil, fmt.Errorf("fetch articles: %w", err)
	}

	articles := make([]domain.Article, len(sqlArticles))
	for i := range sqlArticles {
		articles[i] = toDomainArticle(&sqlArticles[i])
	}
	return articles, nil
}

// Exists checks if an article with the given link is already stored
func (r *ArticleRepository) Exists(ctx context.Context, link string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		"SELECT EXISTS(SELECT 1 FROM articles WHERE link = ?)", link)
	if err != nil {
		return false, fmt.Errorf("check article exists: %w", err)
	}
	return exists, nil
}

// toDomainArticle converts articleSQL to domain.Article
func toDomainArticle(sqlArticle *articleSQL) domain.Article {
	article := domain.Article{
		ID:          sqlArticle.ID,
		Title:       sqlArticle.Title,
		Link:        sqlArticle.Link,
		Description: sqlArticle.Description,
		Source:      sqlArticle.Source,
		Country:     sqlArticle.Country,
		Categories:  sqlArticle.Categories,
		Language:    sqlArticle.Language,
		CreatedAt:   sqlArticle.CreatedAt,
	}
	if sqlArticle.Published.Valid {
		article.Published = sqlArticle.Published.Time
	}
	return article
}
