package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"

	"github.com/umputun/newsrec/pkg/domain"
)

// Source describes one configured feed. Country and Categories are defaults
// applied to items the feed itself doesn't tag.
type Source struct {
	URL        string
	Country    string
	Categories []string
}

// Fetcher fetches RSS/Atom feeds and maps their items to articles
type Fetcher struct {
	client    *http.Client
	userAgent string
	sanitizer *bluemonday.Policy
}

// NewFetcher creates a feed fetcher with the given HTTP timeout
func NewFetcher(timeout time.Duration, userAgent string) *Fetcher {
	return &Fetcher{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		userAgent: userAgent,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

// Fetch downloads and parses the source feed, returning article records.
// Descriptions are stripped of markup, categories lowercased; items without
// their own categories inherit the source defaults.
func (f *Fetcher) Fetch(ctx context.Context, src Source) ([]domain.Article, error) {
	body, err := f.fetch(ctx, src.URL)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	defer body.Close()

	parser := gofeed.NewParser()
	parsed, err := parser.Parse(body)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	articles := make([]domain.Article, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		article := domain.Article{
			Title:       strings.TrimSpace(item.Title),
			Link:        item.Link,
			Description: strings.TrimSpace(f.sanitizer.Sanitize(item.Description)),
			Source:      parsed.Title,
			Country:     strings.ToLower(src.Country),
			Categories:  itemCategories(item, src),
			Language:    parsed.Language,
		}
		if item.PublishedParsed != nil {
			article.Published = *item.PublishedParsed
		}
		articles = append(articles, article)
	}
	return articles, nil
}

// fetch downloads the feed content
func (f *Fetcher) fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return resp.Body, nil
}

// itemCategories returns the item's own categories lowercased, falling back
// to the source defaults
func itemCategories(item *gofeed.Item, src Source) []string {
	cats := item.Categories
	if len(cats) == 0 {
		cats = src.Categories
	}
	result := make([]string, 0, len(cats))
	for _, cat := range cats {
		if trimmed := strings.ToLower(strings.TrimSpace(cat)); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
