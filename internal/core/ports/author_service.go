package ports

import (
	"context"
	"time"
)

// CreateAuthorInput carries the data needed to create an author.
type CreateAuthorInput struct {
	Name  string
	Actor string
}

// AuthorSummary is the lightweight item used in author list responses.
type AuthorSummary struct {
	ID           int
	Name         string
	ArticleCount int
}

// AuthorArticle is an article summary embedded in an author detail view.
// It never carries a nested author.
type AuthorArticle struct {
	ID          int
	Title       string
	Description string
	CreatedAt   time.Time
}

// AuthorDetail is the full author view returned by Get and Create.
type AuthorDetail struct {
	ID       int
	Name     string
	Articles []AuthorArticle
}

// AuthorService defines use-case operations for authors.
type AuthorService interface {
	ListAuthors(ctx context.Context) ([]AuthorSummary, error)
	GetAuthor(ctx context.Context, id int) (*AuthorDetail, error)
	CreateAuthor(ctx context.Context, input CreateAuthorInput) (*AuthorDetail, error)
}
