package ports

import (
	"context"
	"time"
)

// CreateArticleInput carries all data needed to create an article.
type CreateArticleInput struct {
	Title       string
	Description string
	AuthorID    int
	// Actor is the email of the admin performing the mutation (audit trail).
	Actor string
}

// UpdateArticleInput carries the mutable fields of an article update.
type UpdateArticleInput struct {
	ID          int
	Title       string
	Description string
	AuthorID    int
	Actor       string
}

// AuthorRef is the one-level-deep author embedded in article views.
type AuthorRef struct {
	ID   int
	Name string
}

// ArticleDetail is the full article view returned by Get and Create.
type ArticleDetail struct {
	ID          int
	Title       string
	Description string
	AuthorID    int
	Author      *AuthorRef
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// ArticleService defines use-case operations for articles.
type ArticleService interface {
	// ListArticles returns every article, newest first by creation time.
	ListArticles(ctx context.Context) ([]ArticleDetail, error)
	GetArticle(ctx context.Context, id int) (*ArticleDetail, error)
	// CreateArticle assigns a server id and UTC creation time, then returns
	// the re-read hydrated entity.
	CreateArticle(ctx context.Context, input CreateArticleInput) (*ArticleDetail, error)
	UpdateArticle(ctx context.Context, input UpdateArticleInput) error
	DeleteArticle(ctx context.Context, id int, actor string) error
}
