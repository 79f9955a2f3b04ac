package ports

import (
	"context"

	"github.com/ujsag/newspress/internal/core/domain"
)

// ArticleRepository defines persistence operations for articles.
type ArticleRepository interface {
	// List returns all articles sorted by created_at descending.
	List(ctx context.Context) ([]*domain.Article, error)
	// ListByAuthor returns the author's articles, newest first.
	ListByAuthor(ctx context.Context, authorID int) ([]*domain.Article, error)
	FindByID(ctx context.Context, id int) (*domain.Article, error)
	// Insert persists the article. The caller has already assigned the id.
	Insert(ctx context.Context, a *domain.Article) error
	// Update replaces the mutable fields of an existing article.
	Update(ctx context.Context, a *domain.Article) error
	Delete(ctx context.Context, id int) error
	// NextID reserves the next value of the article id sequence.
	NextID(ctx context.Context) (int, error)
}
