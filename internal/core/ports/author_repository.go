package ports

import (
	"context"

	"github.com/ujsag/newspress/internal/core/domain"
)

// AuthorRepository defines persistence operations for authors.
type AuthorRepository interface {
	List(ctx context.Context) ([]*domain.Author, error)
	FindByID(ctx context.Context, id int) (*domain.Author, error)
	// FindByIDs returns the authors matching ids, keyed by id. Missing ids
	// are simply absent from the result.
	FindByIDs(ctx context.Context, ids []int) (map[int]*domain.Author, error)
	Insert(ctx context.Context, a *domain.Author) error
	// NextID reserves the next value of the author id sequence.
	NextID(ctx context.Context) (int, error)
}
