package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/ujsag/newspress/internal/api/metrics"
	"github.com/ujsag/newspress/internal/core/domain"
	"github.com/ujsag/newspress/internal/core/ports"
)

type AuthorService struct {
	authors  ports.AuthorRepository
	articles ports.ArticleRepository
	audit    ports.AuditRecorder
	logger   zerolog.Logger
}

func NewAuthorService(authors ports.AuthorRepository, articles ports.ArticleRepository, audit ports.AuditRecorder, logger zerolog.Logger) *AuthorService {
	return &AuthorService{authors: authors, articles: articles, audit: audit, logger: logger}
}

// ListAuthors returns every author with a derived article count.
func (s *AuthorService) ListAuthors(ctx context.Context) ([]ports.AuthorSummary, error) {
	authors, err := s.authors.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list authors: %w", err)
	}

	out := make([]ports.AuthorSummary, 0, len(authors))
	for _, a := range authors {
		articles, err := s.articles.ListByAuthor(ctx, a.ID)
		if err != nil {
			return nil, fmt.Errorf("list authors: count articles for %d: %w", a.ID, err)
		}
		out = append(out, ports.AuthorSummary{ID: a.ID, Name: a.Name, ArticleCount: len(articles)})
	}
	return out, nil
}

// GetAuthor returns the author with one level of article summaries. The
// embedded articles carry no nested author, so serialization depth is bounded.
func (s *AuthorService) GetAuthor(ctx context.Context, id int) (*ports.AuthorDetail, error) {
	a, err := s.authors.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	articles, err := s.articles.ListByAuthor(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get author %d: load articles: %w", id, err)
	}

	detail := &ports.AuthorDetail{ID: a.ID, Name: a.Name, Articles: make([]ports.AuthorArticle, 0, len(articles))}
	for _, art := range articles {
		detail.Articles = append(detail.Articles, ports.AuthorArticle{
			ID:          art.ID,
			Title:       art.Title,
			Description: art.Description,
			CreatedAt:   art.CreatedAt,
		})
	}
	return detail, nil
}

// CreateAuthor inserts a new author and returns the re-read detail view.
func (s *AuthorService) CreateAuthor(ctx context.Context, input ports.CreateAuthorInput) (*ports.AuthorDetail, error) {
	id, err := s.authors.NextID(ctx)
	if err != nil {
		return nil, fmt.Errorf("create author: reserve id: %w", err)
	}

	if err := s.authors.Insert(ctx, &domain.Author{ID: id, Name: input.Name}); err != nil {
		s.logger.Error().Err(err).Int("id", id).Msg("failed to insert author")
		return nil, err
	}

	metrics.AuthorsCreatedTotal.Inc()
	s.audit.Record(domain.AuditEntry{
		Entity:   "author",
		EntityID: id,
		Action:   domain.AuditCreated,
		Actor:    input.Actor,
		At:       time.Now().UTC(),
	})
	s.logger.Info().Int("id", id).Str("name", input.Name).Msg("author created")

	return s.GetAuthor(ctx, id)
}
