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

type ArticleService struct {
	articles ports.ArticleRepository
	authors  ports.AuthorRepository
	audit    ports.AuditRecorder
	logger   zerolog.Logger
}

func NewArticleService(articles ports.ArticleRepository, authors ports.AuthorRepository, audit ports.AuditRecorder, logger zerolog.Logger) *ArticleService {
	return &ArticleService{articles: articles, authors: authors, audit: audit, logger: logger}
}

// ListArticles returns every article newest-first, with authors embedded
// one level deep. No pagination, no filtering.
func (s *ArticleService) ListArticles(ctx context.Context) ([]ports.ArticleDetail, error) {
	articles, err := s.articles.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}

	authorIDs := make([]int, 0, len(articles))
	seen := make(map[int]struct{}, len(articles))
	for _, a := range articles {
		if a.AuthorID == 0 {
			continue
		}
		if _, ok := seen[a.AuthorID]; ok {
			continue
		}
		seen[a.AuthorID] = struct{}{}
		authorIDs = append(authorIDs, a.AuthorID)
	}

	byID, err := s.authors.FindByIDs(ctx, authorIDs)
	if err != nil {
		return nil, fmt.Errorf("list articles: hydrate authors: %w", err)
	}

	out := make([]ports.ArticleDetail, 0, len(articles))
	for _, a := range articles {
		out = append(out, toDetail(a, byID[a.AuthorID]))
	}
	return out, nil
}

// GetArticle returns one article with its author embedded. A missing author
// row leaves the Author field nil rather than failing the read.
func (s *ArticleService) GetArticle(ctx context.Context, id int) (*ports.ArticleDetail, error) {
	a, err := s.articles.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var author *domain.Author
	if a.AuthorID != 0 {
		author, err = s.authors.FindByID(ctx, a.AuthorID)
		if err != nil && err != domain.ErrAuthorNotFound {
			return nil, fmt.Errorf("get article %d: hydrate author: %w", id, err)
		}
	}

	detail := toDetail(a, author)
	return &detail, nil
}

// CreateArticle assigns the next sequence id and a UTC creation timestamp,
// inserts the row, then re-reads the hydrated entity.
func (s *ArticleService) CreateArticle(ctx context.Context, input ports.CreateArticleInput) (*ports.ArticleDetail, error) {
	id, err := s.articles.NextID(ctx)
	if err != nil {
		return nil, fmt.Errorf("create article: reserve id: %w", err)
	}

	a := &domain.Article{
		ID:          id,
		Title:       input.Title,
		Description: input.Description,
		AuthorID:    input.AuthorID,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.articles.Insert(ctx, a); err != nil {
		s.logger.Error().Err(err).Int("id", id).Msg("failed to insert article")
		return nil, err
	}

	metrics.ArticlesCreatedTotal.Inc()
	s.audit.Record(domain.AuditEntry{
		Entity:   "article",
		EntityID: id,
		Action:   domain.AuditCreated,
		Actor:    input.Actor,
		At:       a.CreatedAt,
	})
	s.logger.Info().Int("id", id).Str("title", input.Title).Msg("article created")

	return s.GetArticle(ctx, id)
}

// UpdateArticle mutates the row's mutable fields and sets the updated
// timestamp. Returns ErrArticleNotFound if the id does not exist.
// Last write wins: there is no version check.
func (s *ArticleService) UpdateArticle(ctx context.Context, input ports.UpdateArticleInput) error {
	existing, err := s.articles.FindByID(ctx, input.ID)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	existing.Title = input.Title
	existing.Description = input.Description
	existing.AuthorID = input.AuthorID
	existing.UpdatedAt = &now

	if err := s.articles.Update(ctx, existing); err != nil {
		return err
	}

	s.audit.Record(domain.AuditEntry{
		Entity:   "article",
		EntityID: input.ID,
		Action:   domain.AuditUpdated,
		Actor:    input.Actor,
		At:       now,
	})
	return nil
}

// DeleteArticle removes the row. A second delete of the same id returns
// ErrArticleNotFound, which the API maps to a clean 404.
func (s *ArticleService) DeleteArticle(ctx context.Context, id int, actor string) error {
	if err := s.articles.Delete(ctx, id); err != nil {
		return err
	}

	s.audit.Record(domain.AuditEntry{
		Entity:   "article",
		EntityID: id,
		Action:   domain.AuditDeleted,
		Actor:    actor,
		At:       time.Now().UTC(),
	})
	s.logger.Info().Int("id", id).Msg("article deleted")
	return nil
}

func toDetail(a *domain.Article, author *domain.Author) ports.ArticleDetail {
	d := ports.ArticleDetail{
		ID:          a.ID,
		Title:       a.Title,
		Description: a.Description,
		AuthorID:    a.AuthorID,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
	if author != nil {
		d.Author = &ports.AuthorRef{ID: author.ID, Name: author.Name}
	}
	return d
}
