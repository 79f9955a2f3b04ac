package web

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/ujsag/newspress/internal/client/rest"
)

type stubAPI struct {
	articles []rest.Article
	authors  []rest.AuthorSummary
	fail     bool
}

func (s *stubAPI) ListArticles(context.Context) ([]rest.Article, error) {
	if s.fail {
		return nil, errors.New("connection refused")
	}
	return s.articles, nil
}

func (s *stubAPI) GetArticle(_ context.Context, id int) (*rest.Article, error) {
	for i := range s.articles {
		if s.articles[i].ID == id {
			return &s.articles[i], nil
		}
	}
	return nil, rest.ErrNotFound
}

func (s *stubAPI) ListAuthors(context.Context) ([]rest.AuthorSummary, error) {
	if s.fail {
		return nil, errors.New("connection refused")
	}
	return s.authors, nil
}

func (s *stubAPI) GetAuthor(_ context.Context, id int) (*rest.AuthorDetail, error) {
	return nil, rest.ErrNotFound
}

func serve(t *testing.T, api API, path string) *httptest.ResponseRecorder {
	t.Helper()
	e := NewRouter(api, zerolog.Nop())
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestWeb_FrontPageRendersArticles(t *testing.T) {
	api := &stubAPI{articles: []rest.Article{
		{ID: 1, Title: "Front page story", CreatedDate: time.Now().UTC()},
	}}

	rec := serve(t, api, "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Front page story") {
		t.Fatalf("article title missing from page: %s", rec.Body.String())
	}
}

func TestWeb_FrontPageSurvivesAPIFailure(t *testing.T) {
	rec := serve(t, &stubAPI{fail: true}, "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 on degraded page, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "No articles yet") {
		t.Fatalf("expected empty-state message, got: %s", rec.Body.String())
	}
}

func TestWeb_ArticlePage(t *testing.T) {
	api := &stubAPI{articles: []rest.Article{
		{ID: 7, Title: "Deep dive", Description: "details", CreatedDate: time.Now().UTC()},
	}}

	rec := serve(t, api, "/articles/7")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Deep dive") {
		t.Fatalf("article body missing: %s", rec.Body.String())
	}
}

func TestWeb_MissingArticleIs404(t *testing.T) {
	rec := serve(t, &stubAPI{}, "/articles/999")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestWeb_AuthorsPage(t *testing.T) {
	api := &stubAPI{authors: []rest.AuthorSummary{
		{ID: 1, Name: "Ada Lovelace", ArticleCount: 2},
	}}

	rec := serve(t, api, "/authors")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Ada Lovelace") {
		t.Fatalf("author missing from page: %s", rec.Body.String())
	}
}
