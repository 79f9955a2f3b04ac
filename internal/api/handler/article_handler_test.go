package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ujsag/newspress/internal/core/domain"
	"github.com/ujsag/newspress/internal/core/ports"
)

type stubArticleService struct {
	listFn   func(ctx context.Context) ([]ports.ArticleDetail, error)
	getFn    func(ctx context.Context, id int) (*ports.ArticleDetail, error)
	createFn func(ctx context.Context, input ports.CreateArticleInput) (*ports.ArticleDetail, error)
	updateFn func(ctx context.Context, input ports.UpdateArticleInput) error
	deleteFn func(ctx context.Context, id int, actor string) error
}

func (s *stubArticleService) ListArticles(ctx context.Context) ([]ports.ArticleDetail, error) {
	return s.listFn(ctx)
}

func (s *stubArticleService) GetArticle(ctx context.Context, id int) (*ports.ArticleDetail, error) {
	return s.getFn(ctx, id)
}

func (s *stubArticleService) CreateArticle(ctx context.Context, input ports.CreateArticleInput) (*ports.ArticleDetail, error) {
	return s.createFn(ctx, input)
}

func (s *stubArticleService) UpdateArticle(ctx context.Context, input ports.UpdateArticleInput) error {
	return s.updateFn(ctx, input)
}

func (s *stubArticleService) DeleteArticle(ctx context.Context, id int, actor string) error {
	return s.deleteFn(ctx, id, actor)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func TestArticleHandler_List_Success(t *testing.T) {
	e := newTestEcho()
	created := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	stub := &stubArticleService{
		listFn: func(context.Context) ([]ports.ArticleDetail, error) {
			return []ports.ArticleDetail{
				{ID: 2, Title: "newer", CreatedAt: created.Add(time.Hour)},
				{ID: 1, Title: "older", CreatedAt: created},
			}, nil
		},
	}
	h := NewArticleHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/articles", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 2 || resp[0]["title"] != "newer" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestArticleHandler_Get_InvalidID(t *testing.T) {
	e := newTestEcho()
	h := NewArticleHandler(&stubArticleService{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := h.Get(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestArticleHandler_Create_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubArticleService{
		createFn: func(_ context.Context, input ports.CreateArticleInput) (*ports.ArticleDetail, error) {
			if input.Actor != "admin@example.com" {
				t.Fatalf("expected actor from context, got %q", input.Actor)
			}
			return &ports.ArticleDetail{ID: 7, Title: input.Title, CreatedAt: time.Now().UTC()}, nil
		},
	}
	h := NewArticleHandler(stub)

	body := strings.NewReader(`{"title":"breaking news","authorId":1}`)
	req := httptest.NewRequest(http.MethodPost, "/api/articles", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("email", "admin@example.com")

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != float64(7) {
		t.Fatalf("expected server-assigned id 7, got %v", resp["id"])
	}
}

func TestArticleHandler_Create_EmptyTitle(t *testing.T) {
	e := newTestEcho()
	h := NewArticleHandler(&stubArticleService{
		createFn: func(context.Context, ports.CreateArticleInput) (*ports.ArticleDetail, error) {
			t.Fatal("service must not be called for invalid input")
			return nil, nil
		},
	})

	body := strings.NewReader(`{"title":"","authorId":1}`)
	req := httptest.NewRequest(http.MethodPost, "/api/articles", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("email", "admin@example.com")

	err := h.Create(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestArticleHandler_Update_IDMismatch(t *testing.T) {
	e := newTestEcho()
	h := NewArticleHandler(&stubArticleService{
		updateFn: func(context.Context, ports.UpdateArticleInput) error {
			t.Fatal("service must not be called on id mismatch")
			return nil
		},
	})

	body := strings.NewReader(`{"id":6,"title":"x","authorId":1}`)
	req := httptest.NewRequest(http.MethodPut, "/", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("5")
	c.Set("email", "admin@example.com")

	err := h.Update(c)
	if err != domain.ErrIDMismatch {
		t.Fatalf("expected ErrIDMismatch, got %v", err)
	}
}

func TestArticleHandler_Update_Success(t *testing.T) {
	e := newTestEcho()
	var got ports.UpdateArticleInput
	h := NewArticleHandler(&stubArticleService{
		updateFn: func(_ context.Context, input ports.UpdateArticleInput) error {
			got = input
			return nil
		},
	})

	body := strings.NewReader(`{"id":5,"title":"updated","authorId":2}`)
	req := httptest.NewRequest(http.MethodPut, "/", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("5")
	c.Set("email", "admin@example.com")

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if got.ID != 5 || got.Title != "updated" || got.Actor != "admin@example.com" {
		t.Fatalf("unexpected input: %+v", got)
	}
}

func TestArticleHandler_Delete_NotFound(t *testing.T) {
	e := newTestEcho()
	h := NewArticleHandler(&stubArticleService{
		deleteFn: func(context.Context, int, string) error {
			return domain.ErrArticleNotFound
		},
	})

	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("999")
	c.Set("email", "admin@example.com")

	err := h.Delete(c)
	if err != domain.ErrArticleNotFound {
		t.Fatalf("expected ErrArticleNotFound to propagate, got %v", err)
	}
}
