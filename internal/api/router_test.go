package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/ujsag/newspress/internal/core/domain"
	"github.com/ujsag/newspress/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stub services
// ---------------------------------------------------------------------------

type routerArticleService struct {
	updateCalled bool
}

func (s *routerArticleService) ListArticles(context.Context) ([]ports.ArticleDetail, error) {
	return []ports.ArticleDetail{}, nil
}

func (s *routerArticleService) GetArticle(_ context.Context, id int) (*ports.ArticleDetail, error) {
	if id == 1 {
		return &ports.ArticleDetail{ID: 1, Title: "known", CreatedAt: time.Now().UTC()}, nil
	}
	return nil, domain.ErrArticleNotFound
}

func (s *routerArticleService) CreateArticle(_ context.Context, input ports.CreateArticleInput) (*ports.ArticleDetail, error) {
	return &ports.ArticleDetail{ID: 10, Title: input.Title, CreatedAt: time.Now().UTC()}, nil
}

func (s *routerArticleService) UpdateArticle(context.Context, ports.UpdateArticleInput) error {
	s.updateCalled = true
	return nil
}

func (s *routerArticleService) DeleteArticle(context.Context, int, string) error {
	return nil
}

type routerAuthorService struct{}

func (routerAuthorService) ListAuthors(context.Context) ([]ports.AuthorSummary, error) {
	return []ports.AuthorSummary{}, nil
}

func (routerAuthorService) GetAuthor(_ context.Context, id int) (*ports.AuthorDetail, error) {
	return nil, domain.ErrAuthorNotFound
}

func (routerAuthorService) CreateAuthor(_ context.Context, input ports.CreateAuthorInput) (*ports.AuthorDetail, error) {
	return &ports.AuthorDetail{ID: 3, Name: input.Name, Articles: []ports.AuthorArticle{}}, nil
}

type routerAuthService struct{}

func (routerAuthService) Register(context.Context, string, string) (*domain.User, error) {
	return &domain.User{}, nil
}

func (routerAuthService) Login(_ context.Context, _, password string) (*ports.TokenPair, error) {
	if password != "correct" {
		return nil, domain.ErrInvalidCredentials
	}
	return &ports.TokenPair{AccessToken: "x", TokenType: "Bearer", ExpiresIn: 3600, RefreshToken: "r"}, nil
}

func (routerAuthService) Refresh(context.Context, string) (*ports.TokenPair, error) {
	return nil, domain.ErrInvalidRefreshToken
}

func (routerAuthService) Logout(context.Context, string) error { return nil }

func (routerAuthService) UserInfo(context.Context, string) (*ports.UserInfo, error) {
	return &ports.UserInfo{Email: "reader@example.com", Roles: []string{domain.RoleUser}}, nil
}

type routerAuditService struct{}

func (routerAuditService) RecentActivity(context.Context, int) ([]*domain.AuditEntry, error) {
	return []*domain.AuditEntry{}, nil
}

// ---------------------------------------------------------------------------
// Fixture
// ---------------------------------------------------------------------------

const routerSecret = "router-test-secret"

var (
	routerOnce     sync.Once
	testRouter     *echo.Echo
	articleService *routerArticleService
)

// sharedRouter builds the full route tree once: the Prometheus middleware
// registers collectors in the global registry and cannot be built twice in
// one process.
func sharedRouter(t *testing.T) *echo.Echo {
	t.Helper()
	routerOnce.Do(func() {
		articleService = &routerArticleService{}
		testRouter = NewRouter(Deps{
			Articles:  articleService,
			Authors:   routerAuthorService{},
			Auth:      routerAuthService{},
			Activity:  routerAuditService{},
			JWTSecret: routerSecret,
			Logger:    zerolog.Nop(),
		})
	})
	return testRouter
}

func bearerFor(t *testing.T, roles []string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   "user_1",
		"email": "someone@example.com",
		"roles": roles,
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(routerSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return "Bearer " + signed
}

func doRequest(t *testing.T, method, path, body, authorization string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	sharedRouter(t).ServeHTTP(rec, req)
	return rec
}

// ---------------------------------------------------------------------------
// Scenarios
// ---------------------------------------------------------------------------

func TestRouter_AnonymousListIsPublic(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/api/articles", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRouter_MissingArticleIs404WithMessage(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/api/articles/999", "", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("404 body is not JSON: %v", err)
	}
	if msg, ok := body["message"].(string); !ok || msg == "" {
		t.Fatalf("404 body must carry a message field, got %v", body)
	}
}

func TestRouter_CreateAuthorUnauthenticated(t *testing.T) {
	rec := doRequest(t, http.MethodPost, "/api/authors", `{"name":"x"}`, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestRouter_CreateAuthorNonAdmin(t *testing.T) {
	rec := doRequest(t, http.MethodPost, "/api/authors", `{"name":"x"}`, bearerFor(t, []string{domain.RoleUser}))
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestRouter_CreateAuthorAdmin(t *testing.T) {
	rec := doRequest(t, http.MethodPost, "/api/authors", `{"name":"x"}`, bearerFor(t, []string{domain.RoleAdmin}))
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/api/authors/3" {
		t.Fatalf("expected Location header, got %q", loc)
	}
}

func TestRouter_UpdateIDMismatchStopsBeforeService(t *testing.T) {
	rec := doRequest(t, http.MethodPut, "/api/articles/5", `{"id":6,"title":"x","authorId":1}`,
		bearerFor(t, []string{domain.RoleAdmin}))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	if body["message"] != "ID mismatch" {
		t.Fatalf("expected ID mismatch message, got %v", body["message"])
	}
	if articleService.updateCalled {
		t.Fatal("service must not be invoked on id mismatch")
	}
}

func TestRouter_LoginWrongPassword(t *testing.T) {
	rec := doRequest(t, http.MethodPost, "/Account/login", `{"email":"a@example.com","password":"wrong"}`, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	if body["accessToken"] != nil {
		t.Fatal("no token may be issued on a failed login")
	}
}

func TestRouter_LoginSuccess(t *testing.T) {
	rec := doRequest(t, http.MethodPost, "/Account/login", `{"email":"a@example.com","password":"correct"}`, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	for _, field := range []string{"accessToken", "tokenType", "expiresIn", "refreshToken"} {
		if _, ok := body[field]; !ok {
			t.Fatalf("login response missing %q: %v", field, body)
		}
	}
}

func TestRouter_UserInfoRequiresToken(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/manage/info", "", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	rec = doRequest(t, http.MethodGet, "/manage/info", "", bearerFor(t, []string{domain.RoleUser}))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRouter_ActivityAdminOnly(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/api/admin/activity", "", bearerFor(t, []string{domain.RoleUser}))
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}

	rec = doRequest(t, http.MethodGet, "/api/admin/activity", "", bearerFor(t, []string{domain.RoleAdmin}))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
