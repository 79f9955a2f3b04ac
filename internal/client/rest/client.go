// Package rest is the typed HTTP client for the NewsPress API.
//
// Every mutation returns an explicit error: callers decide what to do with a
// failed create/update/delete instead of the call silently vanishing.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Sentinel errors mapped from API status codes.
var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)

const defaultTimeout = 15 * time.Second

// APIError carries a non-2xx response's status and message body.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// TokenSource supplies the current bearer token, empty when logged out.
type TokenSource interface {
	Token() string
}

// StaticToken is a TokenSource returning a fixed token. Useful for requests
// made with a freshly issued token before it has been persisted anywhere.
type StaticToken string

func (t StaticToken) Token() string { return string(t) }

// Client talks to the NewsPress API.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
}

// New creates a Client for the given base URL. tokens may be nil for an
// anonymous client.
func New(baseURL string, tokens TokenSource) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
		tokens:  tokens,
	}
}

// --- Account ---

// Login exchanges credentials for a token pair.
func (c *Client) Login(ctx context.Context, email, password string) (*TokenPair, error) {
	var pair TokenPair
	err := c.do(ctx, http.MethodPost, "/Account/login", credentials{Email: email, Password: password}, &pair)
	if err != nil {
		return nil, err
	}
	return &pair, nil
}

// Register creates a new user account.
func (c *Client) Register(ctx context.Context, email, password string) error {
	return c.do(ctx, http.MethodPost, "/Account/register", credentials{Email: email, Password: password}, nil)
}

// Refresh rotates a refresh token for a new token pair.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	var pair TokenPair
	err := c.do(ctx, http.MethodPost, "/Account/refresh", refreshRequest{RefreshToken: refreshToken}, &pair)
	if err != nil {
		return nil, err
	}
	return &pair, nil
}

// Logout revokes the refresh token server-side.
func (c *Client) Logout(ctx context.Context, refreshToken string) error {
	return c.do(ctx, http.MethodPost, "/Account/logout", refreshRequest{RefreshToken: refreshToken}, nil)
}

// CurrentUser fetches the authenticated user's profile.
func (c *Client) CurrentUser(ctx context.Context) (*UserInfo, error) {
	var info UserInfo
	if err := c.do(ctx, http.MethodGet, "/manage/info", nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// --- Articles ---

// ListArticles fetches every article, newest first.
func (c *Client) ListArticles(ctx context.Context) ([]Article, error) {
	var out []Article
	if err := c.do(ctx, http.MethodGet, "/api/articles", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetArticle fetches a single article with its author embedded.
func (c *Client) GetArticle(ctx context.Context, id int) (*Article, error) {
	var out Article
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/articles/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateArticle creates an article and returns the server-assigned entity.
func (c *Client) CreateArticle(ctx context.Context, in ArticleInput) (*Article, error) {
	in.ID = 0
	var out Article
	if err := c.do(ctx, http.MethodPost, "/api/articles", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateArticle updates the article with the given id. The body id must match.
func (c *Client) UpdateArticle(ctx context.Context, id int, in ArticleInput) error {
	in.ID = id
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/articles/%d", id), in, nil)
}

// DeleteArticle removes the article with the given id.
func (c *Client) DeleteArticle(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/articles/%d", id), nil, nil)
}

// --- Authors ---

// ListAuthors fetches every author with their article counts.
func (c *Client) ListAuthors(ctx context.Context) ([]AuthorSummary, error) {
	var out []AuthorSummary
	if err := c.do(ctx, http.MethodGet, "/api/authors/listauthors", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetAuthor fetches a single author with article summaries.
func (c *Client) GetAuthor(ctx context.Context, id int) (*AuthorDetail, error) {
	var out AuthorDetail
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/authors/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateAuthor creates an author.
func (c *Client) CreateAuthor(ctx context.Context, in AuthorInput) (*AuthorDetail, error) {
	var out AuthorDetail
	if err := c.do(ctx, http.MethodPost, "/api/authors", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// do performs one request/response round trip, JSON both ways.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if tok := c.tokens.Token(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return statusError(resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func statusError(resp *http.Response) error {
	var envelope struct {
		Message string `json:"message"`
	}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	_ = json.Unmarshal(raw, &envelope)
	if envelope.Message == "" {
		envelope.Message = http.StatusText(resp.StatusCode)
	}

	apiErr := &APIError{StatusCode: resp.StatusCode, Message: envelope.Message}
	switch resp.StatusCode {
	case http.StatusNotFound:
		return fmt.Errorf("%s: %w", apiErr.Message, ErrNotFound)
	case http.StatusUnauthorized:
		return fmt.Errorf("%s: %w", apiErr.Message, ErrUnauthorized)
	case http.StatusForbidden:
		return fmt.Errorf("%s: %w", apiErr.Message, ErrForbidden)
	}
	return apiErr
}
