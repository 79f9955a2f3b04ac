package web

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/ujsag/newspress/internal/client/rest"
)

// API is the read-only slice of the REST client the pages need.
type API interface {
	ListArticles(ctx context.Context) ([]rest.Article, error)
	GetArticle(ctx context.Context, id int) (*rest.Article, error)
	ListAuthors(ctx context.Context) ([]rest.AuthorSummary, error)
	GetAuthor(ctx context.Context, id int) (*rest.AuthorDetail, error)
}

// Handler renders the public pages.
type Handler struct {
	api API
	log zerolog.Logger
}

// NewHandler creates a Handler over the given API client.
func NewHandler(api API, log zerolog.Logger) *Handler {
	return &Handler{api: api, log: log}
}

// articleView is the page model for one article row.
type articleView struct {
	ID          int
	Title       string
	Description string
	AuthorName  string
	Created     string
}

// Articles renders the front page. A failed fetch renders an empty list.
func (h *Handler) Articles(c echo.Context) error {
	list, err := h.api.ListArticles(c.Request().Context())
	if err != nil {
		h.log.Warn().Err(err).Msg("article fetch failed")
	}
	views := make([]articleView, 0, len(list))
	for _, a := range list {
		views = append(views, toArticleView(a))
	}
	return c.Render(http.StatusOK, "articles.html", map[string]any{
		"Articles": views,
	})
}

// Article renders a single article page.
func (h *Handler) Article(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	art, err := h.api.GetArticle(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "article not found")
	}
	return c.Render(http.StatusOK, "article.html", toArticleView(*art))
}

// Authors renders the author list.
func (h *Handler) Authors(c echo.Context) error {
	list, err := h.api.ListAuthors(c.Request().Context())
	if err != nil {
		h.log.Warn().Err(err).Msg("author fetch failed")
	}
	return c.Render(http.StatusOK, "authors.html", map[string]any{
		"Authors": list,
	})
}

// Author renders one author and their article summaries.
func (h *Handler) Author(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	author, err := h.api.GetAuthor(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "author not found")
	}
	return c.Render(http.StatusOK, "author.html", author)
}

func toArticleView(a rest.Article) articleView {
	v := articleView{
		ID:          a.ID,
		Title:       a.Title,
		Description: a.Description,
		Created:     a.CreatedDate.Format(time.DateOnly),
	}
	if a.Author != nil {
		v.AuthorName = a.Author.Name
	}
	return v
}

func pathID(c echo.Context) (int, error) {
	var id int
	if err := echo.PathParamsBinder(c).Int("id", &id).BindError(); err != nil {
		return 0, err
	}
	return id, nil
}
