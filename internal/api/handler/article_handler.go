package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/ujsag/newspress/internal/core/domain"
	"github.com/ujsag/newspress/internal/core/ports"
)

// ArticleHandler handles HTTP requests for article operations.
type ArticleHandler struct {
	service ports.ArticleService
}

func NewArticleHandler(service ports.ArticleService) *ArticleHandler {
	return &ArticleHandler{service: service}
}

// List handles GET /api/articles.
//
// @Summary      List all articles, newest first
// @Tags         articles
// @Produce      json
// @Success      200  {array}   articleResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/articles [get]
func (h *ArticleHandler) List(c echo.Context) error {
	articles, err := h.service.ListArticles(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toArticleResponses(articles))
}

// Get handles GET /api/articles/:id.
//
// @Summary      Get an article by id
// @Tags         articles
// @Produce      json
// @Param        id   path      int  true  "Article id"
// @Success      200  {object}  articleResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/articles/{id} [get]
func (h *ArticleHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	detail, err := h.service.GetArticle(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toArticleResponse(detail))
}

// Create handles POST /api/articles.
//
// @Summary      Create a new article
// @Tags         articles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createArticleRequest  true  "Article details"
// @Success      201   {object}  articleResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /api/articles [post]
func (h *ArticleHandler) Create(c echo.Context) error {
	var req createArticleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	detail, err := h.service.CreateArticle(c.Request().Context(), ports.CreateArticleInput{
		Title:       req.Title,
		Description: req.Description,
		AuthorID:    req.AuthorID,
		Actor:       actor,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toArticleResponse(detail))
}

// Update handles PUT /api/articles/:id. The body id must match the path id;
// a mismatch fails with 400 before any persistence call.
//
// @Summary      Update an article
// @Tags         articles
// @Accept       json
// @Security     BearerAuth
// @Param        id    path  int                   true  "Article id"
// @Param        body  body  updateArticleRequest  true  "Article fields"
// @Success      204
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/articles/{id} [put]
func (h *ArticleHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateArticleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.ID != id {
		return domain.ErrIDMismatch
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	if err := h.service.UpdateArticle(c.Request().Context(), ports.UpdateArticleInput{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		AuthorID:    req.AuthorID,
		Actor:       actor,
	}); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// Delete handles DELETE /api/articles/:id.
//
// @Summary      Delete an article
// @Tags         articles
// @Security     BearerAuth
// @Param        id  path  int  true  "Article id"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/articles/{id} [delete]
func (h *ArticleHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteArticle(c.Request().Context(), id, actor); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// pathID parses the :id path parameter.
func pathID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("invalid id %q", c.Param("id")))
	}
	return id, nil
}
