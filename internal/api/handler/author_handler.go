package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ujsag/newspress/internal/core/ports"
)

// AuthorHandler handles HTTP requests for author operations.
type AuthorHandler struct {
	service ports.AuthorService
}

func NewAuthorHandler(service ports.AuthorService) *AuthorHandler {
	return &AuthorHandler{service: service}
}

// List handles GET /api/authors/listauthors.
//
// @Summary      List all authors with article counts
// @Tags         authors
// @Produce      json
// @Success      200  {array}   authorSummaryResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/authors/listauthors [get]
func (h *AuthorHandler) List(c echo.Context) error {
	authors, err := h.service.ListAuthors(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAuthorSummaryResponses(authors))
}

// Get handles GET /api/authors/:id.
//
// @Summary      Get an author with one level of article summaries
// @Tags         authors
// @Produce      json
// @Param        id   path      int  true  "Author id"
// @Success      200  {object}  authorDetailResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/authors/{id} [get]
func (h *AuthorHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	detail, err := h.service.GetAuthor(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAuthorDetailResponse(detail))
}

// Create handles POST /api/authors.
//
// @Summary      Create a new author
// @Tags         authors
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createAuthorRequest  true  "Author details"
// @Success      201   {object}  authorDetailResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /api/authors [post]
func (h *AuthorHandler) Create(c echo.Context) error {
	var req createAuthorRequest
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

	detail, err := h.service.CreateAuthor(c.Request().Context(), ports.CreateAuthorInput{
		Name:  req.Name,
		Actor: actor,
	})
	if err != nil {
		return err
	}

	c.Response().Header().Set("Location", fmt.Sprintf("/api/authors/%d", detail.ID))
	return c.JSON(http.StatusCreated, toAuthorDetailResponse(detail))
}
