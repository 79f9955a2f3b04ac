package web

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
)

// NewRouter builds the front-end Echo instance.
func NewRouter(api API, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Renderer = newRenderer()

	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())

	h := NewHandler(api, log)
	e.GET("/", h.Articles)
	e.GET("/articles/:id", h.Article)
	e.GET("/authors", h.Authors)
	e.GET("/authors/:id", h.Author)

	return e
}
