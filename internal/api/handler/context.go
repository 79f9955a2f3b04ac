package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxActor extracts the acting user's email injected by the Auth middleware.
func ctxActor(c echo.Context) (string, error) {
	email, _ := c.Get("email").(string)
	if email == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return email, nil
}
