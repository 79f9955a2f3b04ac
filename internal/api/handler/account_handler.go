package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ujsag/newspress/internal/core/ports"
)

// AccountHandler handles the /Account identity endpoints and /manage/info.
type AccountHandler struct {
	authService ports.AuthService
}

func NewAccountHandler(authService ports.AuthService) *AccountHandler {
	return &AccountHandler{authService: authService}
}

// Register handles POST /Account/register.
//
// @Summary      Register a new account
// @Tags         account
// @Accept       json
// @Param        body  body  registerRequest  true  "Registration details"
// @Success      200
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /Account/register [post]
func (h *AccountHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err := h.authService.Register(c.Request().Context(), req.Email, req.Password); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}

// Login handles POST /Account/login.
//
// @Summary      Login with email and password
// @Tags         account
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  tokenResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /Account/login [post]
func (h *AccountHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	pair, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTokenResponse(pair))
}

// Refresh handles POST /Account/refresh. The presented refresh token is
// consumed; the response carries a rotated pair.
//
// @Summary      Rotate the refresh token
// @Tags         account
// @Accept       json
// @Produce      json
// @Param        body  body      refreshRequest  true  "Refresh token"
// @Success      200   {object}  tokenResponse
// @Failure      401   {object}  errorResponse
// @Router       /Account/refresh [post]
func (h *AccountHandler) Refresh(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	pair, err := h.authService.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTokenResponse(pair))
}

// Logout handles POST /Account/logout. It revokes the refresh token.
//
// @Summary      Logout
// @Tags         account
// @Accept       json
// @Security     BearerAuth
// @Param        body  body  refreshRequest  true  "Refresh token to revoke"
// @Success      204
// @Router       /Account/logout [post]
func (h *AccountHandler) Logout(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	if err := h.authService.Logout(c.Request().Context(), req.RefreshToken); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Info handles GET /manage/info.
//
// @Summary      Current user info
// @Tags         account
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  userInfoResponse
// @Failure      401  {object}  errorResponse
// @Router       /manage/info [get]
func (h *AccountHandler) Info(c echo.Context) error {
	userID, _ := c.Get("user_id").(string)
	if userID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	info, err := h.authService.UserInfo(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userInfoResponse{
		Email:            info.Email,
		IsEmailConfirmed: info.EmailConfirmed,
		Roles:            info.Roles,
	})
}
