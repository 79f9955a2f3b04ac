package domain

import "errors"

// Sentinel errors shared across layers. The HTTP error handler maps these to
// deterministic status codes.
var (
	ErrArticleNotFound     = errors.New("article not found")
	ErrAuthorNotFound      = errors.New("author not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrUserExists          = errors.New("user already exists")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrForbidden           = errors.New("access forbidden")
	ErrIDMismatch          = errors.New("ID mismatch")
)
