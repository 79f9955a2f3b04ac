package ports

import (
	"context"

	"github.com/ujsag/newspress/internal/core/domain"
)

// TokenPair is the credential set returned by Login and Refresh. The field
// names mirror the wire contract of the /Account endpoints.
type TokenPair struct {
	AccessToken  string
	TokenType    string
	ExpiresIn    int // seconds until the access token expires
	RefreshToken string
}

// UserInfo is the /manage/info projection of a user.
type UserInfo struct {
	Email          string
	EmailConfirmed bool
	Roles          []string
}

// AuthService implements identity operations: registration, login with
// token issuance, refresh-token rotation, and logout.
type AuthService interface {
	Register(ctx context.Context, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	Logout(ctx context.Context, refreshToken string) error
	UserInfo(ctx context.Context, userID string) (*UserInfo, error)
}
