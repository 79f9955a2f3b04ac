package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ujsag/newspress/internal/core/domain"
)

// TokenStore keeps refresh tokens in Redis with a TTL.
// Key format: refresh:<token> → user id.
type TokenStore struct {
	client *redis.Client
}

// NewTokenStore creates a TokenStore wrapping the given Redis client.
func NewTokenStore(client *redis.Client) *TokenStore {
	return &TokenStore{client: client}
}

// Save associates the token with the user id for ttl.
func (s *TokenStore) Save(ctx context.Context, token, userID string, ttl time.Duration) error {
	return s.client.Set(ctx, s.key(token), userID, ttl).Err()
}

// Consume atomically reads and deletes the token (GETDEL), returning the
// owning user id. Unknown or expired tokens fail with ErrInvalidRefreshToken,
// which makes rotation single-use: a replayed token cannot be consumed twice.
func (s *TokenStore) Consume(ctx context.Context, token string) (string, error) {
	userID, err := s.client.GetDel(ctx, s.key(token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", domain.ErrInvalidRefreshToken
		}
		return "", fmt.Errorf("consume refresh token: %w", err)
	}
	return userID, nil
}

// Revoke deletes the token. Revoking an unknown token is not an error.
func (s *TokenStore) Revoke(ctx context.Context, token string) error {
	return s.client.Del(ctx, s.key(token)).Err()
}

func (s *TokenStore) key(token string) string {
	return "refresh:" + token
}
