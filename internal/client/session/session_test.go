package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSession() Session {
	return Session{
		AccessToken:  "token-123",
		RefreshToken: "refresh-456",
		Email:        "reader@example.com",
		Role:         "User",
		ExpiresAt:    time.Now().Add(time.Hour),
	}
}

func TestStore_SaveAndLoad(t *testing.T) {
	s := NewStore(t.TempDir())

	require.NoError(t, s.Save(validSession()))

	got, ok := s.Load()
	require.True(t, ok)
	assert.Equal(t, "token-123", got.AccessToken)
	assert.Equal(t, "reader@example.com", got.Email)
	assert.Equal(t, "User", got.Role)
}

func TestStore_AbsentFileMeansLoggedOut(t *testing.T) {
	s := NewStore(t.TempDir())

	_, ok := s.Load()
	assert.False(t, ok)
	assert.Empty(t, s.Token())
}

func TestStore_ExpiredSessionMeansLoggedOut(t *testing.T) {
	s := NewStore(t.TempDir())

	sess := validSession()
	sess.ExpiresAt = time.Now().Add(-time.Minute)
	require.NoError(t, s.Save(sess))

	_, ok := s.Load()
	assert.False(t, ok)
	assert.Empty(t, s.Token())
}

func TestStore_Clear(t *testing.T) {
	s := NewStore(t.TempDir())
	require.NoError(t, s.Save(validSession()))

	require.NoError(t, s.Clear())
	_, ok := s.Load()
	assert.False(t, ok)

	// clearing twice is not an error
	require.NoError(t, s.Clear())
}

func TestStore_TokenMatchesSavedSession(t *testing.T) {
	s := NewStore(t.TempDir())
	require.NoError(t, s.Save(validSession()))

	assert.Equal(t, "token-123", s.Token())
}
