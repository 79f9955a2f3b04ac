package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ujsag/newspress/internal/client/rest"
	"github.com/ujsag/newspress/internal/client/session"
)

const loginTestToken = "fresh-access-token"

// newLoginServer serves the login and info endpoints. It records the
// Authorization header of every /manage/info request.
func newLoginServer(t *testing.T, infoAuth *[]string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/Account/login", func(w http.ResponseWriter, r *http.Request) {
		var creds struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		if creds.Password != "correct" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "invalid credentials"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"accessToken":  loginTestToken,
			"tokenType":    "Bearer",
			"expiresIn":    3600,
			"refreshToken": "refresh-1",
		})
	})
	mux.HandleFunc("/manage/info", func(w http.ResponseWriter, r *http.Request) {
		*infoAuth = append(*infoAuth, r.Header.Get("Authorization"))
		if r.Header.Get("Authorization") != "Bearer "+loginTestToken {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "unauthorized"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"email":            "admin@example.com",
			"isEmailConfirmed": true,
			"roles":            []string{"Admin"},
		})
	})
	return httptest.NewServer(mux)
}

func TestEstablishSession_RoleLookupUsesFreshToken(t *testing.T) {
	var infoAuth []string
	srv := newLoginServer(t, &infoAuth)
	defer srv.Close()

	sessions := session.NewStore(t.TempDir())
	err := establishSession(context.Background(), srv.URL, sessions, "admin@example.com", "correct")
	require.NoError(t, err)

	// The info request must carry the token issued by this login, even
	// though no session file existed when it was sent.
	require.Len(t, infoAuth, 1)
	assert.Equal(t, "Bearer "+loginTestToken, infoAuth[0])

	sess, ok := sessions.Load()
	require.True(t, ok)
	assert.Equal(t, "Admin", sess.Role)
	assert.Equal(t, loginTestToken, sess.AccessToken)
	assert.Equal(t, "refresh-1", sess.RefreshToken)
}

func TestEstablishSession_InvalidCredentials(t *testing.T) {
	var infoAuth []string
	srv := newLoginServer(t, &infoAuth)
	defer srv.Close()

	sessions := session.NewStore(t.TempDir())
	err := establishSession(context.Background(), srv.URL, sessions, "admin@example.com", "wrong")
	require.Error(t, err)
	assert.True(t, errors.Is(err, rest.ErrUnauthorized))

	_, ok := sessions.Load()
	assert.False(t, ok, "failed login must not persist a session")
	assert.Empty(t, infoAuth, "no role lookup without a token")
}

func TestEstablishSession_RoleLookupFailureFallsBackToUser(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/Account/login", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"accessToken":  loginTestToken,
			"tokenType":    "Bearer",
			"expiresIn":    3600,
			"refreshToken": "refresh-1",
		})
	})
	mux.HandleFunc("/manage/info", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	sessions := session.NewStore(t.TempDir())
	err := establishSession(context.Background(), srv.URL, sessions, "user@example.com", "correct")
	require.NoError(t, err)

	sess, ok := sessions.Load()
	require.True(t, ok)
	assert.Equal(t, "User", sess.Role)
}
