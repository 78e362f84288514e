package handler_test

import (
	"net/http"
	"testing"

	"github.com/sangkips/tradenet-api/internal/application/service"
	"github.com/sangkips/tradenet-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthHandler_Register(t *testing.T) {
	s := newServer(t)

	w := s.do(http.MethodPost, "/register/", "", map[string]any{"email": "new@test.com", "password": "0000"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, map[string]any{"email": "new@test.com"}, decode(t, w))

	w = s.do(http.MethodPost, "/register/", "", map[string]any{"email": "new@test.com", "password": "0000"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, []any{service.MsgEmailTaken}, errorsOf(t, w, "email"))

	w = s.do(http.MethodPost, "/register/", "", map[string]any{"email": "not-an-email"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, []any{"Enter a valid email address."}, errorsOf(t, w, "email"))
	assert.Equal(t, []any{"This field is required."}, errorsOf(t, w, "password"))
}

func TestAuthHandler_TokenAndRefresh(t *testing.T) {
	s := newServer(t)
	testutil.CreateUser(t, s.db, "buyer@test.com", true, false)

	w := s.do(http.MethodPost, "/token/", "", map[string]any{"email": "buyer@test.com", "password": "0000"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	pair := decode(t, w)
	access, _ := pair["access"].(string)
	refresh, _ := pair["refresh"].(string)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)

	w = s.do(http.MethodGet, "/link/", access, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = s.do(http.MethodPost, "/token/refresh/", "", map[string]any{"refresh": refresh})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decode(t, w)
	assert.NotEmpty(t, body["access"])
	assert.NotContains(t, body, "refresh")

	w = s.do(http.MethodPost, "/token/refresh/", "", map[string]any{"refresh": access})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "token_not_valid", decode(t, w)["code"])
}

func TestAuthHandler_TokenRejections(t *testing.T) {
	s := newServer(t)
	testutil.CreateUser(t, s.db, "sleeping@test.com", false, false)

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{name: "unknown email", email: "ghost@test.com", password: "0000"},
		{name: "wrong password", email: "user@test.com", password: "1111"},
		{name: "inactive account", email: "sleeping@test.com", password: "0000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := s.do(http.MethodPost, "/token/", "", map[string]any{"email": tt.email, "password": tt.password})
			require.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Equal(t, "no_active_account", decode(t, w)["code"])
		})
	}
}

func TestAuthMiddleware(t *testing.T) {
	s := newServer(t)

	w := s.do(http.MethodGet, "/link/", "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, map[string]any{
		"detail": "Authentication credentials were not provided.",
		"code":   "not_authenticated",
	}, decode(t, w))

	w = s.do(http.MethodGet, "/link/", "garbage", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "token_not_valid", decode(t, w)["code"])
}

func TestPublicEndpoints(t *testing.T) {
	s := newServer(t)

	w := s.do(http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decode(t, w)["status"])

	w = s.do(http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "http_requests_total")
}
