package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlevashov/clientdesk/models"
)

func TestLogin_Success(t *testing.T) {
	router, clientStore := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/auth/login", "", models.LoginRequest{
		ID: "A1", Name: "Admin", Role: models.RoleAdmin,
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get("Authorization"), "Bearer "))

	var response models.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.NotEmpty(t, response.Token)
	assert.Equal(t, models.Session{ID: "A1", Name: "Admin", Role: models.RoleAdmin}, response.Session)

	require.NotNil(t, clientStore.Session())
	assert.Equal(t, "A1", clientStore.Session().ID)
}

func TestLogin_InvalidJSON(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader("{broken"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin_MissingIdentity(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/auth/login", "", models.LoginRequest{Name: "Bob"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin_WrongPassword(t *testing.T) {
	router, _ := newTestRouter(t)

	loginAs(t, router, models.LoginRequest{ID: "c1", Name: "Bob", Password: "secret"})

	rec := doJSON(t, router, http.MethodPost, "/api/auth/login", "", models.LoginRequest{
		ID: "c1", Name: "Bob", Password: "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/auth/login", "", models.LoginRequest{
		ID: "c1", Name: "Bob",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code, "missing password for a protected record")
}

func TestLogout_ClearsStoreSession(t *testing.T) {
	router, clientStore := newTestRouter(t)

	token := loginAs(t, router, models.LoginRequest{ID: "c1", Name: "Bob"})
	require.NotNil(t, clientStore.Session())

	rec := doJSON(t, router, http.MethodPost, "/api/auth/logout", token, nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Nil(t, clientStore.Session())
}

func TestLogout_RequiresToken(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/auth/logout", "", nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_RejectsBadTokens(t *testing.T) {
	router, _ := newTestRouter(t)

	tests := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"malformed header", "Bearer"},
		{"empty token", "Bearer "},
		{"garbage token", "Bearer not.a.token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}
