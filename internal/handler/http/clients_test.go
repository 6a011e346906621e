package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlevashov/clientdesk/models"
)

func TestGetClients_PublicViewIsReduced(t *testing.T) {
	router, _ := newTestRouter(t)

	adminToken := loginAs(t, router, models.LoginRequest{ID: "A1", Name: "Admin", Role: models.RoleAdmin})
	rec := doJSON(t, router, http.MethodPost, "/api/clients", adminToken, models.NewClientRequest{
		ID: "c1", Name: "Bob", Password: "pw",
		Profile: map[string]any{"tier": "studio"},
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	// drop the admin session; the listing degrades to id/name pairs
	rec = doJSON(t, router, http.MethodPost, "/api/auth/logout", adminToken, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/clients", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var views []models.ClientView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &views))
	require.Len(t, views, 2)
	for _, view := range views {
		assert.NotEmpty(t, view.ID)
		assert.NotEmpty(t, view.Name)
		assert.Empty(t, view.Role)
		assert.Nil(t, view.PasswordHash)
		assert.Nil(t, view.Profile)
		assert.Nil(t, view.LoginEntries)
	}
}

func TestGetClients_AdminSessionSeesEverything(t *testing.T) {
	router, _ := newTestRouter(t)

	adminToken := loginAs(t, router, models.LoginRequest{ID: "A1", Name: "Admin", Role: models.RoleAdmin})
	rec := doJSON(t, router, http.MethodPost, "/api/clients", adminToken, models.NewClientRequest{
		ID: "c1", Name: "Bob", Password: "pw",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/clients", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var views []models.ClientView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &views))
	require.Len(t, views, 2)
	assert.Equal(t, models.RoleClient, views[1].Role)
	assert.NotNil(t, views[1].PasswordHash)
}

func TestAddClient_Unauthorized(t *testing.T) {
	router, _ := newTestRouter(t)

	// token is valid, but the store session belongs to a non-admin
	token := loginAs(t, router, models.LoginRequest{ID: "u1", Name: "Mallory"})

	rec := doJSON(t, router, http.MethodPost, "/api/clients", token, models.NewClientRequest{
		ID: "c1", Name: "Bob",
	})

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAddClient_Conflict(t *testing.T) {
	router, _ := newTestRouter(t)

	adminToken := loginAs(t, router, models.LoginRequest{ID: "A1", Name: "Admin", Role: models.RoleAdmin})

	rec := doJSON(t, router, http.MethodPost, "/api/clients", adminToken, models.NewClientRequest{ID: "c1", Name: "Bob"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/clients", adminToken, models.NewClientRequest{ID: "c1", Name: "Bob"})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAddClient_Validation(t *testing.T) {
	router, _ := newTestRouter(t)

	adminToken := loginAs(t, router, models.LoginRequest{ID: "A1", Name: "Admin", Role: models.RoleAdmin})

	rec := doJSON(t, router, http.MethodPost, "/api/clients", adminToken, models.NewClientRequest{Name: "Bob"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetLoginEntries_AdminOnly(t *testing.T) {
	router, _ := newTestRouter(t)

	clientToken := loginAs(t, router, models.LoginRequest{ID: "c1", Name: "Bob"})
	rec := doJSON(t, router, http.MethodGet, "/api/clients/c1/entries", clientToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	adminToken := loginAs(t, router, models.LoginRequest{ID: "A1", Name: "Admin", Role: models.RoleAdmin})
	rec = doJSON(t, router, http.MethodGet, "/api/clients/c1/entries", adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var entries []models.LoginEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "Bob", entries[0].By)
}

func TestGetLoginEntries_UnknownClientYieldsEmptyList(t *testing.T) {
	router, _ := newTestRouter(t)

	adminToken := loginAs(t, router, models.LoginRequest{ID: "A1", Name: "Admin", Role: models.RoleAdmin})
	rec := doJSON(t, router, http.MethodGet, "/api/clients/ghost/entries", adminToken, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestUpdateClientProfile(t *testing.T) {
	router, clientStore := newTestRouter(t)

	adminToken := loginAs(t, router, models.LoginRequest{ID: "A1", Name: "Admin", Role: models.RoleAdmin})
	rec := doJSON(t, router, http.MethodPost, "/api/clients", adminToken, models.NewClientRequest{
		ID: "c1", Name: "Bob", Profile: map[string]any{"a": "keep", "b": "old"},
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodPatch, "/api/clients/c1/profile", adminToken, map[string]any{
		"b": "new", "c": "added",
	})
	require.Equal(t, http.StatusNoContent, rec.Code)

	views := clientStore.GetClients(t.Context())
	require.Len(t, views, 2)
	assert.Equal(t, map[string]any{"a": "keep", "b": "new", "c": "added"}, views[1].Profile)
}

func TestUpdateClientProfile_NotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	adminToken := loginAs(t, router, models.LoginRequest{ID: "A1", Name: "Admin", Role: models.RoleAdmin})
	rec := doJSON(t, router, http.MethodPatch, "/api/clients/ghost/profile", adminToken, map[string]any{"a": 1})

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
