package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlevashov/clientdesk/internal/config"
	"github.com/mlevashov/clientdesk/internal/logger"
	"github.com/mlevashov/clientdesk/internal/service"
	"github.com/mlevashov/clientdesk/internal/store"
	"github.com/mlevashov/clientdesk/models"
)

// newTestRouter wires a full handler stack on in-memory storage.
func newTestRouter(t *testing.T) (*chi.Mux, *store.ClientStore) {
	t.Helper()

	ctx := t.Context()
	clientStore := store.NewClientStore(ctx, store.NewMemoryPersistence(), logger.Nop())

	storages := store.Storages{
		Persistence:       store.NewMemoryPersistence(),
		ContactRepository: store.NewMemoryContactRepository(),
	}
	services, err := service.NewServices(storages, config.StructuredConfig{
		Auth: config.Auth{
			SessionSignKey:  "test-sign-key",
			SessionIssuer:   "clientdesk-test",
			SessionDuration: time.Hour,
		},
	}, logger.Nop())
	require.NoError(t, err)

	return NewHandler(clientStore, services, logger.Nop()).Init(), clientStore
}

// doJSON performs a request with an optional JSON body and bearer token.
func doJSON(t *testing.T, router *chi.Mux, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// loginAs logs a client in over the API and returns the minted token.
func loginAs(t *testing.T, router *chi.Mux, payload models.LoginRequest) string {
	t.Helper()

	rec := doJSON(t, router, http.MethodPost, "/api/auth/login", "", payload)
	require.Equal(t, http.StatusOK, rec.Code, "login failed: %s", rec.Body.String())

	var response models.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	require.NotEmpty(t, response.Token)
	return response.Token
}

func TestNewHandler_ReturnsNonNil(t *testing.T) {
	h := NewHandler(nil, &service.Services{}, logger.Nop())

	require.NotNil(t, h)
}

// routeCase describes a single expected route.
type routeCase struct {
	method string
	path   string
}

// expectedRoutes lists every route that Init() must register.
var expectedRoutes = []routeCase{
	{http.MethodPost, "/api/auth/login"},
	{http.MethodPost, "/api/auth/logout"},
	{http.MethodGet, "/api/clients"},
	{http.MethodPost, "/api/clients"},
	{http.MethodGet, "/api/clients/c1/entries"},
	{http.MethodPatch, "/api/clients/c1/profile"},
	{http.MethodGet, "/api/catalog"},
	{http.MethodPost, "/api/contact"},
	{http.MethodPost, "/api/billing/checkout"},
	{http.MethodGet, "/api/billing/invoices/inv-1"},
}

func TestInit_RegistersAllRoutes(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, tc := range expectedRoutes {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			// A registered route returns anything except 404 (not found) or
			// 405 (method not allowed). Auth-protected routes return 401 —
			// that still proves the route exists.
			assert.NotEqual(t, http.StatusNotFound, rec.Code,
				"route not found: %s %s", tc.method, tc.path)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rec.Code,
				"method not allowed: %s %s", tc.method, tc.path)
		})
	}
}

func TestInit_UnknownRouteReturns404(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/nonexistent", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_WrongMethodReturns404(t *testing.T) {
	router, _ := newTestRouter(t)

	// DELETE /api/catalog is not registered — only GET is.
	req := httptest.NewRequest(http.MethodDelete, "/api/catalog", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_SetsTraceIDHeader(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/catalog", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.NotEmpty(t, rec.Header().Get("X-Trace-ID"))
}

func TestInit_PropagatesClientTraceID(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/catalog", nil)
	req.Header.Set("X-Trace-ID", "trace-from-client")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "trace-from-client", rec.Header().Get("X-Trace-ID"))
}
