package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/mlevashov/clientdesk/internal/config"
	"github.com/mlevashov/clientdesk/internal/logger"
	"github.com/mlevashov/clientdesk/internal/utils"
	"github.com/mlevashov/clientdesk/models"
)

type httpPortalAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPPortalAdapter constructs an HTTP/REST implementation of
// [PortalAdapter]. It normalises and validates the base URL from
// cfg.ServerURL and configures the underlying HTTP client with the resolved
// base URL and request timeout.
//
// Returns an error if cfg.ServerURL is empty or cannot be parsed as a valid
// URL.
func NewHTTPPortalAdapter(cfg config.Admin, logger *logger.Logger) (PortalAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(cfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter server url: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &httpPortalAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [PortalAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated
// requests.
func (h *httpPortalAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [PortalAdapter]. It returns the bearer token currently
// held by the adapter, or an empty string if none has been set.
func (h *httpPortalAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Login implements [PortalAdapter]. It POSTs the login payload to
// POST /api/auth/login. On success the bearer token from the response body is
// stored via SetToken. Returns an error if the request fails or the server
// returns a non-2xx status.
func (h *httpPortalAdapter) Login(ctx context.Context, payload models.LoginRequest) (models.LoginResponse, error) {
	var response models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		SetResult(&response).
		Post("/api/auth/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	h.SetToken(response.Token)
	return response, nil
}

// Logout implements [PortalAdapter]. It POSTs to POST /api/auth/logout and
// drops the stored token regardless of the outcome, so a dead server never
// leaves the console with a sticky session.
func (h *httpPortalAdapter) Logout(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Post("/api/auth/logout")

	h.SetToken("")

	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	return mapHTTPError(resp)
}

// Clients implements [PortalAdapter]. It GETs /api/clients and decodes the
// view list.
func (h *httpPortalAdapter) Clients(ctx context.Context) ([]models.ClientView, error) {
	resp, err := h.authedRequest(ctx).Get("/api/clients")
	if err != nil {
		return nil, fmt.Errorf("clients request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var views []models.ClientView
	if err = json.Unmarshal(resp.Body(), &views); err != nil {
		return nil, fmt.Errorf("decode clients response: %w", err)
	}
	return views, nil
}

// AddClient implements [PortalAdapter]. It POSTs the new client record to
// POST /api/clients. Requires a valid bearer token.
func (h *httpPortalAdapter) AddClient(ctx context.Context, req models.NewClientRequest) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/clients")
	if err != nil {
		return fmt.Errorf("add client request: %w", err)
	}

	return mapHTTPError(resp)
}

// LoginEntries implements [PortalAdapter]. It GETs
// /api/clients/{clientID}/entries and decodes the history list.
func (h *httpPortalAdapter) LoginEntries(ctx context.Context, clientID string) ([]models.LoginEntry, error) {
	resp, err := h.authedRequest(ctx).
		SetPathParam("clientID", clientID).
		Get("/api/clients/{clientID}/entries")
	if err != nil {
		return nil, fmt.Errorf("login entries request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var entries []models.LoginEntry
	if err = json.Unmarshal(resp.Body(), &entries); err != nil {
		return nil, fmt.Errorf("decode login entries response: %w", err)
	}
	return entries, nil
}

// UpdateClientProfile implements [PortalAdapter]. It PATCHes the updates to
// /api/clients/{clientID}/profile. Requires a valid bearer token.
func (h *httpPortalAdapter) UpdateClientProfile(ctx context.Context, clientID string, updates map[string]any) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("clientID", clientID).
		SetBody(updates).
		Patch("/api/clients/{clientID}/profile")
	if err != nil {
		return fmt.Errorf("update client profile request: %w", err)
	}

	return mapHTTPError(resp)
}

// authedRequest prepares a request carrying the stored bearer token.
func (h *httpPortalAdapter) authedRequest(ctx context.Context) *resty.Request {
	request := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		request.SetAuthToken(token)
	}
	return request
}
