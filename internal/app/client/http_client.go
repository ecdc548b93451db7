package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/exp/slog"

	"watchlater/internal/app/client/config"
	"watchlater/internal/domain/playlist"
	"watchlater/internal/domain/user"
)

// Client-visible failure kinds, mapped from HTTP status codes.
var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrValidation   = errors.New("validation failed")
)

type httpClient struct {
	client    *http.Client
	log       *slog.Logger
	baseURL   string
	token     string
	userAgent string
}

func newHTTPClient(cfg *config.Config, log *slog.Logger) *httpClient {
	client := &http.Client{
		Timeout: 30 * time.Second,
	}

	scheme := "http://"
	if cfg.EnableTLS {
		scheme = "https://"
	}

	return &httpClient{
		client:    client,
		log:       log,
		baseURL:   scheme + cfg.ServerAddress,
		userAgent: "WatchLater-Client/1.0",
	}
}

func (h *httpClient) SetToken(token string) {
	h.token = token
}

func (h *httpClient) HealthCheck(ctx context.Context) error {
	resp, err := h.doRequest(ctx, http.MethodGet, "/api/v1/health", nil)
	if err != nil {
		return fmt.Errorf("server unreachable: %w", err)
	}
	return h.parseResponse(resp, nil)
}

func (h *httpClient) Register(ctx context.Context, creds user.Credentials) error {
	resp, err := h.doRequest(ctx, http.MethodPost, "/api/auth/register", creds)
	if err != nil {
		return err
	}
	return h.parseResponse(resp, nil)
}

func (h *httpClient) Login(ctx context.Context, creds user.Credentials) (string, error) {
	resp, err := h.doRequest(ctx, http.MethodPost, "/api/auth/login", creds)
	if err != nil {
		return "", err
	}

	var loginResp struct {
		Token string `json:"token"`
	}
	if err := h.parseResponse(resp, &loginResp); err != nil {
		return "", err
	}

	h.token = loginResp.Token
	return loginResp.Token, nil
}

func (h *httpClient) Logout(ctx context.Context) error {
	resp, err := h.doRequest(ctx, http.MethodPost, "/api/auth/logout", nil)
	if err != nil {
		return err
	}
	if err := h.parseResponse(resp, nil); err != nil {
		return err
	}
	h.token = ""
	return nil
}

type Identity struct {
	ID        int       `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func (h *httpClient) CurrentUser(ctx context.Context) (*Identity, error) {
	resp, err := h.doRequest(ctx, http.MethodGet, "/api/auth/user", nil)
	if err != nil {
		return nil, err
	}

	var identity Identity
	if err := h.parseResponse(resp, &identity); err != nil {
		return nil, err
	}
	return &identity, nil
}

type listResponse struct {
	Playlists []playlist.Playlist `json:"playlists"`
	Total     int                 `json:"total"`
}

func (h *httpClient) ListPlaylists(ctx context.Context) ([]playlist.Playlist, error) {
	resp, err := h.doRequest(ctx, http.MethodGet, "/api/playlists", nil)
	if err != nil {
		return nil, err
	}

	var list listResponse
	if err := h.parseResponse(resp, &list); err != nil {
		return nil, err
	}
	return list.Playlists, nil
}

func (h *httpClient) ListPlaylistsByOwner(ctx context.Context, owner int) ([]playlist.Playlist, error) {
	resp, err := h.doRequest(ctx, http.MethodGet, "/api/playlists/user/"+strconv.Itoa(owner), nil)
	if err != nil {
		return nil, err
	}

	var list listResponse
	if err := h.parseResponse(resp, &list); err != nil {
		return nil, err
	}
	return list.Playlists, nil
}

func (h *httpClient) GetPlaylist(ctx context.Context, id int) (*playlist.Playlist, error) {
	resp, err := h.doRequest(ctx, http.MethodGet, "/api/playlists/"+strconv.Itoa(id), nil)
	if err != nil {
		return nil, err
	}

	var p playlist.Playlist
	if err := h.parseResponse(resp, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (h *httpClient) CreatePlaylist(ctx context.Context, req playlist.CreateRequest) (*playlist.Playlist, error) {
	resp, err := h.doRequest(ctx, http.MethodPost, "/api/playlists", req)
	if err != nil {
		return nil, err
	}

	var p playlist.Playlist
	if err := h.parseResponse(resp, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (h *httpClient) UpdatePlaylist(ctx context.Context, id int, req playlist.UpdateRequest) (*playlist.Playlist, error) {
	resp, err := h.doRequest(ctx, http.MethodPut, "/api/playlists/"+strconv.Itoa(id), req)
	if err != nil {
		return nil, err
	}

	var p playlist.Playlist
	if err := h.parseResponse(resp, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (h *httpClient) ToggleComplete(ctx context.Context, id int) (*playlist.Playlist, error) {
	resp, err := h.doRequest(ctx, http.MethodPatch, "/api/playlists/"+strconv.Itoa(id)+"/complete", nil)
	if err != nil {
		return nil, err
	}

	var p playlist.Playlist
	if err := h.parseResponse(resp, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (h *httpClient) DeletePlaylist(ctx context.Context, id int) error {
	resp, err := h.doRequest(ctx, http.MethodDelete, "/api/playlists/"+strconv.Itoa(id), nil)
	if err != nil {
		return err
	}
	return h.parseResponse(resp, nil)
}

func (h *httpClient) doRequest(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", h.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if h.token != "" {
		req.Header.Set("Authorization", "Bearer "+h.token)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	return resp, nil
}

func (h *httpClient) parseResponse(resp *http.Response, out any) error {
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= http.StatusBadRequest {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		h.log.Debug("request rejected", "status", resp.StatusCode, "body", string(data))

		switch resp.StatusCode {
		case http.StatusNotFound:
			return ErrNotFound
		case http.StatusUnauthorized:
			return ErrUnauthorized
		case http.StatusUnprocessableEntity, http.StatusBadRequest:
			return fmt.Errorf("%w: %s", ErrValidation, string(data))
		default:
			return fmt.Errorf("server returned status %d", resp.StatusCode)
		}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
