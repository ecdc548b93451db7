package client

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/exp/slog"

	"watchlater/internal/app/client/config"
	"watchlater/internal/domain/platform"
	"watchlater/internal/domain/playlist"
	"watchlater/internal/domain/user"
)

// App is the client application behind every CLI command: one HTTP call
// per user action, awaited before any local state changes.
type App struct {
	config     *config.Config
	log        *slog.Logger
	httpClient *httpClient
	storage    *SQLiteStorage
}

func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	if err := os.MkdirAll(cfg.ConfigDir, 0o700); err != nil {
		return nil, fmt.Errorf("create config dir: %w", err)
	}

	storage, err := NewSQLiteStorage(cfg.DataPath)
	if err != nil {
		return nil, fmt.Errorf("init local storage: %w", err)
	}

	app := &App{
		config:     cfg,
		log:        log,
		httpClient: newHTTPClient(cfg, log),
		storage:    storage,
	}

	// Resume the previous session if a token was remembered.
	if token, err := storage.LoadToken(); err == nil && token != "" {
		app.httpClient.SetToken(token)
		log.Debug("session token loaded from local storage")
	}

	return app, nil
}

func (a *App) Close() error {
	return a.storage.Close()
}

// HealthCheck probes the server's health endpoint.
func (a *App) HealthCheck(ctx context.Context) error {
	return a.httpClient.HealthCheck(ctx)
}

func (a *App) Register(ctx context.Context, creds user.Credentials) error {
	return a.httpClient.Register(ctx, creds)
}

func (a *App) Login(ctx context.Context, creds user.Credentials) error {
	token, err := a.httpClient.Login(ctx, creds)
	if err != nil {
		return err
	}

	if err := a.storage.SaveToken(token); err != nil {
		a.log.Warn("token not persisted, session ends with this process", "error", err)
	}
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.httpClient.Logout(ctx); err != nil {
		return err
	}
	return a.storage.ClearToken()
}

func (a *App) CurrentUser(ctx context.Context) (*Identity, error) {
	return a.httpClient.CurrentUser(ctx)
}

// ListPlaylists fetches from the server and refreshes the local cache;
// when the server is unreachable it falls back to the cached snapshot.
func (a *App) ListPlaylists(ctx context.Context, mode playlist.SortMode) ([]playlist.Playlist, bool, error) {
	items, err := a.httpClient.ListPlaylists(ctx)
	if err != nil {
		cached, cacheErr := a.storage.ListPlaylists()
		if cacheErr != nil || len(cached) == 0 {
			return nil, false, err
		}
		a.log.Warn("server unreachable, serving cached playlists", "error", err)
		return playlist.Sort(cached, mode), true, nil
	}

	if err := a.storage.ReplacePlaylists(items); err != nil {
		a.log.Warn("failed to refresh playlist cache", "error", err)
	}

	return playlist.Sort(items, mode), false, nil
}

func (a *App) ListPlaylistsByOwner(ctx context.Context, owner int, mode playlist.SortMode) ([]playlist.Playlist, error) {
	items, err := a.httpClient.ListPlaylistsByOwner(ctx, owner)
	if err != nil {
		return nil, err
	}
	return playlist.Sort(items, mode), nil
}

func (a *App) GetPlaylist(ctx context.Context, id int) (*playlist.Playlist, error) {
	return a.httpClient.GetPlaylist(ctx, id)
}

// AddPlaylist derives the platform label from the URL before
// submitting, mirroring what the original web client did.
func (a *App) AddPlaylist(ctx context.Context, content, sauce string, owner int) (*playlist.Playlist, error) {
	req := playlist.CreateRequest{
		Content: content,
		Sauce:   sauce,
		App:     platform.Classify(sauce).String(),
		Owner:   owner,
	}
	return a.httpClient.CreatePlaylist(ctx, req)
}

func (a *App) UpdatePlaylist(ctx context.Context, id int, req playlist.UpdateRequest) (*playlist.Playlist, error) {
	if req.App == "" {
		req.App = platform.Classify(req.Sauce).String()
	}
	return a.httpClient.UpdatePlaylist(ctx, id, req)
}

func (a *App) ToggleComplete(ctx context.Context, id int) (*playlist.Playlist, error) {
	return a.httpClient.ToggleComplete(ctx, id)
}

func (a *App) DeletePlaylist(ctx context.Context, id int) error {
	return a.httpClient.DeletePlaylist(ctx, id)
}
