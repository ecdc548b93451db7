package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"watchlater/internal/app/client/config"
	"watchlater/internal/domain/playlist"
	"watchlater/internal/domain/user"
)

func testConfig(t *testing.T, serverAddress string) *config.Config {
	t.Helper()

	dir := t.TempDir()
	return &config.Config{
		Env:           config.EnvLocal,
		ServerAddress: serverAddress,
		ConfigDir:     dir,
		DataPath:      filepath.Join(dir, "cache.db"),
	}
}

func testApp(t *testing.T, cfg *config.Config) *App {
	t.Helper()

	app, err := New(cfg, slog.Default())
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	return app
}

// serverAddress strips the scheme so the address fits the config field.
func serverAddress(srv *httptest.Server) string {
	return strings.TrimPrefix(srv.URL, "http://")
}

func TestApp_HealthCheck(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/health", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "OK"})
	}))
	t.Cleanup(srv.Close)

	app := testApp(t, testConfig(t, serverAddress(srv)))
	assert.NoError(t, app.HealthCheck(context.Background()))
}

func TestApp_HealthCheck_ServerDown(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := serverAddress(srv)
	srv.Close()

	app := testApp(t, testConfig(t, addr))
	assert.Error(t, app.HealthCheck(context.Background()))
}

func TestApp_ListPlaylists_RefreshesCache(t *testing.T) {
	fetched := []playlist.Playlist{
		{ID: 1, Content: "old talk", Sauce: "https://youtube.com/watch?v=a", App: "YouTube",
			Completed: playlist.NotCompleted, Date: "2024-03-01", Time: "09:00:00"},
		{ID: 2, Content: "new stream", Sauce: "https://twitch.tv/xyz", App: "Twitch",
			Completed: playlist.NotCompleted, Date: "2024-03-02", Time: "20:00:00"},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/playlists", r.URL.Path)
		_ = json.NewEncoder(w).Encode(listResponse{Playlists: fetched, Total: len(fetched)})
	}))
	t.Cleanup(srv.Close)

	app := testApp(t, testConfig(t, serverAddress(srv)))

	items, fromCache, err := app.ListPlaylists(context.Background(), playlist.SortDateDesc)
	require.NoError(t, err)
	assert.False(t, fromCache)
	require.Len(t, items, 2)
	assert.Equal(t, 2, items[0].ID, "newest entry first under dateDesc")
	assert.Equal(t, 1, items[1].ID)

	cached, err := app.storage.ListPlaylists()
	require.NoError(t, err)
	assert.Equal(t, fetched, cached, "successful fetch refreshes the snapshot")
}

func TestApp_ListPlaylists_FallsBackToCache(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := serverAddress(srv)
	srv.Close()

	app := testApp(t, testConfig(t, addr))
	require.NoError(t, app.storage.ReplacePlaylists([]playlist.Playlist{
		{ID: 1, Content: "banana", Sauce: "https://vimeo.com/1", App: "Vimeo",
			Completed: playlist.NotCompleted, Date: "2024-03-01", Time: "09:00:00"},
		{ID: 2, Content: "apple", Sauce: "https://vimeo.com/2", App: "Vimeo",
			Completed: playlist.NotCompleted, Date: "2024-03-02", Time: "09:00:00"},
	}))

	items, fromCache, err := app.ListPlaylists(context.Background(), playlist.SortContentAsc)
	require.NoError(t, err)
	assert.True(t, fromCache)
	require.Len(t, items, 2)
	assert.Equal(t, "apple", items[0].Content, "cached snapshot is still sorted")
	assert.Equal(t, "banana", items[1].Content)
}

func TestApp_ListPlaylists_NoCachePropagatesError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := serverAddress(srv)
	srv.Close()

	app := testApp(t, testConfig(t, addr))

	items, fromCache, err := app.ListPlaylists(context.Background(), playlist.SortDateDesc)
	assert.Error(t, err, "empty cache cannot mask the failure")
	assert.False(t, fromCache)
	assert.Nil(t, items)
}

func TestApp_Login_PersistsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login":
			_ = json.NewEncoder(w).Encode(map[string]string{"token": "opaque-token", "status": "ok"})
		case "/api/auth/logout":
			assert.Equal(t, "Bearer opaque-token", r.Header.Get("Authorization"))
			_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	t.Cleanup(srv.Close)

	cfg := testConfig(t, serverAddress(srv))
	app := testApp(t, cfg)

	creds := user.Credentials{Email: "viewer@example.com", Password: "sup3rsecret"}
	require.NoError(t, app.Login(context.Background(), creds))

	token, err := app.storage.LoadToken()
	require.NoError(t, err)
	assert.Equal(t, "opaque-token", token)

	// A new App over the same data path resumes the session.
	resumed, err := New(cfg, slog.Default())
	require.NoError(t, err)
	t.Cleanup(func() { _ = resumed.Close() })
	assert.Equal(t, "opaque-token", resumed.httpClient.token)

	require.NoError(t, app.Logout(context.Background()))
	token, err = app.storage.LoadToken()
	require.NoError(t, err)
	assert.Empty(t, token, "logout forgets the stored session")
}
