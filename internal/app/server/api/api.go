package api

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"

	authAPI "watchlater/internal/app/server/api/http/auth"
	healthAPI "watchlater/internal/app/server/api/http/health"
	"watchlater/internal/app/server/api/http/middleware"
	authMW "watchlater/internal/app/server/api/http/middleware/auth"
	loggerMW "watchlater/internal/app/server/api/http/middleware/logger"
	playlistAPI "watchlater/internal/app/server/api/http/playlist"
	"watchlater/internal/domain/playlist"
	"watchlater/internal/domain/session"
	"watchlater/internal/domain/user"
	"watchlater/internal/infrastructure/storage/postgres"
)

type Handlers struct {
	Health   *healthAPI.Handler
	Auth     *authAPI.Handler
	Playlist *playlistAPI.Handler
}

// New builds a *chi.Mux with every operation registered through huma.
func New(storage *postgres.Storage, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()

	config := huma.DefaultConfig("WatchLater API", "1.0.0")
	config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {Type: "http", Scheme: "bearer"},
	}

	API := humachi.New(mux, config)

	h := handlers(storage, log)
	h.Health.SetupRoutes(API)
	h.Auth.SetupRoutes(API)
	h.Playlist.SetupRoutes(API)

	return mux
}

func handlers(storage *postgres.Storage, log *slog.Logger) *Handlers {
	sessionRepo := postgres.NewSessionRepository(storage, log)
	sessionService := session.NewService(sessionRepo, log)
	authMiddleware := authMW.New(sessionService, log)
	loggerMiddleware := loggerMW.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMiddleware.Middleware())
	healthHandler := healthAPI.NewHandler(log, middlewares.GetAllAndClear())

	userRepo := postgres.NewUserRepository(storage, log)
	userService := user.NewService(userRepo, user.NewCredentialValidator(), log)
	middlewares.Add(loggerMiddleware.Middleware())
	publicChain := middlewares.GetAllAndClear()
	middlewares.Add(authMiddleware.Middleware())
	middlewares.Add(loggerMiddleware.Middleware())
	authHandler := authAPI.NewHandler(userService, sessionService, log, publicChain, middlewares.GetAllAndClear())

	playlistRepo := postgres.NewPlaylistRepository(storage, log)
	playlistService := playlist.NewService(playlistRepo, log)
	middlewares.Add(loggerMiddleware.Middleware())
	playlistHandler := playlistAPI.NewHandler(playlistService, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health:   healthHandler,
		Auth:     authHandler,
		Playlist: playlistHandler,
	}
}
