package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"favorites-svc/internal/config"
	"favorites-svc/internal/handler"
	"favorites-svc/internal/middleware"
	"favorites-svc/internal/repository"
	"favorites-svc/internal/resolver"
	"favorites-svc/internal/service"
	"favorites-svc/migrations"
	"favorites-svc/pkg/db"
	"favorites-svc/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Optional .env for local development; real deployments set the
	// environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("FS_CONFIG_FILE"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.File)
	defer log.Sync()

	log.Info("Starting favorites-svc")

	if err := runMigrations(cfg, log); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}

	pool, err := repository.NewPool(context.Background(), cfg.Postgres)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer pool.Close()
	log.Info("Database connected")

	trackResolver := resolver.NewMusixmatchClient(
		cfg.Musixmatch.BaseURL,
		cfg.Musixmatch.APIKey,
		cfg.Musixmatch.Timeout,
		log,
	)

	server := startHTTPServer(cfg, pool, trackResolver, log)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down favorites-svc")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error("HTTP server forced to shutdown", zap.Error(err))
	}

	log.Info("favorites-svc stopped")
}

// runMigrations brings the schema up to date before serving. The migration
// runner speaks database/sql, so it gets its own short-lived connection.
func runMigrations(cfg *config.Config, log *zap.Logger) error {
	conn, err := db.Open(cfg.Postgres.DSN())
	if err != nil {
		return err
	}
	defer conn.Close()

	if err := db.Migrate(conn, migrations.FS, "."); err != nil {
		return err
	}
	log.Info("Migrations applied")
	return nil
}

func startHTTPServer(cfg *config.Config, pool *pgxpool.Pool, trackResolver resolver.TrackResolver, log *zap.Logger) *http.Server {
	favoriteRepo := repository.NewFavoriteRepository(pool)
	playlistRepo := repository.NewPlaylistRepository(pool)
	pfRepo := repository.NewPlaylistFavoriteRepository(pool)

	favoriteService := service.NewFavoriteService(favoriteRepo, trackResolver)
	playlistService := service.NewPlaylistService(playlistRepo, pfRepo)
	pfService := service.NewPlaylistFavoriteService(playlistRepo, favoriteRepo, pfRepo)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	router.Use(middleware.Recovery(log))
	router.Use(middleware.RequestID())
	router.Use(middleware.Logging(log))
	router.Use(middleware.CORS())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		favoriteHandler := handler.NewFavoriteHandler(favoriteService)
		api.POST("/favorites", favoriteHandler.CreateFavorite)
		api.GET("/favorites", favoriteHandler.ListFavorites)
		api.GET("/favorites/:id", favoriteHandler.GetFavorite)
		api.DELETE("/favorites/:id", favoriteHandler.DeleteFavorite)

		playlistHandler := handler.NewPlaylistHandler(playlistService)
		api.POST("/playlists", playlistHandler.CreatePlaylist)
		api.GET("/playlists", playlistHandler.ListPlaylists)
		api.PUT("/playlists/:playlistId", playlistHandler.UpdatePlaylist)
		api.DELETE("/playlists/:playlistId", playlistHandler.DeletePlaylist)
		api.GET("/playlists/:playlistId/favorites", playlistHandler.GetPlaylistFavorites)

		pfHandler := handler.NewPlaylistFavoriteHandler(pfService)
		api.POST("/playlists/:playlistId/favorites/:favoriteId", pfHandler.LinkFavorite)
		api.DELETE("/playlists/:playlistId/favorites/:favoriteId", pfHandler.UnlinkFavorite)
	}

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start HTTP server", zap.Error(err))
		}
	}()

	return server
}
