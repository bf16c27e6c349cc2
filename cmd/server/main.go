package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/article-mirror-api/internal/api"
	"github.com/article-mirror-api/internal/auth"
	"github.com/article-mirror-api/internal/config"
	"github.com/article-mirror-api/internal/database"
	"github.com/article-mirror-api/internal/repository"
	"github.com/article-mirror-api/internal/service"
	"github.com/article-mirror-api/internal/wordpress"
	"github.com/article-mirror-api/pkg/logger"
)

func main() {
	// Load .env if present; real environment wins
	_ = godotenv.Load()

	// Initialize logger
	log := logger.New()
	log.Info().Msg("Starting article mirror API server...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize database
	db, err := database.New(&cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	// Run migrations
	migrationsPath := os.Getenv("MIGRATIONS_PATH")
	if migrationsPath == "" {
		migrationsPath = "./migrations"
	}
	if err := db.RunMigrations(migrationsPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to run database migrations")
	}

	// Initialize repositories
	repos := repository.New(db)

	// Upstream WordPress client
	wpClient := wordpress.NewClient(cfg.Sync.PostsURL, cfg.Sync.PerPage, cfg.Sync.FetchTimeout, log)

	// Initialize services
	services := service.NewServices(repos, wpClient, cfg, log)

	// Start the sync scheduler; nothing runs before the first tick
	if err := services.Sync.StartScheduler(); err != nil {
		log.Fatal().Err(err).Msg("Failed to start sync scheduler")
	}
	log.Info().Dur("interval", cfg.Sync.Interval).Msg("Sync scheduler started")

	// Initialize router
	verifier := auth.NewVerifier(cfg.Auth.JWTSecret)
	router := api.NewRouter(services, verifier, log)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.ReadTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	// Stop scheduled syncs, waiting for an in-flight run
	services.Sync.StopScheduler()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited gracefully")
}
