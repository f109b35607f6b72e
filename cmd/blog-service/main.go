// File: cmd/blog-service/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"go.uber.org/zap"

	"github.com/syedsaim26/blog-platform/internal/config"
	httpHandler "github.com/syedsaim26/blog-platform/internal/handler/http"
	"github.com/syedsaim26/blog-platform/internal/infrastructure/cache"
	"github.com/syedsaim26/blog-platform/internal/infrastructure/database"
	"github.com/syedsaim26/blog-platform/internal/infrastructure/database/postgres"
	"github.com/syedsaim26/blog-platform/internal/service"
	"github.com/syedsaim26/blog-platform/internal/utils/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log, err := logger.NewLogger(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	if cfg.Database.AutoMigrate {
		log.Info("Running database migrations")
		migrationURL := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
			cfg.Database.User, cfg.Database.Password, cfg.Database.Host,
			cfg.Database.Port, cfg.Database.DBName, cfg.Database.SSLMode)
		m, err := migrate.New("file://"+cfg.Database.MigrationsPath, migrationURL)
		if err != nil {
			log.Fatal("Failed to create migration instance", zap.Error(err))
		}
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			log.Fatal("Failed to apply migrations", zap.Error(err))
		}
		log.Info("Migrations applied successfully")
	}

	ctx := context.Background()

	dbPool, err := postgres.NewDBPool(ctx, cfg.Database)
	if err != nil {
		log.Fatal("Failed to initialize PostgreSQL connection pool", zap.Error(err))
	}
	defer dbPool.Close()

	redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		log.Fatal("Failed to initialize Redis client", zap.Error(err))
	}
	defer redisClient.Close()

	userRepo := database.NewPgxUserRepository(dbPool)
	refreshTokenRepo := database.NewPgxRefreshTokenRepository(dbPool)
	blogRepo := database.NewPgxBlogRepository(dbPool)
	commentRepo := database.NewPgxCommentRepository(dbPool)
	blogCache := cache.NewRedisBlogCache(redisClient, cfg.Redis.CacheTTL)

	tokenService, err := service.NewTokenService(cfg.JWT)
	if err != nil {
		log.Fatal("Failed to initialize token service", zap.Error(err))
	}
	authService := service.NewAuthService(userRepo, refreshTokenRepo, tokenService, log, cfg.Security.BcryptCost)
	blogService := service.NewBlogService(blogRepo, blogCache, log)
	commentService := service.NewCommentService(commentRepo, blogRepo, log)

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		Logger:         log,
		Config:         cfg,
		TokenService:   tokenService,
		AuthHandler:    httpHandler.NewAuthHandler(log, authService, cfg.JWT),
		BlogHandler:    httpHandler.NewBlogHandler(log, blogService),
		CommentHandler: httpHandler.NewCommentHandler(log, commentService),
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info("HTTP server starting", zap.Int("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
	log.Info("Server exited")
}
