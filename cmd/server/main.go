package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/buildloghq/buildlog-backend/internal/adapter/repository"
	"github.com/buildloghq/buildlog-backend/internal/config"
	domainRepo "github.com/buildloghq/buildlog-backend/internal/domain/repository"
	"github.com/buildloghq/buildlog-backend/internal/infrastructure/cache"
	"github.com/buildloghq/buildlog-backend/internal/infrastructure/database"
	"github.com/buildloghq/buildlog-backend/internal/infrastructure/github"
	httpServer "github.com/buildloghq/buildlog-backend/internal/infrastructure/http"
	"github.com/buildloghq/buildlog-backend/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logger := cfg.Logger
	defer logger.Sync()

	db, err := database.NewConnection(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := database.Close(db, logger); err != nil {
			logger.Error("Failed to close database connection", zap.Error(err))
		}
	}()

	if err := database.Migrate(db, logger); err != nil {
		logger.Fatal("Failed to run database migrations", zap.Error(err))
	}

	repos := repository.NewRepositories(db, logger)

	// Pick the cache backend. Redis when enabled, otherwise an in-process
	// store swept by the scheduler.
	var cacheRepo domainRepo.CacheRepository
	scheduler := cron.New()
	if cfg.Redis.Enabled {
		redisClient, err := cache.NewRedisClient(cache.RedisConfig{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}, logger)
		if err != nil {
			logger.Fatal("Failed to connect to redis", zap.Error(err))
		}
		defer redisClient.Close()
		cacheRepo = cache.NewRedisRepository(redisClient)
	} else {
		memoryCache := cache.NewMemoryRepository()
		cacheRepo = memoryCache
		if _, err := scheduler.AddFunc("@every 5m", func() {
			if removed := memoryCache.Sweep(); removed > 0 {
				logger.Debug("Memory cache swept", zap.Int("removed", removed))
			}
		}); err != nil {
			logger.Fatal("Failed to schedule cache sweep", zap.Error(err))
		}
	}
	scheduler.Start()
	defer scheduler.Stop()

	githubClient := github.NewClient(cfg.GitHub.Token, logger)

	authUseCase := usecase.NewAuthUseCase(usecase.AuthConfig{
		OwnerEmail:        cfg.Auth.OwnerEmail,
		OwnerName:         cfg.Auth.OwnerName,
		OwnerUsername:     cfg.Auth.OwnerUsername,
		OwnerPasswordHash: cfg.Auth.OwnerPasswordHash,
		JWTSecret:         cfg.Auth.JWTSecret,
		TokenExpiry:       time.Duration(cfg.Auth.TokenExpiryHours) * time.Hour,
	}, repos.User, logger)

	usecases := &httpServer.UseCases{
		Auth: authUseCase,
		App:  usecase.NewAppUseCase(repos.App, repos.Update, repos.Deployment, logger),
		ShareLink: usecase.NewShareLinkUseCase(
			repos.ShareLink, repos.App, nil, cfg.Service.BaseURL, logger),
		Public: usecase.NewPublicUseCase(
			repos.ShareLink, repos.App, repos.Feedback, repos.ClientTask, nil, logger),
		Task: usecase.NewTaskUseCase(repos.ClientTask, repos.App, logger),
		GitHub: usecase.NewGitHubUseCase(
			githubClient, cacheRepo,
			time.Duration(cfg.GitHub.CacheTTLMinutes)*time.Minute, logger),
	}

	bootCtx, bootCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if _, err := authUseCase.Bootstrap(bootCtx); err != nil {
		bootCancel()
		logger.Fatal("Failed to bootstrap owner account", zap.Error(err))
	}
	bootCancel()

	server := httpServer.NewServer(cfg, logger, usecases)

	go func() {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start HTTP server", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Failed to shutdown HTTP server", zap.Error(err))
	}

	logger.Info("Server shut down successfully")
}
