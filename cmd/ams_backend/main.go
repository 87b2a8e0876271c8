package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/orbisedu/academy_mgmt_app/internal/core/services"
	"github.com/orbisedu/academy_mgmt_app/internal/handlers"
	"github.com/orbisedu/academy_mgmt_app/internal/middleware"
	"github.com/orbisedu/academy_mgmt_app/internal/platform/config"
	"github.com/orbisedu/academy_mgmt_app/internal/platform/scheduler"
	"github.com/orbisedu/academy_mgmt_app/internal/repositories/storage/jsonfile"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	store, err := jsonfile.NewStore(cfg.DataDir)
	if err != nil {
		logger.Error("Failed to initialize data store", slog.String("error", err.Error()), slog.String("data_dir", cfg.DataDir))
		os.Exit(1)
	}
	logger.Info("Data store initialized", slog.String("data_dir", cfg.DataDir))

	repos := jsonfile.NewRepositoryProvider(store)
	svcContainer := services.NewServiceContainer(repos)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go scheduler.New(svcContainer.Expense, logger).Run(ctx)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.Default())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, svcContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
