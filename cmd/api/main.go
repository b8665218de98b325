package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/platefeed/backend/config"
	"github.com/platefeed/backend/internal/api"
	"github.com/platefeed/backend/internal/database"
	"github.com/platefeed/backend/internal/router"
	"github.com/platefeed/backend/internal/server"
	"github.com/platefeed/backend/internal/service"
	"github.com/platefeed/backend/internal/store"
)

func main() {
	logger, err := newLogger()
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	ctx := context.Background()
	client, db, err := database.Connect(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to connect to MongoDB", zap.Error(err))
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Error("mongo disconnect failed", zap.Error(err))
		}
	}()

	if err := database.EnsureIndexes(ctx, db); err != nil {
		logger.Fatal("failed to create indexes", zap.Error(err))
	}

	users := store.NewMongoUserStore(db)
	recipes := store.NewMongoRecipeStore(db)

	authService := service.NewAuthService(users, cfg.JWTSecret)
	recipeService := service.NewRecipeService(recipes, users)

	var imageService *service.ImageService
	if cfg.S3Bucket != "" {
		storage, err := config.NewS3Config(ctx, cfg)
		if err != nil {
			logger.Fatal("failed to configure S3", zap.Error(err))
		}
		imageService = service.NewImageService(storage)
	} else {
		logger.Warn("S3_BUCKET_NAME not set, image uploads disabled")
	}

	authHandler := api.NewAuthHandler(authService, logger)
	recipeHandler := api.NewRecipeHandler(recipeService, authService, logger)
	imageHandler := api.NewImageHandler(imageService, authService, logger)

	engine := router.New(cfg, authHandler, recipeHandler, imageHandler)
	srv := server.NewServer(engine, cfg.ServerPort, logger)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
	case sig := <-quit:
		logger.Info("received signal", zap.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("server shutdown error", zap.Error(err))
	}
	logger.Info("server stopped")
}

func newLogger() (*zap.Logger, error) {
	if config.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
