package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/marcos-nsantos/image-gateway/internal/adapter/handler"
	"github.com/marcos-nsantos/image-gateway/internal/infrastructure/cache"
	"github.com/marcos-nsantos/image-gateway/internal/infrastructure/config"
	"github.com/marcos-nsantos/image-gateway/internal/infrastructure/middleware"
	"github.com/marcos-nsantos/image-gateway/internal/infrastructure/observability"
	"github.com/marcos-nsantos/image-gateway/internal/infrastructure/server"
	"github.com/marcos-nsantos/image-gateway/internal/infrastructure/storage"
	"github.com/marcos-nsantos/image-gateway/internal/pkg/validation"
	"github.com/marcos-nsantos/image-gateway/internal/usecase/listing"
	"github.com/marcos-nsantos/image-gateway/internal/usecase/metadata"
	"github.com/marcos-nsantos/image-gateway/internal/usecase/sign"
	"github.com/marcos-nsantos/image-gateway/internal/usecase/transform"
	"github.com/marcos-nsantos/image-gateway/internal/usecase/upload"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Infrastructure services
	s3Storage, err := storage.NewS3Storage(cfg.S3)
	if err != nil {
		logger.Fatal("failed to create s3 storage", zap.Error(err))
	}
	imageProcessor := storage.NewImageProcessor()

	var rateLimiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			logger.Fatal("failed to connect to redis", zap.Error(err))
		}
		defer redisClient.Close()

		rateLimiter = middleware.NewRateLimiter(redisClient, cfg.RateLimit, logger)
	}

	// Use cases
	transformSvc := transform.NewService(s3Storage, imageProcessor, cfg.Image.TransformConcurrency)
	metadataSvc := metadata.NewService(s3Storage, imageProcessor)
	uploadSvc := upload.NewService(s3Storage, cfg.Upload.MaxSize, cfg.Upload.AllowedTypes)
	signSvc := sign.NewService(s3Storage)
	listSvc := listing.NewService(s3Storage)

	// Handlers
	validator := validation.New()
	imageHandler := handler.NewImageHandler(transformSvc, metadataSvc, validator)
	uploadHandler := handler.NewUploadHandler(uploadSvc, cfg.Upload.MaxSize)
	signHandler := handler.NewSignHandler(signSvc, validator)
	listHandler := handler.NewListHandler(listSvc)

	// Router
	router := server.NewRouter(server.RouterConfig{
		ImageHandler:     imageHandler,
		UploadHandler:    uploadHandler,
		SignHandler:      signHandler,
		ListHandler:      listHandler,
		APIKeyMiddleware: middleware.NewAPIKeyMiddleware(cfg.Auth.APIKey),
		RateLimiter:      rateLimiter,
		Logger:           logger,
		Environment:      cfg.Server.Environment,
	})

	// Server
	srv := server.NewServer(server.ServerConfig{
		Port:            cfg.Server.Port,
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Handler:         router.Engine(),
		Logger:          logger,
	})

	if err := srv.Run(ctx); err != nil {
		logger.Error("server stopped with error", zap.Error(err))
		return
	}

	logger.Info("server stopped")
}
