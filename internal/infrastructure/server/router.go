package server

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/image-gateway/internal/adapter/handler"
	"github.com/marcos-nsantos/image-gateway/internal/infrastructure/middleware"
)

type Router struct {
	engine           *gin.Engine
	imageHandler     *handler.ImageHandler
	uploadHandler    *handler.UploadHandler
	signHandler      *handler.SignHandler
	listHandler      *handler.ListHandler
	apiKeyMiddleware *middleware.APIKeyMiddleware
	rateLimiter      *middleware.RateLimiter
	logger           *zap.Logger
}

type RouterConfig struct {
	ImageHandler     *handler.ImageHandler
	UploadHandler    *handler.UploadHandler
	SignHandler      *handler.SignHandler
	ListHandler      *handler.ListHandler
	APIKeyMiddleware *middleware.APIKeyMiddleware
	// RateLimiter is optional; nil disables rate limiting.
	RateLimiter *middleware.RateLimiter
	Logger      *zap.Logger
	Environment string
}

func NewRouter(cfg RouterConfig) *Router {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	r := &Router{
		engine:           engine,
		imageHandler:     cfg.ImageHandler,
		uploadHandler:    cfg.UploadHandler,
		signHandler:      cfg.SignHandler,
		listHandler:      cfg.ListHandler,
		apiKeyMiddleware: cfg.APIKeyMiddleware,
		rateLimiter:      cfg.RateLimiter,
		logger:           cfg.Logger,
	}

	r.setupMiddleware()
	r.setupRoutes()

	return r
}

func (r *Router) setupMiddleware() {
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Recovery(r.logger))
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.CORS())
	r.engine.Use(middleware.SecurityHeaders())
}

func (r *Router) setupRoutes() {
	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.engine.Group("")
	if r.rateLimiter != nil {
		api.Use(r.rateLimiter.Limit())
	}
	{
		api.GET("/image/:key", r.imageHandler.Get)
		api.GET("/list", r.listHandler.List)

		protected := api.Group("")
		protected.Use(r.apiKeyMiddleware.RequireAPIKey())
		{
			protected.POST("/upload", r.uploadHandler.Upload)
			protected.GET("/metadata/:key", r.imageHandler.Metadata)
			protected.GET("/sign/:key", r.signHandler.Sign)
		}
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
