package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	controller "sky-archive/internal/controller/http"
	"sky-archive/internal/repo/persistent"
	"sky-archive/internal/usecase"
	"sky-archive/pkg/config"
	"sky-archive/pkg/database"
	"sky-archive/pkg/jwt"
	"sky-archive/pkg/logger"
	"sky-archive/pkg/middleware"

	_ "sky-archive/docs" // Swagger docs
)

type App struct {
	cfg         *config.Config
	log         *logger.Logger
	mongoClient *mongo.Client
	db          *mongo.Database
	redisClient *redis.Client
	jwtService  *jwt.Service
	httpServer  *http.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	log := logger.New()

	mongoClient, err := database.NewMongoClient(context.Background(), cfg)
	if err != nil {
		log.Error("Failed to connect to mongodb: %v", err)
		return nil, err
	}
	db := mongoClient.Database(cfg.DatabaseName)

	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		log.Warn("Failed to connect to redis, rate limiting disabled: %v", err)
		redisClient = nil
	}

	jwtService := jwt.NewService(cfg.JWTSecretKey, cfg.JWTRefreshSecretKey)

	return &App{
		cfg:         cfg,
		log:         log,
		mongoClient: mongoClient,
		db:          db,
		redisClient: redisClient,
		jwtService:  jwtService,
	}, nil
}

func (a *App) Run() error {
	// Initialize repositories
	userRepo := persistent.NewUserRepository(a.db)
	assetRepo := persistent.NewAssetRepository(a.db)

	// Initialize use cases
	authUseCase := usecase.NewAuthUseCase(userRepo, a.jwtService, a.log)
	assetUseCase := usecase.NewAssetUseCase(assetRepo, a.log)

	// Initialize HTTP handlers
	authHandler := controller.NewAuthHandler(authUseCase)
	assetHandler := controller.NewAssetHandler(assetUseCase)

	// Setup router
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), middleware.RequestID())

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     a.cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authenticated := controller.Authenticate(a.jwtService, authUseCase)
	rateLimited := middleware.RateLimitMiddleware(a.redisClient, a.cfg.RateLimitRequests, a.cfg.RateLimitWindow)

	user := r.Group("/user")
	{
		user.POST("/register", rateLimited, authHandler.Register)
		user.POST("/login", rateLimited, authHandler.Login)
		user.GET("/me", authenticated, controller.RequireActive(), authHandler.Me)
		user.GET("/all", authenticated, controller.RequireAdmin(), authHandler.ListUsers)
	}

	asset := r.Group("/asset")
	{
		asset.POST("/create", authenticated, controller.RequireActive(), assetHandler.CreateAsset)
		asset.GET("/new", assetHandler.GetNewestAsset)
		asset.GET("/scatter", assetHandler.GetScatterAssets)
		asset.GET("/:asset_id", assetHandler.GetAsset)
	}

	// Create HTTP server
	a.httpServer = &http.Server{
		Addr:    ":" + a.cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		a.log.Info("sky-archive listening on port %s", a.cfg.ServerPort)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	return nil
}

func (a *App) Wait() {
	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	a.log.Info("Shutting down sky-archive...")
}

func (a *App) Shutdown() error {
	// The context is used to inform the server it has 5 seconds to finish
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.log.Error("Error closing redis: %v", err)
		}
	}

	if err := a.mongoClient.Disconnect(ctx); err != nil {
		a.log.Error("Error disconnecting from mongodb: %v", err)
	}

	if a.httpServer != nil {
		if err := a.httpServer.Shutdown(ctx); err != nil {
			a.log.Error("Server forced to shutdown: %v", err)
			return err
		}
	}

	a.log.Info("sky-archive exited")
	return nil
}
