package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	blogHTTP "imersao-completa/internal/controller/http"
	"imersao-completa/internal/repo/persistent"
	"imersao-completa/internal/usecase"
	"imersao-completa/pkg/cache"
	"imersao-completa/pkg/config"
	"imersao-completa/pkg/database"
	"imersao-completa/pkg/jwt"
	"imersao-completa/pkg/logger"
	"imersao-completa/pkg/middleware"
	"imersao-completa/pkg/queue"
	"imersao-completa/pkg/s3"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "imersao-completa/docs" // Swagger docs
)

const (
	resetTokenTTL   = time.Hour
	publicRateLimit = 10
	rateLimitWindow = time.Minute
)

type App struct {
	cfg         *config.Config
	log         *logger.Logger
	db          *gorm.DB
	redisClient *redis.Client
	s3Client    *s3.Client
	jwtService  *jwt.Service
	queueClient *queue.Client
	httpServer  *http.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	log := logger.New()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		return nil, err
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to redis: %v (continuing without cache)", err)
		redisClient = nil
	}

	s3Client, err := s3.NewClient(cfg)
	if err != nil {
		log.Error("Failed to create S3 client: %v", err)
		return nil, err
	}

	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Error("Failed to connect to RabbitMQ: %v (continuing without queue)", err)
		queueClient = nil
	}

	return &App{
		cfg:         cfg,
		log:         log,
		db:          db,
		redisClient: redisClient,
		s3Client:    s3Client,
		jwtService:  jwt.NewServiceWithTTL(cfg.JWTSecret, cfg.JWTTTL),
		queueClient: queueClient,
	}, nil
}

// Services bundles the use cases shared by the API and the CLI tools.
type Services struct {
	Posts         usecase.PostUseCase
	PublicPosts   usecase.PublicPostUseCase
	Categories    usecase.CategoryUseCase
	Tags          usecase.TagUseCase
	Advertisement usecase.AdvertisementUseCase
	Newsletter    usecase.NewsletterUseCase
	Stats         usecase.StatsUseCase
	Auth          usecase.AuthUseCase
	Media         usecase.MediaUseCase
}

// NewServices wires repositories and use cases. redisClient and publisher
// may be nil; uploader is required only for media endpoints.
func NewServices(
	cfg *config.Config,
	log *logger.Logger,
	db *gorm.DB,
	redisClient *redis.Client,
	publisher usecase.TaskPublisher,
	uploader usecase.FileUploader,
) *Services {
	var queryCache cache.Cache = cache.Noop{}
	if redisClient != nil {
		queryCache = cache.NewQueryCache(redisClient, cfg.CacheTTL)
	}

	postRepo := persistent.NewPostRepository(db)
	categoryRepo := persistent.NewCategoryRepository(db)
	tagRepo := persistent.NewTagRepository(db)
	adRepo := persistent.NewAdvertisementRepository(db)
	newsletterRepo := persistent.NewNewsletterRepository(db)
	statsRepo := persistent.NewStatsRepository(db)
	userRepo := persistent.NewUserRepository(db)
	profileRepo := persistent.NewProfileRepository(db)
	roleRepo := persistent.NewRoleRepository(db)

	return &Services{
		Posts:         usecase.NewPostUseCase(postRepo, profileRepo, queryCache, publisher, log),
		PublicPosts:   usecase.NewPublicPostUseCase(postRepo, categoryRepo, profileRepo, queryCache, log),
		Categories:    usecase.NewCategoryUseCase(categoryRepo, queryCache, log),
		Tags:          usecase.NewTagUseCase(tagRepo, queryCache, log),
		Advertisement: usecase.NewAdvertisementUseCase(adRepo, queryCache, log),
		Newsletter:    usecase.NewNewsletterUseCase(newsletterRepo, queryCache, publisher, log),
		Stats:         usecase.NewStatsUseCase(statsRepo, queryCache, log),
		Auth: usecase.NewAuthUseCase(
			userRepo,
			profileRepo,
			roleRepo,
			jwt.NewServiceWithTTL(cfg.JWTSecret, cfg.JWTTTL),
			jwt.NewServiceWithTTL(cfg.JWTSecret+":password-reset", resetTokenTTL),
			publisher,
			log,
		),
		Media: usecase.NewMediaUseCase(uploader, profileRepo, log),
	}
}

// publisher keeps a nil *queue.Client from becoming a non-nil interface.
func (a *App) publisher() usecase.TaskPublisher {
	if a.queueClient == nil {
		return nil
	}
	return a.queueClient
}

func (a *App) Run() error {
	services := NewServices(a.cfg, a.log, a.db, a.redisClient, a.publisher(), a.s3Client)

	postHandler := blogHTTP.NewPostHandler(services.Posts, a.log)
	publicHandler := blogHTTP.NewPublicHandler(services.PublicPosts, a.log)
	taxonomyHandler := blogHTTP.NewTaxonomyHandler(services.Categories, services.Tags, a.log)
	adHandler := blogHTTP.NewAdvertisementHandler(services.Advertisement, a.log)
	newsletterHandler := blogHTTP.NewNewsletterHandler(services.Newsletter, a.log)
	authHandler := blogHTTP.NewAuthHandler(services.Auth, services.Media, a.log)
	adminHandler := blogHTTP.NewAdminHandler(services.Stats, services.Media, a.log)

	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     a.cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	throttle := func(c *gin.Context) { c.Next() }
	if a.redisClient != nil {
		throttle = middleware.RateLimitMiddleware(a.redisClient, publicRateLimit, rateLimitWindow)
	}

	api := r.Group("/api/v1")
	{
		api.GET("/posts", publicHandler.Search)
		api.GET("/posts/featured", publicHandler.Featured)
		api.GET("/posts/recent", publicHandler.Recent)
		api.GET("/posts/popular", publicHandler.Popular)
		api.GET("/posts/slug/:slug", publicHandler.BySlug)
		api.GET("/posts/:id/related", publicHandler.Related)

		api.GET("/categories", taxonomyHandler.ListCategories)
		api.GET("/categories/:slug", taxonomyHandler.GetCategory)
		api.GET("/categories/:slug/posts", publicHandler.ByCategory)
		api.GET("/tags", taxonomyHandler.ListTags)
		api.GET("/tags/:slug", taxonomyHandler.GetTag)

		api.GET("/ads/position/:position", adHandler.ForPosition)
		api.GET("/ads/position/:position/all", adHandler.ListByPosition)
		api.POST("/ads/:id/click", adHandler.TrackClick)
		api.POST("/ads/:id/impression", adHandler.TrackImpression)

		api.POST("/newsletter/subscribe", throttle, newsletterHandler.Subscribe)

		api.POST("/auth/signup", throttle, authHandler.SignUp)
		api.POST("/auth/signin", throttle, authHandler.SignIn)
		api.POST("/auth/reset-password", throttle, authHandler.ResetPassword)
		api.POST("/auth/reset-password/confirm", throttle, authHandler.ConfirmPasswordReset)
	}

	// Protected routes
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(a.jwtService))
	{
		protected.POST("/auth/signout", authHandler.SignOut)
		protected.POST("/auth/refresh", authHandler.Refresh)
		protected.GET("/auth/me", authHandler.Me)
		protected.PUT("/auth/me", authHandler.UpdateMe)
		protected.POST("/auth/me/avatar", authHandler.UploadAvatar)
	}

	// Editors manage content
	editor := protected.Group("/admin")
	editor.Use(middleware.RequireRoles(services.Auth, "editor", "admin"))
	{
		editor.GET("/posts", postHandler.ListPosts)
		editor.GET("/posts/:id", postHandler.GetPost)
		editor.POST("/posts", postHandler.CreatePost)
		editor.PUT("/posts/:id", postHandler.UpdatePost)
		editor.DELETE("/posts/:id", postHandler.DeletePost)
		editor.POST("/posts/:id/publish", postHandler.PublishPost)
		editor.POST("/posts/:id/unpublish", postHandler.UnpublishPost)

		editor.POST("/categories", taxonomyHandler.CreateCategory)
		editor.PUT("/categories/:id", taxonomyHandler.UpdateCategory)
		editor.DELETE("/categories/:id", taxonomyHandler.DeleteCategory)
		editor.POST("/tags", taxonomyHandler.CreateTag)
		editor.PUT("/tags/:id", taxonomyHandler.UpdateTag)
		editor.DELETE("/tags/:id", taxonomyHandler.DeleteTag)

		editor.GET("/stats", adminHandler.Stats)
		editor.POST("/media", adminHandler.UploadMedia)
		editor.POST("/content/validate", adminHandler.ValidateContent)
	}

	// Admins manage monetisation, subscribers and users
	admin := protected.Group("/admin")
	admin.Use(middleware.RequireRoles(services.Auth, "admin"))
	{
		admin.GET("/ads", adHandler.ListAds)
		admin.POST("/ads", adHandler.CreateAd)
		admin.PUT("/ads/:id", adHandler.UpdateAd)
		admin.DELETE("/ads/:id", adHandler.DeleteAd)

		admin.GET("/newsletter", newsletterHandler.ListSubscribers)
		admin.GET("/newsletter/export", newsletterHandler.ExportSubscribers)
		admin.POST("/newsletter/:id/unsubscribe", newsletterHandler.Unsubscribe)
		admin.DELETE("/newsletter/:id", newsletterHandler.DeleteSubscriber)

		admin.POST("/users/:id/roles", authHandler.GrantRole)
		admin.DELETE("/users/:id/roles/:role", authHandler.RevokeRole)
	}

	// Create HTTP server
	a.httpServer = &http.Server{
		Addr:    ":" + a.cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		a.log.Info("Blog API starting on port %s", a.cfg.ServerPort)
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
	a.log.Info("Shutting down blog API...")
}

func (a *App) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := a.httpServer.Shutdown(ctx); err != nil {
		a.log.Error("Server forced to shutdown: %v", err)
		return err
	}

	sqlDB, err := a.db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			a.log.Error("Error closing database: %v", err)
		}
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.log.Error("Error closing Redis: %v", err)
		}
	}

	if a.queueClient != nil {
		if err := a.queueClient.Close(); err != nil {
			a.log.Error("Error closing RabbitMQ: %v", err)
		}
	}

	a.log.Info("Blog API exited")
	return nil
}
