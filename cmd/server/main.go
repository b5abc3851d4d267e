package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/Sohype-Khaled/PluseOneBlogTask/internal/config"
	"github.com/Sohype-Khaled/PluseOneBlogTask/internal/database"
	"github.com/Sohype-Khaled/PluseOneBlogTask/internal/handlers"
	"github.com/Sohype-Khaled/PluseOneBlogTask/internal/logging"
	"github.com/Sohype-Khaled/PluseOneBlogTask/internal/middleware"
	"github.com/Sohype-Khaled/PluseOneBlogTask/internal/repository"
	"github.com/Sohype-Khaled/PluseOneBlogTask/internal/services"
	"github.com/Sohype-Khaled/PluseOneBlogTask/internal/storage"
	"github.com/Sohype-Khaled/PluseOneBlogTask/internal/token"
)

func main() {
	// Load configuration
	cfg := config.Load()

	if err := logging.Init(cfg); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	logger := logging.Logger
	defer func() { _ = logger.Sync() }()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	if cfg.GinMode == "release" && cfg.JWTSecret == "default-secret-key-change-me" {
		logger.Fatal("JWT_SECRET must be set in release mode")
	}

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		logger.Fatal("Failed to connect to database: " + err.Error())
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations: " + err.Error())
	}

	db := database.GetDB()

	// Token revocation backend: Redis when configured, in-process otherwise
	var blacklist token.Blacklist
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		blacklist = token.NewRedisBlacklist(client)
	}

	tokens, err := token.NewManager(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL, blacklist)
	if err != nil {
		logger.Fatal("Failed to initialize token manager: " + err.Error())
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	tagRepo := repository.NewTagRepository(db)

	// Services
	authService := services.NewAuthService(userRepo, profileRepo)
	postService := services.NewPostService(postRepo, profileRepo, categoryRepo, tagRepo)
	commentService := services.NewCommentService(commentRepo, postRepo, profileRepo)
	taxonomyService := services.NewTaxonomyService(categoryRepo, tagRepo)

	files := storage.NewFileStore(cfg.UploadDir, cfg.MediaURL)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService, tokens, files, logger)
	postHandler := handlers.NewPostHandler(postService)
	commentHandler := handlers.NewCommentHandler(commentService)
	taxonomyHandler := handlers.NewTaxonomyHandler(taxonomyService)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	r.Use(cors.Default())

	// Uploaded profile pictures
	r.Static(cfg.MediaURL, cfg.UploadDir)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	requireAuth := middleware.RequireAuth(tokens)
	requirePostOwner := middleware.RequireOwner("post", profileRepo, postRepo.FindByID)
	requireCommentOwner := middleware.RequireOwner("comment", profileRepo, commentRepo.FindByID)

	r.GET("/categories", taxonomyHandler.ListCategories)
	r.GET("/tags", taxonomyHandler.ListTags)

	posts := r.Group("/posts")
	{
		posts.GET("", postHandler.List)
		posts.POST("", requireAuth, postHandler.Create)
		posts.GET("/:id", postHandler.Retrieve)
		posts.PUT("/:id", requireAuth, requirePostOwner, postHandler.Update)
		posts.DELETE("/:id", requireAuth, requirePostOwner, postHandler.Destroy)
	}

	comments := r.Group("/comments")
	{
		comments.GET("", commentHandler.List)
		comments.POST("", requireAuth, commentHandler.Create)
		comments.DELETE("/:id", requireAuth, requireCommentOwner, commentHandler.Destroy)
	}

	auth := r.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/token", authHandler.TokenObtain)
		auth.POST("/token/refresh", authHandler.TokenRefresh)
		auth.POST("/token/verify", authHandler.TokenVerify)
		auth.POST("/token/blacklist", authHandler.TokenBlacklist)
	}

	logger.Info("Server starting on :" + cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		logger.Fatal("Failed to start server: " + err.Error())
	}
}
