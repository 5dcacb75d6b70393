package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpcontroller "ripple/internal/controller/http"
	"ripple/internal/repo/persistent"
	"ripple/internal/usecase"
	"ripple/pkg/config"
	"ripple/pkg/jwt"
	"ripple/pkg/logger"
	"ripple/pkg/middleware"
	"ripple/pkg/queue"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Run wires the application together and blocks until shutdown.
func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB, redisClient *redis.Client, queueClient *queue.Client) {
	jwtService := jwt.NewService(cfg.JWTSecret)

	userRepo := persistent.NewUserRepository(db)
	postRepo := persistent.NewPostRepository(db)
	followRepo := persistent.NewFollowRepository(db)
	interactionRepo := persistent.NewInteractionRepository(db)
	commentRepo := persistent.NewCommentRepository(db)

	// queueClient may be nil when RabbitMQ is unavailable; notifications are
	// then skipped.
	var publisher usecase.NotificationPublisher
	if queueClient != nil {
		publisher = queueClient
	}

	feedCacheTTL := time.Duration(cfg.FeedCacheTTLSeconds) * time.Second

	authUseCase := usecase.NewAuthUseCase(userRepo, followRepo, jwtService, log)
	postUseCase := usecase.NewPostUseCase(postRepo, userRepo, interactionRepo, redisClient, log)
	feedUseCase := usecase.NewFeedUseCase(postRepo, followRepo, interactionRepo, redisClient, feedCacheTTL, log)
	searchUseCase := usecase.NewSearchUseCase(userRepo, postRepo, interactionRepo, log)
	socialUseCase := usecase.NewSocialUseCase(followRepo, userRepo, redisClient, publisher, log)
	interactionUseCase := usecase.NewInteractionUseCase(interactionRepo, postRepo, publisher, log)
	commentUseCase := usecase.NewCommentUseCase(commentRepo, postRepo, publisher, log)

	authHandler := httpcontroller.NewAuthHandler(authUseCase, log)
	postHandler := httpcontroller.NewPostHandler(postUseCase, log)
	feedHandler := httpcontroller.NewFeedHandler(feedUseCase, log)
	searchHandler := httpcontroller.NewSearchHandler(searchUseCase, log)
	socialHandler := httpcontroller.NewSocialHandler(socialUseCase, log)
	interactionHandler := httpcontroller.NewInteractionHandler(interactionUseCase, log)
	commentHandler := httpcontroller.NewCommentHandler(commentUseCase, log)

	r := gin.Default()

	r.Use(middleware.RequestIDMiddleware())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")

	api.POST("/register", authHandler.Register)
	api.POST("/login", authHandler.Login)

	// Readable by anonymous viewers; interaction flags resolve against the
	// token when one is present.
	public := api.Group("")
	public.Use(middleware.OptionalAuthMiddleware(jwtService))
	{
		public.GET("/posts/search", searchHandler.SearchPosts)
		public.GET("/posts/user/:id", postHandler.GetUserPosts)
		public.GET("/posts/:id", postHandler.GetPost)
		public.GET("/posts/:id/likes", interactionHandler.ListLikers)
		public.GET("/posts/:id/comments", commentHandler.ListComments)
		public.GET("/users/:id/stats", socialHandler.Stats)
	}

	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware(jwtService))
	authed.Use(middleware.RateLimitMiddleware(redisClient, 100, time.Minute))
	{
		authed.GET("/users/me", authHandler.Me)
		authed.GET("/users/search", searchHandler.SearchUsers)
		authed.POST("/users/:id/follow", socialHandler.Follow)
		authed.DELETE("/users/:id/follow", socialHandler.Unfollow)
		authed.GET("/users/following", socialHandler.ListFollowing)
		authed.GET("/users/followers", socialHandler.ListFollowers)

		authed.GET("/feed", feedHandler.GetFeed)

		authed.POST("/posts", postHandler.CreatePost)
		authed.GET("/posts/my", postHandler.GetMyPosts)
		authed.DELETE("/posts/:id", postHandler.DeletePost)

		authed.POST("/posts/:id/like", interactionHandler.LikePost)
		authed.DELETE("/posts/:id/like", interactionHandler.UnlikePost)

		authed.POST("/posts/:id/comments", commentHandler.CreateComment)
		authed.PUT("/comments/:id", commentHandler.UpdateComment)
		authed.DELETE("/comments/:id", commentHandler.DeleteComment)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	go func() {
		log.Info("Server starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sqlDB, err := db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Error("Error closing database: %v", err)
		}
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Error closing Redis: %v", err)
		}
	}

	if queueClient != nil {
		queueClient.Close()
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		panic(err)
	}

	log.Info("Server exited")
}
