package app

import (
	"net/http"

	apiHTTP "igclone/internal/controller/http"
	"igclone/internal/repo/inbox"
	"igclone/internal/repo/persistent"
	"igclone/internal/usecase"
	"igclone/pkg/config"
	"igclone/pkg/jwt"
	"igclone/pkg/logger"
	"igclone/pkg/metrics"
	"igclone/pkg/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Dependencies are the connected backends the API is built on. Redis,
// Images and Publisher may be nil.
type Dependencies struct {
	Config    *config.Config
	Log       *logger.Logger
	DB        *gorm.DB
	Redis     *redis.Client
	Images    usecase.ImageStore
	Publisher usecase.EventPublisher
	JWT       *jwt.Service
	Registry  *prometheus.Registry
}

// UseCases groups the application services behind the HTTP API.
type UseCases struct {
	Auth         usecase.AuthUseCase
	User         usecase.UserUseCase
	Graph        usecase.GraphUseCase
	Post         usecase.PostUseCase
	Feed         usecase.FeedUseCase
	Comment      usecase.CommentUseCase
	Notification usecase.NotificationUseCase
}

func NewUseCases(deps Dependencies) *UseCases {
	userRepo := persistent.NewUserRepository(deps.DB)
	followRepo := persistent.NewFollowRepository(deps.DB)
	postRepo := persistent.NewPostRepository(deps.DB)
	likeRepo := persistent.NewLikeRepository(deps.DB)
	commentRepo := persistent.NewCommentRepository(deps.DB)
	feedRepo := persistent.NewFeedRepository(deps.DB)

	var inboxRepo inbox.NotificationRepository
	if deps.Redis != nil {
		inboxRepo = inbox.NewNotificationRepository(deps.Redis)
	}

	return &UseCases{
		Auth:         usecase.NewAuthUseCase(userRepo, deps.JWT, deps.Log),
		User:         usecase.NewUserUseCase(userRepo, followRepo, feedRepo, deps.Images, deps.Log),
		Graph:        usecase.NewGraphUseCase(followRepo, userRepo, deps.Publisher, deps.Log),
		Post:         usecase.NewPostUseCase(postRepo, likeRepo, deps.Images, deps.Publisher, deps.Config.MaxImageBytes, deps.Log),
		Feed:         usecase.NewFeedUseCase(feedRepo, followRepo, userRepo, deps.Log),
		Comment:      usecase.NewCommentUseCase(commentRepo, postRepo, deps.Publisher, deps.Log),
		Notification: usecase.NewNotificationUseCase(inboxRepo, userRepo, deps.Log),
	}
}

func NewRouter(deps Dependencies, uc *UseCases) *gin.Engine {
	m := metrics.New(deps.Registry)

	authHandler := apiHTTP.NewAuthHandler(uc.Auth, m, deps.Log)
	userHandler := apiHTTP.NewUserHandler(uc.User, deps.Log)
	graphHandler := apiHTTP.NewGraphHandler(uc.Graph, m, deps.Log)
	postHandler := apiHTTP.NewPostHandler(uc.Post, uc.Feed, m, deps.Log)
	commentHandler := apiHTTP.NewCommentHandler(uc.Comment, m, deps.Log)
	notificationHandler := apiHTTP.NewNotificationHandler(uc.Notification, deps.Log)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Log, deps.Config.SlowRequestThreshold))
	r.Use(middleware.MetricsMiddleware(m))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     deps.Config.CORSAllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.HeaderRequestID},
		ExposeHeaders:    []string{"Content-Length", middleware.HeaderRequestID},
		AllowCredentials: true,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{})))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	{
		api.POST("/auth/signup", authHandler.Signup)
		api.POST("/auth/login", authHandler.Login)
		api.GET("/users/:id/following", graphHandler.ListFollowing)
		api.GET("/users/:id/followers", graphHandler.ListFollowers)
		api.GET("/comments/post/:post_id", commentHandler.ListComments)

		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWT, uc.User))
		protected.Use(middleware.RateLimitMiddleware(deps.Redis, deps.Config.RateLimitRequests, deps.Config.RateLimitWindow))
		{
			protected.GET("/users", userHandler.ListUsers)
			protected.GET("/users/me", userHandler.Me)
			protected.GET("/users/search", userHandler.SearchUser)
			protected.GET("/users/:id", userHandler.GetUser)
			protected.GET("/users/:id/profile", userHandler.GetProfile)
			protected.PUT("/users/:id", userHandler.UpdateUser)
			protected.DELETE("/users/:id", userHandler.DeleteUser)

			protected.POST("/users/:id/follow", graphHandler.Follow)
			protected.DELETE("/users/:id/unfollow", graphHandler.Unfollow)

			protected.POST("/posts", postHandler.CreatePost)
			protected.GET("/posts", postHandler.ListPosts)
			protected.GET("/posts/:id", postHandler.GetPost)
			protected.PUT("/posts/:id", postHandler.UpdatePost)
			protected.DELETE("/posts/:id", postHandler.DeletePost)

			protected.POST("/posts/:id/like", postHandler.LikePost)
			protected.DELETE("/posts/:id/unlike", postHandler.UnlikePost)
			protected.GET("/posts/:id/likes", postHandler.GetLikes)

			protected.POST("/comments", commentHandler.CreateComment)

			protected.GET("/notifications", notificationHandler.GetNotifications)
		}
	}

	return r
}
