package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"igclone/internal/usecase"
	"igclone/pkg/cache"
	"igclone/pkg/config"
	"igclone/pkg/database"
	"igclone/pkg/jwt"
	"igclone/pkg/logger"
	"igclone/pkg/queue"
	"igclone/pkg/s3"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const eventHandlerTimeout = 5 * time.Second

type App struct {
	cfg         *config.Config
	log         *logger.Logger
	db          *gorm.DB
	redisClient *redis.Client
	s3Client    *s3.Client
	queueClient *queue.Client
	jwtService  *jwt.Service
	httpServer  *http.Server
}

// NewApp connects the backends. Only the database is required; without
// Redis, S3 or RabbitMQ the matching features are switched off.
func NewApp(cfg *config.Config, log *logger.Logger) (*App, error) {
	db, err := database.New(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		return nil, err
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Warn("Failed to connect to redis: %v (rate limiting and notifications disabled)", err)
		redisClient = nil
	}

	s3Client, err := s3.NewClient(cfg)
	if err != nil {
		log.Warn("Failed to create S3 client: %v (image uploads disabled)", err)
		s3Client = nil
	}

	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Warn("Failed to connect to RabbitMQ: %v (continuing without queue)", err)
		queueClient = nil
	}

	return &App{
		cfg:         cfg,
		log:         log,
		db:          db,
		redisClient: redisClient,
		s3Client:    s3Client,
		queueClient: queueClient,
		jwtService:  jwt.NewService(cfg.JWTSecret, cfg.JWTExpiry),
	}, nil
}

func (a *App) dependencies() Dependencies {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	deps := Dependencies{
		Config:   a.cfg,
		Log:      a.log,
		DB:       a.db,
		Redis:    a.redisClient,
		JWT:      a.jwtService,
		Registry: registry,
	}
	// Interfaces stay nil rather than holding a nil pointer.
	if a.s3Client != nil {
		deps.Images = a.s3Client
	}
	if a.queueClient != nil {
		deps.Publisher = a.queueClient
	}
	return deps
}

func (a *App) Run() error {
	gin.SetMode(gin.ReleaseMode)

	deps := a.dependencies()
	uc := NewUseCases(deps)

	if a.queueClient != nil {
		if pending, err := a.queueClient.GetQueueLength(); err == nil && pending > 0 {
			a.log.Info("%d notification events pending", pending)
		}
		if err := a.queueClient.ConsumeEvents(eventHandler(uc.Notification)); err != nil {
			a.log.Error("Failed to start notification consumer: %v", err)
			return err
		}
	}

	a.httpServer = &http.Server{
		Addr:    ":" + a.cfg.ServerPort,
		Handler: NewRouter(deps, uc),
	}

	go func() {
		a.log.Info("API starting on port %s", a.cfg.ServerPort)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	return nil
}

func eventHandler(notifications usecase.NotificationUseCase) func(queue.Event) error {
	return func(event queue.Event) error {
		ctx, cancel := context.WithTimeout(context.Background(), eventHandlerTimeout)
		defer cancel()
		return notifications.HandleEvent(ctx, event)
	}
}

func (a *App) Wait() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	a.log.Info("Shutting down...")
}

func (a *App) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var shutdownErr error
	if a.httpServer != nil {
		if err := a.httpServer.Shutdown(ctx); err != nil {
			a.log.Error("Server forced to shutdown: %v", err)
			shutdownErr = err
		}
	}

	if a.queueClient != nil {
		if err := a.queueClient.Close(); err != nil {
			a.log.Error("Error closing RabbitMQ: %v", err)
		}
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.log.Error("Error closing Redis: %v", err)
		}
	}

	sqlDB, err := a.db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			a.log.Error("Error closing database: %v", err)
		}
	}

	a.log.Info("API exited")
	return shutdownErr
}
