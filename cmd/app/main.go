package main

import (
	"igclone/internal/app"
	"igclone/pkg/config"
	"igclone/pkg/logger"

	_ "igclone/docs" // Swagger docs
)

// @title           igclone API
// @version         1.0
// @description     Photo sharing backend: users, follows, posts, likes, comments, feed and notifications.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	if cfg.UsesDefaultSecret() {
		panic("JWT_SECRET must be set in environment variables")
	}

	log := logger.NewWithOptions(logger.Options{
		Level:        cfg.LogLevel,
		Format:       cfg.LogFormat,
		LogstashAddr: cfg.LogstashAddr,
		Service:      "igclone",
	})

	application, err := app.NewApp(cfg, log)
	if err != nil {
		panic(err)
	}

	if err := application.Run(); err != nil {
		panic(err)
	}

	application.Wait()

	if err := application.Shutdown(); err != nil {
		panic(err)
	}
}
