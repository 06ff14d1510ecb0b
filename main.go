// @title KnowHive API
// @version 1.0
// @description Backend API for the KnowHive content sharing platform.
// @BasePath /

package main

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"

	"knowhive/bootstrap"
	"knowhive/configs"
	"knowhive/database"
	_ "knowhive/docs"
	"knowhive/internal/mailer"
	"knowhive/internal/repository"
	"knowhive/internal/routes"
	"knowhive/internal/token"
)

func main() {
	cfg := configs.Load()

	zlog, _ := zap.NewProduction()
	defer zlog.Sync()
	sugar := zlog.Sugar()

	if cfg.JWTSecret == "" {
		sugar.Fatal("JWT_SECRET is required")
	}

	// The client lives for the whole process; it is shared by every
	// handler and never closed on the normal path.
	client, err := database.ConnectMongo(cfg.MongoURI)
	if err != nil {
		sugar.Fatalf("connect mongo: %v", err)
	}
	db := client.Database(cfg.DBName)
	sugar.Infow("connected to mongodb", "db", cfg.DBName)

	if err := bootstrap.EnsureIndexes(context.Background(), db); err != nil {
		sugar.Fatalf("ensure indexes: %v", err)
	}

	app := fiber.New()
	app.Use(cors.New())
	app.Use(logger.New())
	app.Use(recover.New())

	app.Get("/docs/*", swagger.HandlerDefault)

	routes.Register(app, routes.Deps{
		Articles:    repository.NewArticleRepository(db),
		Comments:    repository.NewCommentRepository(db),
		Subscribers: repository.NewSubscriberRepository(db),
		Users:       repository.NewUserRepository(db),
		Tokens:      token.New(cfg.JWTSecret),
		Mailer:      mailer.New(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.MailFrom),
		MailFrom:    cfg.MailFrom,
		Log:         sugar,
	})

	sugar.Infof("KnowHive running on port %s", cfg.Port)
	sugar.Fatal(app.Listen(":" + cfg.Port))
}
