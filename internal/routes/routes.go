package routes

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"knowhive/internal/handlers"
	"knowhive/internal/mailer"
	"knowhive/internal/middleware"
	"knowhive/internal/repository"
	"knowhive/internal/token"
)

// Deps holds shared dependencies to inject into handlers.
type Deps struct {
	Articles    repository.ArticleStore
	Comments    repository.CommentStore
	Subscribers repository.SubscriberStore
	Users       repository.UserStore
	Tokens      *token.Service
	Mailer      mailer.Sender
	MailFrom    string
	Log         *zap.SugaredLogger
}

// Register mounts all HTTP routes in one place.
func Register(app *fiber.App, d Deps) {
	articles := &handlers.ArticleHandler{Store: d.Articles, Log: d.Log}
	contributors := &handlers.ContributorHandler{Store: d.Articles, Log: d.Log}
	comments := &handlers.CommentHandler{Store: d.Comments, Log: d.Log}
	auth := &handlers.AuthHandler{Tokens: d.Tokens, Users: d.Users, Log: d.Log}
	subscribe := &handlers.SubscribeHandler{Store: d.Subscribers, Mail: d.Mailer, From: d.MailFrom, Log: d.Log}

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("KnowHive is Running....")
	})

	// Auth
	app.Post("/jwt", auth.IssueToken)
	app.Post("/auth/register", auth.Register)
	app.Post("/auth/login", auth.Login)

	// Articles
	app.Get("/articles", articles.List)
	app.Get("/articles/category/:name", articles.ByCategory)
	app.Get("/articles/:id", articles.Get)
	app.Get("/recentArticles", articles.Recent)
	app.Get("/myArticles", middleware.RequireOwner(d.Tokens), articles.Mine)
	app.Post("/articles", articles.Create)
	app.Patch("/articles/:id/like", articles.Like)
	app.Patch("/articles/:id", articles.Update)
	app.Delete("/articles/:id", articles.Delete)

	// Derived views
	app.Get("/top-contributors", contributors.Top)
	app.Get("/contributors", contributors.All)
	app.Get("/trending-tags", contributors.Trending)

	// Comments
	app.Get("/comments", comments.List)
	app.Get("/comments/:articleId", comments.ByArticle)
	app.Post("/comments", comments.Create)

	// Newsletter
	app.Post("/subscribe", subscribe.Subscribe)
}
