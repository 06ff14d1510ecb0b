package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.uber.org/zap"

	"knowhive/model"
)

func contributorApp(store *fakeArticleStore) *fiber.App {
	h := &ContributorHandler{Store: store, Log: zap.NewNop().Sugar()}
	app := fiber.New()
	app.Get("/top-contributors", h.Top)
	app.Get("/contributors", h.All)
	app.Get("/trending-tags", h.Trending)
	return app
}

func TestTrendingTagsEndpoint(t *testing.T) {
	store := &fakeArticleStore{articles: []model.Article{
		{ID: bson.NewObjectID(), AuthorID: "x", Tags: []string{"a", "b"}},
		{ID: bson.NewObjectID(), AuthorID: "y", Tags: []string{"a"}},
	}}
	app := contributorApp(store)

	resp, err := app.Test(httptest.NewRequest("GET", "/trending-tags", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var tags []struct {
		Tag   string `json:"tag"`
		Count int    `json:"count"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tags); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(tags) != 2 || tags[0].Tag != "a" || tags[0].Count != 2 {
		t.Fatalf("expected a:2 first, got %+v", tags)
	}
}

func TestTopContributorsEndpoint(t *testing.T) {
	var articles []model.Article
	for i := 0; i < 2; i++ {
		articles = append(articles, model.Article{ID: bson.NewObjectID(), AuthorID: "x", Username: "Xavi"})
	}
	articles = append(articles, model.Article{ID: bson.NewObjectID(), AuthorID: "z", Username: "Zed"})
	app := contributorApp(&fakeArticleStore{articles: articles})

	resp, err := app.Test(httptest.NewRequest("GET", "/top-contributors", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var out []struct {
		AuthorID string `json:"authorId"`
		Count    int    `json:"count"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out) != 2 || out[0].AuthorID != "x" || out[0].Count != 2 {
		t.Fatalf("expected x:2 first, got %+v", out)
	}
}
