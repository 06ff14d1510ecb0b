package services

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"knowhive/model"
)

func article(author, username string, createdAt *time.Time, tags ...string) model.Article {
	return model.Article{
		ID:        bson.NewObjectID(),
		AuthorID:  author,
		Username:  username,
		Email:     author + "@x.com",
		Title:     "post by " + author,
		Tags:      tags,
		CreatedAt: createdAt,
	}
}

func ts(t *testing.T, s string) *time.Time {
	t.Helper()
	v, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return &v
}

func TestTopContributorsOrdering(t *testing.T) {
	var articles []model.Article
	for i := 0; i < 3; i++ {
		articles = append(articles, article("x", "Xavi", nil))
	}
	for i := 0; i < 5; i++ {
		articles = append(articles, article("y", "Yara", nil))
	}
	articles = append(articles, article("z", "Zed", nil))

	got := TopContributors(articles, 4)
	if len(got) != 3 {
		t.Fatalf("expected 3 contributors, got %d", len(got))
	}
	want := []struct {
		author string
		count  int
	}{{"y", 5}, {"x", 3}, {"z", 1}}
	for i, w := range want {
		if got[i].AuthorID != w.author || got[i].Count != w.count {
			t.Fatalf("rank %d: expected %s/%d, got %s/%d", i, w.author, w.count, got[i].AuthorID, got[i].Count)
		}
	}
}

func TestTopContributorsTruncation(t *testing.T) {
	var articles []model.Article
	for i := 0; i < 3; i++ {
		articles = append(articles, article("x", "Xavi", nil))
	}
	for i := 0; i < 5; i++ {
		articles = append(articles, article("y", "Yara", nil))
	}
	articles = append(articles, article("z", "Zed", nil))

	got := TopContributors(articles, 2)
	if len(got) != 2 {
		t.Fatalf("expected 2 contributors, got %d", len(got))
	}
	if got[0].AuthorID != "y" || got[1].AuthorID != "x" {
		t.Fatalf("expected y then x, got %s then %s", got[0].AuthorID, got[1].AuthorID)
	}
}

func TestTopContributorsFirstSeenProfile(t *testing.T) {
	articles := []model.Article{
		{AuthorID: "x", Username: "first", AuthorImage: "img1"},
		{AuthorID: "x", Username: "renamed", AuthorImage: "img2"},
	}

	got := TopContributors(articles, 4)
	if len(got) != 1 {
		t.Fatalf("expected 1 contributor, got %d", len(got))
	}
	if got[0].Username != "first" || got[0].AuthorImage != "img1" {
		t.Fatalf("expected first-seen profile, got %s/%s", got[0].Username, got[0].AuthorImage)
	}
}

func TestAllContributorsLastArticle(t *testing.T) {
	t1 := ts(t, "2024-01-01T00:00:00Z")
	t2 := ts(t, "2024-02-01T00:00:00Z")
	t3 := ts(t, "2024-03-01T00:00:00Z")

	a1 := article("x", "Xavi", t1)
	a2 := article("x", "Xavi", t3)
	a3 := article("x", "Xavi", t2)

	got := AllContributors([]model.Article{a1, a2, a3})
	if len(got) != 1 {
		t.Fatalf("expected 1 contributor, got %d", len(got))
	}
	if got[0].PostCount != 3 {
		t.Fatalf("expected 3 posts, got %d", got[0].PostCount)
	}
	if got[0].LastArticle == nil {
		t.Fatalf("expected a last article")
	}
	if got[0].LastArticle.ID != a2.ID.Hex() {
		t.Fatalf("expected last article %s, got %s", a2.ID.Hex(), got[0].LastArticle.ID)
	}
}

func TestAllContributorsNoDatedArticles(t *testing.T) {
	got := AllContributors([]model.Article{
		article("x", "Xavi", nil),
		article("x", "Xavi", nil),
	})
	if len(got) != 1 {
		t.Fatalf("expected 1 contributor, got %d", len(got))
	}
	if got[0].LastArticle != nil {
		t.Fatalf("expected no last article, got %+v", got[0].LastArticle)
	}
}

func TestAllContributorsSkipsUndatedWhenPicking(t *testing.T) {
	t1 := ts(t, "2024-01-01T00:00:00Z")
	dated := article("x", "Xavi", t1)

	got := AllContributors([]model.Article{article("x", "Xavi", nil), dated})
	if got[0].LastArticle == nil || got[0].LastArticle.ID != dated.ID.Hex() {
		t.Fatalf("expected the dated article to win")
	}
}

func TestAllContributorsSortedByPostCount(t *testing.T) {
	got := AllContributors([]model.Article{
		article("z", "Zed", nil),
		article("y", "Yara", nil),
		article("y", "Yara", nil),
	})
	if len(got) != 2 {
		t.Fatalf("expected 2 contributors, got %d", len(got))
	}
	if got[0].AuthorID != "y" || got[1].AuthorID != "z" {
		t.Fatalf("expected y then z, got %s then %s", got[0].AuthorID, got[1].AuthorID)
	}
}

func TestTrendingTagsCounts(t *testing.T) {
	articles := []model.Article{
		article("x", "Xavi", nil, "a", "b"),
		article("y", "Yara", nil, "a"),
	}

	got := TrendingTags(articles, 3)
	if len(got) != 2 {
		t.Fatalf("expected 2 tags, got %d", len(got))
	}
	if got[0].Tag != "a" || got[0].Count != 2 {
		t.Fatalf("expected a:2 first, got %s:%d", got[0].Tag, got[0].Count)
	}
	if got[1].Tag != "b" || got[1].Count != 1 {
		t.Fatalf("expected b:1 second, got %s:%d", got[1].Tag, got[1].Count)
	}
}

func TestTrendingTagsTruncation(t *testing.T) {
	articles := []model.Article{
		article("x", "Xavi", nil, "a", "b"),
		article("y", "Yara", nil, "a", "c"),
	}

	got := TrendingTags(articles, 1)
	if len(got) != 1 {
		t.Fatalf("expected 1 tag, got %d", len(got))
	}
	if got[0].Tag != "a" {
		t.Fatalf("expected a, got %s", got[0].Tag)
	}
}

func TestTrendingTagsIgnoresUntagged(t *testing.T) {
	got := TrendingTags([]model.Article{article("x", "Xavi", nil)}, 3)
	if len(got) != 0 {
		t.Fatalf("expected no tags, got %d", len(got))
	}
}
