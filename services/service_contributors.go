package services

import (
	"sort"
	"time"

	"knowhive/model"
)

// Derived views over the article collection. Everything here is read-only
// and recomputed in full on each call; the articles slice is the live
// result of a store scan, so no invalidation is needed.

type TopContributor struct {
	AuthorID    string `json:"authorId"`
	Username    string `json:"username"`
	AuthorImage string `json:"authorImage"`
	Count       int    `json:"count"`
}

type ArticleSummary struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	CreatedAt *time.Time `json:"createdAt"`
	Thumbnail string     `json:"thumbnail,omitempty"`
}

type Contributor struct {
	AuthorID    string          `json:"authorId"`
	Username    string          `json:"username"`
	Email       string          `json:"email"`
	AuthorImage string          `json:"authorImage"`
	PostCount   int             `json:"postCount"`
	LastArticle *ArticleSummary `json:"lastArticle"`
}

type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// TopContributors groups articles by author, counts posts per author and
// keeps the first-seen username/avatar per group. Sorted by count descending,
// author id ascending on ties, truncated to limit.
func TopContributors(articles []model.Article, limit int) []TopContributor {
	byAuthor := make(map[string]*TopContributor)
	var order []string

	for _, a := range articles {
		g, ok := byAuthor[a.AuthorID]
		if !ok {
			g = &TopContributor{
				AuthorID:    a.AuthorID,
				Username:    a.Username,
				AuthorImage: a.AuthorImage,
			}
			byAuthor[a.AuthorID] = g
			order = append(order, a.AuthorID)
		}
		g.Count++
	}

	out := make([]TopContributor, 0, len(order))
	for _, id := range order {
		out = append(out, *byAuthor[id])
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].AuthorID < out[j].AuthorID
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// AllContributors reports every author with their post count and the article
// holding the group's newest creation timestamp. Articles without a timestamp
// are skipped when picking the last article; an author whose articles all
// lack one gets LastArticle nil. Sorted by post count descending, author id
// ascending on ties.
func AllContributors(articles []model.Article) []Contributor {
	type group struct {
		Contributor
		articles []ArticleSummary
	}

	byAuthor := make(map[string]*group)
	var order []string

	for _, a := range articles {
		g, ok := byAuthor[a.AuthorID]
		if !ok {
			g = &group{Contributor: Contributor{
				AuthorID:    a.AuthorID,
				Username:    a.Username,
				Email:       a.Email,
				AuthorImage: a.AuthorImage,
			}}
			byAuthor[a.AuthorID] = g
			order = append(order, a.AuthorID)
		}
		g.PostCount++
		g.articles = append(g.articles, ArticleSummary{
			ID:        a.ID.Hex(),
			Title:     a.Title,
			CreatedAt: a.CreatedAt,
			Thumbnail: a.Thumbnail,
		})
	}

	out := make([]Contributor, 0, len(order))
	for _, id := range order {
		g := byAuthor[id]
		g.LastArticle = lastBySomeDate(g.articles)
		out = append(out, g.Contributor)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].PostCount != out[j].PostCount {
			return out[i].PostCount > out[j].PostCount
		}
		return out[i].AuthorID < out[j].AuthorID
	})
	return out
}

// lastBySomeDate returns the summary with the maximum creation timestamp,
// ignoring entries without one. Nil when nothing is dated.
func lastBySomeDate(items []ArticleSummary) *ArticleSummary {
	var last *ArticleSummary
	for i := range items {
		if items[i].CreatedAt == nil {
			continue
		}
		if last == nil || items[i].CreatedAt.After(*last.CreatedAt) {
			last = &items[i]
		}
	}
	return last
}

// TrendingTags flattens every article's tag set into individual occurrences,
// counts per tag and ranks descending. An article tagged ["a","b"] adds one
// to each of a and b; untagged articles contribute nothing.
func TrendingTags(articles []model.Article, limit int) []TagCount {
	counts := make(map[string]int)
	var order []string

	for _, a := range articles {
		for _, tag := range a.Tags {
			if tag == "" {
				continue
			}
			if _, ok := counts[tag]; !ok {
				order = append(order, tag)
			}
			counts[tag]++
		}
	}

	out := make([]TagCount, 0, len(order))
	for _, tag := range order {
		out = append(out, TagCount{Tag: tag, Count: counts[tag]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Tag < out[j].Tag
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
