package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"knowhive/configs"
	"knowhive/internal/repository"
	"knowhive/services"
)

// ContributorHandler serves the derived views. It only ever reads the
// article collection; every response is recomputed from a live scan.
type ContributorHandler struct {
	Store repository.ArticleStore
	Log   *zap.SugaredLogger
}

// @Summary Top contributors by post count
// @Tags contributors
// @Produce json
// @Success 200 {array} services.TopContributor
// @Router /top-contributors [get]
func (h *ContributorHandler) Top(c *fiber.Ctx) error {
	articles, err := h.Store.All(c.Context())
	if err != nil {
		return h.storeFailure(c, err)
	}
	return c.JSON(services.TopContributors(articles, configs.TopContributorsLimit))
}

// @Summary All contributors with their most recent article
// @Tags contributors
// @Produce json
// @Success 200 {array} services.Contributor
// @Router /contributors [get]
func (h *ContributorHandler) All(c *fiber.Ctx) error {
	articles, err := h.Store.All(c.Context())
	if err != nil {
		return h.storeFailure(c, err)
	}
	return c.JSON(services.AllContributors(articles))
}

// @Summary Trending tags by occurrence
// @Tags contributors
// @Produce json
// @Success 200 {array} services.TagCount
// @Router /trending-tags [get]
func (h *ContributorHandler) Trending(c *fiber.Ctx) error {
	articles, err := h.Store.All(c.Context())
	if err != nil {
		return h.storeFailure(c, err)
	}
	return c.JSON(services.TrendingTags(articles, configs.TrendingTagsLimit))
}

func (h *ContributorHandler) storeFailure(c *fiber.Ctx, err error) error {
	h.Log.Errorw("contributor aggregation failure", "path", c.Path(), "err", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
}
