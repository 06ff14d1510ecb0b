package handlers

import (
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.uber.org/zap"

	"knowhive/configs"
	"knowhive/dto"
	"knowhive/internal/repository"
	"knowhive/model"
	"knowhive/services"
)

type ArticleHandler struct {
	Store repository.ArticleStore
	Log   *zap.SugaredLogger
}

// parseArticleID enforces the 24-hex id format before any store call.
func parseArticleID(c *fiber.Ctx) (bson.ObjectID, bool) {
	oid, err := bson.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return bson.NilObjectID, false
	}
	return oid, true
}

// @Summary List all articles
// @Tags articles
// @Produce json
// @Success 200 {array} model.Article
// @Router /articles [get]
func (h *ArticleHandler) List(c *fiber.Ctx) error {
	items, err := h.Store.All(c.Context())
	if err != nil {
		return h.storeFailure(c, err)
	}
	return c.JSON(items)
}

// @Summary Get one article by id
// @Tags articles
// @Produce json
// @Param id path string true "Article id (24 hex chars)"
// @Success 200 {object} model.Article
// @Failure 400 {object} dto.ErrorResponse
// @Router /articles/{id} [get]
func (h *ArticleHandler) Get(c *fiber.Ctx) error {
	oid, ok := parseArticleID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid article id"})
	}

	a, err := h.Store.ByID(c.Context(), oid)
	if err != nil {
		return h.storeFailure(c, err)
	}
	// Absent but well-formed id is not an error here, just a null body.
	if a == nil {
		return c.JSON(nil)
	}
	return c.JSON(a)
}

// @Summary List articles in a category
// @Tags articles
// @Produce json
// @Param name path string true "Category label"
// @Success 200 {array} model.Article
// @Router /articles/category/{name} [get]
func (h *ArticleHandler) ByCategory(c *fiber.Ctx) error {
	name := c.Params("name")
	if decoded, err := url.PathUnescape(name); err == nil {
		name = decoded
	}

	items, err := h.Store.ByCategory(c.Context(), name)
	if err != nil {
		return h.storeFailure(c, err)
	}
	return c.JSON(items)
}

// @Summary Newest articles
// @Tags articles
// @Produce json
// @Success 200 {array} model.Article
// @Router /recentArticles [get]
func (h *ArticleHandler) Recent(c *fiber.Ctx) error {
	items, err := h.Store.Recent(c.Context(), configs.DefaultRecentArticles)
	if err != nil {
		return h.storeFailure(c, err)
	}
	return c.JSON(items)
}

// Mine lists the caller's own articles. The owner gate runs before this,
// so the email query param is already proven to match the token.
//
// @Summary List the authenticated user's articles
// @Tags articles
// @Produce json
// @Param email query string true "Owner email, must match the bearer token"
// @Success 200 {array} model.Article
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /myArticles [get]
func (h *ArticleHandler) Mine(c *fiber.Ctx) error {
	items, err := h.Store.ByEmail(c.Context(), c.Query("email"))
	if err != nil {
		return h.storeFailure(c, err)
	}
	return c.JSON(items)
}

// @Summary Publish an article
// @Tags articles
// @Accept json
// @Produce json
// @Param article body dto.CreateArticleReq true "Article draft"
// @Success 201 {object} map[string]string
// @Failure 400 {object} dto.ErrorResponse
// @Router /articles [post]
func (h *ArticleHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateArticleReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	createdAt := services.NormalizeCreatedAt(req.CreatedAt, time.Now().UTC())
	article := model.Article{
		AuthorID:    req.AuthorID,
		Username:    req.Username,
		AuthorImage: req.AuthorImage,
		Email:       req.Email,
		Title:       req.Title,
		Content:     req.Content,
		Category:    req.Category,
		Tags:        req.Tags,
		Thumbnail:   req.Thumbnail,
		CreatedAt:   &createdAt,
	}

	id, err := h.Store.Create(c.Context(), article)
	if err != nil {
		return h.storeFailure(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"insertedId": id.Hex()})
}

// Update merges the supplied fields into the article and stamps updated_at.
// By design there is no ownership check on this route.
//
// @Summary Update an article
// @Tags articles
// @Accept json
// @Produce json
// @Param id path string true "Article id"
// @Param patch body dto.UpdateArticleReq true "Fields to change"
// @Success 200 {object} map[string]int
// @Failure 400 {object} dto.ErrorResponse
// @Router /articles/{id} [patch]
func (h *ArticleHandler) Update(c *fiber.Ctx) error {
	oid, ok := parseArticleID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid article id"})
	}

	var req dto.UpdateArticleReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}

	patch := repository.BuildArticlePatch(req, time.Now().UTC())
	matched, err := h.Store.Update(c.Context(), oid, patch)
	if err != nil {
		return h.storeFailure(c, err)
	}
	return c.JSON(fiber.Map{"matchedCount": matched})
}

// Like bumps the like counter by one. Anyone may like any article.
//
// @Summary Like an article
// @Tags articles
// @Produce json
// @Param id path string true "Article id"
// @Success 200 {object} map[string]int
// @Failure 400 {object} dto.ErrorResponse
// @Router /articles/{id}/like [patch]
func (h *ArticleHandler) Like(c *fiber.Ctx) error {
	oid, ok := parseArticleID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid article id"})
	}

	modified, err := h.Store.IncrementLikes(c.Context(), oid)
	if err != nil {
		return h.storeFailure(c, err)
	}
	return c.JSON(fiber.Map{"modifiedCount": modified})
}

// @Summary Delete an article
// @Tags articles
// @Produce json
// @Param id path string true "Article id"
// @Success 200 {object} map[string]int
// @Failure 400 {object} dto.ErrorResponse
// @Router /articles/{id} [delete]
func (h *ArticleHandler) Delete(c *fiber.Ctx) error {
	oid, ok := parseArticleID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid article id"})
	}

	deleted, err := h.Store.Delete(c.Context(), oid)
	if err != nil {
		return h.storeFailure(c, err)
	}
	return c.JSON(fiber.Map{"deletedCount": deleted})
}

func (h *ArticleHandler) storeFailure(c *fiber.Ctx, err error) error {
	h.Log.Errorw("article store failure", "path", c.Path(), "err", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
}
