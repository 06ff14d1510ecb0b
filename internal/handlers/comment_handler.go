package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"knowhive/dto"
	"knowhive/internal/repository"
	"knowhive/model"
)

type CommentHandler struct {
	Store repository.CommentStore
	Log   *zap.SugaredLogger
}

// @Summary List all comments
// @Tags comments
// @Produce json
// @Success 200 {array} model.Comment
// @Router /comments [get]
func (h *CommentHandler) List(c *fiber.Ctx) error {
	items, err := h.Store.All(c.Context())
	if err != nil {
		return h.storeFailure(c, err)
	}
	return c.JSON(items)
}

// ByArticle filters on the stored reference string as-is; there is no
// format check because the reference is opaque.
//
// @Summary List comments for an article
// @Tags comments
// @Produce json
// @Param articleId path string true "Article reference"
// @Success 200 {array} model.Comment
// @Router /comments/{articleId} [get]
func (h *CommentHandler) ByArticle(c *fiber.Ctx) error {
	items, err := h.Store.ByArticle(c.Context(), c.Params("articleId"))
	if err != nil {
		return h.storeFailure(c, err)
	}
	return c.JSON(items)
}

// @Summary Submit a comment
// @Tags comments
// @Accept json
// @Produce json
// @Param comment body dto.CreateCommentReq true "Comment"
// @Success 201 {object} map[string]string
// @Failure 400 {object} dto.ErrorResponse
// @Router /comments [post]
func (h *CommentHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateCommentReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	id, err := h.Store.Create(c.Context(), model.Comment{
		ArticleID: req.ArticleID,
		Username:  req.Username,
		Email:     req.Email,
		UserImage: req.UserImage,
		Text:      req.Text,
	})
	if err != nil {
		return h.storeFailure(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"insertedId": id.Hex()})
}

func (h *CommentHandler) storeFailure(c *fiber.Ctx, err error) error {
	h.Log.Errorw("comment store failure", "path", c.Path(), "err", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
}
