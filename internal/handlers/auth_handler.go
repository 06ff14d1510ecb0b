package handlers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"knowhive/dto"
	"knowhive/internal/repository"
	"knowhive/internal/token"
	"knowhive/model"
)

type AuthHandler struct {
	Tokens *token.Service
	Users  repository.UserStore
	Log    *zap.SugaredLogger
}

// IssueToken mints a 7-day token for whatever email the caller supplies.
// There is deliberately no account check on this route; clients fetch a
// token right after their own sign-in flow.
//
// @Summary Mint an identity token
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.TokenReq true "Email to embed"
// @Success 200 {object} dto.TokenResp
// @Failure 400 {object} dto.ErrorResponse
// @Router /jwt [post]
func (h *AuthHandler) IssueToken(c *fiber.Ctx) error {
	var req dto.TokenReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	signed, err := h.Tokens.Issue(req.Email)
	if err != nil {
		h.Log.Errorw("token signing failure", "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
	return c.JSON(dto.TokenResp{Token: signed})
}

// @Summary Register an account
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.RegisterReq true "Account details"
// @Success 201 {object} map[string]string
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		h.Log.Errorw("password hash failure", "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}

	dup, err := h.Users.Create(c.Context(), model.User{
		Name:         req.Name,
		Email:        strings.TrimSpace(strings.ToLower(req.Email)),
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		h.Log.Errorw("user store failure", "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
	if dup {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "email already registered"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "registered"})
}

// @Summary Sign in with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.LoginReq true "Credentials"
// @Success 200 {object} dto.TokenResp
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	email := strings.TrimSpace(strings.ToLower(req.Email))
	u, err := h.Users.FindByEmail(c.Context(), email)
	if err != nil {
		h.Log.Errorw("user store failure", "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
	if u == nil || bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid credentials"})
	}

	signed, err := h.Tokens.Issue(u.Email)
	if err != nil {
		h.Log.Errorw("token signing failure", "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
	return c.JSON(dto.TokenResp{Token: signed})
}
