package handlers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"knowhive/dto"
	"knowhive/internal/mailer"
	"knowhive/internal/repository"
	"knowhive/model"
)

type SubscribeHandler struct {
	Store repository.SubscriberStore
	Mail  mailer.Sender
	From  string
	Log   *zap.SugaredLogger
}

// Subscribe stores the subscriber and sends a welcome mail. A delivery
// failure surfaces as a 500 to the caller but never takes the process down.
//
// @Summary Subscribe to the newsletter
// @Tags newsletter
// @Accept json
// @Produce json
// @Param body body dto.SubscribeReq true "Subscriber"
// @Success 201 {object} map[string]string
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /subscribe [post]
func (h *SubscribeHandler) Subscribe(c *fiber.Ctx) error {
	var req dto.SubscribeReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	dup, err := h.Store.Create(c.Context(), model.Subscriber{
		Email:            req.Email,
		Name:             req.Name,
		UnsubscribeToken: uuid.NewString(),
		SubscribedAt:     time.Now().UTC(),
	})
	if err != nil {
		h.Log.Errorw("subscriber store failure", "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
	if dup {
		return c.JSON(fiber.Map{"message": "already subscribed"})
	}

	name := req.Name
	if name == "" {
		name = "there"
	}
	err = h.Mail.Send(mailer.Message{
		From:    h.From,
		To:      req.Email,
		Subject: "Welcome to KnowHive",
		Text:    fmt.Sprintf("Hi %s, thanks for subscribing to the KnowHive newsletter!", name),
		HTML:    fmt.Sprintf("<p>Hi %s,</p><p>Thanks for subscribing to the <b>KnowHive</b> newsletter!</p>", name),
	})
	if err != nil {
		h.Log.Errorw("welcome mail failure", "to", req.Email, "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to send welcome email"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "subscribed"})
}
