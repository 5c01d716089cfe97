package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/nobiai/deletewa/internal/models"
	"github.com/nobiai/deletewa/internal/repository"
	"github.com/nobiai/deletewa/internal/services"
)

type messageApplicationService interface {
	CreateMessage(ctx context.Context, input services.CreateMessageInput) (*models.Message, error)
	DeleteMessage(ctx context.Context, id string) error
	ListMessages(ctx context.Context, filter repository.MessageFilter) ([]models.Message, error)
	ListDeletedMessages(ctx context.Context) ([]models.Message, error)
}

type MessageHandler struct {
	service messageApplicationService
}

func NewMessageHandler(service messageApplicationService) *MessageHandler {
	return &MessageHandler{service: service}
}

func (h *MessageHandler) CreateMessage(c *fiber.Ctx) error {
	var input services.CreateMessageInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	message, err := h.service.CreateMessage(c.Context(), input)
	if err != nil {
		return mapMessageError(c, err)
	}

	return c.JSON(message)
}

func (h *MessageHandler) ListMessages(c *fiber.Ctx) error {
	filter := repository.MessageFilter{
		ChatID: c.Query("chat_id"),
		Status: models.MessageStatus(c.Query("status")),
	}

	messages, err := h.service.ListMessages(c.Context(), filter)
	if err != nil {
		return mapMessageError(c, err)
	}

	return c.JSON(messages)
}

func (h *MessageHandler) ListDeletedMessages(c *fiber.Ctx) error {
	messages, err := h.service.ListDeletedMessages(c.Context())
	if err != nil {
		return mapMessageError(c, err)
	}

	return c.JSON(messages)
}

func (h *MessageHandler) DeleteMessage(c *fiber.Ctx) error {
	if err := h.service.DeleteMessage(c.Context(), c.Params("id")); err != nil {
		return mapMessageError(c, err)
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "Message marked as deleted",
	})
}

func mapMessageError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrMessageNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Message not found"})
	case errors.Is(err, services.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to process message request"})
	}
}
