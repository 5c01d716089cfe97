package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/nobiai/deletewa/internal/models"
	"github.com/nobiai/deletewa/internal/services"
)

type chatApplicationService interface {
	CreateChat(ctx context.Context, input services.CreateChatInput) (*models.Chat, error)
	GetChat(ctx context.Context, id string) (*models.Chat, error)
	ListChats(ctx context.Context) ([]models.Chat, error)
}

type ChatHandler struct {
	service chatApplicationService
}

func NewChatHandler(service chatApplicationService) *ChatHandler {
	return &ChatHandler{service: service}
}

func (h *ChatHandler) CreateChat(c *fiber.Ctx) error {
	var input services.CreateChatInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	chat, err := h.service.CreateChat(c.Context(), input)
	if err != nil {
		return mapChatError(c, err)
	}

	return c.JSON(chat)
}

func (h *ChatHandler) ListChats(c *fiber.Ctx) error {
	chats, err := h.service.ListChats(c.Context())
	if err != nil {
		return mapChatError(c, err)
	}

	return c.JSON(chats)
}

func (h *ChatHandler) GetChat(c *fiber.Ctx) error {
	chat, err := h.service.GetChat(c.Context(), c.Params("id"))
	if err != nil {
		return mapChatError(c, err)
	}

	return c.JSON(chat)
}

func mapChatError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrChatNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Chat not found"})
	case errors.Is(err, services.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to process chat request"})
	}
}
