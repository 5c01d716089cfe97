package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/nobiai/deletewa/internal/models"
	"github.com/nobiai/deletewa/internal/services"
)

type contactApplicationService interface {
	CreateContact(ctx context.Context, input services.CreateContactInput) (*models.Contact, error)
	ListContacts(ctx context.Context) ([]models.Contact, error)
}

type ContactHandler struct {
	service contactApplicationService
}

func NewContactHandler(service contactApplicationService) *ContactHandler {
	return &ContactHandler{service: service}
}

func (h *ContactHandler) CreateContact(c *fiber.Ctx) error {
	var input services.CreateContactInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	contact, err := h.service.CreateContact(c.Context(), input)
	if err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create contact"})
	}

	return c.JSON(contact)
}

func (h *ContactHandler) ListContacts(c *fiber.Ctx) error {
	contacts, err := h.service.ListContacts(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list contacts"})
	}

	return c.JSON(contacts)
}
