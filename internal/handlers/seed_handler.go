package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

type seedApplicationService interface {
	Seed(ctx context.Context) (string, error)
}

type SeedHandler struct {
	service seedApplicationService
}

func NewSeedHandler(service seedApplicationService) *SeedHandler {
	return &SeedHandler{service: service}
}

func (h *SeedHandler) InitSampleData(c *fiber.Ctx) error {
	result, err := h.service.Seed(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to initialize sample data"})
	}

	return c.JSON(fiber.Map{"message": result})
}
