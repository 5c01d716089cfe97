package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/nobiai/deletewa/internal/models"
)

type statsApplicationService interface {
	Stats(ctx context.Context) (*models.DeletedMessageStats, error)
}

type StatsHandler struct {
	service statsApplicationService
}

func NewStatsHandler(service statsApplicationService) *StatsHandler {
	return &StatsHandler{service: service}
}

func (h *StatsHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.service.Stats(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to compute stats"})
	}

	return c.JSON(stats)
}
