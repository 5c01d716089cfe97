package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/nobiai/deletewa/internal/models"
)

type stubStatsService struct {
	result *models.DeletedMessageStats
	err    error
}

func (s *stubStatsService) Stats(_ context.Context) (*models.DeletedMessageStats, error) {
	return s.result, s.err
}

func TestGetStatsPayload(t *testing.T) {
	name := "Family Group"
	service := &stubStatsService{
		result: &models.DeletedMessageStats{
			TotalDeleted:    6,
			TodayDeleted:    2,
			ThisWeekDeleted: 4,
			MostActiveChat:  &name,
		},
	}
	app := fiber.New()
	app.Get("/api/stats", NewStatsHandler(service).GetStats)

	req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body models.DeletedMessageStats
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if body.TotalDeleted != 6 || body.TodayDeleted != 2 || body.ThisWeekDeleted != 4 {
		t.Fatalf("unexpected counts: %+v", body)
	}
	if body.MostActiveChat == nil || *body.MostActiveChat != name {
		t.Fatalf("unexpected most_active_chat: %v", body.MostActiveChat)
	}
}

func TestGetStatsNullMostActiveChat(t *testing.T) {
	service := &stubStatsService{result: &models.DeletedMessageStats{}}
	app := fiber.New()
	app.Get("/api/stats", NewStatsHandler(service).GetStats)

	req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if value, ok := body["most_active_chat"]; !ok || value != nil {
		t.Fatalf("expected explicit null most_active_chat, got %v", body)
	}
}
