package services

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/nobiai/deletewa/internal/models"
)

type messageStatsStore interface {
	CountDeleted(ctx context.Context) (int, error)
	CountDeletedSince(ctx context.Context, cutoff string) (int, error)
	TopDeletedChat(ctx context.Context) (string, error)
}

type chatReader interface {
	GetByID(ctx context.Context, id string) (*models.Chat, error)
}

type StatsService struct {
	messageRepo messageStatsStore
	chatRepo    chatReader
	now         func() time.Time
}

func NewStatsService(messageRepo messageStatsStore, chatRepo chatReader) *StatsService {
	return &StatsService{
		messageRepo: messageRepo,
		chatRepo:    chatRepo,
		now:         time.Now,
	}
}

func (s *StatsService) Stats(ctx context.Context) (*models.DeletedMessageStats, error) {
	now := s.now().UTC()

	total, err := s.messageRepo.CountDeleted(ctx)
	if err != nil {
		return nil, err
	}

	today, err := s.messageRepo.CountDeletedSince(ctx, models.NewTimestamp(dayStart(now)).String())
	if err != nil {
		return nil, err
	}

	week, err := s.messageRepo.CountDeletedSince(ctx, models.NewTimestamp(weekStart(now)).String())
	if err != nil {
		return nil, err
	}

	mostActive, err := s.mostActiveChat(ctx)
	if err != nil {
		return nil, err
	}

	return &models.DeletedMessageStats{
		TotalDeleted:    total,
		TodayDeleted:    today,
		ThisWeekDeleted: week,
		MostActiveChat:  mostActive,
	}, nil
}

// mostActiveChat resolves the chat with the most deleted messages to its
// name; nil when no message is deleted or the top chat id matches no chat.
func (s *StatsService) mostActiveChat(ctx context.Context) (*string, error) {
	chatID, err := s.messageRepo.TopDeletedChat(ctx)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	chat, err := s.chatRepo.GetByID(ctx, chatID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &chat.Name, nil
}

func dayStart(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// weekStart is the most recent Monday at midnight UTC. AddDate handles the
// roll-over into a previous month or year.
func weekStart(now time.Time) time.Time {
	weekday := (int(now.Weekday()) + 6) % 7 // Monday = 0
	return dayStart(now).AddDate(0, 0, -weekday)
}
