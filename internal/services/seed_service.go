package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/nobiai/deletewa/internal/models"
)

type chatSeedStore interface {
	Create(ctx context.Context, chat *models.Chat) error
	Count(ctx context.Context) (int, error)
}

type SeedService struct {
	contactRepo contactStore
	chatRepo    chatSeedStore
	messageRepo messageStore
}

func NewSeedService(contactRepo contactStore, chatRepo chatSeedStore, messageRepo messageStore) *SeedService {
	return &SeedService{
		contactRepo: contactRepo,
		chatRepo:    chatRepo,
		messageRepo: messageRepo,
	}
}

// Seed loads demo data unless the store already holds chats. It returns a
// human-readable status either way.
func (s *SeedService) Seed(ctx context.Context) (string, error) {
	existing, err := s.chatRepo.Count(ctx)
	if err != nil {
		return "", err
	}
	if existing > 0 {
		return "Sample data already exists", nil
	}

	now := time.Now().UTC()
	todayAt := func(hour, minute int) models.Timestamp {
		return models.NewTimestamp(time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, time.UTC))
	}

	contacts := []models.Contact{
		{ID: uuid.NewString(), Name: "John Doe", Phone: strPtr("+1234567890"), ProfilePicture: strPtr(sampleAvatarJohn)},
		{ID: uuid.NewString(), Name: "Jane Smith", Phone: strPtr("+1987654321"), ProfilePicture: strPtr(sampleAvatarJane)},
		{ID: uuid.NewString(), Name: "Family Group", IsGroup: true, ProfilePicture: strPtr(sampleAvatarGroup)},
	}

	chats := []models.Chat{
		{
			ID:                   "chat-1",
			Name:                 "John Doe",
			ChatType:             models.ChatTypeIndividual,
			Participants:         []string{"John Doe"},
			ProfilePicture:       strPtr(sampleAvatarJohn),
			DeletedMessagesCount: 3,
			CreatedAt:            models.NewTimestamp(now),
		},
		{
			ID:                   "chat-2",
			Name:                 "Family Group",
			ChatType:             models.ChatTypeGroup,
			Participants:         []string{"Mom", "Dad", "Sister"},
			ProfilePicture:       strPtr(sampleAvatarGroup),
			DeletedMessagesCount: 2,
			CreatedAt:            models.NewTimestamp(now),
		},
		{
			ID:                   "chat-3",
			Name:                 "Jane Smith",
			ChatType:             models.ChatTypeIndividual,
			Participants:         []string{"Jane Smith"},
			ProfilePicture:       strPtr(sampleAvatarJane),
			DeletedMessagesCount: 1,
			CreatedAt:            models.NewTimestamp(now),
		},
	}

	type seedMessage struct {
		chatID  string
		sender  string
		content string
		sentAt  models.Timestamp
	}
	seedMessages := []seedMessage{
		{"chat-1", "John Doe", "Hey! How are you doing?", todayAt(10, 30)},
		{"chat-1", "John Doe", "I think I said something wrong earlier...", todayAt(11, 15)},
		{"chat-1", "John Doe", "Sorry for the confusion, let me clarify", todayAt(12, 0)},
		{"chat-2", "Mom", "Don't forget about dinner tomorrow!", todayAt(15, 30)},
		{"chat-2", "Dad", "I might be running late from work", todayAt(16, 45)},
		{"chat-3", "Jane Smith", "Can we reschedule our meeting?", todayAt(14, 20)},
	}

	for i := range contacts {
		if err := s.contactRepo.Create(ctx, &contacts[i]); err != nil {
			return "", err
		}
	}

	for i := range chats {
		if err := s.chatRepo.Create(ctx, &chats[i]); err != nil {
			return "", err
		}
	}

	for _, sm := range seedMessages {
		message := &models.Message{
			ID:          uuid.NewString(),
			ChatID:      sm.chatID,
			SenderName:  sm.sender,
			Content:     sm.content,
			MessageType: "text",
			Timestamp:   sm.sentAt,
			Status:      models.MessageStatusDeleted,
			DeletedAt:   models.NewTimestamp(now),
		}
		if err := s.messageRepo.Create(ctx, message); err != nil {
			return "", err
		}
	}

	return "Sample data initialized successfully", nil
}

const (
	sampleAvatarJohn  = "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=100&h=100&fit=crop&crop=face"
	sampleAvatarJane  = "https://images.unsplash.com/photo-1494790108755-2616b332c58e?w=100&h=100&fit=crop&crop=face"
	sampleAvatarGroup = "https://images.unsplash.com/photo-1511632765486-a01980e01a18?w=100&h=100&fit=crop"
)

func strPtr(s string) *string {
	return &s
}
