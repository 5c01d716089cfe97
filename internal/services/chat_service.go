package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/nobiai/deletewa/internal/models"
)

type chatStore interface {
	Create(ctx context.Context, chat *models.Chat) error
	GetByID(ctx context.Context, id string) (*models.Chat, error)
	List(ctx context.Context, limit int) ([]models.Chat, error)
}

type ChatService struct {
	chatRepo chatStore
}

func NewChatService(chatRepo chatStore) *ChatService {
	return &ChatService{chatRepo: chatRepo}
}

type CreateChatInput struct {
	Name           string          `json:"name"`
	ChatType       models.ChatType `json:"chat_type"`
	Participants   []string        `json:"participants"`
	ProfilePicture *string         `json:"profile_picture"`
}

func (s *ChatService) CreateChat(ctx context.Context, input CreateChatInput) (*models.Chat, error) {
	if input.Name == "" || !input.ChatType.Valid() {
		return nil, ErrInvalidInput
	}

	participants := input.Participants
	if participants == nil {
		participants = []string{}
	}

	chat := &models.Chat{
		ID:             uuid.NewString(),
		Name:           input.Name,
		ChatType:       input.ChatType,
		Participants:   participants,
		ProfilePicture: input.ProfilePicture,
		CreatedAt:      models.Now(),
	}
	if err := s.chatRepo.Create(ctx, chat); err != nil {
		return nil, err
	}
	return chat, nil
}

func (s *ChatService) GetChat(ctx context.Context, id string) (*models.Chat, error) {
	chat, err := s.chatRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrChatNotFound
		}
		return nil, err
	}
	return chat, nil
}

func (s *ChatService) ListChats(ctx context.Context) ([]models.Chat, error) {
	return s.chatRepo.List(ctx, listResultCap)
}
