package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/nobiai/deletewa/internal/models"
	"github.com/nobiai/deletewa/internal/repository"
)

type messageStore interface {
	Create(ctx context.Context, message *models.Message) error
	GetByID(ctx context.Context, id string) (*models.Message, error)
	List(ctx context.Context, filter repository.MessageFilter, limit int) ([]models.Message, error)
	ListDeleted(ctx context.Context, limit int) ([]models.Message, error)
	MarkDeleted(ctx context.Context, id string, deletedAt models.Timestamp) (string, bool, error)
}

type chatUpdater interface {
	SetLastMessageTime(ctx context.Context, chatID string, ts models.Timestamp) error
	IncrementDeletedCount(ctx context.Context, chatID string) error
}

type MessageService struct {
	messageRepo messageStore
	chatRepo    chatUpdater
}

func NewMessageService(messageRepo messageStore, chatRepo chatUpdater) *MessageService {
	return &MessageService{
		messageRepo: messageRepo,
		chatRepo:    chatRepo,
	}
}

type CreateMessageInput struct {
	ChatID            string  `json:"chat_id"`
	SenderName        string  `json:"sender_name"`
	SenderPhone       *string `json:"sender_phone"`
	Content           string  `json:"content"`
	MessageType       string  `json:"message_type"`
	WhatsappMessageID *string `json:"whatsapp_message_id"`
	IsForwarded       bool    `json:"is_forwarded"`
	ReplyToMessageID  *string `json:"reply_to_message_id"`
}

// CreateMessage does not check that the chat exists; an unknown chat_id
// produces an orphaned message and the last_message_time update matches
// nothing.
func (s *MessageService) CreateMessage(ctx context.Context, input CreateMessageInput) (*models.Message, error) {
	if input.ChatID == "" || input.SenderName == "" || input.Content == "" {
		return nil, ErrInvalidInput
	}

	messageType := input.MessageType
	if messageType == "" {
		messageType = "text"
	}

	message := &models.Message{
		ID:                uuid.NewString(),
		ChatID:            input.ChatID,
		SenderName:        input.SenderName,
		SenderPhone:       input.SenderPhone,
		Content:           input.Content,
		MessageType:       messageType,
		Timestamp:         models.Now(),
		Status:            models.MessageStatusActive,
		WhatsappMessageID: input.WhatsappMessageID,
		IsForwarded:       input.IsForwarded,
		ReplyToMessageID:  input.ReplyToMessageID,
	}
	if err := s.messageRepo.Create(ctx, message); err != nil {
		return nil, err
	}

	if err := s.chatRepo.SetLastMessageTime(ctx, input.ChatID, models.Now()); err != nil {
		return nil, err
	}

	return message, nil
}

// DeleteMessage marks a message deleted and bumps the owning chat's
// counter. Deleting an already-deleted message succeeds without touching
// deleted_at or the counter, so the counter stays equal to the number of
// deleted messages in the chat.
func (s *MessageService) DeleteMessage(ctx context.Context, id string) error {
	chatID, updated, err := s.messageRepo.MarkDeleted(ctx, id, models.Now())
	if err != nil {
		return err
	}

	if !updated {
		if _, err := s.messageRepo.GetByID(ctx, id); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrMessageNotFound
			}
			return err
		}
		// Already deleted: success, counter untouched.
		return nil
	}

	return s.chatRepo.IncrementDeletedCount(ctx, chatID)
}

func (s *MessageService) ListMessages(ctx context.Context, filter repository.MessageFilter) ([]models.Message, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, ErrInvalidInput
	}
	return s.messageRepo.List(ctx, filter, listResultCap)
}

func (s *MessageService) ListDeletedMessages(ctx context.Context) ([]models.Message, error) {
	return s.messageRepo.ListDeleted(ctx, listResultCap)
}
