package repository

import (
	"context"

	"github.com/nobiai/deletewa/internal/models"
)

type ChatRepository struct {
	db DBTX
}

func NewChatRepository(db DBTX) *ChatRepository {
	return &ChatRepository{db: db}
}

func (r *ChatRepository) Create(ctx context.Context, chat *models.Chat) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO chats (id, name, chat_type, participants, profile_picture,
			last_message_time, deleted_messages_count, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`,
		chat.ID,
		chat.Name,
		chat.ChatType,
		chat.Participants,
		chat.ProfilePicture,
		chat.LastMessageTime,
		chat.DeletedMessagesCount,
		chat.CreatedAt,
	)
	return err
}

func (r *ChatRepository) GetByID(ctx context.Context, id string) (*models.Chat, error) {
	query := `
		SELECT id, name, chat_type, participants, profile_picture,
			last_message_time, deleted_messages_count, created_at
		FROM chats
		WHERE id = $1
	`
	var chat models.Chat
	err := r.db.QueryRow(ctx, query, id).Scan(
		&chat.ID,
		&chat.Name,
		&chat.ChatType,
		&chat.Participants,
		&chat.ProfilePicture,
		&chat.LastMessageTime,
		&chat.DeletedMessagesCount,
		&chat.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &chat, nil
}

func (r *ChatRepository) List(ctx context.Context, limit int) ([]models.Chat, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, chat_type, participants, profile_picture,
			last_message_time, deleted_messages_count, created_at
		FROM chats
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	chats := make([]models.Chat, 0)
	for rows.Next() {
		var chat models.Chat
		if err := rows.Scan(
			&chat.ID,
			&chat.Name,
			&chat.ChatType,
			&chat.Participants,
			&chat.ProfilePicture,
			&chat.LastMessageTime,
			&chat.DeletedMessagesCount,
			&chat.CreatedAt,
		); err != nil {
			return nil, err
		}
		chats = append(chats, chat)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return chats, nil
}

func (r *ChatRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM chats`).Scan(&count)
	return count, err
}

// SetLastMessageTime is a no-op when the chat does not exist.
func (r *ChatRepository) SetLastMessageTime(ctx context.Context, chatID string, ts models.Timestamp) error {
	_, err := r.db.Exec(ctx, `
		UPDATE chats
		SET last_message_time = $2
		WHERE id = $1
	`, chatID, ts)
	return err
}

// IncrementDeletedCount is a no-op when the chat does not exist.
func (r *ChatRepository) IncrementDeletedCount(ctx context.Context, chatID string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE chats
		SET deleted_messages_count = deleted_messages_count + 1
		WHERE id = $1
	`, chatID)
	return err
}
