package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/nobiai/deletewa/internal/models"
)

const messageColumns = `id, chat_id, sender_name, sender_phone, content, message_type,
	"timestamp", status, deleted_at, whatsapp_message_id, is_forwarded, reply_to_message_id`

type MessageFilter struct {
	ChatID string
	Status models.MessageStatus
}

type MessageRepository struct {
	db DBTX
}

func NewMessageRepository(db DBTX) *MessageRepository {
	return &MessageRepository{db: db}
}

func (r *MessageRepository) Create(ctx context.Context, message *models.Message) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO messages (`+messageColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`,
		message.ID,
		message.ChatID,
		message.SenderName,
		message.SenderPhone,
		message.Content,
		message.MessageType,
		message.Timestamp,
		message.Status,
		message.DeletedAt,
		message.WhatsappMessageID,
		message.IsForwarded,
		message.ReplyToMessageID,
	)
	return err
}

func (r *MessageRepository) GetByID(ctx context.Context, id string) (*models.Message, error) {
	query := `SELECT ` + messageColumns + ` FROM messages WHERE id = $1`
	var message models.Message
	err := r.db.QueryRow(ctx, query, id).Scan(
		&message.ID,
		&message.ChatID,
		&message.SenderName,
		&message.SenderPhone,
		&message.Content,
		&message.MessageType,
		&message.Timestamp,
		&message.Status,
		&message.DeletedAt,
		&message.WhatsappMessageID,
		&message.IsForwarded,
		&message.ReplyToMessageID,
	)
	if err != nil {
		return nil, err
	}
	return &message, nil
}

// List returns messages matching the filter, newest first. Both filter
// fields are optional.
func (r *MessageRepository) List(ctx context.Context, filter MessageFilter, limit int) ([]models.Message, error) {
	conds := make([]string, 0, 2)
	args := make([]any, 0, 3)
	if filter.ChatID != "" {
		args = append(args, filter.ChatID)
		conds = append(conds, fmt.Sprintf("chat_id = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}

	query := `SELECT ` + messageColumns + ` FROM messages`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	args = append(args, limit)
	query += fmt.Sprintf(` ORDER BY "timestamp" DESC NULLS LAST LIMIT $%d`, len(args))

	return r.queryMessages(ctx, query, args...)
}

func (r *MessageRepository) ListDeleted(ctx context.Context, limit int) ([]models.Message, error) {
	query := `
		SELECT ` + messageColumns + `
		FROM messages
		WHERE status = $1
		ORDER BY deleted_at DESC NULLS LAST
		LIMIT $2
	`
	return r.queryMessages(ctx, query, models.MessageStatusDeleted, limit)
}

// MarkDeleted flips an active (or restored) message to deleted and returns
// the owning chat id. updated is false when the message is absent or was
// already deleted; callers distinguish the two with GetByID.
func (r *MessageRepository) MarkDeleted(ctx context.Context, id string, deletedAt models.Timestamp) (chatID string, updated bool, err error) {
	err = r.db.QueryRow(ctx, `
		UPDATE messages
		SET status = $2, deleted_at = $3
		WHERE id = $1 AND status <> $2
		RETURNING chat_id
	`, id, models.MessageStatusDeleted, deletedAt).Scan(&chatID)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return chatID, true, nil
}

func (r *MessageRepository) CountDeleted(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM messages WHERE status = $1
	`, models.MessageStatusDeleted).Scan(&count)
	return count, err
}

// CountDeletedSince relies on ISO-8601 strings comparing in time order.
func (r *MessageRepository) CountDeletedSince(ctx context.Context, cutoff string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM messages WHERE status = $1 AND deleted_at >= $2
	`, models.MessageStatusDeleted, cutoff).Scan(&count)
	return count, err
}

// TopDeletedChat returns the chat id with the most deleted messages, ties
// broken by chat id. pgx.ErrNoRows when no message is deleted.
func (r *MessageRepository) TopDeletedChat(ctx context.Context) (string, error) {
	var chatID string
	err := r.db.QueryRow(ctx, `
		SELECT chat_id
		FROM messages
		WHERE status = $1
		GROUP BY chat_id
		ORDER BY COUNT(*) DESC, chat_id ASC
		LIMIT 1
	`, models.MessageStatusDeleted).Scan(&chatID)
	if err != nil {
		return "", err
	}
	return chatID, nil
}

func (r *MessageRepository) queryMessages(ctx context.Context, query string, args ...any) ([]models.Message, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := make([]models.Message, 0)
	for rows.Next() {
		var message models.Message
		if err := rows.Scan(
			&message.ID,
			&message.ChatID,
			&message.SenderName,
			&message.SenderPhone,
			&message.Content,
			&message.MessageType,
			&message.Timestamp,
			&message.Status,
			&message.DeletedAt,
			&message.WhatsappMessageID,
			&message.IsForwarded,
			&message.ReplyToMessageID,
		); err != nil {
			return nil, err
		}
		messages = append(messages, message)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return messages, nil
}
