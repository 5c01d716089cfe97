package models

type MessageStatus string

const (
	MessageStatusActive  MessageStatus = "active"
	MessageStatusDeleted MessageStatus = "deleted"
	// MessageStatusRestored is stored but nothing transitions into it yet.
	MessageStatusRestored MessageStatus = "restored"
)

func (s MessageStatus) Valid() bool {
	return s == MessageStatusActive || s == MessageStatusDeleted || s == MessageStatusRestored
}

type Message struct {
	ID                string        `json:"id"`
	ChatID            string        `json:"chat_id"`
	SenderName        string        `json:"sender_name"`
	SenderPhone       *string       `json:"sender_phone"`
	Content           string        `json:"content"`
	MessageType       string        `json:"message_type"`
	Timestamp         Timestamp     `json:"timestamp"`
	Status            MessageStatus `json:"status"`
	DeletedAt         Timestamp     `json:"deleted_at"`
	WhatsappMessageID *string       `json:"whatsapp_message_id"`
	IsForwarded       bool          `json:"is_forwarded"`
	ReplyToMessageID  *string       `json:"reply_to_message_id"`
}
