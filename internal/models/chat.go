package models

type ChatType string

const (
	ChatTypeIndividual ChatType = "individual"
	ChatTypeGroup      ChatType = "group"
)

func (t ChatType) Valid() bool {
	return t == ChatTypeIndividual || t == ChatTypeGroup
}

type Chat struct {
	ID                   string    `json:"id"`
	Name                 string    `json:"name"`
	ChatType             ChatType  `json:"chat_type"`
	Participants         []string  `json:"participants"`
	ProfilePicture       *string   `json:"profile_picture"`
	LastMessageTime      Timestamp `json:"last_message_time"`
	DeletedMessagesCount int       `json:"deleted_messages_count"`
	CreatedAt            Timestamp `json:"created_at"`
}
