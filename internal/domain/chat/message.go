package chat

import (
	"time"

	"gorm.io/datatypes"
)

// ChatMessageRole identifies the author side of a message.
type ChatMessageRole string

const (
	RoleUser      ChatMessageRole = "user"
	RoleAssistant ChatMessageRole = "assistant"
	RoleSystem    ChatMessageRole = "system"
)

func ChatMessageRoleValues() []string {
	return []string{"user", "assistant", "system"}
}

func (r ChatMessageRole) Valid() bool {
	switch r {
	case RoleUser, RoleAssistant, RoleSystem:
		return true
	}
	return false
}

// ChatMessage is one turn in a session. Messages are immutable once written,
// so the record carries no updated_at.
type ChatMessage struct {
	ID        int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	SessionID int64 `gorm:"not null;index;column:session_id" json:"session_id" validate:"required"`
	Session   *ChatSession `gorm:"foreignKey:SessionID;references:ID" json:"session,omitempty" validate:"-"`

	Role    ChatMessageRole `gorm:"size:20;not null;column:role" json:"role" validate:"required,oneof=user assistant system"`
	Content string          `gorm:"size:10000;not null;column:content" json:"content" validate:"required,max=10000"`

	// Token usage reported by the AI backend, when known.
	InputTokens  *int `gorm:"column:input_tokens" json:"input_tokens,omitempty" validate:"omitempty,gte=0"`
	OutputTokens *int `gorm:"column:output_tokens" json:"output_tokens,omitempty" validate:"omitempty,gte=0"`

	MessageMetadata datatypes.JSONMap `gorm:"column:message_metadata" json:"message_metadata"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (ChatMessage) TableName() string { return "chat_messages" }
