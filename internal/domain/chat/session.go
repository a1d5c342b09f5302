package chat

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// ChatSession holds the AI configuration a conversation runs with.
type ChatSession struct {
	ID     int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID int64 `gorm:"not null;index;column:user_id" json:"user_id" validate:"required"`

	Title    string `gorm:"size:200;not null;column:title" json:"title" validate:"required,max=200"`
	IsActive bool   `gorm:"not null;column:is_active" json:"is_active"`

	AIModel      string            `gorm:"size:100;not null;column:ai_model" json:"ai_model" validate:"required,max=100"`
	SystemPrompt string            `gorm:"size:2000;not null;column:system_prompt" json:"system_prompt" validate:"max=2000"`
	Temperature  decimal.Decimal   `gorm:"type:decimal(3,2);not null;column:temperature" json:"temperature"`
	MaxTokens    int               `gorm:"not null;column:max_tokens" json:"max_tokens" validate:"gte=0"`
	Settings     datatypes.JSONMap `gorm:"column:settings" json:"settings"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (ChatSession) TableName() string { return "chat_sessions" }
