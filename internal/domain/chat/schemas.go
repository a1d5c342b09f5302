package chat

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"github.com/mosaiclabs/mosaic-backend/internal/domain/defaults"
	"github.com/mosaiclabs/mosaic-backend/internal/platform/validation"
)

// ChatSessionCreate opens a session; every field may be omitted and falls
// back to the declared default.
type ChatSessionCreate struct {
	Title        *string          `json:"title,omitempty" validate:"omitempty,max=200"`
	AIModel      *string          `json:"ai_model,omitempty" validate:"omitempty,max=100"`
	SystemPrompt *string          `json:"system_prompt,omitempty" validate:"omitempty,max=2000"`
	Temperature  *decimal.Decimal `json:"temperature,omitempty"`
	MaxTokens    *int             `json:"max_tokens,omitempty" validate:"omitempty,gte=0"`
}

type ChatSessionUpdate struct {
	Title        *string          `json:"title,omitempty" validate:"omitempty,max=200"`
	AIModel      *string          `json:"ai_model,omitempty" validate:"omitempty,max=100"`
	SystemPrompt *string          `json:"system_prompt,omitempty" validate:"omitempty,max=2000"`
	Temperature  *decimal.Decimal `json:"temperature,omitempty"`
	MaxTokens    *int             `json:"max_tokens,omitempty" validate:"omitempty,gte=0"`
	IsActive     *bool            `json:"is_active,omitempty"`
}

// ChatMessageCreate appends a message; file_ids attach previously uploaded
// files to it.
type ChatMessageCreate struct {
	Role    ChatMessageRole `json:"role" validate:"required,oneof=user assistant system"`
	Content string          `json:"content" validate:"required,max=10000"`
	FileIDs []int64         `json:"file_ids,omitempty"`
}

func NewChatSession(userID int64, in ChatSessionCreate) (*ChatSession, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	s := &ChatSession{
		UserID:       userID,
		Title:        defaults.ChatTitle,
		IsActive:     true,
		AIModel:      defaults.AIModel,
		SystemPrompt: defaults.ChatSystemPrompt,
		Temperature:  defaults.ChatTemperature(),
		MaxTokens:    defaults.ChatMaxTokens,
		Settings:     datatypes.JSONMap{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if in.Title != nil {
		s.Title = *in.Title
	}
	if in.AIModel != nil {
		s.AIModel = *in.AIModel
	}
	if in.SystemPrompt != nil {
		s.SystemPrompt = *in.SystemPrompt
	}
	if in.Temperature != nil {
		s.Temperature = *in.Temperature
	}
	if in.MaxTokens != nil {
		s.MaxTokens = *in.MaxTokens
	}
	return s, nil
}

func (in ChatSessionUpdate) Changes() (map[string]any, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	changes := map[string]any{}
	if in.Title != nil {
		changes["title"] = *in.Title
	}
	if in.AIModel != nil {
		changes["ai_model"] = *in.AIModel
	}
	if in.SystemPrompt != nil {
		changes["system_prompt"] = *in.SystemPrompt
	}
	if in.Temperature != nil {
		changes["temperature"] = *in.Temperature
	}
	if in.MaxTokens != nil {
		changes["max_tokens"] = *in.MaxTokens
	}
	if in.IsActive != nil {
		changes["is_active"] = *in.IsActive
	}
	return changes, nil
}

// NewChatMessage builds the message row for in. Attachment rows are the chat
// message repo's concern, since they need the file ids verified.
func NewChatMessage(sessionID int64, in ChatMessageCreate) (*ChatMessage, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	return &ChatMessage{
		SessionID:       sessionID,
		Role:            in.Role,
		Content:         in.Content,
		MessageMetadata: datatypes.JSONMap{},
		CreatedAt:       time.Now().UTC(),
	}, nil
}
