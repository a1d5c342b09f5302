package chat

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mosaiclabs/mosaic-backend/internal/domain/defaults"
	"github.com/mosaiclabs/mosaic-backend/internal/platform/apperr"
	"github.com/mosaiclabs/mosaic-backend/internal/pkg/pointers"
)

func TestNewChatSessionDefaults(t *testing.T) {
	s, err := NewChatSession(1, ChatSessionCreate{})
	if err != nil {
		t.Fatalf("NewChatSession: %v", err)
	}
	if s.Title != defaults.ChatTitle {
		t.Errorf("title: got %q, want %q", s.Title, defaults.ChatTitle)
	}
	if s.AIModel != defaults.AIModel {
		t.Errorf("ai_model: got %q, want %q", s.AIModel, defaults.AIModel)
	}
	if !s.Temperature.Equal(decimal.NewFromFloat(0.7)) {
		t.Errorf("temperature: got %s, want 0.7", s.Temperature)
	}
	if s.MaxTokens != defaults.ChatMaxTokens {
		t.Errorf("max_tokens: got %d, want %d", s.MaxTokens, defaults.ChatMaxTokens)
	}
	if !s.IsActive {
		t.Error("expected new session to be active")
	}
	if s.Settings == nil {
		t.Error("expected settings map to be initialized")
	}
}

func TestNewChatSessionOverrides(t *testing.T) {
	temp := decimal.NewFromFloat(1.25)
	s, err := NewChatSession(1, ChatSessionCreate{
		Title:       pointers.String("Planning"),
		AIModel:     pointers.String("gpt-4"),
		Temperature: &temp,
		MaxTokens:   pointers.Int(512),
	})
	if err != nil {
		t.Fatalf("NewChatSession: %v", err)
	}
	if s.Title != "Planning" || s.AIModel != "gpt-4" || s.MaxTokens != 512 {
		t.Fatalf("overrides not applied: %+v", s)
	}
	if !s.Temperature.Equal(temp) {
		t.Errorf("temperature: got %s, want %s", s.Temperature, temp)
	}
}

func TestNewChatMessageContentBounds(t *testing.T) {
	m, err := NewChatMessage(1, ChatMessageCreate{
		Role:    RoleUser,
		Content: strings.Repeat("a", 10000),
	})
	if err != nil {
		t.Fatalf("NewChatMessage at limit: %v", err)
	}
	if m.SessionID != 1 || m.Role != RoleUser {
		t.Fatalf("unexpected message: %+v", m)
	}

	_, err = NewChatMessage(1, ChatMessageCreate{
		Role:    RoleUser,
		Content: strings.Repeat("a", 10001),
	})
	if err == nil {
		t.Fatal("expected content over limit to fail")
	}
	if !errors.Is(err, apperr.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestNewChatMessageRejectsUnknownRole(t *testing.T) {
	_, err := NewChatMessage(1, ChatMessageCreate{
		Role:    ChatMessageRole("moderator"),
		Content: "hi",
	})
	if err == nil {
		t.Fatal("expected validation failure")
	}
	var enumErr *apperr.EnumError
	if !errors.As(err, &enumErr) || enumErr.Field != "role" {
		t.Fatalf("expected EnumError on role, got %v", err)
	}
}
