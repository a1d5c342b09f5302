package testutil

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	types "github.com/mosaiclabs/mosaic-backend/internal/domain"
	"github.com/mosaiclabs/mosaic-backend/internal/domain/defaults"
)

// UniqueHex returns n hex characters, for usernames, emails and file hashes
// that must not collide across tests sharing a database.
func UniqueHex(n int) string {
	s := strings.ReplaceAll(uuid.NewString(), "-", "")
	for len(s) < n {
		s += strings.ReplaceAll(uuid.NewString(), "-", "")
	}
	return s[:n]
}

func SeedUser(tb testing.TB, ctx context.Context, tx *gorm.DB) *types.User {
	tb.Helper()
	now := time.Now().UTC()
	suffix := UniqueHex(12)
	u := &types.User{
		Username:     "user_" + suffix,
		Email:        "user_" + suffix + "@example.com",
		FullName:     "Test User",
		IsActive:     true,
		StorageQuota: defaults.StorageQuotaBytes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := tx.WithContext(ctx).Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedUploadedFile(tb testing.TB, ctx context.Context, tx *gorm.DB, userID int64) *types.UploadedFile {
	tb.Helper()
	now := time.Now().UTC()
	f := &types.UploadedFile{
		UserID:           userID,
		Filename:         "stored.pdf",
		OriginalFilename: "report.pdf",
		FilePath:         "/uploads/" + UniqueHex(8) + "/stored.pdf",
		FileSize:         1024,
		MimeType:         "application/pdf",
		FileHash:         UniqueHex(64),
		Status:           types.FileStatusUploaded,
		FileMetadata:     datatypes.JSONMap{},
		ProcessedData:    datatypes.JSONMap{},
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := tx.WithContext(ctx).Create(f).Error; err != nil {
		tb.Fatalf("seed uploaded file: %v", err)
	}
	return f
}

func SeedChatSession(tb testing.TB, ctx context.Context, tx *gorm.DB, userID int64) *types.ChatSession {
	tb.Helper()
	now := time.Now().UTC()
	s := &types.ChatSession{
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
	if err := tx.WithContext(ctx).Create(s).Error; err != nil {
		tb.Fatalf("seed chat session: %v", err)
	}
	return s
}

func SeedChatMessage(tb testing.TB, ctx context.Context, tx *gorm.DB, sessionID int64, role types.ChatMessageRole, content string) *types.ChatMessage {
	tb.Helper()
	m := &types.ChatMessage{
		SessionID:       sessionID,
		Role:            role,
		Content:         content,
		MessageMetadata: datatypes.JSONMap{},
		CreatedAt:       time.Now().UTC(),
	}
	if err := tx.WithContext(ctx).Create(m).Error; err != nil {
		tb.Fatalf("seed chat message: %v", err)
	}
	return m
}

func SeedSearchQuery(tb testing.TB, ctx context.Context, tx *gorm.DB, userID int64) *types.SearchQuery {
	tb.Helper()
	now := time.Now().UTC()
	q := &types.SearchQuery{
		UserID:        userID,
		Query:         "golang gorm jsonb",
		Status:        types.SearchStatusPending,
		SearchEngines: datatypes.NewJSONSlice(defaults.SearchEngines()),
		MaxResults:    defaults.SearchMaxResults,
		Language:      defaults.SearchLanguage,
		Region:        defaults.SearchRegion,
		Results:       datatypes.JSONMap{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := tx.WithContext(ctx).Create(q).Error; err != nil {
		tb.Fatalf("seed search query: %v", err)
	}
	return q
}

func SeedVideoProject(tb testing.TB, ctx context.Context, tx *gorm.DB, userID int64) *types.VideoProject {
	tb.Helper()
	now := time.Now().UTC()
	p := &types.VideoProject{
		UserID:    userID,
		Title:     "project",
		Settings:  datatypes.JSONMap{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed video project: %v", err)
	}
	return p
}

func SeedVideoFile(tb testing.TB, ctx context.Context, tx *gorm.DB, projectID int64) *types.VideoFile {
	tb.Helper()
	now := time.Now().UTC()
	f := &types.VideoFile{
		ProjectID:        projectID,
		Filename:         "stored.mp4",
		OriginalFilename: "clip.mp4",
		FilePath:         "/videos/" + UniqueHex(8) + "/stored.mp4",
		FileSize:         4096,
		Status:           types.VideoStatusUploaded,
		VideoMetadata:    datatypes.JSONMap{},
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := tx.WithContext(ctx).Create(f).Error; err != nil {
		tb.Fatalf("seed video file: %v", err)
	}
	return f
}
