package chat

import (
	"errors"
	"time"

	"gorm.io/gorm"

	types "github.com/mosaiclabs/mosaic-backend/internal/domain"
	chatdomain "github.com/mosaiclabs/mosaic-backend/internal/domain/chat"
	"github.com/mosaiclabs/mosaic-backend/internal/platform/apperr"
	"github.com/mosaiclabs/mosaic-backend/internal/platform/dbctx"
	"github.com/mosaiclabs/mosaic-backend/internal/platform/logger"
	"github.com/mosaiclabs/mosaic-backend/internal/platform/validation"
)

type ChatMessageRepo interface {
	// CreateFromInput persists the message and one attachment row per file id,
	// atomically. Every file id must reference an existing uploaded file.
	CreateFromInput(dbc dbctx.Context, sessionID int64, in types.ChatMessageCreate) (*types.ChatMessage, error)
	Create(dbc dbctx.Context, m *types.ChatMessage) (*types.ChatMessage, error)
	GetByID(dbc dbctx.Context, id int64) (*types.ChatMessage, error)
	GetBySessionID(dbc dbctx.Context, sessionID int64) ([]*types.ChatMessage, error)
	SetTokenCounts(dbc dbctx.Context, id int64, inputTokens, outputTokens int) error
	DeleteByIDs(dbc dbctx.Context, ids []int64) error
}

type chatMessageRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewChatMessageRepo(db *gorm.DB, baseLog *logger.Logger) ChatMessageRepo {
	repoLog := baseLog.With("repo", "ChatMessageRepo")
	return &chatMessageRepo{db: db, log: repoLog}
}

func (r *chatMessageRepo) CreateFromInput(dbc dbctx.Context, sessionID int64, in types.ChatMessageCreate) (*types.ChatMessage, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}

	msg, err := chatdomain.NewChatMessage(sessionID, in)
	if err != nil {
		return nil, err
	}

	err = transaction.WithContext(dbc.Ctx).Transaction(func(tx *gorm.DB) error {
		var sessions int64
		if err := tx.Model(&types.ChatSession{}).
			Where("id = ?", sessionID).
			Count(&sessions).Error; err != nil {
			return err
		}
		if sessions == 0 {
			return &apperr.ReferentialError{Field: "session_id", Value: sessionID}
		}

		if len(in.FileIDs) > 0 {
			var found []int64
			if err := tx.Model(&types.UploadedFile{}).
				Where("id IN ?", in.FileIDs).
				Pluck("id", &found).Error; err != nil {
				return err
			}
			if missing, ok := firstMissing(in.FileIDs, found); !ok {
				return &apperr.ReferentialError{Field: "file_ids", Value: missing}
			}
		}

		if err := tx.Create(msg).Error; err != nil {
			return err
		}

		for _, fileID := range in.FileIDs {
			att := &types.ChatFileAttachment{
				MessageID: msg.ID,
				FileID:    fileID,
				CreatedAt: time.Now().UTC(),
			}
			if err := tx.Create(att).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return msg, nil
}

func (r *chatMessageRepo) Create(dbc dbctx.Context, m *types.ChatMessage) (*types.ChatMessage, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}

	if err := validation.Struct(m); err != nil {
		return nil, err
	}

	var sessions int64
	if err := transaction.WithContext(dbc.Ctx).
		Model(&types.ChatSession{}).
		Where("id = ?", m.SessionID).
		Count(&sessions).Error; err != nil {
		return nil, err
	}
	if sessions == 0 {
		return nil, &apperr.ReferentialError{Field: "session_id", Value: m.SessionID}
	}

	if err := transaction.WithContext(dbc.Ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return m, nil
}

func (r *chatMessageRepo) GetByID(dbc dbctx.Context, id int64) (*types.ChatMessage, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}

	var result types.ChatMessage
	if err := transaction.WithContext(dbc.Ctx).
		Where("id = ?", id).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &result, nil
}

func (r *chatMessageRepo) GetBySessionID(dbc dbctx.Context, sessionID int64) ([]*types.ChatMessage, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.ChatMessage
	if err := transaction.WithContext(dbc.Ctx).
		Where("session_id = ?", sessionID).
		Order("created_at ASC, id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// SetTokenCounts records usage reported by the AI backend. Messages carry no
// updated_at column, so only the counters change.
func (r *chatMessageRepo) SetTokenCounts(dbc dbctx.Context, id int64, inputTokens, outputTokens int) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if inputTokens < 0 {
		return &apperr.FieldError{Field: "input_tokens", Constraint: "gte=0", Value: inputTokens}
	}
	if outputTokens < 0 {
		return &apperr.FieldError{Field: "output_tokens", Constraint: "gte=0", Value: outputTokens}
	}
	return transaction.WithContext(dbc.Ctx).
		Model(&types.ChatMessage{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"input_tokens":  inputTokens,
			"output_tokens": outputTokens,
		}).Error
}

func (r *chatMessageRepo) DeleteByIDs(dbc dbctx.Context, ids []int64) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if len(ids) == 0 {
		return nil
	}
	return transaction.WithContext(dbc.Ctx).
		Where("id IN ?", ids).
		Delete(&types.ChatMessage{}).Error
}

// firstMissing returns the first id in want that is absent from have.
func firstMissing(want, have []int64) (int64, bool) {
	seen := make(map[int64]struct{}, len(have))
	for _, id := range have {
		seen[id] = struct{}{}
	}
	for _, id := range want {
		if _, ok := seen[id]; !ok {
			return id, false
		}
	}
	return 0, true
}
