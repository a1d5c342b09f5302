package chat

import (
	"errors"
	"time"

	"gorm.io/gorm"

	types "github.com/mosaiclabs/mosaic-backend/internal/domain"
	"github.com/mosaiclabs/mosaic-backend/internal/platform/apperr"
	"github.com/mosaiclabs/mosaic-backend/internal/platform/dbctx"
	"github.com/mosaiclabs/mosaic-backend/internal/platform/logger"
	"github.com/mosaiclabs/mosaic-backend/internal/platform/validation"
)

type ChatSessionRepo interface {
	Create(dbc dbctx.Context, s *types.ChatSession) (*types.ChatSession, error)
	GetByID(dbc dbctx.Context, id int64) (*types.ChatSession, error)
	GetByUserID(dbc dbctx.Context, userID int64) ([]*types.ChatSession, error)
	Update(dbc dbctx.Context, id int64, in types.ChatSessionUpdate) error
	DeleteByIDs(dbc dbctx.Context, ids []int64) error
}

type chatSessionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewChatSessionRepo(db *gorm.DB, baseLog *logger.Logger) ChatSessionRepo {
	repoLog := baseLog.With("repo", "ChatSessionRepo")
	return &chatSessionRepo{db: db, log: repoLog}
}

func (r *chatSessionRepo) Create(dbc dbctx.Context, s *types.ChatSession) (*types.ChatSession, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}

	if err := validation.Struct(s); err != nil {
		return nil, err
	}

	var owners int64
	if err := transaction.WithContext(dbc.Ctx).
		Model(&types.User{}).
		Where("id = ?", s.UserID).
		Count(&owners).Error; err != nil {
		return nil, err
	}
	if owners == 0 {
		return nil, &apperr.ReferentialError{Field: "user_id", Value: s.UserID}
	}

	if err := transaction.WithContext(dbc.Ctx).Create(s).Error; err != nil {
		return nil, err
	}
	return s, nil
}

func (r *chatSessionRepo) GetByID(dbc dbctx.Context, id int64) (*types.ChatSession, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}

	var result types.ChatSession
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

func (r *chatSessionRepo) GetByUserID(dbc dbctx.Context, userID int64) ([]*types.ChatSession, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.ChatSession
	if err := transaction.WithContext(dbc.Ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *chatSessionRepo) Update(dbc dbctx.Context, id int64, in types.ChatSessionUpdate) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}

	changes, err := in.Changes()
	if err != nil {
		return err
	}
	if len(changes) == 0 {
		return nil
	}
	changes["updated_at"] = time.Now().UTC()

	return transaction.WithContext(dbc.Ctx).
		Model(&types.ChatSession{}).
		Where("id = ?", id).
		Updates(changes).Error
}

func (r *chatSessionRepo) DeleteByIDs(dbc dbctx.Context, ids []int64) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if len(ids) == 0 {
		return nil
	}
	return transaction.WithContext(dbc.Ctx).
		Where("id IN ?", ids).
		Delete(&types.ChatSession{}).Error
}
