package chat

import (
	"time"

	"gorm.io/gorm"

	types "github.com/mosaiclabs/mosaic-backend/internal/domain"
	"github.com/mosaiclabs/mosaic-backend/internal/platform/apperr"
	"github.com/mosaiclabs/mosaic-backend/internal/platform/dbctx"
	"github.com/mosaiclabs/mosaic-backend/internal/platform/logger"
)

type ChatFileAttachmentRepo interface {
	Create(dbc dbctx.Context, messageID, fileID int64) (*types.ChatFileAttachment, error)
	GetByMessageIDs(dbc dbctx.Context, messageIDs []int64) ([]*types.ChatFileAttachment, error)
	GetByFileID(dbc dbctx.Context, fileID int64) ([]*types.ChatFileAttachment, error)
	DeleteByMessageIDs(dbc dbctx.Context, messageIDs []int64) error
}

type chatFileAttachmentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewChatFileAttachmentRepo(db *gorm.DB, baseLog *logger.Logger) ChatFileAttachmentRepo {
	repoLog := baseLog.With("repo", "ChatFileAttachmentRepo")
	return &chatFileAttachmentRepo{db: db, log: repoLog}
}

func (r *chatFileAttachmentRepo) Create(dbc dbctx.Context, messageID, fileID int64) (*types.ChatFileAttachment, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}

	var messages int64
	if err := transaction.WithContext(dbc.Ctx).
		Model(&types.ChatMessage{}).
		Where("id = ?", messageID).
		Count(&messages).Error; err != nil {
		return nil, err
	}
	if messages == 0 {
		return nil, &apperr.ReferentialError{Field: "message_id", Value: messageID}
	}

	var files int64
	if err := transaction.WithContext(dbc.Ctx).
		Model(&types.UploadedFile{}).
		Where("id = ?", fileID).
		Count(&files).Error; err != nil {
		return nil, err
	}
	if files == 0 {
		return nil, &apperr.ReferentialError{Field: "file_id", Value: fileID}
	}

	att := &types.ChatFileAttachment{
		MessageID: messageID,
		FileID:    fileID,
		CreatedAt: time.Now().UTC(),
	}
	if err := transaction.WithContext(dbc.Ctx).Create(att).Error; err != nil {
		return nil, err
	}
	return att, nil
}

func (r *chatFileAttachmentRepo) GetByMessageIDs(dbc dbctx.Context, messageIDs []int64) ([]*types.ChatFileAttachment, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.ChatFileAttachment
	if len(messageIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(dbc.Ctx).
		Where("message_id IN ?", messageIDs).
		Order("id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *chatFileAttachmentRepo) GetByFileID(dbc dbctx.Context, fileID int64) ([]*types.ChatFileAttachment, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.ChatFileAttachment
	if err := transaction.WithContext(dbc.Ctx).
		Where("file_id = ?", fileID).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *chatFileAttachmentRepo) DeleteByMessageIDs(dbc dbctx.Context, messageIDs []int64) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if len(messageIDs) == 0 {
		return nil
	}
	return transaction.WithContext(dbc.Ctx).
		Where("message_id IN ?", messageIDs).
		Delete(&types.ChatFileAttachment{}).Error
}
