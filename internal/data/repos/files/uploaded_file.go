package files

import (
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	types "github.com/mosaiclabs/mosaic-backend/internal/domain"
	"github.com/mosaiclabs/mosaic-backend/internal/platform/apperr"
	"github.com/mosaiclabs/mosaic-backend/internal/platform/dbctx"
	"github.com/mosaiclabs/mosaic-backend/internal/platform/logger"
	"github.com/mosaiclabs/mosaic-backend/internal/platform/validation"
)

type UploadedFileRepo interface {
	Create(dbc dbctx.Context, f *types.UploadedFile) (*types.UploadedFile, error)
	GetByID(dbc dbctx.Context, id int64) (*types.UploadedFile, error)
	GetByIDs(dbc dbctx.Context, ids []int64) ([]*types.UploadedFile, error)
	GetByUserID(dbc dbctx.Context, userID int64) ([]*types.UploadedFile, error)
	GetByHash(dbc dbctx.Context, fileHash string) ([]*types.UploadedFile, error)
	SetStatus(dbc dbctx.Context, id int64, status types.FileStatus) error
	SetProcessedData(dbc dbctx.Context, id int64, data datatypes.JSONMap) error
	SetFileMetadata(dbc dbctx.Context, id int64, meta datatypes.JSONMap) error
	DeleteByIDs(dbc dbctx.Context, ids []int64) error
}

type uploadedFileRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUploadedFileRepo(db *gorm.DB, baseLog *logger.Logger) UploadedFileRepo {
	repoLog := baseLog.With("repo", "UploadedFileRepo")
	return &uploadedFileRepo{db: db, log: repoLog}
}

func (r *uploadedFileRepo) Create(dbc dbctx.Context, f *types.UploadedFile) (*types.UploadedFile, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}

	if err := validation.Struct(f); err != nil {
		return nil, err
	}

	var owners int64
	if err := transaction.WithContext(dbc.Ctx).
		Model(&types.User{}).
		Where("id = ?", f.UserID).
		Count(&owners).Error; err != nil {
		return nil, err
	}
	if owners == 0 {
		return nil, &apperr.ReferentialError{Field: "user_id", Value: f.UserID}
	}

	if err := transaction.WithContext(dbc.Ctx).Create(f).Error; err != nil {
		return nil, err
	}
	return f, nil
}

func (r *uploadedFileRepo) GetByID(dbc dbctx.Context, id int64) (*types.UploadedFile, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}

	var result types.UploadedFile
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

func (r *uploadedFileRepo) GetByIDs(dbc dbctx.Context, ids []int64) ([]*types.UploadedFile, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.UploadedFile
	if len(ids) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(dbc.Ctx).
		Where("id IN ?", ids).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *uploadedFileRepo) GetByUserID(dbc dbctx.Context, userID int64) ([]*types.UploadedFile, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.UploadedFile
	if err := transaction.WithContext(dbc.Ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// GetByHash returns every file with the given content hash, across users.
// Used for deduplication lookups.
func (r *uploadedFileRepo) GetByHash(dbc dbctx.Context, fileHash string) ([]*types.UploadedFile, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.UploadedFile
	if err := transaction.WithContext(dbc.Ctx).
		Where("file_hash = ?", fileHash).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *uploadedFileRepo) SetStatus(dbc dbctx.Context, id int64, status types.FileStatus) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}

	if !status.Valid() {
		return &apperr.EnumError{Field: "status", Value: status, Allowed: types.FileStatusValues()}
	}

	return transaction.WithContext(dbc.Ctx).
		Model(&types.UploadedFile{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":     status,
			"updated_at": time.Now().UTC(),
		}).Error
}

func (r *uploadedFileRepo) SetProcessedData(dbc dbctx.Context, id int64, data datatypes.JSONMap) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(dbc.Ctx).
		Model(&types.UploadedFile{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"processed_data": data,
			"updated_at":     time.Now().UTC(),
		}).Error
}

func (r *uploadedFileRepo) SetFileMetadata(dbc dbctx.Context, id int64, meta datatypes.JSONMap) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(dbc.Ctx).
		Model(&types.UploadedFile{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"file_metadata": meta,
			"updated_at":    time.Now().UTC(),
		}).Error
}

func (r *uploadedFileRepo) DeleteByIDs(dbc dbctx.Context, ids []int64) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if len(ids) == 0 {
		return nil
	}
	return transaction.WithContext(dbc.Ctx).
		Where("id IN ?", ids).
		Delete(&types.UploadedFile{}).Error
}
