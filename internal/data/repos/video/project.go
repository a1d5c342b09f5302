package video

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

type VideoProjectRepo interface {
	Create(dbc dbctx.Context, p *types.VideoProject) (*types.VideoProject, error)
	GetByID(dbc dbctx.Context, id int64) (*types.VideoProject, error)
	GetByUserID(dbc dbctx.Context, userID int64) ([]*types.VideoProject, error)
	Update(dbc dbctx.Context, id int64, in types.VideoProjectUpdate) error
	DeleteByIDs(dbc dbctx.Context, ids []int64) error
}

type videoProjectRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewVideoProjectRepo(db *gorm.DB, baseLog *logger.Logger) VideoProjectRepo {
	repoLog := baseLog.With("repo", "VideoProjectRepo")
	return &videoProjectRepo{db: db, log: repoLog}
}

func (r *videoProjectRepo) Create(dbc dbctx.Context, p *types.VideoProject) (*types.VideoProject, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}

	if err := validation.Struct(p); err != nil {
		return nil, err
	}

	var owners int64
	if err := transaction.WithContext(dbc.Ctx).
		Model(&types.User{}).
		Where("id = ?", p.UserID).
		Count(&owners).Error; err != nil {
		return nil, err
	}
	if owners == 0 {
		return nil, &apperr.ReferentialError{Field: "user_id", Value: p.UserID}
	}

	if err := transaction.WithContext(dbc.Ctx).Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func (r *videoProjectRepo) GetByID(dbc dbctx.Context, id int64) (*types.VideoProject, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}

	var result types.VideoProject
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

func (r *videoProjectRepo) GetByUserID(dbc dbctx.Context, userID int64) ([]*types.VideoProject, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.VideoProject
	if err := transaction.WithContext(dbc.Ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *videoProjectRepo) Update(dbc dbctx.Context, id int64, in types.VideoProjectUpdate) error {
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
		Model(&types.VideoProject{}).
		Where("id = ?", id).
		Updates(changes).Error
}

func (r *videoProjectRepo) DeleteByIDs(dbc dbctx.Context, ids []int64) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if len(ids) == 0 {
		return nil
	}
	return transaction.WithContext(dbc.Ctx).
		Where("id IN ?", ids).
		Delete(&types.VideoProject{}).Error
}
