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

type VideoEditTaskRepo interface {
	Create(dbc dbctx.Context, t *types.VideoEditTask) (*types.VideoEditTask, error)
	GetByID(dbc dbctx.Context, id int64) (*types.VideoEditTask, error)
	GetByProjectID(dbc dbctx.Context, projectID int64) ([]*types.VideoEditTask, error)
	// Update applies the processing backend's partial update. A status moving
	// into ready/error stamps completed_at; moving out of them clears it.
	Update(dbc dbctx.Context, id int64, in types.VideoEditTaskUpdate) error
	DeleteByIDs(dbc dbctx.Context, ids []int64) error
}

type videoEditTaskRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewVideoEditTaskRepo(db *gorm.DB, baseLog *logger.Logger) VideoEditTaskRepo {
	repoLog := baseLog.With("repo", "VideoEditTaskRepo")
	return &videoEditTaskRepo{db: db, log: repoLog}
}

func (r *videoEditTaskRepo) Create(dbc dbctx.Context, t *types.VideoEditTask) (*types.VideoEditTask, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}

	if err := validation.Struct(t); err != nil {
		return nil, err
	}

	var projects int64
	if err := transaction.WithContext(dbc.Ctx).
		Model(&types.VideoProject{}).
		Where("id = ?", t.ProjectID).
		Count(&projects).Error; err != nil {
		return nil, err
	}
	if projects == 0 {
		return nil, &apperr.ReferentialError{Field: "project_id", Value: t.ProjectID}
	}

	if err := transaction.WithContext(dbc.Ctx).Create(t).Error; err != nil {
		return nil, err
	}
	return t, nil
}

func (r *videoEditTaskRepo) GetByID(dbc dbctx.Context, id int64) (*types.VideoEditTask, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}

	var result types.VideoEditTask
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

func (r *videoEditTaskRepo) GetByProjectID(dbc dbctx.Context, projectID int64) ([]*types.VideoEditTask, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.VideoEditTask
	if err := transaction.WithContext(dbc.Ctx).
		Where("project_id = ?", projectID).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *videoEditTaskRepo) Update(dbc dbctx.Context, id int64, in types.VideoEditTaskUpdate) error {
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

	now := time.Now().UTC()
	changes["updated_at"] = now
	if in.Status != nil {
		if in.Status.Terminal() {
			changes["completed_at"] = now
		} else {
			changes["completed_at"] = nil
		}
	}

	return transaction.WithContext(dbc.Ctx).
		Model(&types.VideoEditTask{}).
		Where("id = ?", id).
		Updates(changes).Error
}

func (r *videoEditTaskRepo) DeleteByIDs(dbc dbctx.Context, ids []int64) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if len(ids) == 0 {
		return nil
	}
	return transaction.WithContext(dbc.Ctx).
		Where("id IN ?", ids).
		Delete(&types.VideoEditTask{}).Error
}
