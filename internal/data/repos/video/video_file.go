package video

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	types "github.com/mosaiclabs/mosaic-backend/internal/domain"
	"github.com/mosaiclabs/mosaic-backend/internal/platform/apperr"
	"github.com/mosaiclabs/mosaic-backend/internal/platform/dbctx"
	"github.com/mosaiclabs/mosaic-backend/internal/platform/logger"
	"github.com/mosaiclabs/mosaic-backend/internal/platform/validation"
)

// ProbeResult carries the stream attributes the processing backend reads
// from an ingested file.
type ProbeResult struct {
	Duration   decimal.Decimal
	Resolution string
	FPS        decimal.Decimal
	Codec      string
}

type VideoFileRepo interface {
	Create(dbc dbctx.Context, f *types.VideoFile) (*types.VideoFile, error)
	GetByID(dbc dbctx.Context, id int64) (*types.VideoFile, error)
	GetByProjectID(dbc dbctx.Context, projectID int64) ([]*types.VideoFile, error)
	SetStatus(dbc dbctx.Context, id int64, status types.VideoStatus) error
	SetProbeResult(dbc dbctx.Context, id int64, probe ProbeResult) error
	DeleteByIDs(dbc dbctx.Context, ids []int64) error
}

type videoFileRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewVideoFileRepo(db *gorm.DB, baseLog *logger.Logger) VideoFileRepo {
	repoLog := baseLog.With("repo", "VideoFileRepo")
	return &videoFileRepo{db: db, log: repoLog}
}

func (r *videoFileRepo) Create(dbc dbctx.Context, f *types.VideoFile) (*types.VideoFile, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}

	if err := validation.Struct(f); err != nil {
		return nil, err
	}

	var projects int64
	if err := transaction.WithContext(dbc.Ctx).
		Model(&types.VideoProject{}).
		Where("id = ?", f.ProjectID).
		Count(&projects).Error; err != nil {
		return nil, err
	}
	if projects == 0 {
		return nil, &apperr.ReferentialError{Field: "project_id", Value: f.ProjectID}
	}

	if err := transaction.WithContext(dbc.Ctx).Create(f).Error; err != nil {
		return nil, err
	}
	return f, nil
}

func (r *videoFileRepo) GetByID(dbc dbctx.Context, id int64) (*types.VideoFile, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}

	var result types.VideoFile
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

func (r *videoFileRepo) GetByProjectID(dbc dbctx.Context, projectID int64) ([]*types.VideoFile, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.VideoFile
	if err := transaction.WithContext(dbc.Ctx).
		Where("project_id = ?", projectID).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *videoFileRepo) SetStatus(dbc dbctx.Context, id int64, status types.VideoStatus) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}

	if !status.Valid() {
		return &apperr.EnumError{Field: "status", Value: status, Allowed: types.VideoStatusValues()}
	}

	return transaction.WithContext(dbc.Ctx).
		Model(&types.VideoFile{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":     status,
			"updated_at": time.Now().UTC(),
		}).Error
}

func (r *videoFileRepo) SetProbeResult(dbc dbctx.Context, id int64, probe ProbeResult) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}

	if len([]rune(probe.Resolution)) > 20 {
		return &apperr.FieldError{Field: "resolution", Constraint: "max=20", Value: probe.Resolution}
	}
	if len([]rune(probe.Codec)) > 50 {
		return &apperr.FieldError{Field: "codec", Constraint: "max=50", Value: probe.Codec}
	}

	return transaction.WithContext(dbc.Ctx).
		Model(&types.VideoFile{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"duration":   probe.Duration,
			"resolution": probe.Resolution,
			"fps":        probe.FPS,
			"codec":      probe.Codec,
			"updated_at": time.Now().UTC(),
		}).Error
}

func (r *videoFileRepo) DeleteByIDs(dbc dbctx.Context, ids []int64) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if len(ids) == 0 {
		return nil
	}
	return transaction.WithContext(dbc.Ctx).
		Where("id IN ?", ids).
		Delete(&types.VideoFile{}).Error
}
