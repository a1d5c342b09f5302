package search

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

type SearchQueryRepo interface {
	Create(dbc dbctx.Context, q *types.SearchQuery) (*types.SearchQuery, error)
	GetByID(dbc dbctx.Context, id int64) (*types.SearchQuery, error)
	GetByUserID(dbc dbctx.Context, userID int64) ([]*types.SearchQuery, error)
	// SetStatus moves the query to status, keeping completed_at in step:
	// set on entering a terminal status, cleared otherwise.
	SetStatus(dbc dbctx.Context, id int64, status types.SearchStatus) error
	// Complete records the search backend's results and closes the query.
	Complete(dbc dbctx.Context, id int64, results datatypes.JSONMap, resultsCount int) error
	// Fail closes the query with an error message.
	Fail(dbc dbctx.Context, id int64, errorMessage string) error
	DeleteByIDs(dbc dbctx.Context, ids []int64) error
}

type searchQueryRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSearchQueryRepo(db *gorm.DB, baseLog *logger.Logger) SearchQueryRepo {
	repoLog := baseLog.With("repo", "SearchQueryRepo")
	return &searchQueryRepo{db: db, log: repoLog}
}

func (r *searchQueryRepo) Create(dbc dbctx.Context, q *types.SearchQuery) (*types.SearchQuery, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}

	if err := validation.Struct(q); err != nil {
		return nil, err
	}

	var owners int64
	if err := transaction.WithContext(dbc.Ctx).
		Model(&types.User{}).
		Where("id = ?", q.UserID).
		Count(&owners).Error; err != nil {
		return nil, err
	}
	if owners == 0 {
		return nil, &apperr.ReferentialError{Field: "user_id", Value: q.UserID}
	}

	if err := transaction.WithContext(dbc.Ctx).Create(q).Error; err != nil {
		return nil, err
	}
	return q, nil
}

func (r *searchQueryRepo) GetByID(dbc dbctx.Context, id int64) (*types.SearchQuery, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}

	var result types.SearchQuery
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

func (r *searchQueryRepo) GetByUserID(dbc dbctx.Context, userID int64) ([]*types.SearchQuery, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.SearchQuery
	if err := transaction.WithContext(dbc.Ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *searchQueryRepo) SetStatus(dbc dbctx.Context, id int64, status types.SearchStatus) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}

	if !status.Valid() {
		return &apperr.EnumError{Field: "status", Value: status, Allowed: types.SearchStatusValues()}
	}

	now := time.Now().UTC()
	changes := map[string]any{
		"status":     status,
		"updated_at": now,
	}
	if status.Terminal() {
		changes["completed_at"] = now
	} else {
		changes["completed_at"] = nil
	}

	return transaction.WithContext(dbc.Ctx).
		Model(&types.SearchQuery{}).
		Where("id = ?", id).
		Updates(changes).Error
}

func (r *searchQueryRepo) Complete(dbc dbctx.Context, id int64, results datatypes.JSONMap, resultsCount int) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}

	if resultsCount < 0 {
		return &apperr.FieldError{Field: "results_count", Constraint: "gte=0", Value: resultsCount}
	}

	now := time.Now().UTC()
	return transaction.WithContext(dbc.Ctx).
		Model(&types.SearchQuery{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":        types.SearchStatusCompleted,
			"results":       results,
			"results_count": resultsCount,
			"error_message": nil,
			"completed_at":  now,
			"updated_at":    now,
		}).Error
}

func (r *searchQueryRepo) Fail(dbc dbctx.Context, id int64, errorMessage string) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}

	if len([]rune(errorMessage)) > 1000 {
		return &apperr.FieldError{Field: "error_message", Constraint: "max=1000", Value: errorMessage}
	}

	now := time.Now().UTC()
	return transaction.WithContext(dbc.Ctx).
		Model(&types.SearchQuery{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":        types.SearchStatusFailed,
			"error_message": errorMessage,
			"completed_at":  now,
			"updated_at":    now,
		}).Error
}

func (r *searchQueryRepo) DeleteByIDs(dbc dbctx.Context, ids []int64) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if len(ids) == 0 {
		return nil
	}
	return transaction.WithContext(dbc.Ctx).
		Where("id IN ?", ids).
		Delete(&types.SearchQuery{}).Error
}
