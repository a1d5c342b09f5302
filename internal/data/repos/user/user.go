package user

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	types "github.com/mosaiclabs/mosaic-backend/internal/domain"
	"github.com/mosaiclabs/mosaic-backend/internal/platform/apperr"
	"github.com/mosaiclabs/mosaic-backend/internal/platform/dbctx"
	"github.com/mosaiclabs/mosaic-backend/internal/platform/logger"
	"github.com/mosaiclabs/mosaic-backend/internal/platform/validation"
)

type UserRepo interface {
	Create(dbc dbctx.Context, u *types.User) (*types.User, error)
	GetByID(dbc dbctx.Context, id int64) (*types.User, error)
	GetByIDs(dbc dbctx.Context, ids []int64) ([]*types.User, error)
	GetByUsername(dbc dbctx.Context, username string) (*types.User, error)
	UsernameExists(dbc dbctx.Context, username string) (bool, error)
	EmailExists(dbc dbctx.Context, email string) (bool, error)
	Update(dbc dbctx.Context, id int64, in types.UserUpdate) error
	AddStorageUsed(dbc dbctx.Context, id int64, delta int64) error
	DeleteByIDs(dbc dbctx.Context, ids []int64) error
}

type userRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUserRepo(db *gorm.DB, baseLog *logger.Logger) UserRepo {
	repoLog := baseLog.With("repo", "UserRepo")
	return &userRepo{db: db, log: repoLog}
}

func (r *userRepo) Create(dbc dbctx.Context, u *types.User) (*types.User, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}

	if err := validation.Struct(u); err != nil {
		return nil, err
	}

	taken, err := r.usernameExists(dbc.Ctx, transaction, u.Username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, &apperr.UniquenessError{Field: "username", Value: u.Username}
	}
	taken, err = r.emailExists(dbc.Ctx, transaction, u.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, &apperr.UniquenessError{Field: "email", Value: u.Email}
	}

	if err := transaction.WithContext(dbc.Ctx).Create(u).Error; err != nil {
		return nil, err
	}
	return u, nil
}

func (r *userRepo) GetByID(dbc dbctx.Context, id int64) (*types.User, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}

	var result types.User
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

func (r *userRepo) GetByIDs(dbc dbctx.Context, ids []int64) ([]*types.User, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.User
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

func (r *userRepo) GetByUsername(dbc dbctx.Context, username string) (*types.User, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}

	var result types.User
	if err := transaction.WithContext(dbc.Ctx).
		Where("username = ?", username).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &result, nil
}

func (r *userRepo) UsernameExists(dbc dbctx.Context, username string) (bool, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	return r.usernameExists(dbc.Ctx, transaction, username)
}

func (r *userRepo) EmailExists(dbc dbctx.Context, email string) (bool, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	return r.emailExists(dbc.Ctx, transaction, email)
}

func (r *userRepo) Update(dbc dbctx.Context, id int64, in types.UserUpdate) error {
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

	if username, ok := changes["username"].(string); ok {
		taken, err := r.otherRowExists(dbc, transaction, "username", username, id)
		if err != nil {
			return err
		}
		if taken {
			return &apperr.UniquenessError{Field: "username", Value: username}
		}
	}
	if email, ok := changes["email"].(string); ok {
		taken, err := r.otherRowExists(dbc, transaction, "email", email, id)
		if err != nil {
			return err
		}
		if taken {
			return &apperr.UniquenessError{Field: "email", Value: email}
		}
	}

	changes["updated_at"] = time.Now().UTC()
	return transaction.WithContext(dbc.Ctx).
		Model(&types.User{}).
		Where("id = ?", id).
		Updates(changes).Error
}

// AddStorageUsed adjusts the user's storage counter by delta bytes. Quota
// enforcement is the caller's policy.
func (r *userRepo) AddStorageUsed(dbc dbctx.Context, id int64, delta int64) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(dbc.Ctx).
		Model(&types.User{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"storage_used": gorm.Expr("storage_used + ?", delta),
			"updated_at":   time.Now().UTC(),
		}).Error
}

func (r *userRepo) DeleteByIDs(dbc dbctx.Context, ids []int64) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if len(ids) == 0 {
		return nil
	}
	return transaction.WithContext(dbc.Ctx).
		Where("id IN ?", ids).
		Delete(&types.User{}).Error
}

func (r *userRepo) usernameExists(ctx context.Context, tx *gorm.DB, username string) (bool, error) {
	var count int64
	if err := tx.WithContext(ctx).
		Model(&types.User{}).
		Where("username = ?", username).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *userRepo) emailExists(ctx context.Context, tx *gorm.DB, email string) (bool, error) {
	var count int64
	if err := tx.WithContext(ctx).
		Model(&types.User{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *userRepo) otherRowExists(dbc dbctx.Context, tx *gorm.DB, column, value string, excludeID int64) (bool, error) {
	var count int64
	if err := tx.WithContext(dbc.Ctx).
		Model(&types.User{}).
		Where(column+" = ? AND id <> ?", value, excludeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
