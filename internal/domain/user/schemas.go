package user

import (
	"time"

	"github.com/mosaiclabs/mosaic-backend/internal/domain/defaults"
	"github.com/mosaiclabs/mosaic-backend/internal/platform/validation"
)

// UserCreate is the payload for registering a user.
type UserCreate struct {
	Username     string `json:"username" validate:"required,max=50"`
	Email        string `json:"email" validate:"required,max=255,email_basic"`
	FullName     string `json:"full_name" validate:"required,max=200"`
	StorageQuota *int64 `json:"storage_quota,omitempty" validate:"omitempty,gte=0"`
}

// UserUpdate is a partial update; nil fields leave existing values unchanged.
type UserUpdate struct {
	Username     *string `json:"username,omitempty" validate:"omitempty,max=50"`
	Email        *string `json:"email,omitempty" validate:"omitempty,max=255,email_basic"`
	FullName     *string `json:"full_name,omitempty" validate:"omitempty,max=200"`
	IsActive     *bool   `json:"is_active,omitempty"`
	StorageQuota *int64  `json:"storage_quota,omitempty" validate:"omitempty,gte=0"`
}

// NewUser builds a User from in, applying declared defaults for omitted
// fields. Uniqueness of username and email is enforced by the repo at write
// time.
func NewUser(in UserCreate) (*User, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	quota := defaults.StorageQuotaBytes
	if in.StorageQuota != nil {
		quota = *in.StorageQuota
	}
	now := time.Now().UTC()
	return &User{
		Username:     in.Username,
		Email:        in.Email,
		FullName:     in.FullName,
		IsActive:     true,
		StorageQuota: quota,
		StorageUsed:  0,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// Changes returns the column update map for fields that are set.
func (in UserUpdate) Changes() (map[string]any, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	changes := map[string]any{}
	if in.Username != nil {
		changes["username"] = *in.Username
	}
	if in.Email != nil {
		changes["email"] = *in.Email
	}
	if in.FullName != nil {
		changes["full_name"] = *in.FullName
	}
	if in.IsActive != nil {
		changes["is_active"] = *in.IsActive
	}
	if in.StorageQuota != nil {
		changes["storage_quota"] = *in.StorageQuota
	}
	return changes, nil
}
