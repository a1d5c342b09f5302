package user

import (
	"time"
)

type User struct {
	ID       int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Username string `gorm:"size:50;uniqueIndex;not null;column:username" json:"username" validate:"required,max=50"`
	Email    string `gorm:"size:255;uniqueIndex;not null;column:email" json:"email" validate:"required,max=255,email_basic"`
	FullName string `gorm:"size:200;not null;column:full_name" json:"full_name" validate:"required,max=200"`
	IsActive bool   `gorm:"not null;column:is_active" json:"is_active"`

	// Storage accounting in bytes. Keeping storage_used within storage_quota
	// is the calling layer's policy, not enforced here.
	StorageQuota int64 `gorm:"not null;column:storage_quota" json:"storage_quota" validate:"gte=0"`
	StorageUsed  int64 `gorm:"not null;column:storage_used" json:"storage_used" validate:"gte=0"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (User) TableName() string { return "users" }
