package video

import (
	"time"

	"gorm.io/datatypes"
)

// VideoProject groups source files and edit tasks for one piece of work.
type VideoProject struct {
	ID     int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID int64 `gorm:"not null;index;column:user_id" json:"user_id" validate:"required"`

	Title       string            `gorm:"size:200;not null;column:title" json:"title" validate:"required,max=200"`
	Description string            `gorm:"size:1000;not null;column:description" json:"description" validate:"max=1000"`
	Settings    datatypes.JSONMap `gorm:"column:settings" json:"settings"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (VideoProject) TableName() string { return "video_projects" }
