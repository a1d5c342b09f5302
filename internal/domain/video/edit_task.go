package video

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// VideoEditType names the kind of edit a task performs.
type VideoEditType string

const (
	EditTypeTrim    VideoEditType = "trim"
	EditTypeMerge   VideoEditType = "merge"
	EditTypeFilter  VideoEditType = "filter"
	EditTypeEnhance VideoEditType = "enhance"
	EditTypeCustom  VideoEditType = "custom"
)

func VideoEditTypeValues() []string {
	return []string{"trim", "merge", "filter", "enhance", "custom"}
}

func (t VideoEditType) Valid() bool {
	switch t {
	case EditTypeTrim, EditTypeMerge, EditTypeFilter, EditTypeEnhance, EditTypeCustom:
		return true
	}
	return false
}

type VideoEditTask struct {
	ID        int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	ProjectID int64 `gorm:"not null;index;column:project_id" json:"project_id" validate:"required"`
	Project   *VideoProject `gorm:"foreignKey:ProjectID;references:ID" json:"project,omitempty" validate:"-"`

	EditType VideoEditType `gorm:"size:20;not null;column:edit_type" json:"edit_type" validate:"required,oneof=trim merge filter enhance custom"`
	Status   VideoStatus   `gorm:"size:20;not null;column:status" json:"status" validate:"required,oneof=uploaded processing ready error"`

	// The natural-language instruction the edit parameters were derived from.
	UserPrompt     string            `gorm:"size:2000;not null;column:user_prompt" json:"user_prompt" validate:"required,max=2000"`
	EditParameters datatypes.JSONMap `gorm:"column:edit_parameters" json:"edit_parameters"`

	OutputFilePath *string `gorm:"size:500;column:output_file_path" json:"output_file_path,omitempty" validate:"omitempty,max=500"`
	ProcessingLog  string  `gorm:"size:5000;not null;column:processing_log" json:"processing_log" validate:"max=5000"`
	ErrorMessage   *string `gorm:"size:1000;column:error_message" json:"error_message,omitempty" validate:"omitempty,max=1000"`

	ProgressPercentage decimal.Decimal `gorm:"type:decimal(5,2);not null;column:progress_percentage" json:"progress_percentage"`

	CreatedAt   time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"not null" json:"updated_at"`
	CompletedAt *time.Time `gorm:"column:completed_at" json:"completed_at,omitempty"`
}

func (VideoEditTask) TableName() string { return "video_edit_tasks" }
