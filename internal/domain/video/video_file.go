package video

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// VideoStatus tracks a video file (and edit task output) through processing.
type VideoStatus string

const (
	VideoStatusUploaded   VideoStatus = "uploaded"
	VideoStatusProcessing VideoStatus = "processing"
	VideoStatusReady      VideoStatus = "ready"
	VideoStatusError      VideoStatus = "error"
)

func VideoStatusValues() []string {
	return []string{"uploaded", "processing", "ready", "error"}
}

func (s VideoStatus) Valid() bool {
	switch s {
	case VideoStatusUploaded, VideoStatusProcessing, VideoStatusReady, VideoStatusError:
		return true
	}
	return false
}

// Terminal reports whether s ends an edit task's lifecycle.
func (s VideoStatus) Terminal() bool {
	return s == VideoStatusReady || s == VideoStatusError
}

type VideoFile struct {
	ID        int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	ProjectID int64 `gorm:"not null;index;column:project_id" json:"project_id" validate:"required"`
	Project   *VideoProject `gorm:"foreignKey:ProjectID;references:ID" json:"project,omitempty" validate:"-"`

	Filename         string `gorm:"size:255;not null;column:filename" json:"filename" validate:"required,max=255"`
	OriginalFilename string `gorm:"size:255;not null;column:original_filename" json:"original_filename" validate:"required,max=255"`
	FilePath         string `gorm:"size:500;not null;column:file_path" json:"file_path" validate:"required,max=500"`
	FileSize         int64  `gorm:"not null;column:file_size" json:"file_size" validate:"gte=0"`

	// Probe results from the processing backend; unknown until probed.
	Duration   decimal.NullDecimal `gorm:"type:decimal(12,3);column:duration" json:"duration,omitempty"`
	Resolution *string             `gorm:"size:20;column:resolution" json:"resolution,omitempty" validate:"omitempty,max=20"`
	FPS        decimal.NullDecimal `gorm:"type:decimal(7,3);column:fps" json:"fps,omitempty"`
	Codec      *string             `gorm:"size:50;column:codec" json:"codec,omitempty" validate:"omitempty,max=50"`

	Status        VideoStatus       `gorm:"size:20;not null;column:status" json:"status" validate:"required,oneof=uploaded processing ready error"`
	VideoMetadata datatypes.JSONMap `gorm:"column:video_metadata" json:"video_metadata"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (VideoFile) TableName() string { return "video_files" }
