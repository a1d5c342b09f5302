package files

import (
	"time"

	"gorm.io/datatypes"
)

// FileStatus tracks an upload through its processing lifecycle.
type FileStatus string

const (
	FileStatusUploading  FileStatus = "uploading"
	FileStatusUploaded   FileStatus = "uploaded"
	FileStatusProcessing FileStatus = "processing"
	FileStatusReady      FileStatus = "ready"
	FileStatusError      FileStatus = "error"
)

func FileStatusValues() []string {
	return []string{"uploading", "uploaded", "processing", "ready", "error"}
}

func (s FileStatus) Valid() bool {
	switch s {
	case FileStatusUploading, FileStatusUploaded, FileStatusProcessing, FileStatusReady, FileStatusError:
		return true
	}
	return false
}

type UploadedFile struct {
	ID     int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID int64 `gorm:"not null;index;column:user_id" json:"user_id" validate:"required"`

	Filename         string `gorm:"size:255;not null;column:filename" json:"filename" validate:"required,max=255"`
	OriginalFilename string `gorm:"size:255;not null;column:original_filename" json:"original_filename" validate:"required,max=255"`
	FilePath         string `gorm:"size:500;not null;column:file_path" json:"file_path" validate:"required,max=500"`
	FileSize         int64  `gorm:"not null;column:file_size" json:"file_size" validate:"gte=0"`
	MimeType         string `gorm:"size:100;not null;column:mime_type" json:"mime_type" validate:"required,max=100"`

	// SHA-256 of the content. Indexed for deduplication lookups; uniqueness
	// is deliberately not enforced.
	FileHash string `gorm:"size:64;not null;index;column:file_hash" json:"file_hash" validate:"required,len=64,hexadecimal"`

	Status FileStatus `gorm:"size:20;not null;column:status" json:"status" validate:"required,oneof=uploading uploaded processing ready error"`

	FileMetadata  datatypes.JSONMap `gorm:"column:file_metadata" json:"file_metadata"`
	ProcessedData datatypes.JSONMap `gorm:"column:processed_data" json:"processed_data"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (UploadedFile) TableName() string { return "uploaded_files" }
