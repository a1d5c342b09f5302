package files

import (
	"time"

	"gorm.io/datatypes"

	"github.com/mosaiclabs/mosaic-backend/internal/platform/validation"
)

// FileUploadRequest is the client's announcement of an upload. The storage
// backend supplies the final path and content hash.
type FileUploadRequest struct {
	Filename string `json:"filename" validate:"required,max=255"`
	FileSize int64  `json:"file_size" validate:"gte=0"`
	MimeType string `json:"mime_type" validate:"required,max=100"`
}

// NewUploadedFile builds the record for a file whose bytes the storage
// backend has placed at filePath. The record starts in the uploading state.
func NewUploadedFile(userID int64, in FileUploadRequest, storedName, filePath, fileHash string) (*UploadedFile, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	f := &UploadedFile{
		UserID:           userID,
		Filename:         storedName,
		OriginalFilename: in.Filename,
		FilePath:         filePath,
		FileSize:         in.FileSize,
		MimeType:         in.MimeType,
		FileHash:         fileHash,
		Status:           FileStatusUploading,
		FileMetadata:     datatypes.JSONMap{},
		ProcessedData:    datatypes.JSONMap{},
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := validation.Struct(f); err != nil {
		return nil, err
	}
	return f, nil
}
