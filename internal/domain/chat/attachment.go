package chat

import "time"

// ChatFileAttachment joins messages to uploaded files, realizing the
// many-to-many between the two.
type ChatFileAttachment struct {
	ID        int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	MessageID int64 `gorm:"not null;index;column:message_id" json:"message_id" validate:"required"`
	FileID    int64 `gorm:"not null;index;column:file_id" json:"file_id" validate:"required"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (ChatFileAttachment) TableName() string { return "chat_file_attachments" }
