// Package domain re-exports every model and request shape so callers can
// import one package as `types`.
package domain

import (
	"github.com/mosaiclabs/mosaic-backend/internal/domain/chat"
	"github.com/mosaiclabs/mosaic-backend/internal/domain/files"
	"github.com/mosaiclabs/mosaic-backend/internal/domain/search"
	"github.com/mosaiclabs/mosaic-backend/internal/domain/user"
	"github.com/mosaiclabs/mosaic-backend/internal/domain/video"
)

// Entities.
type User = user.User
type UploadedFile = files.UploadedFile
type ChatSession = chat.ChatSession
type ChatMessage = chat.ChatMessage
type ChatFileAttachment = chat.ChatFileAttachment
type SearchQuery = search.SearchQuery
type VideoProject = video.VideoProject
type VideoFile = video.VideoFile
type VideoEditTask = video.VideoEditTask

// Request/update shapes.
type UserCreate = user.UserCreate
type UserUpdate = user.UserUpdate
type FileUploadRequest = files.FileUploadRequest
type ChatSessionCreate = chat.ChatSessionCreate
type ChatSessionUpdate = chat.ChatSessionUpdate
type ChatMessageCreate = chat.ChatMessageCreate
type SearchQueryCreate = search.SearchQueryCreate
type VideoProjectCreate = video.VideoProjectCreate
type VideoProjectUpdate = video.VideoProjectUpdate
type VideoEditTaskCreate = video.VideoEditTaskCreate
type VideoEditTaskUpdate = video.VideoEditTaskUpdate

// Enumerations.
type FileStatus = files.FileStatus
type ChatMessageRole = chat.ChatMessageRole
type SearchStatus = search.SearchStatus
type VideoStatus = video.VideoStatus
type VideoEditType = video.VideoEditType

const (
	FileStatusUploading  = files.FileStatusUploading
	FileStatusUploaded   = files.FileStatusUploaded
	FileStatusProcessing = files.FileStatusProcessing
	FileStatusReady      = files.FileStatusReady
	FileStatusError      = files.FileStatusError

	RoleUser      = chat.RoleUser
	RoleAssistant = chat.RoleAssistant
	RoleSystem    = chat.RoleSystem

	SearchStatusPending    = search.SearchStatusPending
	SearchStatusInProgress = search.SearchStatusInProgress
	SearchStatusCompleted  = search.SearchStatusCompleted
	SearchStatusFailed     = search.SearchStatusFailed

	VideoStatusUploaded   = video.VideoStatusUploaded
	VideoStatusProcessing = video.VideoStatusProcessing
	VideoStatusReady      = video.VideoStatusReady
	VideoStatusError      = video.VideoStatusError

	EditTypeTrim    = video.EditTypeTrim
	EditTypeMerge   = video.EditTypeMerge
	EditTypeFilter  = video.EditTypeFilter
	EditTypeEnhance = video.EditTypeEnhance
	EditTypeCustom  = video.EditTypeCustom
)

// Constructors and shape helpers.
var (
	NewUser          = user.NewUser
	NewUploadedFile  = files.NewUploadedFile
	NewChatSession   = chat.NewChatSession
	NewChatMessage   = chat.NewChatMessage
	NewSearchQuery   = search.NewSearchQuery
	NewVideoProject  = video.NewVideoProject
	NewVideoEditTask = video.NewVideoEditTask
)

// Declared value sets of the enumerations.
var (
	FileStatusValues      = files.FileStatusValues
	ChatMessageRoleValues = chat.ChatMessageRoleValues
	SearchStatusValues    = search.SearchStatusValues
	VideoStatusValues     = video.VideoStatusValues
	VideoEditTypeValues   = video.VideoEditTypeValues
)
