package repos

import (
	"gorm.io/gorm"

	chatrepos "github.com/mosaiclabs/mosaic-backend/internal/data/repos/chat"
	filerepos "github.com/mosaiclabs/mosaic-backend/internal/data/repos/files"
	searchrepos "github.com/mosaiclabs/mosaic-backend/internal/data/repos/search"
	userrepos "github.com/mosaiclabs/mosaic-backend/internal/data/repos/user"
	videorepos "github.com/mosaiclabs/mosaic-backend/internal/data/repos/video"
	"github.com/mosaiclabs/mosaic-backend/internal/platform/logger"
)

type (
	UserRepo               = userrepos.UserRepo
	UploadedFileRepo       = filerepos.UploadedFileRepo
	ChatSessionRepo        = chatrepos.ChatSessionRepo
	ChatMessageRepo        = chatrepos.ChatMessageRepo
	ChatFileAttachmentRepo = chatrepos.ChatFileAttachmentRepo
	SearchQueryRepo        = searchrepos.SearchQueryRepo
	VideoProjectRepo       = videorepos.VideoProjectRepo
	VideoFileRepo          = videorepos.VideoFileRepo
	VideoEditTaskRepo      = videorepos.VideoEditTaskRepo
)

type Repos struct {
	User               UserRepo
	UploadedFile       UploadedFileRepo
	ChatSession        ChatSessionRepo
	ChatMessage        ChatMessageRepo
	ChatFileAttachment ChatFileAttachmentRepo
	SearchQuery        SearchQueryRepo
	VideoProject       VideoProjectRepo
	VideoFile          VideoFileRepo
	VideoEditTask      VideoEditTaskRepo
}

func NewRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		User:               userrepos.NewUserRepo(db, log),
		UploadedFile:       filerepos.NewUploadedFileRepo(db, log),
		ChatSession:        chatrepos.NewChatSessionRepo(db, log),
		ChatMessage:        chatrepos.NewChatMessageRepo(db, log),
		ChatFileAttachment: chatrepos.NewChatFileAttachmentRepo(db, log),
		SearchQuery:        searchrepos.NewSearchQueryRepo(db, log),
		VideoProject:       videorepos.NewVideoProjectRepo(db, log),
		VideoFile:          videorepos.NewVideoFileRepo(db, log),
		VideoEditTask:      videorepos.NewVideoEditTaskRepo(db, log),
	}
}
