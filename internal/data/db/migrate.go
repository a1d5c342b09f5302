package db

import (
	"gorm.io/gorm"

	types "github.com/mosaiclabs/mosaic-backend/internal/domain"
)

// AutoMigrateAll creates or updates the schema for every model. Referential
// integrity between tables is enforced by the repos, not database constraints,
// so migration order only matters for readability.
func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		&types.User{},
		&types.UploadedFile{},
		&types.ChatSession{},
		&types.ChatMessage{},
		&types.ChatFileAttachment{},
		&types.SearchQuery{},
		&types.VideoProject{},
		&types.VideoFile{},
		&types.VideoEditTask{},
	)
}

func (s *PostgresService) AutoMigrateAll() error {
	s.log.Info("Auto migrating postgres tables...")
	if err := AutoMigrateAll(s.db); err != nil {
		s.log.Error("Auto migration failed for postgres tables", "error", err)
		return err
	}
	s.log.Info("Auto migration complete")
	return nil
}
