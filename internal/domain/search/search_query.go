package search

import (
	"time"

	"gorm.io/datatypes"
)

// SearchStatus tracks a query from submission to a terminal outcome.
type SearchStatus string

const (
	SearchStatusPending    SearchStatus = "pending"
	SearchStatusInProgress SearchStatus = "in_progress"
	SearchStatusCompleted  SearchStatus = "completed"
	SearchStatusFailed     SearchStatus = "failed"
)

func SearchStatusValues() []string {
	return []string{"pending", "in_progress", "completed", "failed"}
}

func (s SearchStatus) Valid() bool {
	switch s {
	case SearchStatusPending, SearchStatusInProgress, SearchStatusCompleted, SearchStatusFailed:
		return true
	}
	return false
}

// Terminal reports whether s ends the query's lifecycle. completed_at is set
// exactly when the status is terminal.
func (s SearchStatus) Terminal() bool {
	return s == SearchStatusCompleted || s == SearchStatusFailed
}

type SearchQuery struct {
	ID     int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID int64 `gorm:"not null;index;column:user_id" json:"user_id" validate:"required"`

	Query  string       `gorm:"size:1000;not null;column:query" json:"query" validate:"required,max=1000"`
	Status SearchStatus `gorm:"size:20;not null;column:status" json:"status" validate:"required,oneof=pending in_progress completed failed"`

	SearchEngines datatypes.JSONSlice[string] `gorm:"column:search_engines" json:"search_engines"`
	MaxResults    int                         `gorm:"not null;column:max_results" json:"max_results" validate:"gte=0"`
	Language      string                      `gorm:"size:10;not null;column:language" json:"language" validate:"required,max=10"`
	Region        string                      `gorm:"size:10;not null;column:region" json:"region" validate:"required,max=10"`

	Results      datatypes.JSONMap `gorm:"column:results" json:"results"`
	ResultsCount int               `gorm:"not null;column:results_count" json:"results_count" validate:"gte=0"`
	ErrorMessage *string           `gorm:"size:1000;column:error_message" json:"error_message,omitempty" validate:"omitempty,max=1000"`

	CreatedAt   time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"not null" json:"updated_at"`
	CompletedAt *time.Time `gorm:"column:completed_at" json:"completed_at,omitempty"`
}

func (SearchQuery) TableName() string { return "search_queries" }
