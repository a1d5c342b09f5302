package search

import (
	"time"

	"gorm.io/datatypes"

	"github.com/mosaiclabs/mosaic-backend/internal/domain/defaults"
	"github.com/mosaiclabs/mosaic-backend/internal/platform/validation"
)

// SearchQueryCreate submits a query. Engine list and locale fall back to the
// declared defaults when omitted.
type SearchQueryCreate struct {
	Query         string   `json:"query" validate:"required,max=1000"`
	SearchEngines []string `json:"search_engines,omitempty" validate:"omitempty,min=1,dive,required"`
	MaxResults    *int     `json:"max_results,omitempty" validate:"omitempty,gte=0"`
	Language      *string  `json:"language,omitempty" validate:"omitempty,max=10"`
	Region        *string  `json:"region,omitempty" validate:"omitempty,max=10"`
}

func NewSearchQuery(userID int64, in SearchQueryCreate) (*SearchQuery, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	q := &SearchQuery{
		UserID:        userID,
		Query:         in.Query,
		Status:        SearchStatusPending,
		SearchEngines: datatypes.NewJSONSlice(defaults.SearchEngines()),
		MaxResults:    defaults.SearchMaxResults,
		Language:      defaults.SearchLanguage,
		Region:        defaults.SearchRegion,
		Results:       datatypes.JSONMap{},
		ResultsCount:  0,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if len(in.SearchEngines) > 0 {
		q.SearchEngines = datatypes.NewJSONSlice(in.SearchEngines)
	}
	if in.MaxResults != nil {
		q.MaxResults = *in.MaxResults
	}
	if in.Language != nil {
		q.Language = *in.Language
	}
	if in.Region != nil {
		q.Region = *in.Region
	}
	return q, nil
}
