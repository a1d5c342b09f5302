package search

import (
	"errors"
	"strings"
	"testing"

	"github.com/mosaiclabs/mosaic-backend/internal/domain/defaults"
	"github.com/mosaiclabs/mosaic-backend/internal/platform/apperr"
	"github.com/mosaiclabs/mosaic-backend/internal/pkg/pointers"
)

func TestNewSearchQueryDefaults(t *testing.T) {
	q, err := NewSearchQuery(1, SearchQueryCreate{Query: "golang generics"})
	if err != nil {
		t.Fatalf("NewSearchQuery: %v", err)
	}
	if q.Status != SearchStatusPending {
		t.Errorf("status: got %q, want pending", q.Status)
	}
	engines := []string(q.SearchEngines)
	if len(engines) != 1 || engines[0] != "google" {
		t.Errorf("search_engines: got %v, want [google]", engines)
	}
	if q.MaxResults != defaults.SearchMaxResults {
		t.Errorf("max_results: got %d, want %d", q.MaxResults, defaults.SearchMaxResults)
	}
	if q.Language != "en" || q.Region != "us" {
		t.Errorf("locale: got %q/%q, want en/us", q.Language, q.Region)
	}
	if q.CompletedAt != nil {
		t.Error("expected completed_at to be unset")
	}
}

func TestNewSearchQueryOverrides(t *testing.T) {
	q, err := NewSearchQuery(1, SearchQueryCreate{
		Query:         "kubernetes",
		SearchEngines: []string{"bing", "duckduckgo"},
		MaxResults:    pointers.Int(25),
		Language:      pointers.String("de"),
		Region:        pointers.String("de"),
	})
	if err != nil {
		t.Fatalf("NewSearchQuery: %v", err)
	}
	engines := []string(q.SearchEngines)
	if len(engines) != 2 || engines[0] != "bing" {
		t.Errorf("search_engines: got %v", engines)
	}
	if q.MaxResults != 25 || q.Language != "de" || q.Region != "de" {
		t.Fatalf("overrides not applied: %+v", q)
	}
}

func TestNewSearchQueryRejectsLongQuery(t *testing.T) {
	_, err := NewSearchQuery(1, SearchQueryCreate{Query: strings.Repeat("q", 1001)})
	if err == nil {
		t.Fatal("expected validation failure")
	}
	if !errors.Is(err, apperr.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestSearchStatusTerminal(t *testing.T) {
	if SearchStatusPending.Terminal() || SearchStatusInProgress.Terminal() {
		t.Error("pending/in_progress must not be terminal")
	}
	if !SearchStatusCompleted.Terminal() || !SearchStatusFailed.Terminal() {
		t.Error("completed/failed must be terminal")
	}
}
