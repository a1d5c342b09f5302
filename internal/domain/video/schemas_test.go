package video

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mosaiclabs/mosaic-backend/internal/platform/apperr"
)

func TestNewVideoEditTask(t *testing.T) {
	task, err := NewVideoEditTask(3, VideoEditTaskCreate{
		EditType:   EditTypeTrim,
		UserPrompt: "cut the first ten seconds",
	})
	if err != nil {
		t.Fatalf("NewVideoEditTask: %v", err)
	}
	if task.Status != VideoStatusUploaded {
		t.Errorf("status: got %q, want uploaded", task.Status)
	}
	if !task.ProgressPercentage.Equal(decimal.Zero) {
		t.Errorf("progress: got %s, want 0", task.ProgressPercentage)
	}
	if task.CompletedAt != nil {
		t.Error("expected completed_at to be unset")
	}
}

func TestNewVideoEditTaskRejectsUnknownEditType(t *testing.T) {
	_, err := NewVideoEditTask(3, VideoEditTaskCreate{
		EditType:   VideoEditType("rotate"),
		UserPrompt: "rotate it",
	})
	if err == nil {
		t.Fatal("expected validation failure")
	}
	var enumErr *apperr.EnumError
	if !errors.As(err, &enumErr) || enumErr.Field != "edit_type" {
		t.Fatalf("expected EnumError on edit_type, got %v", err)
	}
}

func TestVideoEditTaskUpdateProgressRange(t *testing.T) {
	full := decimal.NewFromInt(100)
	changes, err := VideoEditTaskUpdate{ProgressPercentage: &full}.Changes()
	if err != nil {
		t.Fatalf("Changes at 100: %v", err)
	}
	if got, ok := changes["progress_percentage"].(decimal.Decimal); !ok || !got.Equal(full) {
		t.Fatalf("progress change: got %v", changes["progress_percentage"])
	}

	over := decimal.NewFromFloat(100.01)
	_, err = VideoEditTaskUpdate{ProgressPercentage: &over}.Changes()
	if err == nil {
		t.Fatal("expected progress over 100 to fail")
	}
	var fieldErr *apperr.FieldError
	if !errors.As(err, &fieldErr) || fieldErr.Field != "progress_percentage" {
		t.Fatalf("expected FieldError on progress_percentage, got %v", err)
	}

	negative := decimal.NewFromInt(-1)
	if _, err := (VideoEditTaskUpdate{ProgressPercentage: &negative}).Changes(); err == nil {
		t.Fatal("expected negative progress to fail")
	}
}

func TestVideoStatusTerminal(t *testing.T) {
	if VideoStatusUploaded.Terminal() || VideoStatusProcessing.Terminal() {
		t.Error("uploaded/processing must not be terminal")
	}
	if !VideoStatusReady.Terminal() || !VideoStatusError.Terminal() {
		t.Error("ready/error must be terminal")
	}
}
