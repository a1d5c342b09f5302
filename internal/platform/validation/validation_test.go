package validation

import (
	"errors"
	"testing"

	"github.com/mosaiclabs/mosaic-backend/internal/platform/apperr"
)

func TestEmailPattern(t *testing.T) {
	valid := []string{
		"alice@example.com",
		"a.b+tag@sub.example.co",
		"user_name-1@host-2.example.org",
	}
	for _, s := range valid {
		if !emailPattern.MatchString(s) {
			t.Errorf("expected %q to be accepted", s)
		}
	}

	invalid := []string{
		"",
		"alice",
		"alice@",
		"@example.com",
		"alice@example",
		"alice@exa mple.com",
		"alice@example.",
	}
	for _, s := range invalid {
		if emailPattern.MatchString(s) {
			t.Errorf("expected %q to be rejected", s)
		}
	}
}

func TestStructTranslation(t *testing.T) {
	type form struct {
		Email string `json:"email" validate:"required,email_basic"`
		Role  string `json:"role" validate:"required,oneof=user assistant system"`
		Name  string `json:"name" validate:"max=3"`
	}

	err := Struct(form{Email: "not-an-email", Role: "moderator", Name: "toolong"})
	if err == nil {
		t.Fatal("expected validation failure")
	}
	if !errors.Is(err, apperr.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	var enumErr *apperr.EnumError
	if !errors.As(err, &enumErr) {
		t.Fatalf("expected EnumError in %v", err)
	}
	if enumErr.Field != "role" {
		t.Fatalf("EnumError field: got %q", enumErr.Field)
	}
	if len(enumErr.Allowed) != 3 {
		t.Fatalf("EnumError allowed: got %v", enumErr.Allowed)
	}

	var fieldErr *apperr.FieldError
	if !errors.As(err, &fieldErr) {
		t.Fatalf("expected FieldError in %v", err)
	}
}

func TestStructFieldNamesUseJSONTags(t *testing.T) {
	type form struct {
		FullName string `json:"full_name" validate:"required"`
	}
	err := Struct(form{})
	if err == nil {
		t.Fatal("expected validation failure")
	}
	var fieldErr *apperr.FieldError
	if !errors.As(err, &fieldErr) {
		t.Fatalf("expected FieldError in %v", err)
	}
	if fieldErr.Field != "full_name" {
		t.Fatalf("expected json tag name, got %q", fieldErr.Field)
	}
}

func TestStructValid(t *testing.T) {
	type form struct {
		Email string `json:"email" validate:"required,email_basic"`
	}
	if err := Struct(form{Email: "alice@example.com"}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}
