package chat

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mosaiclabs/mosaic-backend/internal/data/repos/testutil"
	types "github.com/mosaiclabs/mosaic-backend/internal/domain"
	"github.com/mosaiclabs/mosaic-backend/internal/pkg/pointers"
	"github.com/mosaiclabs/mosaic-backend/internal/platform/apperr"
	"github.com/mosaiclabs/mosaic-backend/internal/platform/dbctx"
)

func TestChatSessionRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewChatSessionRepo(db, testutil.Logger(t))
	dbc := dbctx.Context{Ctx: context.Background(), Tx: tx}

	owner := testutil.SeedUser(t, dbc.Ctx, tx)

	input, err := types.NewChatSession(owner.ID, types.ChatSessionCreate{})
	if err != nil {
		t.Fatalf("NewChatSession: %v", err)
	}
	created, err := repo.Create(dbc, input)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByID(dbc, created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Title != "New Chat" || got.AIModel != "gpt-3.5-turbo" {
		t.Fatalf("defaults not persisted: %+v", got)
	}
	if !got.Temperature.Equal(decimal.NewFromFloat(0.7)) {
		t.Fatalf("temperature: got %s", got.Temperature)
	}

	temp := decimal.NewFromFloat(0.2)
	if err := repo.Update(dbc, created.ID, types.ChatSessionUpdate{
		Title:       pointers.String("Research"),
		Temperature: &temp,
		IsActive:    pointers.Bool(false),
	}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err = repo.GetByID(dbc, created.ID)
	if err != nil {
		t.Fatalf("GetByID after update: %v", err)
	}
	if got.Title != "Research" || got.IsActive {
		t.Fatalf("update not applied: %+v", got)
	}
	if !got.Temperature.Equal(temp) {
		t.Fatalf("temperature after update: got %s", got.Temperature)
	}

	byUser, err := repo.GetByUserID(dbc, owner.ID)
	if err != nil || len(byUser) != 1 {
		t.Fatalf("GetByUserID: %v %d", err, len(byUser))
	}
}

func TestChatSessionRepoRejectsMissingUser(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewChatSessionRepo(db, testutil.Logger(t))
	dbc := dbctx.Context{Ctx: context.Background(), Tx: tx}

	input, err := types.NewChatSession(999999999, types.ChatSessionCreate{})
	if err != nil {
		t.Fatalf("NewChatSession: %v", err)
	}
	_, err = repo.Create(dbc, input)
	var refErr *apperr.ReferentialError
	if !errors.As(err, &refErr) || refErr.Field != "user_id" {
		t.Fatalf("expected ReferentialError on user_id, got %v", err)
	}
}
