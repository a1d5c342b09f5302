package video

import (
	"context"
	"errors"
	"testing"

	"github.com/mosaiclabs/mosaic-backend/internal/data/repos/testutil"
	types "github.com/mosaiclabs/mosaic-backend/internal/domain"
	"github.com/mosaiclabs/mosaic-backend/internal/pkg/pointers"
	"github.com/mosaiclabs/mosaic-backend/internal/platform/apperr"
	"github.com/mosaiclabs/mosaic-backend/internal/platform/dbctx"
)

func TestVideoProjectRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewVideoProjectRepo(db, testutil.Logger(t))
	dbc := dbctx.Context{Ctx: context.Background(), Tx: tx}

	owner := testutil.SeedUser(t, dbc.Ctx, tx)

	input, err := types.NewVideoProject(owner.ID, types.VideoProjectCreate{
		Title:       "Vacation cut",
		Description: pointers.String("rough assembly"),
	})
	if err != nil {
		t.Fatalf("NewVideoProject: %v", err)
	}
	created, err := repo.Create(dbc, input)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := repo.Update(dbc, created.ID, types.VideoProjectUpdate{
		Title: pointers.String("Final cut"),
	}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := repo.GetByID(dbc, created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Title != "Final cut" || got.Description != "rough assembly" {
		t.Fatalf("unexpected project: %+v", got)
	}

	byUser, err := repo.GetByUserID(dbc, owner.ID)
	if err != nil || len(byUser) != 1 {
		t.Fatalf("GetByUserID: %v %d", err, len(byUser))
	}

	if err := repo.DeleteByIDs(dbc, []int64{created.ID}); err != nil {
		t.Fatalf("DeleteByIDs: %v", err)
	}
	if _, err := repo.GetByID(dbc, created.ID); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestVideoProjectRepoRejectsMissingUser(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewVideoProjectRepo(db, testutil.Logger(t))
	dbc := dbctx.Context{Ctx: context.Background(), Tx: tx}

	input, err := types.NewVideoProject(999999999, types.VideoProjectCreate{Title: "orphan"})
	if err != nil {
		t.Fatalf("NewVideoProject: %v", err)
	}
	_, err = repo.Create(dbc, input)
	var refErr *apperr.ReferentialError
	if !errors.As(err, &refErr) || refErr.Field != "user_id" {
		t.Fatalf("expected ReferentialError on user_id, got %v", err)
	}
}
