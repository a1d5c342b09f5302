package user

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

func TestUserRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewUserRepo(db, testutil.Logger(t))
	dbc := dbctx.Context{Ctx: context.Background(), Tx: tx}

	suffix := testutil.UniqueHex(12)
	input, err := types.NewUser(types.UserCreate{
		Username: "alice_" + suffix,
		Email:    "alice_" + suffix + "@example.com",
		FullName: "Alice Smith",
	})
	if err != nil {
		t.Fatalf("NewUser: %v", err)
	}

	created, err := repo.Create(dbc, input)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("Create: expected assigned id")
	}

	got, err := repo.GetByID(dbc, created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Username != created.Username || !got.IsActive {
		t.Fatalf("GetByID: unexpected result: %+v", got)
	}

	if _, err := repo.GetByID(dbc, created.ID+100000); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("GetByID (missing): expected ErrNotFound, got %v", err)
	}

	byName, err := repo.GetByUsername(dbc, created.Username)
	if err != nil || byName.ID != created.ID {
		t.Fatalf("GetByUsername: %v %+v", err, byName)
	}

	exists, err := repo.EmailExists(dbc, created.Email)
	if err != nil || !exists {
		t.Fatalf("EmailExists: %v %v", exists, err)
	}
}

func TestUserRepoRejectsDuplicateEmail(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewUserRepo(db, testutil.Logger(t))
	dbc := dbctx.Context{Ctx: context.Background(), Tx: tx}

	existing := testutil.SeedUser(t, dbc.Ctx, tx)

	dup, err := types.NewUser(types.UserCreate{
		Username: "other_" + testutil.UniqueHex(12),
		Email:    existing.Email,
		FullName: "Other",
	})
	if err != nil {
		t.Fatalf("NewUser: %v", err)
	}

	_, err = repo.Create(dbc, dup)
	var uniqErr *apperr.UniquenessError
	if !errors.As(err, &uniqErr) || uniqErr.Field != "email" {
		t.Fatalf("expected UniquenessError on email, got %v", err)
	}
	if !errors.Is(err, apperr.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestUserRepoUpdate(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewUserRepo(db, testutil.Logger(t))
	dbc := dbctx.Context{Ctx: context.Background(), Tx: tx}

	u := testutil.SeedUser(t, dbc.Ctx, tx)
	other := testutil.SeedUser(t, dbc.Ctx, tx)

	if err := repo.Update(dbc, u.ID, types.UserUpdate{
		FullName: pointers.String("Renamed"),
		IsActive: pointers.Bool(false),
	}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := repo.GetByID(dbc, u.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.FullName != "Renamed" || got.IsActive {
		t.Fatalf("Update not applied: %+v", got)
	}
	if !got.UpdatedAt.After(u.UpdatedAt) {
		t.Error("expected updated_at to advance")
	}
	if !got.CreatedAt.Equal(u.CreatedAt) {
		t.Error("expected created_at to be unchanged")
	}

	err = repo.Update(dbc, u.ID, types.UserUpdate{Email: pointers.String(other.Email)})
	var uniqErr *apperr.UniquenessError
	if !errors.As(err, &uniqErr) {
		t.Fatalf("expected UniquenessError, got %v", err)
	}

	// Writing a user's own email back is not a conflict.
	if err := repo.Update(dbc, u.ID, types.UserUpdate{Email: pointers.String(u.Email)}); err != nil {
		t.Fatalf("Update (own email): %v", err)
	}
}

func TestUserRepoAddStorageUsed(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewUserRepo(db, testutil.Logger(t))
	dbc := dbctx.Context{Ctx: context.Background(), Tx: tx}

	u := testutil.SeedUser(t, dbc.Ctx, tx)

	if err := repo.AddStorageUsed(dbc, u.ID, 4096); err != nil {
		t.Fatalf("AddStorageUsed: %v", err)
	}
	if err := repo.AddStorageUsed(dbc, u.ID, -1024); err != nil {
		t.Fatalf("AddStorageUsed (release): %v", err)
	}

	got, err := repo.GetByID(dbc, u.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.StorageUsed != 3072 {
		t.Fatalf("storage_used: got %d, want 3072", got.StorageUsed)
	}
}
