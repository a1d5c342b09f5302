package chat

import (
	"context"
	"errors"
	"testing"

	"github.com/mosaiclabs/mosaic-backend/internal/data/repos/testutil"
	types "github.com/mosaiclabs/mosaic-backend/internal/domain"
	"github.com/mosaiclabs/mosaic-backend/internal/platform/apperr"
	"github.com/mosaiclabs/mosaic-backend/internal/platform/dbctx"
)

func TestChatFileAttachmentRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewChatFileAttachmentRepo(db, testutil.Logger(t))
	dbc := dbctx.Context{Ctx: context.Background(), Tx: tx}

	owner := testutil.SeedUser(t, dbc.Ctx, tx)
	session := testutil.SeedChatSession(t, dbc.Ctx, tx, owner.ID)
	msg := testutil.SeedChatMessage(t, dbc.Ctx, tx, session.ID, types.RoleUser, "see attachment")
	file := testutil.SeedUploadedFile(t, dbc.Ctx, tx, owner.ID)

	att, err := repo.Create(dbc, msg.ID, file.ID)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if att.ID == 0 {
		t.Fatal("expected assigned id")
	}

	byFile, err := repo.GetByFileID(dbc, file.ID)
	if err != nil || len(byFile) != 1 || byFile[0].MessageID != msg.ID {
		t.Fatalf("GetByFileID: %v %+v", err, byFile)
	}

	_, err = repo.Create(dbc, 999999999, file.ID)
	var refErr *apperr.ReferentialError
	if !errors.As(err, &refErr) || refErr.Field != "message_id" {
		t.Fatalf("expected ReferentialError on message_id, got %v", err)
	}

	_, err = repo.Create(dbc, msg.ID, 999999999)
	if !errors.As(err, &refErr) || refErr.Field != "file_id" {
		t.Fatalf("expected ReferentialError on file_id, got %v", err)
	}

	if err := repo.DeleteByMessageIDs(dbc, []int64{msg.ID}); err != nil {
		t.Fatalf("DeleteByMessageIDs: %v", err)
	}
	byMsg, err := repo.GetByMessageIDs(dbc, []int64{msg.ID})
	if err != nil || len(byMsg) != 0 {
		t.Fatalf("expected no attachments after delete: %v %d", err, len(byMsg))
	}
}
