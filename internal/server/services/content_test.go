package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/dpetrovs/heirvault/internal/common"
	"github.com/dpetrovs/heirvault/internal/server/models"
)

func seedContent(t *testing.T, e *env, vaultID, id string, payload []byte) *models.ContentItem {
	t.Helper()
	item := &models.ContentItem{
		ID:        id,
		VaultID:   vaultID,
		Type:      models.ContentDocument,
		Title:     id,
		MimeType:  "application/pdf",
		Payload:   payload,
		SizeBytes: int64(len(payload)),
		CreatedAt: e.clock.Now(),
	}
	if err := e.rm.Contents(nil).Create(context.Background(), item); err != nil {
		t.Fatalf("seed content: %v", err)
	}
	return item
}

func TestContentList_AccessRules(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	vault := mustVault(t, e, "owner1", models.StatusActive)
	mustMember(t, e, vault.ID, "heir1", models.RoleHeir, 1)
	seedContent(t, e, vault.ID, "c1", []byte("secret"))

	// owner reads at any time, without payloads
	items, err := e.contents.List(ctx, "owner1", vault.ID)
	if err != nil || len(items) != 1 {
		t.Fatalf("owner list: %d %v", len(items), err)
	}
	if items[0].Payload != nil {
		t.Fatalf("list leaked payload")
	}

	// a member is locked out until the vault is unlocked
	if _, err := e.contents.List(ctx, "heir1", vault.ID); !errors.Is(err, common.ErrInvalidState) {
		t.Fatalf("member before unlock: got %v", err)
	}
	if _, err := e.contents.List(ctx, "stranger", vault.ID); !errors.Is(err, common.ErrorUnauthorized) {
		t.Fatalf("stranger: got %v", err)
	}

	vault.Status = models.StatusUnlocked
	if err := e.rm.Vaults(nil).Update(ctx, vault); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if _, err := e.contents.List(ctx, "heir1", vault.ID); err != nil {
		t.Fatalf("member after unlock: %v", err)
	}
}

func TestContentDownload_Inline(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	vault := mustVault(t, e, "owner1", models.StatusUnlocked)
	mustMember(t, e, vault.ID, "heir1", models.RoleHeir, 1)
	seedContent(t, e, vault.ID, "c1", []byte("secret"))

	res, err := e.contents.Download(ctx, "heir1", vault.ID, "c1")
	if err != nil {
		t.Fatalf("Download: %v", err)
	}
	if !bytes.Equal(res.Payload, []byte("secret")) || res.URL != "" {
		t.Fatalf("result = %+v", res)
	}
}

func TestContentDownload_DailyLimit(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	vault := mustVault(t, e, "owner1", models.StatusUnlocked)
	mustMember(t, e, vault.ID, "heir1", models.RoleHeir, 1)
	seedContent(t, e, vault.ID, "c1", []byte("x"))

	limit := models.PlanFree.DailyDownloadLimit()
	for i := 0; i < limit; i++ {
		if _, err := e.contents.Download(ctx, "heir1", vault.ID, "c1"); err != nil {
			t.Fatalf("download %d: %v", i, err)
		}
	}
	if _, err := e.contents.Download(ctx, "heir1", vault.ID, "c1"); !errors.Is(err, common.ErrDownloadLimitExceeded) {
		t.Fatalf("want ErrDownloadLimitExceeded, got %v", err)
	}

	// the owner is not limited
	for i := 0; i < limit+1; i++ {
		if _, err := e.contents.Download(ctx, "owner1", vault.ID, "c1"); err != nil {
			t.Fatalf("owner download %d: %v", i, err)
		}
	}

	// counter resets the next day
	e.clock.Advance(24 * time.Hour)
	if _, err := e.contents.Download(ctx, "heir1", vault.ID, "c1"); err != nil {
		t.Fatalf("next day: %v", err)
	}
}

func TestContentDownload_PremiumLimitHigher(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	vault := mustVault(t, e, "owner1", models.StatusUnlocked)
	vault.Plan = models.PlanPremium
	if err := e.rm.Vaults(nil).Update(ctx, vault); err != nil {
		t.Fatalf("Update: %v", err)
	}
	mustMember(t, e, vault.ID, "heir1", models.RoleHeir, 1)
	seedContent(t, e, vault.ID, "c1", []byte("x"))

	free := models.PlanFree.DailyDownloadLimit()
	for i := 0; i < free+1; i++ {
		if _, err := e.contents.Download(ctx, "heir1", vault.ID, "c1"); err != nil {
			t.Fatalf("download %d: %v", i, err)
		}
	}
}

func TestContentDelete(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	vault := mustVault(t, e, "owner1", models.StatusActive)
	mustMember(t, e, vault.ID, "heir1", models.RoleHeir, 1)
	seedContent(t, e, vault.ID, "c1", []byte("x"))

	if err := e.contents.Delete(ctx, "heir1", vault.ID, "c1"); !errors.Is(err, common.ErrorUnauthorized) {
		t.Fatalf("member delete: got %v", err)
	}
	if err := e.contents.Delete(ctx, "owner1", vault.ID, "ghost"); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("unknown item: got %v", err)
	}
	if err := e.contents.Delete(ctx, "owner1", vault.ID, "c1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := e.rm.Contents(nil).GetByID(ctx, vault.ID, "c1"); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("item survived delete: %v", err)
	}

	unlocked := mustVault(t, e, "owner1", models.StatusUnlocked)
	seedContent(t, e, unlocked.ID, "c2", []byte("x"))
	if err := e.contents.Delete(ctx, "owner1", unlocked.ID, "c2"); !errors.Is(err, common.ErrInvalidState) {
		t.Fatalf("delete on unlocked vault: got %v", err)
	}
}

func TestContentDelete_ReleasesUsedBytes(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	vault := mustVault(t, e, "owner1", models.StatusActive)
	seedContent(t, e, vault.ID, "c1", []byte("xyz"))
	seedContent(t, e, vault.ID, "c2", []byte("pq"))

	vault.StorageUsedBytes = 5
	if err := e.rm.Vaults(nil).Update(ctx, vault); err != nil {
		t.Fatalf("Update: %v", err)
	}

	if err := e.contents.Delete(ctx, "owner1", vault.ID, "c1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	updated, err := e.rm.Vaults(nil).GetByID(ctx, vault.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if updated.StorageUsedBytes != 2 {
		t.Fatalf("used bytes = %d, want 2", updated.StorageUsedBytes)
	}

	// a drifted counter never goes negative
	if err := e.contents.Delete(ctx, "owner1", vault.ID, "c2"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := e.contents.Delete(ctx, "owner1", vault.ID, "c2"); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("double delete: got %v", err)
	}
	updated, _ = e.rm.Vaults(nil).GetByID(ctx, vault.ID)
	if updated.StorageUsedBytes != 0 {
		t.Fatalf("used bytes = %d, want 0", updated.StorageUsedBytes)
	}
}

func TestContentList_DeletedVaultHidden(t *testing.T) {
	e := newEnv(t)
	vault := mustVault(t, e, "owner1", models.StatusDeleted)

	if _, err := e.contents.List(context.Background(), "owner1", vault.ID); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("deleted vault: got %v", err)
	}
}

func TestContentListOrder(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	vault := mustVault(t, e, "owner1", models.StatusActive)

	for i := 0; i < 5; i++ {
		seedContent(t, e, vault.ID, fmt.Sprintf("c%d", i), []byte("x"))
	}
	items, err := e.contents.List(ctx, "owner1", vault.ID)
	if err != nil || len(items) != 5 {
		t.Fatalf("list: %d %v", len(items), err)
	}
	for i, it := range items {
		if it.ID != fmt.Sprintf("c%d", i) {
			t.Fatalf("insertion order not preserved: %v", items)
		}
	}
}
