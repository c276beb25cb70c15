package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dpetrovs/heirvault/internal/common"
	"github.com/dpetrovs/heirvault/internal/server/models"
)

func TestVaultCreate_StartsInDraft(t *testing.T) {
	e := newEnv(t)

	vault, err := e.vaults.Create(context.Background(), "owner1", "estate", "family vault",
		models.PlanPremium, models.UnlockConditions{RequiredHeirApprovals: 2})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if vault.Status != models.StatusDraft {
		t.Fatalf("status = %s, want draft", vault.Status)
	}
	if vault.StorageQuotaBytes != models.PlanPremium.Quota() {
		t.Fatalf("quota = %d", vault.StorageQuotaBytes)
	}
	if !vault.ExpiresAt.Equal(e.clock.Now().Add(PlanPeriod)) {
		t.Fatalf("expires_at = %v", vault.ExpiresAt)
	}
}

func TestVaultCreate_Validation(t *testing.T) {
	e := newEnv(t)

	if _, err := e.vaults.Create(context.Background(), "owner1", "", "", models.PlanFree,
		models.UnlockConditions{}); !errors.Is(err, common.ErrorValidation) {
		t.Fatalf("empty name: want ErrorValidation, got %v", err)
	}
	if _, err := e.vaults.Create(context.Background(), "owner1", "x", "", models.PlanFree,
		models.UnlockConditions{RequiredHeirApprovals: -1}); !errors.Is(err, common.ErrorValidation) {
		t.Fatalf("negative quorum: want ErrorValidation, got %v", err)
	}
}

func TestVaultGet_OwnerReadCountsAsActivity(t *testing.T) {
	e := newEnv(t)
	vault := mustVault(t, e, "owner1", models.StatusActive)

	e.clock.Advance(2 * time.Hour)
	got, err := e.vaults.Get(context.Background(), "owner1", vault.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !got.LastOwnerActivityAt.Equal(e.clock.Now()) {
		t.Fatalf("owner activity not touched: %v", got.LastOwnerActivityAt)
	}
}

func TestVaultGet_MemberReadDoesNotTouchActivity(t *testing.T) {
	e := newEnv(t)
	vault := mustVault(t, e, "owner1", models.StatusActive)
	mustMember(t, e, vault.ID, "heir1", models.RoleHeir, 1)
	before := vault.LastOwnerActivityAt

	e.clock.Advance(2 * time.Hour)
	got, err := e.vaults.Get(context.Background(), "heir1", vault.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !got.LastOwnerActivityAt.Equal(before) {
		t.Fatalf("member read touched owner activity")
	}

	if _, err := e.vaults.Get(context.Background(), "stranger", vault.ID); !errors.Is(err, common.ErrorUnauthorized) {
		t.Fatalf("stranger: want ErrorUnauthorized, got %v", err)
	}
}

func TestApplyPaymentConfirmation_Creation(t *testing.T) {
	e := newEnv(t)
	vault := mustVault(t, e, "owner1", models.StatusDraft)

	session := &models.PaymentSession{ID: "s1", VaultID: vault.ID, UserID: "owner1",
		Purpose: models.PurposeVaultCreation, Plan: models.PlanFree}
	if err := e.vaults.ApplyPaymentConfirmation(context.Background(), session); err != nil {
		t.Fatalf("ApplyPaymentConfirmation: %v", err)
	}

	got, _ := e.rm.Vaults(nil).GetByID(context.Background(), vault.ID)
	if got.Status != models.StatusNeedSetup {
		t.Fatalf("status = %s, want need_setup", got.Status)
	}
}

func TestApplyPaymentConfirmation_Renewal(t *testing.T) {
	e := newEnv(t)
	vault := mustVault(t, e, "owner1", models.StatusGraceMaster)

	session := &models.PaymentSession{ID: "s1", VaultID: vault.ID, UserID: "owner1",
		Purpose: models.PurposePlanRenewal, Plan: models.PlanPremium}
	if err := e.vaults.ApplyPaymentConfirmation(context.Background(), session); err != nil {
		t.Fatalf("ApplyPaymentConfirmation: %v", err)
	}

	got, _ := e.rm.Vaults(nil).GetByID(context.Background(), vault.ID)
	if got.Status != models.StatusActive {
		t.Fatalf("status = %s, want active", got.Status)
	}
	if got.Plan != models.PlanPremium || got.StorageQuotaBytes != models.PlanPremium.Quota() {
		t.Fatalf("plan upgrade not applied: %s %d", got.Plan, got.StorageQuotaBytes)
	}
	if !got.ExpiresAt.Equal(e.clock.Now().Add(PlanPeriod)) {
		t.Fatalf("expires_at not extended: %v", got.ExpiresAt)
	}
}

func TestApplyPaymentConfirmation_CreationReplayIsIdempotent(t *testing.T) {
	e := newEnv(t)
	vault := mustVault(t, e, "owner1", models.StatusActive)

	// the outbox may replay a creation confirmation after the vault has
	// long advanced; that must drain cleanly without touching the vault
	session := &models.PaymentSession{ID: "s1", VaultID: vault.ID,
		Purpose: models.PurposeVaultCreation, Plan: models.PlanFree}
	if err := e.vaults.ApplyPaymentConfirmation(context.Background(), session); err != nil {
		t.Fatalf("replayed confirmation: %v", err)
	}

	got, _ := e.rm.Vaults(nil).GetByID(context.Background(), vault.ID)
	if got.Status != models.StatusActive {
		t.Fatalf("status = %s, want active", got.Status)
	}
}

func TestFinalizeSetup(t *testing.T) {
	e := newEnv(t)
	vault := mustVault(t, e, "owner1", models.StatusSetupComplete)

	if _, err := e.vaults.FinalizeSetup(context.Background(), "intruder", vault.ID); !errors.Is(err, common.ErrorUnauthorized) {
		t.Fatalf("intruder: want ErrorUnauthorized, got %v", err)
	}

	got, err := e.vaults.FinalizeSetup(context.Background(), "owner1", vault.ID)
	if err != nil {
		t.Fatalf("FinalizeSetup: %v", err)
	}
	if got.Status != models.StatusActive {
		t.Fatalf("status = %s, want active", got.Status)
	}
}

func TestApproveUnlock_TallyAndIdempotence(t *testing.T) {
	e := newEnv(t)
	vault := mustVault(t, e, "owner1", models.StatusActive)
	mustMember(t, e, vault.ID, "heir1", models.RoleHeir, 1)
	mustMember(t, e, vault.ID, "wit1", models.RoleWitness, 2)

	counts, err := e.vaults.ApproveUnlock(context.Background(), "heir1", vault.ID)
	if err != nil {
		t.Fatalf("ApproveUnlock: %v", err)
	}
	if counts.HeirApprovals != 1 || counts.WitnessApprovals != 0 {
		t.Fatalf("counts = %+v", counts)
	}

	// second approval by the same member is a no-op
	counts, err = e.vaults.ApproveUnlock(context.Background(), "heir1", vault.ID)
	if err != nil {
		t.Fatalf("ApproveUnlock repeat: %v", err)
	}
	if counts.HeirApprovals != 1 {
		t.Fatalf("repeat approval double-counted: %+v", counts)
	}

	counts, err = e.vaults.ApproveUnlock(context.Background(), "wit1", vault.ID)
	if err != nil {
		t.Fatalf("ApproveUnlock witness: %v", err)
	}
	if counts.WitnessApprovals != 1 {
		t.Fatalf("counts = %+v", counts)
	}
}

func TestApproveUnlock_Rejections(t *testing.T) {
	e := newEnv(t)
	vault := mustVault(t, e, "owner1", models.StatusActive)
	m := mustMember(t, e, vault.ID, "heir1", models.RoleHeir, 1)
	mustMember(t, e, vault.ID, "owner1", models.RoleMaster, 3)

	if _, err := e.vaults.ApproveUnlock(context.Background(), "nobody", vault.ID); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("non-member: got %v", err)
	}
	if _, err := e.vaults.ApproveUnlock(context.Background(), "owner1", vault.ID); !errors.Is(err, common.ErrorValidation) {
		t.Fatalf("master approval: got %v", err)
	}

	m.Status = models.MemberRevoked
	if err := e.rm.Members(nil).Update(context.Background(), m); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if _, err := e.vaults.ApproveUnlock(context.Background(), "heir1", vault.ID); !errors.Is(err, common.ErrorUnauthorized) {
		t.Fatalf("revoked member: got %v", err)
	}
}

func TestApproveUnlock_QuorumAdvancesGraceHeirVault(t *testing.T) {
	e := newEnv(t)
	vault, err := e.vaults.Create(context.Background(), "owner1", "estate", "",
		models.PlanFree, models.UnlockConditions{RequiredHeirApprovals: 2})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	vault.Status = models.StatusGraceHeir
	if err := e.rm.Vaults(nil).Update(context.Background(), vault); err != nil {
		t.Fatalf("Update: %v", err)
	}
	mustMember(t, e, vault.ID, "heir1", models.RoleHeir, 1)
	mustMember(t, e, vault.ID, "heir2", models.RoleHeir, 2)

	if _, err := e.vaults.ApproveUnlock(context.Background(), "heir1", vault.ID); err != nil {
		t.Fatalf("first approval: %v", err)
	}
	got, _ := e.rm.Vaults(nil).GetByID(context.Background(), vault.ID)
	if got.Status != models.StatusGraceHeir {
		t.Fatalf("advanced below quorum: %s", got.Status)
	}

	if _, err := e.vaults.ApproveUnlock(context.Background(), "heir2", vault.ID); err != nil {
		t.Fatalf("second approval: %v", err)
	}
	got, _ = e.rm.Vaults(nil).GetByID(context.Background(), vault.ID)
	if got.Status != models.StatusUnlockable {
		t.Fatalf("status = %s, want unlockable", got.Status)
	}
}

func TestTriggerUnlock(t *testing.T) {
	e := newEnv(t)
	vault := mustVault(t, e, "owner1", models.StatusUnlockable)
	mustMember(t, e, vault.ID, "heir1", models.RoleHeir, 1)

	if _, err := e.vaults.TriggerUnlock(context.Background(), "stranger", vault.ID, false); !errors.Is(err, common.ErrorUnauthorized) {
		t.Fatalf("stranger: got %v", err)
	}

	got, err := e.vaults.TriggerUnlock(context.Background(), "heir1", vault.ID, false)
	if err != nil {
		t.Fatalf("TriggerUnlock: %v", err)
	}
	if got.Status != models.StatusUnlocked || got.UnlockedAt.IsZero() {
		t.Fatalf("unlock not applied: %s %v", got.Status, got.UnlockedAt)
	}
}

func TestTriggerUnlock_WrongState(t *testing.T) {
	e := newEnv(t)
	vault := mustVault(t, e, "owner1", models.StatusActive)

	if _, err := e.vaults.TriggerUnlock(context.Background(), "admin", vault.ID, true); !errors.Is(err, common.ErrInvalidTransition) {
		t.Fatalf("want ErrInvalidTransition, got %v", err)
	}
}

func TestDelete_AdminOverrideFromAnyState(t *testing.T) {
	e := newEnv(t)

	for _, status := range []models.VaultStatus{models.StatusDraft, models.StatusActive, models.StatusUnlocked} {
		vault := mustVault(t, e, "owner1", status)
		got, err := e.vaults.Delete(context.Background(), "admin", vault.ID)
		if err != nil {
			t.Fatalf("Delete from %s: %v", status, err)
		}
		if got.Status != models.StatusDeleted {
			t.Fatalf("status = %s, want deleted", got.Status)
		}
	}
}

func TestCascade_RemovesCollectionsKeepsBilling(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	vault := mustVault(t, e, "owner1", models.StatusDeleted)
	mustMember(t, e, vault.ID, "heir1", models.RoleHeir, 1)

	if err := e.rm.Contents(nil).Create(ctx, &models.ContentItem{ID: "c1", VaultID: vault.ID, SizeBytes: 10}); err != nil {
		t.Fatalf("content Create: %v", err)
	}
	if err := e.rm.Billing(nil).Append(ctx, &models.BillingEntry{ID: "b1", VaultID: vault.ID, Amount: 500}); err != nil {
		t.Fatalf("billing Append: %v", err)
	}

	if failed := e.vaults.Cascade(ctx, vault.ID); failed != 0 {
		t.Fatalf("Cascade failed steps: %d", failed)
	}

	if _, err := e.rm.Vaults(nil).GetByID(ctx, vault.ID); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("vault record survived cascade: %v", err)
	}
	members, _ := e.rm.Members(nil).ListByVault(ctx, vault.ID)
	if len(members) != 0 {
		t.Fatalf("members survived cascade")
	}
	bills, err := e.rm.Billing(nil).ListByVault(ctx, vault.ID)
	if err != nil || len(bills) != 1 {
		t.Fatalf("billing history must survive: %d %v", len(bills), err)
	}
}
