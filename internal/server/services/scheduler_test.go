package services

import (
	"context"
	"testing"
	"time"

	"github.com/dpetrovs/heirvault/internal/dbx"
	"github.com/dpetrovs/heirvault/internal/server/lifecycle"
	"github.com/dpetrovs/heirvault/internal/server/models"
	"github.com/dpetrovs/heirvault/internal/server/repositories/repomanager"
	"github.com/dpetrovs/heirvault/internal/server/repositories/vaults"
)

func TestSchedulerSweep_GraceChain(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	vault := mustVault(t, e, "owner1", models.StatusActive)

	// nothing to do before the plan expires
	rep := e.sched.RunOnce(ctx)
	if rep.VaultsAdvanced != 0 || rep.Errors != 0 {
		t.Fatalf("premature pass: %+v", rep)
	}

	e.clock.Advance(PlanPeriod)
	if rep = e.sched.RunOnce(ctx); rep.VaultsAdvanced != 1 {
		t.Fatalf("plan expiry pass: %+v", rep)
	}
	got, _ := e.rm.Vaults(nil).GetByID(ctx, vault.ID)
	if got.Status != models.StatusGraceMaster {
		t.Fatalf("status = %s, want grace_master", got.Status)
	}

	e.clock.Advance(GraceMasterWindow)
	e.sched.RunOnce(ctx)
	got, _ = e.rm.Vaults(nil).GetByID(ctx, vault.ID)
	if got.Status != models.StatusGraceHeir {
		t.Fatalf("status = %s, want grace_heir", got.Status)
	}

	e.clock.Advance(GraceHeirWindow)
	e.sched.RunOnce(ctx)
	got, _ = e.rm.Vaults(nil).GetByID(ctx, vault.ID)
	if got.Status != models.StatusExpired {
		t.Fatalf("status = %s, want expired", got.Status)
	}

	e.clock.Advance(PurgeBuffer)
	e.sched.RunOnce(ctx)
	got, _ = e.rm.Vaults(nil).GetByID(ctx, vault.ID)
	if got.Status != models.StatusDeleted {
		t.Fatalf("status = %s, want deleted", got.Status)
	}
}

func TestSchedulerSweep_GraceHeirUnlocksOnConditions(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	vault, err := e.vaults.Create(ctx, "owner1", "estate", "", models.PlanFree,
		models.UnlockConditions{UnlockAt: e.clock.Now().Add(time.Hour)})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	vault.Status = models.StatusGraceHeir
	if err := e.rm.Vaults(nil).Update(ctx, vault); err != nil {
		t.Fatalf("Update: %v", err)
	}

	e.clock.Advance(2 * time.Hour)
	e.sched.RunOnce(ctx)
	got, _ := e.rm.Vaults(nil).GetByID(ctx, vault.ID)
	if got.Status != models.StatusUnlockable {
		t.Fatalf("status = %s, want unlockable", got.Status)
	}

	// forgotten for a year, then expired
	e.clock.Advance(UnlockWindow)
	e.sched.RunOnce(ctx)
	got, _ = e.rm.Vaults(nil).GetByID(ctx, vault.ID)
	if got.Status != models.StatusExpired {
		t.Fatalf("status = %s, want expired", got.Status)
	}
}

func TestSchedulerRunOnce_DrainsOutbox(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	vault := mustVault(t, e, "owner1", models.StatusDraft)

	session, err := e.payments.Initialize(ctx, "owner1", vault.ID, models.PurposeVaultCreation, models.PlanPremium)
	if err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	e.ledger.transfers = []Transfer{
		{Destination: session.Account, Amount: 500, Timestamp: e.clock.Now(), Ref: "t1"},
	}
	if _, err := e.payments.Verify(ctx, session.ID, 1); err != nil {
		t.Fatalf("Verify: %v", err)
	}

	rep := e.sched.RunOnce(ctx)
	if rep.OutboxDrained != 2 || rep.Errors != 0 {
		t.Fatalf("pass = %+v, want 2 drained", rep)
	}

	got, _ := e.rm.Vaults(nil).GetByID(ctx, vault.ID)
	if got.Status != models.StatusNeedSetup {
		t.Fatalf("status = %s, want need_setup", got.Status)
	}
	bills, _ := e.rm.Billing(nil).ListByVault(ctx, vault.ID)
	if len(bills) != 1 {
		t.Fatalf("billing entries = %d, want 1", len(bills))
	}
	pending, _ := e.rm.Outbox(nil).ListPending(ctx)
	if len(pending) != 0 {
		t.Fatalf("outbox not drained: %d", len(pending))
	}
}

func TestSchedulerRunOnce_FailedOutboxEntryRetried(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	// entry referencing a missing session fails and stays queued
	if err := e.rm.Outbox(nil).Enqueue(ctx, &models.OutboxEntry{
		Kind: models.OutboxLifecycleAdvance, SessionID: "ghost", VaultID: "v1",
	}); err != nil {
		t.Fatalf("Enqueue: %v", err)
	}

	rep := e.sched.RunOnce(ctx)
	if rep.OutboxDrained != 0 || rep.Errors != 1 {
		t.Fatalf("pass = %+v", rep)
	}
	pending, _ := e.rm.Outbox(nil).ListPending(ctx)
	if len(pending) != 1 || pending[0].Attempts != 1 {
		t.Fatalf("entry not retained for retry: %+v", pending)
	}
}

func TestSchedulerRunOnce_ReplayedOutboxEntryDrains(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	vault := mustVault(t, e, "owner1", models.StatusActive)

	// the creation confirmation was applied, but deleting the entry was
	// lost; the replay finds an advanced vault and must still drain
	session := &models.PaymentSession{ID: "s1", VaultID: vault.ID, UserID: "owner1",
		Purpose: models.PurposeVaultCreation, Plan: models.PlanFree,
		State: models.PaymentConfirmed}
	if err := e.rm.Payments(nil).Create(ctx, session); err != nil {
		t.Fatalf("seed session: %v", err)
	}
	if err := e.rm.Outbox(nil).Enqueue(ctx, &models.OutboxEntry{
		Kind: models.OutboxLifecycleAdvance, SessionID: "s1", VaultID: vault.ID,
	}); err != nil {
		t.Fatalf("Enqueue: %v", err)
	}

	rep := e.sched.RunOnce(ctx)
	if rep.OutboxDrained != 1 || rep.Errors != 0 {
		t.Fatalf("pass = %+v, want 1 drained", rep)
	}
	if pending, _ := e.rm.Outbox(nil).ListPending(ctx); len(pending) != 0 {
		t.Fatalf("entry not drained: %+v", pending)
	}

	got, _ := e.rm.Vaults(nil).GetByID(ctx, vault.ID)
	if got.Status != models.StatusActive {
		t.Fatalf("status = %s, want active", got.Status)
	}
}

func TestSchedulerRunOnce_CascadesDeletedVaults(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	vault := mustVault(t, e, "owner1", models.StatusDeleted)
	mustMember(t, e, vault.ID, "heir1", models.RoleHeir, 1)

	rep := e.sched.RunOnce(ctx)
	if rep.VaultsCascaded != 1 || rep.Errors != 0 {
		t.Fatalf("pass = %+v", rep)
	}
	if _, err := e.rm.Vaults(nil).GetByID(ctx, vault.ID); err == nil {
		t.Fatalf("vault survived cascade")
	}
}

// flakyVaults fails Update for a chosen set of vault ids.
type flakyVaults struct {
	vaults.Repository
	failIDs map[string]bool
}

func (f *flakyVaults) Update(ctx context.Context, v *models.VaultRecord) error {
	if f.failIDs[v.ID] {
		return errBoom{}
	}
	return f.Repository.Update(ctx, v)
}

type flakyManager struct {
	*repomanager.MemoryRepositoryManager
	failIDs map[string]bool
}

func (m *flakyManager) Vaults(db dbx.DBTX) vaults.Repository {
	return &flakyVaults{Repository: m.MemoryRepositoryManager.Vaults(db), failIDs: m.failIDs}
}

func TestSchedulerRunOnce_FailureIsolation(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	rm := &flakyManager{MemoryRepositoryManager: e.rm, failIDs: map[string]bool{}}
	log := testLogger()
	vaultSvc := NewVaultService(nil, rm, e.engine, e.clock, log)
	sched := NewScheduler(nil, rm, vaultSvc, e.invites, e.payments, e.uploads,
		lifecycle.NewEngine(e.clock), e.clock, log)

	ids := make([]string, 0, 10)
	for i := 0; i < 10; i++ {
		vault := mustVault(t, e, "owner1", models.StatusActive)
		ids = append(ids, vault.ID)
	}
	for _, id := range ids[:3] {
		rm.failIDs[id] = true
	}

	e.clock.Advance(PlanPeriod)
	rep := sched.RunOnce(ctx)
	if rep.VaultsAdvanced != 7 {
		t.Fatalf("advanced = %d, want 7", rep.VaultsAdvanced)
	}
	if rep.Errors != 3 {
		t.Fatalf("errors = %d, want 3", rep.Errors)
	}

	for i, id := range ids {
		got, err := e.rm.Vaults(nil).GetByID(ctx, id)
		if err != nil {
			t.Fatalf("GetByID %s: %v", id, err)
		}
		want := models.StatusGraceMaster
		if i < 3 {
			want = models.StatusActive
		}
		if got.Status != want {
			t.Fatalf("vault %d status = %s, want %s", i, got.Status, want)
		}
	}
}
