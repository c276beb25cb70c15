package services

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/dpetrovs/heirvault/internal/logging"
	"github.com/dpetrovs/heirvault/internal/randx"
	"github.com/dpetrovs/heirvault/internal/server/lifecycle"
	"github.com/dpetrovs/heirvault/internal/server/models"
	"github.com/dpetrovs/heirvault/internal/server/repositories/repomanager"
	"github.com/dpetrovs/heirvault/internal/timex"
)

// --- helpers ---

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// fixedRand yields a constant block, so derived accounts and token secrets
// are deterministic.
type fixedRand struct {
	block []byte
	err   error
}

func (f *fixedRand) Block() ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.block != nil {
		return f.block, nil
	}
	b := make([]byte, randx.BlockSize)
	for i := range b {
		b[i] = byte(i)
	}
	return b, nil
}

// env bundles the in-memory repositories and services for a test.
type env struct {
	rm     *repomanager.MemoryRepositoryManager
	clock  *timex.FixedClock
	engine *lifecycle.Engine
	ledger *fakeLedger

	vaults   *VaultService
	invites  *InviteService
	payments *PaymentService
	uploads  *UploadService
	contents *ContentService
	sched    *Scheduler
}

type fakeLedger struct {
	transfers []Transfer
	err       error
}

func (f *fakeLedger) BlockTransfers(ctx context.Context, blockIndex uint64) ([]Transfer, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.transfers, nil
}

func newEnv(t *testing.T) *env {
	t.Helper()

	rm := repomanager.NewMemoryRepositoryManager()
	clock := &timex.FixedClock{Instant: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	engine := lifecycle.NewEngine(clock)
	log := testLogger()
	rand := &fixedRand{}

	e := &env{rm: rm, clock: clock, engine: engine, ledger: &fakeLedger{}}
	e.vaults = NewVaultService(nil, rm, engine, clock, log)
	e.invites = NewInviteService(nil, rm, engine, clock, rand, log)
	e.payments = NewPaymentService(nil, rm, clock, rand, e.ledger, log)
	e.uploads = NewUploadService(nil, rm, NewObjectStore(nil), clock, 1<<20, log)
	e.contents = NewContentService(nil, rm, NewObjectStore(nil), clock, log)
	e.sched = NewScheduler(nil, rm, e.vaults, e.invites, e.payments, e.uploads, engine, clock, log)
	return e
}

// mustVault creates a vault and forces it into the given status.
func mustVault(t *testing.T, e *env, ownerID string, status models.VaultStatus) *models.VaultRecord {
	t.Helper()

	vault, err := e.vaults.Create(context.Background(), ownerID, "estate", "", models.PlanFree,
		models.UnlockConditions{})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if status != models.StatusDraft {
		vault.Status = status
		if err := e.rm.Vaults(nil).Update(context.Background(), vault); err != nil {
			t.Fatalf("Update: %v", err)
		}
	}
	return vault
}

// mustMember registers an active membership directly.
func mustMember(t *testing.T, e *env, vaultID, userID string, role models.Role, share int) *models.Member {
	t.Helper()

	m := &models.Member{
		ID:         userID + "-m",
		VaultID:    vaultID,
		UserID:     userID,
		Role:       role,
		Status:     models.MemberActive,
		ShareIndex: share,
		CreatedAt:  e.clock.Now(),
	}
	if err := e.rm.Members(nil).Create(context.Background(), m); err != nil {
		t.Fatalf("member Create: %v", err)
	}
	return m
}
