package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dpetrovs/heirvault/internal/common"
	"github.com/dpetrovs/heirvault/internal/server/models"
)

func TestPaymentInitialize(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	session, err := e.payments.Initialize(ctx, "owner1", "v1", models.PurposeVaultCreation, models.PlanPremium)
	if err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if session.State != models.PaymentIssued {
		t.Fatalf("state = %s, want issued", session.State)
	}
	if session.Account == "" || session.Account[:3] != "hv-" {
		t.Fatalf("account = %q", session.Account)
	}
	if session.ExpectedAmount != 500 {
		t.Fatalf("amount = %d, want premium default 500", session.ExpectedAmount)
	}
	if !session.ExpiresAt.Equal(e.clock.Now().Add(SessionTimeout)) {
		t.Fatalf("expires_at = %v", session.ExpiresAt)
	}
}

func TestPaymentInitialize_PriceFromSettings(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	if err := e.rm.Settings(nil).Set(ctx, "plan_price_premium", "750"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	session, err := e.payments.Initialize(ctx, "owner1", "v1", models.PurposePlanRenewal, models.PlanPremium)
	if err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if session.ExpectedAmount != 750 {
		t.Fatalf("amount = %d, want 750 from settings", session.ExpectedAmount)
	}
}

func TestPaymentVerify_ConfirmsAndEnqueuesOutbox(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	session, err := e.payments.Initialize(ctx, "owner1", "v1", models.PurposeVaultCreation, models.PlanPremium)
	if err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	e.ledger.transfers = []Transfer{
		{Destination: "someone-else", Amount: 9999, Timestamp: e.clock.Now(), Ref: "t0"},
		{Destination: session.Account, Amount: 500, Timestamp: e.clock.Now().Add(time.Minute), Ref: "t1"},
	}

	got, err := e.payments.Verify(ctx, session.ID, 42)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if got.State != models.PaymentConfirmed || got.LedgerRef != "t1" {
		t.Fatalf("session = %+v", got)
	}

	pending, err := e.rm.Outbox(nil).ListPending(ctx)
	if err != nil {
		t.Fatalf("ListPending: %v", err)
	}
	if len(pending) != 2 {
		t.Fatalf("outbox entries = %d, want lifecycle advance + billing append", len(pending))
	}

	// idempotent re-verify
	again, err := e.payments.Verify(ctx, session.ID, 42)
	if err != nil || again.State != models.PaymentConfirmed {
		t.Fatalf("re-verify: %+v %v", again, err)
	}
	pending, _ = e.rm.Outbox(nil).ListPending(ctx)
	if len(pending) != 2 {
		t.Fatalf("re-verify enqueued again: %d entries", len(pending))
	}
}

func TestPaymentVerify_NoMatchStaysPending(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	session, _ := e.payments.Initialize(ctx, "owner1", "v1", models.PurposeVaultCreation, models.PlanPremium)

	e.ledger.transfers = []Transfer{
		// right account, amount too small
		{Destination: session.Account, Amount: 499, Timestamp: e.clock.Now(), Ref: "t1"},
		// right amount, timestamped before the session window
		{Destination: session.Account, Amount: 500, Timestamp: e.clock.Now().Add(-time.Hour), Ref: "t2"},
	}

	if _, err := e.payments.Verify(ctx, session.ID, 7); !errors.Is(err, common.ErrPaymentNotFound) {
		t.Fatalf("want ErrPaymentNotFound, got %v", err)
	}

	got, _ := e.rm.Payments(nil).GetByID(ctx, session.ID)
	if got.State != models.PaymentPending {
		t.Fatalf("state = %s, want pending for retry", got.State)
	}
}

func TestPaymentVerify_LedgerUnavailable(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	session, _ := e.payments.Initialize(ctx, "owner1", "v1", models.PurposeVaultCreation, models.PlanFree)
	e.ledger.err = errBoom{}

	if _, err := e.payments.Verify(ctx, session.ID, 7); !errors.Is(err, common.ErrLedgerUnavailable) {
		t.Fatalf("want ErrLedgerUnavailable, got %v", err)
	}
}

func TestPaymentVerify_LazyExpiry(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	session, _ := e.payments.Initialize(ctx, "owner1", "v1", models.PurposeVaultCreation, models.PlanFree)
	e.ledger.transfers = []Transfer{
		{Destination: session.Account, Amount: 0, Timestamp: e.clock.Now(), Ref: "t1"},
	}

	e.clock.Advance(SessionTimeout + time.Minute)
	if _, err := e.payments.Verify(ctx, session.ID, 7); !errors.Is(err, common.ErrSessionExpired) {
		t.Fatalf("want ErrSessionExpired, got %v", err)
	}

	got, _ := e.rm.Payments(nil).GetByID(ctx, session.ID)
	if got.State != models.PaymentExpired {
		t.Fatalf("state = %s, want expired", got.State)
	}

	// terminal thereafter
	if _, err := e.payments.Verify(ctx, session.ID, 8); !errors.Is(err, common.ErrSessionExpired) {
		t.Fatalf("repeat verify: got %v", err)
	}
}

func TestPaymentVerify_Unknown(t *testing.T) {
	e := newEnv(t)

	if _, err := e.payments.Verify(context.Background(), "ghost", 1); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
}

func TestPaymentClose(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	session, _ := e.payments.Initialize(ctx, "owner1", "v1", models.PurposeVaultCreation, models.PlanPremium)

	// Issued is not closeable
	if _, err := e.payments.Close(ctx, session.ID); !errors.Is(err, common.ErrInvalidState) {
		t.Fatalf("close issued: got %v", err)
	}

	e.ledger.transfers = []Transfer{
		{Destination: session.Account, Amount: 500, Timestamp: e.clock.Now(), Ref: "t1"},
	}
	if _, err := e.payments.Verify(ctx, session.ID, 1); err != nil {
		t.Fatalf("Verify: %v", err)
	}

	got, err := e.payments.Close(ctx, session.ID)
	if err != nil || got.State != models.PaymentClosed {
		t.Fatalf("Close: %+v %v", got, err)
	}

	// idempotent
	got, err = e.payments.Close(ctx, session.ID)
	if err != nil || got.State != models.PaymentClosed {
		t.Fatalf("re-Close: %+v %v", got, err)
	}
}

func TestAppendBilling_Idempotent(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	session, _ := e.payments.Initialize(ctx, "owner1", "v1", models.PurposeVaultCreation, models.PlanPremium)
	e.ledger.transfers = []Transfer{
		{Destination: session.Account, Amount: 500, Timestamp: e.clock.Now(), Ref: "t1"},
	}
	if _, err := e.payments.Verify(ctx, session.ID, 1); err != nil {
		t.Fatalf("Verify: %v", err)
	}

	if err := e.payments.AppendBilling(ctx, session.ID); err != nil {
		t.Fatalf("AppendBilling: %v", err)
	}
	if err := e.payments.AppendBilling(ctx, session.ID); err != nil {
		t.Fatalf("AppendBilling repeat: %v", err)
	}

	entries, err := e.rm.Billing(nil).ListByVault(ctx, "v1")
	if err != nil || len(entries) != 1 {
		t.Fatalf("billing entries = %d (%v), want 1", len(entries), err)
	}
	if entries[0].Amount != 500 || entries[0].LedgerRef != "t1" {
		t.Fatalf("entry = %+v", entries[0])
	}
}
