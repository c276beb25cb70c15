// Package services implements the business logic of the server: the payment
// gate, vault lifecycle operations, invites, uploads, content access, and
// the periodic scheduler.
package services

import (
	"context"
	"database/sql"
	"encoding/hex"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/dpetrovs/heirvault/internal/common"
	"github.com/dpetrovs/heirvault/internal/dbx"
	"github.com/dpetrovs/heirvault/internal/logging"
	"github.com/dpetrovs/heirvault/internal/randx"
	"github.com/dpetrovs/heirvault/internal/server/models"
	"github.com/dpetrovs/heirvault/internal/server/repositories/repomanager"
	"github.com/dpetrovs/heirvault/internal/timex"
)

// SessionTimeout is the lifetime of a payment session.
const SessionTimeout = 30 * time.Minute

// Default plan prices, in ledger base units. Overridable through the admin
// settings store under "plan_price_<plan>".
const (
	defaultPriceFree    int64 = 0
	defaultPricePremium int64 = 500
)

// Transfer is a single inbound transfer observed on the external ledger.
type Transfer struct {
	Destination string
	Amount      int64
	Timestamp   time.Time
	Ref         string
}

// Ledger queries the external payment ledger. Lookups are by explicit block
// index; there is no open-ended scan.
type Ledger interface {
	BlockTransfers(ctx context.Context, blockIndex uint64) ([]Transfer, error)
}

// PaymentService owns the payment session state machine that gates vault
// creation and plan renewal on a confirmed ledger transfer.
type PaymentService struct {
	db     *sql.DB
	rm     repomanager.RepositoryManager
	clock  timex.Clock
	rand   randx.Source
	ledger Ledger
	logger logging.Logger
}

func NewPaymentService(db *sql.DB, rm repomanager.RepositoryManager, clock timex.Clock,
	rand randx.Source, ledger Ledger, logger logging.Logger) *PaymentService {
	return &PaymentService{
		db:     db,
		rm:     rm,
		clock:  clock,
		rand:   rand,
		ledger: ledger,
		logger: logger.With("module", "payments"),
	}
}

// planPrice resolves the expected amount for a plan, preferring the admin
// settings store over the built-in defaults.
func (s *PaymentService) planPrice(ctx context.Context, plan models.Plan) int64 {
	if v, err := s.rm.Settings(s.db).Get(ctx, "plan_price_"+string(plan)); err == nil {
		if amount, err := strconv.ParseInt(v, 10, 64); err == nil {
			return amount
		}
	}
	if plan == models.PlanPremium {
		return defaultPricePremium
	}
	return defaultPriceFree
}

// Initialize derives a dedicated receiving account and opens a session in
// the Issued state with a 30-minute expiry.
func (s *PaymentService) Initialize(ctx context.Context, userID, vaultID string,
	purpose models.PaymentPurpose, plan models.Plan) (*models.PaymentSession, error) {

	block, err := s.rand.Block()
	if err != nil {
		return nil, fmt.Errorf("deriving receiving account: %w", err)
	}

	now := s.clock.Now()
	session := &models.PaymentSession{
		ID:             uuid.NewString(),
		VaultID:        vaultID,
		UserID:         userID,
		Purpose:        purpose,
		Plan:           plan,
		Account:        "hv-" + hex.EncodeToString(block[:16]),
		ExpectedAmount: s.planPrice(ctx, plan),
		State:          models.PaymentIssued,
		CreatedAt:      now,
		ExpiresAt:      now.Add(SessionTimeout),
	}

	if err := s.rm.Payments(s.db).Create(ctx, session); err != nil {
		return nil, fmt.Errorf("storing payment session: %w", err)
	}

	s.logger.Info(ctx, "payment session issued", "session_id", session.ID, "plan", plan)
	return session, nil
}

// Verify checks the given ledger block for a transfer matching the session.
//
// Confirmed and Closed sessions short-circuit to an idempotent success.
// Expired and Error sessions propagate their terminal condition. A live
// session past its deadline is moved to Expired and fails even when a
// matching transfer exists. On a match the session is confirmed and the
// post-confirmation side effects (lifecycle advance, billing append) are
// recorded in the durable outbox; on no match the session stays Pending
// and the caller may retry with another block index.
func (s *PaymentService) Verify(ctx context.Context, sessionID string, blockIndex uint64) (*models.PaymentSession, error) {
	repo := s.rm.Payments(s.db)

	session, err := repo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	switch session.State {
	case models.PaymentConfirmed, models.PaymentClosed:
		return session, nil
	case models.PaymentExpired:
		return nil, common.ErrSessionExpired
	case models.PaymentError:
		return nil, fmt.Errorf("%w: %s", common.ErrSessionTerminal, session.ErrorText)
	}

	now := s.clock.Now()
	if now.After(session.ExpiresAt) {
		session.State = models.PaymentExpired
		if err := repo.Update(ctx, session); err != nil {
			return nil, fmt.Errorf("expiring session: %w", err)
		}
		return nil, common.ErrSessionExpired
	}

	if session.State == models.PaymentIssued {
		session.State = models.PaymentPending
		if err := repo.Update(ctx, session); err != nil {
			return nil, fmt.Errorf("moving session to pending: %w", err)
		}
	}

	transfers, err := s.ledger.BlockTransfers(ctx, blockIndex)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrLedgerUnavailable, err)
	}

	match, ok := matchTransfer(session, transfers)
	if !ok {
		return nil, common.ErrPaymentNotFound
	}

	// The ledger call yields; the session may have been expired or closed
	// by a concurrent operation in the meantime. Re-read and re-validate
	// before confirming.
	session, err = repo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	switch session.State {
	case models.PaymentConfirmed, models.PaymentClosed:
		return session, nil
	case models.PaymentExpired:
		return nil, common.ErrSessionExpired
	case models.PaymentError:
		return nil, fmt.Errorf("%w: %s", common.ErrSessionTerminal, session.ErrorText)
	}

	session.State = models.PaymentConfirmed
	session.LedgerRef = match.Ref
	session.VerifiedAt = s.clock.Now()

	err = s.rm.WithinTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.rm.Payments(tx).Update(ctx, session); err != nil {
			return err
		}
		for _, kind := range []models.OutboxKind{models.OutboxLifecycleAdvance, models.OutboxBillingAppend} {
			entry := &models.OutboxEntry{
				Kind:      kind,
				SessionID: session.ID,
				VaultID:   session.VaultID,
				CreatedAt: s.clock.Now(),
			}
			if err := s.rm.Outbox(tx).Enqueue(ctx, entry); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("confirming session: %w", err)
	}

	s.logger.Info(ctx, "payment confirmed", "session_id", session.ID, "ledger_ref", match.Ref)
	return session, nil
}

// matchTransfer finds a transfer to the session's account of at least the
// expected amount, timestamped within the session window.
func matchTransfer(session *models.PaymentSession, transfers []Transfer) (Transfer, bool) {
	for _, t := range transfers {
		if t.Destination != session.Account {
			continue
		}
		if t.Amount < session.ExpectedAmount {
			continue
		}
		if t.Timestamp.Before(session.CreatedAt) || t.Timestamp.After(session.ExpiresAt) {
			continue
		}
		return t, true
	}
	return Transfer{}, false
}

// Close finishes a session. Allowed only from Confirmed, Expired, and
// Error; closing an already Closed session succeeds idempotently.
func (s *PaymentService) Close(ctx context.Context, sessionID string) (*models.PaymentSession, error) {
	repo := s.rm.Payments(s.db)

	session, err := repo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	switch session.State {
	case models.PaymentClosed:
		return session, nil
	case models.PaymentConfirmed, models.PaymentExpired, models.PaymentError:
		session.State = models.PaymentClosed
		session.ClosedAt = s.clock.Now()
		if err := repo.Update(ctx, session); err != nil {
			return nil, fmt.Errorf("closing session: %w", err)
		}
		return session, nil
	default:
		return nil, fmt.Errorf("%w: cannot close session in state %s", common.ErrInvalidState, session.State)
	}
}

// AppendBilling writes the billing log entry for a confirmed session. It is
// invoked when the outbox is drained and is idempotent per session.
func (s *PaymentService) AppendBilling(ctx context.Context, sessionID string) error {
	session, err := s.rm.Payments(s.db).GetByID(ctx, sessionID)
	if err != nil {
		return err
	}
	if session.State != models.PaymentConfirmed && session.State != models.PaymentClosed {
		return fmt.Errorf("%w: session %s not confirmed", common.ErrInvalidState, sessionID)
	}

	existing, err := s.rm.Billing(s.db).ListByVault(ctx, session.VaultID)
	if err == nil {
		for _, e := range existing {
			if e.SessionID == session.ID {
				return nil
			}
		}
	}

	entry := &models.BillingEntry{
		ID:        uuid.NewString(),
		VaultID:   session.VaultID,
		UserID:    session.UserID,
		SessionID: session.ID,
		Plan:      session.Plan,
		Amount:    session.ExpectedAmount,
		LedgerRef: session.LedgerRef,
		CreatedAt: s.clock.Now(),
	}
	if err := s.rm.Billing(s.db).Append(ctx, entry); err != nil {
		return fmt.Errorf("appending billing entry: %w", err)
	}
	return nil
}
