package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dpetrovs/heirvault/internal/common"
	"github.com/dpetrovs/heirvault/internal/logging"
	"github.com/dpetrovs/heirvault/internal/server/lifecycle"
	"github.com/dpetrovs/heirvault/internal/server/models"
	"github.com/dpetrovs/heirvault/internal/server/repositories/repomanager"
	"github.com/dpetrovs/heirvault/internal/timex"
)

const (
	// PlanPeriod is how long a paid plan lasts before the vault enters the
	// grace windows.
	PlanPeriod = 365 * 24 * time.Hour

	// GraceMasterWindow is the owner's renewal window after plan expiry.
	GraceMasterWindow = 14 * 24 * time.Hour
	// GraceHeirWindow follows GraceMasterWindow before the vault expires.
	GraceHeirWindow = 14 * 24 * time.Hour
	// UnlockWindow is how long an Unlockable vault waits for an explicit
	// unlock before expiring.
	UnlockWindow = 365 * 24 * time.Hour
	// PurgeBuffer is how long an Expired vault is retained before it is
	// queued for deletion.
	PurgeBuffer = 30 * 24 * time.Hour
)

// VaultService owns vault records and their lifecycle operations.
type VaultService struct {
	db     *sql.DB
	rm     repomanager.RepositoryManager
	engine *lifecycle.Engine
	clock  timex.Clock
	logger logging.Logger
}

func NewVaultService(db *sql.DB, rm repomanager.RepositoryManager, engine *lifecycle.Engine,
	clock timex.Clock, logger logging.Logger) *VaultService {
	return &VaultService{
		db:     db,
		rm:     rm,
		engine: engine,
		clock:  clock,
		logger: logger.With("module", "vaults"),
	}
}

// Create opens a new vault in Draft. The vault stays in Draft until the
// creation payment session is confirmed.
func (s *VaultService) Create(ctx context.Context, ownerID, name, description string,
	plan models.Plan, conditions models.UnlockConditions) (*models.VaultRecord, error) {

	if name == "" {
		return nil, fmt.Errorf("%w: vault name required", common.ErrorValidation)
	}
	if conditions.RequiredHeirApprovals < 0 || conditions.RequiredWitnessApprovals < 0 {
		return nil, fmt.Errorf("%w: negative approval threshold", common.ErrorValidation)
	}

	now := s.clock.Now()
	vault := &models.VaultRecord{
		ID:                  uuid.NewString(),
		OwnerID:             ownerID,
		Name:                name,
		Description:         description,
		Status:              models.StatusDraft,
		Plan:                plan,
		StorageQuotaBytes:   plan.Quota(),
		Conditions:          conditions,
		CreatedAt:           now,
		UpdatedAt:           now,
		ExpiresAt:           now.Add(PlanPeriod),
		LastOwnerActivityAt: now,
	}

	if err := s.rm.Vaults(s.db).Create(ctx, vault); err != nil {
		return nil, fmt.Errorf("storing vault: %w", err)
	}

	s.logger.Info(ctx, "vault created", "vault_id", vault.ID, "owner_id", ownerID, "plan", plan)
	return vault, nil
}

// Get loads a vault for its owner or one of its members. An owner read
// counts as owner activity.
func (s *VaultService) Get(ctx context.Context, callerID, vaultID string) (*models.VaultRecord, error) {
	vault, err := s.rm.Vaults(s.db).GetByID(ctx, vaultID)
	if err != nil {
		return nil, err
	}

	if vault.OwnerID == callerID {
		s.touchOwnerActivity(ctx, vault)
		return vault, nil
	}

	if _, err := s.rm.Members(s.db).GetByUser(ctx, vaultID, callerID); err != nil {
		return nil, common.ErrorUnauthorized
	}
	return vault, nil
}

// touchOwnerActivity stamps the owner's last activity. Failures only cost
// inactivity-condition precision, so they are logged and swallowed.
func (s *VaultService) touchOwnerActivity(ctx context.Context, vault *models.VaultRecord) {
	vault.LastOwnerActivityAt = s.clock.Now()
	if err := s.rm.Vaults(s.db).Update(ctx, vault); err != nil {
		s.logger.Warn(ctx, "failed to record owner activity", "vault_id", vault.ID, "error", err.Error())
	}
}

// FinalizeSetup is the explicit owner action moving a vault from
// SetupComplete to Active.
func (s *VaultService) FinalizeSetup(ctx context.Context, ownerID, vaultID string) (*models.VaultRecord, error) {
	vault, err := s.rm.Vaults(s.db).GetByID(ctx, vaultID)
	if err != nil {
		return nil, err
	}
	if vault.OwnerID != ownerID {
		return nil, common.ErrorUnauthorized
	}

	if err := s.engine.Transition(vault, models.StatusActive); err != nil {
		return nil, err
	}
	vault.LastOwnerActivityAt = s.clock.Now()

	if err := s.rm.Vaults(s.db).Update(ctx, vault); err != nil {
		return nil, fmt.Errorf("storing vault: %w", err)
	}
	s.audit(ctx, vault.ID, ownerID, "setup_finalized", "")
	return vault, nil
}

// ApplyPaymentConfirmation advances the vault after a confirmed payment
// session: Draft moves to NeedSetup on creation payments, and renewal
// payments return a grace-period vault to Active with a fresh plan period.
// The scheduler invokes this while draining the confirmation outbox.
func (s *VaultService) ApplyPaymentConfirmation(ctx context.Context, session *models.PaymentSession) error {
	vault, err := s.rm.Vaults(s.db).GetByID(ctx, session.VaultID)
	if err != nil {
		return err
	}

	switch session.Purpose {
	case models.PurposeVaultCreation:
		// An outbox replay can find the vault already advanced past
		// setup when apply succeeded but the entry delete was lost.
		// That is a drained entry, not an error.
		if vault.Status != models.StatusDraft && vault.Status != models.StatusNeedSetup {
			return nil
		}
		if err := s.engine.Transition(vault, models.StatusNeedSetup); err != nil {
			return err
		}
	case models.PurposePlanRenewal:
		if err := s.engine.Transition(vault, models.StatusActive); err != nil {
			return err
		}
		vault.Plan = session.Plan
		vault.StorageQuotaBytes = session.Plan.Quota()
		vault.ExpiresAt = s.clock.Now().Add(PlanPeriod)
	default:
		return fmt.Errorf("%w: unknown payment purpose %q", common.ErrorValidation, session.Purpose)
	}

	if err := s.rm.Vaults(s.db).Update(ctx, vault); err != nil {
		return fmt.Errorf("storing vault: %w", err)
	}
	s.audit(ctx, vault.ID, session.UserID, "payment_applied", string(session.Purpose))
	return nil
}

// ApproveUnlock records a member's unlock approval. Approving twice is a
// no-op. When the vault sits in GraceHeir, the unlock conditions are
// re-evaluated and a satisfied quorum advances it to Unlockable.
func (s *VaultService) ApproveUnlock(ctx context.Context, userID, vaultID string) (models.ApprovalCounts, error) {
	member, err := s.rm.Members(s.db).GetByUser(ctx, vaultID, userID)
	if err != nil {
		return models.ApprovalCounts{}, err
	}
	if member.Status != models.MemberActive {
		return models.ApprovalCounts{}, common.ErrorUnauthorized
	}
	if member.Role == models.RoleMaster {
		return models.ApprovalCounts{}, fmt.Errorf("%w: owners do not approve their own unlock", common.ErrorValidation)
	}

	if member.HasApprovedUnlock {
		return s.approvalCounts(ctx, vaultID), nil
	}

	member.HasApprovedUnlock = true
	if err := s.rm.Members(s.db).Update(ctx, member); err != nil {
		return models.ApprovalCounts{}, fmt.Errorf("storing member: %w", err)
	}

	counts, err := s.rm.Approvals(s.db).Increment(ctx, vaultID, member.Role)
	if err != nil {
		return models.ApprovalCounts{}, fmt.Errorf("incrementing approvals: %w", err)
	}
	s.audit(ctx, vaultID, userID, "unlock_approved", string(member.Role))

	if _, err := s.CheckUnlock(ctx, vaultID); err != nil &&
		!errors.Is(err, common.ErrConditionsNotMet) && !errors.Is(err, common.ErrInvalidState) {
		s.logger.Warn(ctx, "unlock check after approval failed", "vault_id", vaultID, "error", err.Error())
	}

	return counts, nil
}

// approvalCounts reads the tallies, failing closed to zero counts.
func (s *VaultService) approvalCounts(ctx context.Context, vaultID string) models.ApprovalCounts {
	counts, err := s.rm.Approvals(s.db).Get(ctx, vaultID)
	if err != nil {
		return models.ApprovalCounts{VaultID: vaultID}
	}
	return counts
}

// CheckUnlock evaluates the vault's unlock conditions and, for a vault in
// GraceHeir, advances it to Unlockable when they hold. It returns the vault
// or common.ErrConditionsNotMet.
func (s *VaultService) CheckUnlock(ctx context.Context, vaultID string) (*models.VaultRecord, error) {
	vault, err := s.rm.Vaults(s.db).GetByID(ctx, vaultID)
	if err != nil {
		return nil, err
	}

	if vault.Status != models.StatusGraceHeir {
		if vault.Status == models.StatusUnlockable || vault.Status == models.StatusUnlocked {
			return vault, nil
		}
		return nil, fmt.Errorf("%w: vault is %s", common.ErrInvalidState, vault.Status)
	}

	// A read failure on the tallies must not unlock the vault early.
	ok, reason := lifecycle.EvaluateUnlock(vault, s.approvalCounts(ctx, vaultID), s.clock.Now())
	if !ok {
		return nil, common.ErrConditionsNotMet
	}

	if err := s.engine.Transition(vault, models.StatusUnlockable); err != nil {
		return nil, err
	}
	if err := s.rm.Vaults(s.db).Update(ctx, vault); err != nil {
		return nil, fmt.Errorf("storing vault: %w", err)
	}
	s.audit(ctx, vault.ID, "", "became_unlockable", string(reason))
	return vault, nil
}

// TriggerUnlock is the explicit unlock action on an Unlockable vault,
// performed by a member or an administrator.
func (s *VaultService) TriggerUnlock(ctx context.Context, callerID, vaultID string, isAdmin bool) (*models.VaultRecord, error) {
	vault, err := s.rm.Vaults(s.db).GetByID(ctx, vaultID)
	if err != nil {
		return nil, err
	}

	if !isAdmin {
		member, err := s.rm.Members(s.db).GetByUser(ctx, vaultID, callerID)
		if err != nil || member.Status != models.MemberActive {
			return nil, common.ErrorUnauthorized
		}
	}

	if err := s.engine.Transition(vault, models.StatusUnlocked); err != nil {
		return nil, err
	}
	if err := s.rm.Vaults(s.db).Update(ctx, vault); err != nil {
		return nil, fmt.Errorf("storing vault: %w", err)
	}
	s.audit(ctx, vault.ID, callerID, "unlocked", "")
	return vault, nil
}

// Delete applies the administrative override moving the vault to the
// terminal Deleted status. The storage cascade is performed by the
// scheduler afterwards.
func (s *VaultService) Delete(ctx context.Context, actorID, vaultID string) (*models.VaultRecord, error) {
	vault, err := s.rm.Vaults(s.db).GetByID(ctx, vaultID)
	if err != nil {
		return nil, err
	}
	if err := s.engine.Transition(vault, models.StatusDeleted); err != nil {
		return nil, err
	}
	if err := s.rm.Vaults(s.db).Update(ctx, vault); err != nil {
		return nil, fmt.Errorf("storing vault: %w", err)
	}
	s.audit(ctx, vault.ID, actorID, "deleted", "administrative override")
	return vault, nil
}

// Cascade removes every collection belonging to a Deleted vault, the vault
// record last. Per-collection failures are logged and counted but do not
// abort the remaining collections; the vault record is only removed once
// every collection succeeded, so a partially failed cascade is retried on
// the next scheduler pass. Billing history is never touched.
func (s *VaultService) Cascade(ctx context.Context, vaultID string) (failed int) {
	type step struct {
		name string
		fn   func() error
	}

	steps := []step{
		{"members", func() error {
			_, err := s.rm.Members(s.db).DeleteByVault(ctx, vaultID)
			return err
		}},
		{"contents", func() error {
			_, err := s.rm.Contents(s.db).DeleteByVault(ctx, vaultID)
			return err
		}},
		{"invites", func() error {
			_, err := s.rm.Invites(s.db).DeleteByVault(ctx, vaultID)
			return err
		}},
		{"audits", func() error {
			_, err := s.rm.Audits(s.db).DeleteByVault(ctx, vaultID)
			return err
		}},
		{"approvals", func() error {
			err := s.rm.Approvals(s.db).Delete(ctx, vaultID)
			if errors.Is(err, common.ErrorNotFound) {
				return nil
			}
			return err
		}},
	}

	for _, st := range steps {
		if err := st.fn(); err != nil && !errors.Is(err, common.ErrIndexInconsistent) {
			s.logger.Error(ctx, "cascade step failed", "vault_id", vaultID, "step", st.name, "error", err.Error())
			failed++
		}
	}

	if failed > 0 {
		return failed
	}

	if err := s.rm.Vaults(s.db).Delete(ctx, vaultID); err != nil && !errors.Is(err, common.ErrorNotFound) {
		s.logger.Error(ctx, "cascade vault removal failed", "vault_id", vaultID, "error", err.Error())
		return 1
	}
	return 0
}

func (s *VaultService) audit(ctx context.Context, vaultID, actorID, action, details string) {
	entry := &models.AuditEntry{
		ID:        uuid.NewString(),
		VaultID:   vaultID,
		ActorID:   actorID,
		Action:    action,
		Details:   details,
		CreatedAt: s.clock.Now(),
	}
	if err := s.rm.Audits(s.db).Append(ctx, entry); err != nil {
		s.logger.Warn(ctx, "audit append failed", "vault_id", vaultID, "action", action, "error", err.Error())
	}
}
