package services

import (
	"context"
	"database/sql"

	"github.com/dpetrovs/heirvault/internal/logging"
	"github.com/dpetrovs/heirvault/internal/server/lifecycle"
	"github.com/dpetrovs/heirvault/internal/server/models"
	"github.com/dpetrovs/heirvault/internal/server/repositories/repomanager"
	"github.com/dpetrovs/heirvault/internal/timex"
)

// Report summarizes one maintenance pass.
type Report struct {
	InvitesExpired int
	VaultsAdvanced int
	OutboxDrained  int
	VaultsCascaded int
	UploadsEvicted int
	Errors         int
}

// Scheduler runs the periodic maintenance pass: invite expiry, time-driven
// vault transitions, the confirmation outbox, deletion cascades and stale
// upload eviction. Each item is isolated; one failure never aborts the pass.
type Scheduler struct {
	db       *sql.DB
	rm       repomanager.RepositoryManager
	vaults   *VaultService
	invites  *InviteService
	payments *PaymentService
	uploads  *UploadService
	engine   *lifecycle.Engine
	clock    timex.Clock
	logger   logging.Logger
}

func NewScheduler(db *sql.DB, rm repomanager.RepositoryManager, vaultSvc *VaultService,
	inviteSvc *InviteService, paymentSvc *PaymentService, uploadSvc *UploadService,
	engine *lifecycle.Engine, clock timex.Clock, logger logging.Logger) *Scheduler {
	return &Scheduler{
		db:       db,
		rm:       rm,
		vaults:   vaultSvc,
		invites:  inviteSvc,
		payments: paymentSvc,
		uploads:  uploadSvc,
		engine:   engine,
		clock:    clock,
		logger:   logger.With("module", "scheduler"),
	}
}

// RunOnce performs a single maintenance pass and returns its report.
func (s *Scheduler) RunOnce(ctx context.Context) Report {
	var rep Report

	expired, err := s.invites.ExpirePending(ctx)
	if err != nil {
		s.logger.Error(ctx, "invite expiry sweep failed", "error", err.Error())
		rep.Errors++
	}
	rep.InvitesExpired = expired

	s.sweepVaults(ctx, &rep)
	s.drainOutbox(ctx, &rep)

	rep.UploadsEvicted = s.uploads.EvictStale(ctx)

	s.logger.Info(ctx, "maintenance pass complete",
		"invites_expired", rep.InvitesExpired,
		"vaults_advanced", rep.VaultsAdvanced,
		"outbox_drained", rep.OutboxDrained,
		"vaults_cascaded", rep.VaultsCascaded,
		"uploads_evicted", rep.UploadsEvicted,
		"errors", rep.Errors)
	return rep
}

// sweepVaults applies the time-driven lifecycle edges to every vault and
// runs the deletion cascade for vaults already in Deleted.
func (s *Scheduler) sweepVaults(ctx context.Context, rep *Report) {
	vaults, err := s.rm.Vaults(s.db).List(ctx)
	if err != nil {
		s.logger.Error(ctx, "vault sweep listing failed", "error", err.Error())
		rep.Errors++
		return
	}

	now := s.clock.Now()
	for _, vault := range vaults {
		switch vault.Status {
		case models.StatusDeleted:
			if failed := s.vaults.Cascade(ctx, vault.ID); failed > 0 {
				rep.Errors += failed
			} else {
				rep.VaultsCascaded++
			}
			continue

		case models.StatusActive:
			if now.Before(vault.ExpiresAt) {
				continue
			}
			s.advance(ctx, vault, models.StatusGraceMaster, rep)

		case models.StatusGraceMaster:
			if now.Before(vault.ExpiresAt.Add(GraceMasterWindow)) {
				continue
			}
			s.advance(ctx, vault, models.StatusGraceHeir, rep)

		case models.StatusGraceHeir:
			if !now.Before(vault.ExpiresAt.Add(GraceMasterWindow + GraceHeirWindow)) {
				s.advance(ctx, vault, models.StatusExpired, rep)
				continue
			}
			counts, err := s.rm.Approvals(s.db).Get(ctx, vault.ID)
			if err != nil {
				counts = models.ApprovalCounts{VaultID: vault.ID}
			}
			if ok, _ := lifecycle.EvaluateUnlock(vault, counts, now); ok {
				s.advance(ctx, vault, models.StatusUnlockable, rep)
			}

		case models.StatusUnlockable:
			// UpdatedAt marks entry into Unlockable; the status receives no
			// other updates.
			if now.Before(vault.UpdatedAt.Add(UnlockWindow)) {
				continue
			}
			s.advance(ctx, vault, models.StatusExpired, rep)

		case models.StatusExpired:
			if now.Before(vault.UpdatedAt.Add(PurgeBuffer)) {
				continue
			}
			s.advance(ctx, vault, models.StatusDeleted, rep)
		}
	}
}

func (s *Scheduler) advance(ctx context.Context, vault *models.VaultRecord, to models.VaultStatus, rep *Report) {
	if err := s.engine.Transition(vault, to); err != nil {
		s.logger.Error(ctx, "vault sweep transition failed", "vault_id", vault.ID,
			"to", to, "error", err.Error())
		rep.Errors++
		return
	}
	if err := s.rm.Vaults(s.db).Update(ctx, vault); err != nil {
		s.logger.Error(ctx, "vault sweep store failed", "vault_id", vault.ID, "error", err.Error())
		rep.Errors++
		return
	}
	rep.VaultsAdvanced++
	s.logger.Info(ctx, "vault advanced", "vault_id", vault.ID, "status", to)
}

// drainOutbox replays the side effects owed after payment confirmations.
// A drained entry is removed; a failed one records the attempt and stays.
func (s *Scheduler) drainOutbox(ctx context.Context, rep *Report) {
	entries, err := s.rm.Outbox(s.db).ListPending(ctx)
	if err != nil {
		s.logger.Error(ctx, "outbox listing failed", "error", err.Error())
		rep.Errors++
		return
	}

	for _, entry := range entries {
		if err := s.applyOutboxEntry(ctx, entry); err != nil {
			s.logger.Error(ctx, "outbox entry failed", "outbox_id", entry.ID,
				"kind", entry.Kind, "session_id", entry.SessionID, "error", err.Error())
			rep.Errors++
			if err := s.rm.Outbox(s.db).MarkAttempt(ctx, entry.ID); err != nil {
				s.logger.Warn(ctx, "outbox attempt mark failed", "outbox_id", entry.ID, "error", err.Error())
			}
			continue
		}
		if err := s.rm.Outbox(s.db).Delete(ctx, entry.ID); err != nil {
			s.logger.Warn(ctx, "outbox delete failed", "outbox_id", entry.ID, "error", err.Error())
			rep.Errors++
			continue
		}
		rep.OutboxDrained++
	}
}

func (s *Scheduler) applyOutboxEntry(ctx context.Context, entry *models.OutboxEntry) error {
	switch entry.Kind {
	case models.OutboxLifecycleAdvance:
		session, err := s.rm.Payments(s.db).GetByID(ctx, entry.SessionID)
		if err != nil {
			return err
		}
		return s.vaults.ApplyPaymentConfirmation(ctx, session)
	case models.OutboxBillingAppend:
		return s.payments.AppendBilling(ctx, entry.SessionID)
	default:
		s.logger.Warn(ctx, "unknown outbox kind dropped", "outbox_id", entry.ID, "kind", entry.Kind)
		return nil
	}
}
