package lifecycle

import (
	"time"

	"github.com/dpetrovs/heirvault/internal/server/models"
)

// UnlockReason names the condition that satisfied the unlock check.
// It only affects diagnostics; the result is an OR over all conditions.
type UnlockReason string

const (
	ReasonNone       UnlockReason = ""
	ReasonTimeLock   UnlockReason = "absolute_time_reached"
	ReasonInactivity UnlockReason = "owner_inactive"
	ReasonQuorum     UnlockReason = "approval_quorum_met"
)

// EvaluateUnlock decides whether the vault's unlock conditions are satisfied
// at the given instant. Conditions are checked in a fixed order and the
// first satisfied one is reported; a vault with no configured conditions
// never unlocks.
//
// The inactivity baseline is the later of the owner's last recorded activity
// and the vault's creation time, so a vault whose owner never came back
// still measures from creation.
func EvaluateUnlock(vault *models.VaultRecord, counts models.ApprovalCounts, now time.Time) (bool, UnlockReason) {
	c := vault.Conditions

	if !c.UnlockAt.IsZero() && !now.Before(c.UnlockAt) {
		return true, ReasonTimeLock
	}

	if c.InactivityDuration > 0 {
		baseline := vault.LastOwnerActivityAt
		if vault.CreatedAt.After(baseline) {
			baseline = vault.CreatedAt
		}
		if now.Sub(baseline) >= c.InactivityDuration {
			return true, ReasonInactivity
		}
	}

	if c.RequiredHeirApprovals > 0 || c.RequiredWitnessApprovals > 0 {
		if counts.HeirApprovals >= c.RequiredHeirApprovals &&
			counts.WitnessApprovals >= c.RequiredWitnessApprovals {
			return true, ReasonQuorum
		}
	}

	return false, ReasonNone
}
