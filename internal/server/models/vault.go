// Package models defines server-side data models persisted in the database.
package models

import "time"

// Plan is the subscription tier of a vault. The tier determines the storage
// quota and the per-member daily download allowance.
type Plan string

const (
	PlanFree    Plan = "free"
	PlanPremium Plan = "premium"
)

// Quota returns the storage quota in bytes for the plan.
func (p Plan) Quota() int64 {
	switch p {
	case PlanPremium:
		return 1 << 30 // 1 GiB
	default:
		return 64 << 20 // 64 MiB
	}
}

// DailyDownloadLimit returns the per-member daily content download allowance.
func (p Plan) DailyDownloadLimit() int {
	switch p {
	case PlanPremium:
		return 100
	default:
		return 10
	}
}

// UnlockConditions is the unlock policy of a vault. Any configured condition
// being satisfied unlocks the vault (OR semantics). Zero values mean the
// condition is not configured.
type UnlockConditions struct {
	// UnlockAt is the absolute unlock time, if set.
	UnlockAt time.Time
	// InactivityDuration unlocks after this long without owner activity.
	InactivityDuration time.Duration
	// RequiredHeirApprovals is the heir quorum size; 0 means no heir quorum.
	RequiredHeirApprovals int
	// RequiredWitnessApprovals is the witness quorum size; 0 means none.
	RequiredWitnessApprovals int
}

// Configured reports whether any unlock condition is set.
func (c UnlockConditions) Configured() bool {
	return !c.UnlockAt.IsZero() ||
		c.InactivityDuration > 0 ||
		c.RequiredHeirApprovals > 0 ||
		c.RequiredWitnessApprovals > 0
}

// VaultRecord is the primary record of a vault.
type VaultRecord struct {
	ID          string
	OwnerID     string
	Name        string
	Description string

	Status VaultStatus
	Plan   Plan

	StorageQuotaBytes int64
	StorageUsedBytes  int64

	Conditions UnlockConditions

	CreatedAt           time.Time
	UpdatedAt           time.Time
	ExpiresAt           time.Time
	UnlockedAt          time.Time // zero unless the vault is Unlocked
	LastOwnerActivityAt time.Time
}

// ApprovalCounts carries per-vault unlock approval tallies.
type ApprovalCounts struct {
	VaultID          string
	HeirApprovals    int
	WitnessApprovals int
}

// AuditEntry records a lifecycle transition or approval action on a vault.
// Audit entries are removed with the vault; billing entries are not.
type AuditEntry struct {
	ID        string
	VaultID   string
	ActorID   string
	Action    string
	Details   string
	CreatedAt time.Time
}
