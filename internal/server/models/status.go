package models

// VaultStatus is the lifecycle status of a vault. The allowed transitions
// between statuses are owned by the lifecycle package.
type VaultStatus string

const (
	StatusDraft         VaultStatus = "draft"
	StatusNeedSetup     VaultStatus = "need_setup"
	StatusSetupComplete VaultStatus = "setup_complete"
	StatusActive        VaultStatus = "active"
	StatusGraceMaster   VaultStatus = "grace_master"
	StatusGraceHeir     VaultStatus = "grace_heir"
	StatusUnlockable    VaultStatus = "unlockable"
	StatusUnlocked      VaultStatus = "unlocked"
	StatusExpired       VaultStatus = "expired"
	StatusDeleted       VaultStatus = "deleted"
)
