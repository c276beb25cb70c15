package models

import "time"

// PaymentState is the state of a payment session.
type PaymentState string

const (
	PaymentIssued    PaymentState = "issued"
	PaymentPending   PaymentState = "pending"
	PaymentConfirmed PaymentState = "confirmed"
	PaymentClosed    PaymentState = "closed"
	PaymentExpired   PaymentState = "expired"
	PaymentError     PaymentState = "error"
)

// Terminal reports whether the state admits no further transitions
// (other than the idempotent self-transition).
func (s PaymentState) Terminal() bool {
	return s == PaymentClosed || s == PaymentExpired
}

// PaymentPurpose distinguishes what a confirmed payment unlocks.
type PaymentPurpose string

const (
	PurposeVaultCreation PaymentPurpose = "vault_creation"
	PurposePlanRenewal   PaymentPurpose = "plan_renewal"
)

// PaymentSession gates a vault creation or plan renewal on a confirmed
// external ledger transfer.
type PaymentSession struct {
	ID      string
	VaultID string
	UserID  string
	Purpose PaymentPurpose
	Plan    Plan

	// Account is the derived receiving account the payer must transfer to.
	Account string
	// ExpectedAmount is the minimum acceptable transfer amount.
	ExpectedAmount int64

	State PaymentState

	// LedgerRef identifies the confirming ledger transaction, once found.
	LedgerRef string
	// ErrorText carries diagnostics for the Error state.
	ErrorText string

	CreatedAt  time.Time
	ExpiresAt  time.Time
	VerifiedAt time.Time
	ClosedAt   time.Time
}

// BillingEntry is an append-only billing log record. Billing history is
// never deleted, even when the vault is.
type BillingEntry struct {
	ID        string
	VaultID   string
	UserID    string
	SessionID string
	Plan      Plan
	Amount    int64
	LedgerRef string
	CreatedAt time.Time
}

// OutboxKind tags a pending post-confirmation side effect.
type OutboxKind string

const (
	OutboxLifecycleAdvance OutboxKind = "lifecycle_advance"
	OutboxBillingAppend    OutboxKind = "billing_append"
)

// OutboxEntry is a durable record of a side effect owed after a payment
// confirmation. Entries are drained by the scheduler; a drained entry is
// removed, a failed one stays for the next pass.
type OutboxEntry struct {
	ID        int64
	Kind      OutboxKind
	SessionID string
	VaultID   string
	Attempts  int
	CreatedAt time.Time
}
