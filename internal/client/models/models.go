// Package models defines the client-side views of server resources.
// These are flat structs decoded from the gRPC responses; all timestamps
// are carried as time.Time in UTC.
package models

import "time"

// Vault is the client view of a vault record.
type Vault struct {
	ID                string
	OwnerID           string
	Name              string
	Description       string
	Status            string
	Plan              string
	StorageQuotaBytes int64

	UnlockAt                 time.Time
	InactivityDuration       time.Duration
	RequiredHeirApprovals    int
	RequiredWitnessApprovals int

	CreatedAt  time.Time
	ExpiresAt  time.Time
	UnlockedAt time.Time
}

// Invite is the result of generating an invite. ClaimToken is shown once
// and never stored server-side in clear form.
type Invite struct {
	ID         string
	ClaimToken string
	ShareIndex int
	ExpiresAt  time.Time
}

// Membership is the result of claiming an invite.
type Membership struct {
	VaultID    string
	MemberID   string
	Role       string
	ShareIndex int
}

// Payment is the client view of a payment session.
type Payment struct {
	SessionID      string
	State          string
	Account        string
	ExpectedAmount int64
	ExpiresAt      time.Time
	LedgerRef      string
}

// ApprovalTally reports the current unlock approval counts.
type ApprovalTally struct {
	HeirApprovals    int
	WitnessApprovals int
}

// ContentItem describes a stored vault item without its payload.
type ContentItem struct {
	ID          string
	VaultID     string
	ContentType string
	Title       string
	MimeType    string
	SizeBytes   int64
	Checksum    string
	CreatedAt   time.Time
}

// Download is a fetched item. Exactly one of Payload or URL is set:
// small items arrive inline, larger ones as a presigned link.
type Download struct {
	Item    ContentItem
	Payload []byte
	URL     string
}

// MaintenanceReport summarizes a server maintenance pass.
type MaintenanceReport struct {
	InvitesExpired int
	VaultsAdvanced int
	OutboxDrained  int
	VaultsCascaded int
	UploadsEvicted int
	Errors         int
}
