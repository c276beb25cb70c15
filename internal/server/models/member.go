package models

import "time"

// Role of a vault member.
type Role string

const (
	RoleHeir    Role = "heir"
	RoleWitness Role = "witness"
	RoleMaster  Role = "master"
)

// MemberStatus is the lifecycle status of a membership.
type MemberStatus string

const (
	MemberActive  MemberStatus = "active"
	MemberRevoked MemberStatus = "revoked"
)

// Member is a claimed membership of a vault. The (VaultID, ID) pair is the
// composite key; ShareIndex is unique within a vault across members and
// pending invite tokens.
type Member struct {
	ID      string
	VaultID string
	UserID  string
	Role    Role
	Status  MemberStatus

	// ShareIndex is the secret-share slot in [1,255].
	ShareIndex int

	// HasApprovedUnlock is set once by an approval action and cleared only
	// when the vault is deleted.
	HasApprovedUnlock bool

	// DownloadsToday / DownloadsDay implement the per-member daily download
	// counter. The counter resets when DownloadsDay differs from today.
	DownloadsToday int
	DownloadsDay   string // "2006-01-02"

	DisplayName string
	CreatedAt   time.Time
}

// InviteStatus is the lifecycle status of an invite token.
type InviteStatus string

const (
	InvitePending InviteStatus = "pending"
	InviteClaimed InviteStatus = "claimed"
	InviteExpired InviteStatus = "expired"
	InviteRevoked InviteStatus = "revoked"
)

// InviteToken is a time-bounded invitation to join a vault. The share index
// is reserved at issuance so two outstanding invites can never collide.
type InviteToken struct {
	ID         string
	VaultID    string
	Role       Role
	Status     InviteStatus
	ShareIndex int

	// SecretDigest is the at-rest digest of the token secret handed to the
	// invitee out of band.
	SecretDigest []byte

	ClaimedBy string
	ClaimedAt time.Time

	CreatedAt time.Time
	ExpiresAt time.Time
}
