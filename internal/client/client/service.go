package client

import (
	"context"

	"github.com/dpetrovs/heirvault/internal/client/models"
)

// Client is the command surface the CLI talks to. The gRPC implementation
// satisfies it; tests provide stubs.
type Client interface {
	Close() error
	Ping(ctx context.Context) error
	SetAccessToken(token string)

	CreateVault(ctx context.Context, name, description, plan string,
		unlockAtUnix, inactivitySeconds int64, heirApprovals, witnessApprovals int) (*models.Vault, error)
	GetVault(ctx context.Context, vaultID string) (*models.Vault, error)
	FinalizeSetup(ctx context.Context, vaultID string) (*models.Vault, error)
	ApproveUnlock(ctx context.Context, vaultID string) (*models.ApprovalTally, error)
	TriggerUnlock(ctx context.Context, vaultID string) (*models.Vault, error)
	DeleteVault(ctx context.Context, vaultID string) (*models.Vault, error)

	GenerateInvite(ctx context.Context, vaultID, role string) (*models.Invite, error)
	ClaimInvite(ctx context.Context, claimToken, displayName string) (*models.Membership, error)
	RevokeInvite(ctx context.Context, vaultID, inviteID string) error

	InitializePayment(ctx context.Context, vaultID, purpose, plan string) (*models.Payment, error)
	VerifyPayment(ctx context.Context, sessionID string, blockIndex uint64) (*models.Payment, error)
	ClosePayment(ctx context.Context, sessionID string) (*models.Payment, error)

	BeginUpload(ctx context.Context, vaultID, contentType, title, fileName, mimeType string,
		declaredSize int64, expectedChunks int) (string, error)
	UploadChunk(ctx context.Context, uploadID string, seq int, data []byte) error
	FinishUpload(ctx context.Context, uploadID, checksum string) (*models.ContentItem, error)
	AbortUpload(ctx context.Context, uploadID string) error

	ListContent(ctx context.Context, vaultID string) ([]models.ContentItem, error)
	DownloadContent(ctx context.Context, vaultID, contentID string) (*models.Download, error)
	DeleteContent(ctx context.Context, vaultID, contentID string) error

	SetSetting(ctx context.Context, key, value string) error
	RunMaintenance(ctx context.Context) (*models.MaintenanceReport, error)
}
