package invites

import (
	"context"

	"github.com/dpetrovs/heirvault/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, token *models.InviteToken) error
	GetByID(ctx context.Context, id string) (*models.InviteToken, error)
	Update(ctx context.Context, token *models.InviteToken) error
	ListByVault(ctx context.Context, vaultID string) ([]*models.InviteToken, error)
	// ListPending returns all tokens still in the pending state, for the
	// scheduler's expiry sweep.
	ListPending(ctx context.Context) ([]*models.InviteToken, error)
	DeleteByVault(ctx context.Context, vaultID string) (int, error)
}
