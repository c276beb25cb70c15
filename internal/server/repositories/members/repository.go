package members

import (
	"context"

	"github.com/dpetrovs/heirvault/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, member *models.Member) error
	Get(ctx context.Context, vaultID, memberID string) (*models.Member, error)
	// GetByUser resolves the membership of a user within a vault.
	GetByUser(ctx context.Context, vaultID, userID string) (*models.Member, error)
	ListByVault(ctx context.Context, vaultID string) ([]*models.Member, error)
	Update(ctx context.Context, member *models.Member) error
	// DeleteByVault removes every membership of the vault and returns how
	// many were removed.
	DeleteByVault(ctx context.Context, vaultID string) (int, error)
}
