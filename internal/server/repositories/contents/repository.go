package contents

import (
	"context"

	"github.com/dpetrovs/heirvault/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, item *models.ContentItem) error
	GetByID(ctx context.Context, vaultID, id string) (*models.ContentItem, error)
	// ListByVault resolves the vault's content id-list index; payloads are
	// included.
	ListByVault(ctx context.Context, vaultID string) ([]*models.ContentItem, error)
	Delete(ctx context.Context, vaultID, id string) error
	DeleteByVault(ctx context.Context, vaultID string) (int, error)
}
