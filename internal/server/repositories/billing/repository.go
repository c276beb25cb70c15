package billing

import (
	"context"

	"github.com/dpetrovs/heirvault/internal/server/models"
)

// Repository is the append-only billing log. There is deliberately no
// delete operation; billing history outlives its vault.
type Repository interface {
	Append(ctx context.Context, entry *models.BillingEntry) error
	ListByVault(ctx context.Context, vaultID string) ([]*models.BillingEntry, error)
}
