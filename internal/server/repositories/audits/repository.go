package audits

import (
	"context"

	"github.com/dpetrovs/heirvault/internal/server/models"
)

type Repository interface {
	Append(ctx context.Context, entry *models.AuditEntry) error
	ListByVault(ctx context.Context, vaultID string) ([]*models.AuditEntry, error)
	DeleteByVault(ctx context.Context, vaultID string) (int, error)
}
