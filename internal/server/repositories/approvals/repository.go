package approvals

import (
	"context"

	"github.com/dpetrovs/heirvault/internal/server/models"
)

type Repository interface {
	// Get returns the tallies for a vault; a vault with no recorded
	// approvals yields common.ErrorNotFound.
	Get(ctx context.Context, vaultID string) (models.ApprovalCounts, error)
	// Increment bumps the tally for the role and returns the new counts.
	Increment(ctx context.Context, vaultID string, role models.Role) (models.ApprovalCounts, error)
	Delete(ctx context.Context, vaultID string) error
}
