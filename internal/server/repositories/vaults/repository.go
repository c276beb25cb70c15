package vaults

import (
	"context"

	"github.com/dpetrovs/heirvault/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, vault *models.VaultRecord) error
	GetByID(ctx context.Context, id string) (*models.VaultRecord, error)
	Update(ctx context.Context, vault *models.VaultRecord) error
	// List returns every vault record; the scheduler sweeps the whole
	// collection in one pass.
	List(ctx context.Context) ([]*models.VaultRecord, error)
	Delete(ctx context.Context, id string) error
}
