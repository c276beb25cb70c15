package vaults

import (
	"context"

	"github.com/dpetrovs/heirvault/internal/server/models"
	"github.com/dpetrovs/heirvault/internal/server/repositories/memstore"
)

// MemoryRepository keeps vault records in process memory. Used in tests and
// when no database DSN is configured.
type MemoryRepository struct {
	store *memstore.Store[*models.VaultRecord]
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		store: memstore.New(func(v *models.VaultRecord) *models.VaultRecord {
			c := *v
			return &c
		}),
	}
}

func (r *MemoryRepository) Create(ctx context.Context, vault *models.VaultRecord) error {
	return r.store.Insert(vault.ID, vault)
}

func (r *MemoryRepository) GetByID(ctx context.Context, id string) (*models.VaultRecord, error) {
	return r.store.Get(id)
}

func (r *MemoryRepository) Update(ctx context.Context, vault *models.VaultRecord) error {
	return r.store.Update(vault.ID, vault)
}

func (r *MemoryRepository) List(ctx context.Context) ([]*models.VaultRecord, error) {
	return r.store.All(), nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id string) error {
	return r.store.Remove(id)
}
