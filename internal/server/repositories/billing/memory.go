package billing

import (
	"context"

	"github.com/dpetrovs/heirvault/internal/server/models"
	"github.com/dpetrovs/heirvault/internal/server/repositories/memstore"
)

// MemoryRepository keeps billing entries in process memory.
type MemoryRepository struct {
	store *memstore.Store[*models.BillingEntry]
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		store: memstore.New(func(e *models.BillingEntry) *models.BillingEntry {
			c := *e
			return &c
		}),
	}
}

func (r *MemoryRepository) Append(ctx context.Context, entry *models.BillingEntry) error {
	return r.store.Insert(entry.ID, entry)
}

func (r *MemoryRepository) ListByVault(ctx context.Context, vaultID string) ([]*models.BillingEntry, error) {
	var result []*models.BillingEntry
	for _, e := range r.store.All() {
		if e.VaultID == vaultID {
			result = append(result, e)
		}
	}
	return result, nil
}
