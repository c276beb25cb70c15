package audits

import (
	"context"
	"errors"

	"github.com/dpetrovs/heirvault/internal/common"
	"github.com/dpetrovs/heirvault/internal/server/models"
	"github.com/dpetrovs/heirvault/internal/server/repositories/memstore"
)

// MemoryRepository keeps audit entries in process memory.
type MemoryRepository struct {
	store *memstore.Store[*models.AuditEntry]
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		store: memstore.New(func(e *models.AuditEntry) *models.AuditEntry {
			c := *e
			return &c
		}),
	}
}

func (r *MemoryRepository) Append(ctx context.Context, entry *models.AuditEntry) error {
	return r.store.Insert(entry.ID, entry)
}

func (r *MemoryRepository) ListByVault(ctx context.Context, vaultID string) ([]*models.AuditEntry, error) {
	var result []*models.AuditEntry
	for _, e := range r.store.All() {
		if e.VaultID == vaultID {
			result = append(result, e)
		}
	}
	return result, nil
}

func (r *MemoryRepository) DeleteByVault(ctx context.Context, vaultID string) (int, error) {
	removed := 0
	for _, e := range r.store.All() {
		if e.VaultID != vaultID {
			continue
		}
		if err := r.store.Remove(e.ID); err != nil {
			if errors.Is(err, common.ErrorNotFound) || errors.Is(err, common.ErrIndexInconsistent) {
				continue
			}
			return removed, err
		}
		removed++
	}
	return removed, nil
}
