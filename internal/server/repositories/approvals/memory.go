package approvals

import (
	"context"

	"github.com/dpetrovs/heirvault/internal/server/models"
	"github.com/dpetrovs/heirvault/internal/server/repositories/memstore"
)

// MemoryRepository keeps approval tallies in process memory.
type MemoryRepository struct {
	store *memstore.Store[*models.ApprovalCounts]
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		store: memstore.New(func(c *models.ApprovalCounts) *models.ApprovalCounts {
			cc := *c
			return &cc
		}),
	}
}

func (r *MemoryRepository) Get(ctx context.Context, vaultID string) (models.ApprovalCounts, error) {
	c, err := r.store.Get(vaultID)
	if err != nil {
		return models.ApprovalCounts{}, err
	}
	return *c, nil
}

func (r *MemoryRepository) Increment(ctx context.Context, vaultID string, role models.Role) (models.ApprovalCounts, error) {
	c, err := r.store.Get(vaultID)
	if err != nil {
		c = &models.ApprovalCounts{VaultID: vaultID}
		if insErr := r.store.Insert(vaultID, c); insErr != nil {
			return models.ApprovalCounts{}, insErr
		}
	}
	if role == models.RoleWitness {
		c.WitnessApprovals++
	} else {
		c.HeirApprovals++
	}
	if err := r.store.Update(vaultID, c); err != nil {
		return models.ApprovalCounts{}, err
	}
	return *c, nil
}

func (r *MemoryRepository) Delete(ctx context.Context, vaultID string) error {
	return r.store.Remove(vaultID)
}
