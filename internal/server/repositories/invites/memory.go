package invites

import (
	"context"

	"github.com/dpetrovs/heirvault/internal/server/models"
	"github.com/dpetrovs/heirvault/internal/server/repositories/memstore"
)

// MemoryRepository keeps invite tokens in process memory.
type MemoryRepository struct {
	store *memstore.Store[*models.InviteToken]
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		store: memstore.New(func(t *models.InviteToken) *models.InviteToken {
			c := *t
			return &c
		}),
	}
}

func (r *MemoryRepository) Create(ctx context.Context, token *models.InviteToken) error {
	return r.store.Insert(token.ID, token)
}

func (r *MemoryRepository) GetByID(ctx context.Context, id string) (*models.InviteToken, error) {
	return r.store.Get(id)
}

func (r *MemoryRepository) Update(ctx context.Context, token *models.InviteToken) error {
	return r.store.Update(token.ID, token)
}

func (r *MemoryRepository) ListByVault(ctx context.Context, vaultID string) ([]*models.InviteToken, error) {
	var result []*models.InviteToken
	for _, t := range r.store.All() {
		if t.VaultID == vaultID {
			result = append(result, t)
		}
	}
	return result, nil
}

func (r *MemoryRepository) ListPending(ctx context.Context) ([]*models.InviteToken, error) {
	var result []*models.InviteToken
	for _, t := range r.store.All() {
		if t.Status == models.InvitePending {
			result = append(result, t)
		}
	}
	return result, nil
}

func (r *MemoryRepository) DeleteByVault(ctx context.Context, vaultID string) (int, error) {
	removed := 0
	for _, t := range r.store.All() {
		if t.VaultID != vaultID {
			continue
		}
		if err := r.store.Remove(t.ID); err != nil {
			return removed, err
		}
		removed++
	}
	return removed, nil
}
