package members

import (
	"context"

	"github.com/dpetrovs/heirvault/internal/common"
	"github.com/dpetrovs/heirvault/internal/server/models"
	"github.com/dpetrovs/heirvault/internal/server/repositories/memstore"
)

// MemoryRepository keeps memberships in process memory, keyed by the
// composite (vault, member) identifier.
type MemoryRepository struct {
	store *memstore.Store[*models.Member]
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		store: memstore.New(func(m *models.Member) *models.Member {
			c := *m
			return &c
		}),
	}
}

func key(vaultID, memberID string) string {
	return vaultID + "/" + memberID
}

func (r *MemoryRepository) Create(ctx context.Context, member *models.Member) error {
	return r.store.Insert(key(member.VaultID, member.ID), member)
}

func (r *MemoryRepository) Get(ctx context.Context, vaultID, memberID string) (*models.Member, error) {
	return r.store.Get(key(vaultID, memberID))
}

func (r *MemoryRepository) GetByUser(ctx context.Context, vaultID, userID string) (*models.Member, error) {
	for _, m := range r.store.All() {
		if m.VaultID == vaultID && m.UserID == userID {
			return m, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *MemoryRepository) ListByVault(ctx context.Context, vaultID string) ([]*models.Member, error) {
	var result []*models.Member
	for _, m := range r.store.All() {
		if m.VaultID == vaultID {
			result = append(result, m)
		}
	}
	return result, nil
}

func (r *MemoryRepository) Update(ctx context.Context, member *models.Member) error {
	return r.store.Update(key(member.VaultID, member.ID), member)
}

func (r *MemoryRepository) DeleteByVault(ctx context.Context, vaultID string) (int, error) {
	removed := 0
	for _, m := range r.store.All() {
		if m.VaultID != vaultID {
			continue
		}
		if err := r.store.Remove(key(m.VaultID, m.ID)); err != nil {
			return removed, err
		}
		removed++
	}
	return removed, nil
}
