package contents

import (
	"context"
	"errors"
	"sync"

	"github.com/dpetrovs/heirvault/internal/common"
	"github.com/dpetrovs/heirvault/internal/server/models"
	"github.com/dpetrovs/heirvault/internal/server/repositories/memstore"
)

// MemoryRepository keeps content items in process memory. Besides the
// primary store it maintains a per-vault id-list index so listings do not
// scan the whole collection; both structures are updated in the same
// logical operation.
type MemoryRepository struct {
	store *memstore.Store[*models.ContentItem]

	mu         sync.Mutex
	vaultIndex map[string][]string
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		store: memstore.New(func(c *models.ContentItem) *models.ContentItem {
			cc := *c
			cc.Payload = append([]byte(nil), c.Payload...)
			return &cc
		}),
		vaultIndex: make(map[string][]string),
	}
}

func (r *MemoryRepository) Create(ctx context.Context, item *models.ContentItem) error {
	if err := r.store.Insert(item.ID, item); err != nil {
		return err
	}
	r.mu.Lock()
	r.vaultIndex[item.VaultID] = append(r.vaultIndex[item.VaultID], item.ID)
	r.mu.Unlock()
	return nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, vaultID, id string) (*models.ContentItem, error) {
	c, err := r.store.Get(id)
	if err != nil {
		return nil, err
	}
	if c.VaultID != vaultID {
		return nil, common.ErrorNotFound
	}
	return c, nil
}

func (r *MemoryRepository) ListByVault(ctx context.Context, vaultID string) ([]*models.ContentItem, error) {
	r.mu.Lock()
	ids := append([]string(nil), r.vaultIndex[vaultID]...)
	r.mu.Unlock()

	var result []*models.ContentItem
	for _, id := range ids {
		c, err := r.store.Get(id)
		if err != nil {
			// A listed id without a primary record is a recoverable index
			// inconsistency; skip it and keep listing.
			if errors.Is(err, common.ErrIndexInconsistent) || errors.Is(err, common.ErrorNotFound) {
				continue
			}
			return nil, err
		}
		result = append(result, c)
	}
	return result, nil
}

func (r *MemoryRepository) Delete(ctx context.Context, vaultID, id string) error {
	c, err := r.store.Get(id)
	if err != nil {
		return err
	}
	if c.VaultID != vaultID {
		return common.ErrorNotFound
	}
	if err := r.store.Remove(id); err != nil {
		return err
	}
	r.dropFromIndex(vaultID, id)
	return nil
}

func (r *MemoryRepository) DeleteByVault(ctx context.Context, vaultID string) (int, error) {
	r.mu.Lock()
	ids := append([]string(nil), r.vaultIndex[vaultID]...)
	delete(r.vaultIndex, vaultID)
	r.mu.Unlock()

	removed := 0
	for _, id := range ids {
		err := r.store.Remove(id)
		if err != nil {
			// Already-missing primary records do not abort the cascade.
			if errors.Is(err, common.ErrorNotFound) || errors.Is(err, common.ErrIndexInconsistent) {
				continue
			}
			return removed, err
		}
		removed++
	}
	return removed, nil
}

func (r *MemoryRepository) dropFromIndex(vaultID, id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := r.vaultIndex[vaultID]
	for i, v := range ids {
		if v == id {
			r.vaultIndex[vaultID] = append(ids[:i], ids[i+1:]...)
			return
		}
	}
}
