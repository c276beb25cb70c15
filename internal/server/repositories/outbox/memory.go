package outbox

import (
	"context"
	"sync"

	"github.com/dpetrovs/heirvault/internal/common"
	"github.com/dpetrovs/heirvault/internal/server/models"
)

// MemoryRepository keeps outbox entries in process memory. Entries are keyed
// by their own sequential id, so the generic external-id store is not needed.
type MemoryRepository struct {
	mu      sync.Mutex
	seq     int64
	entries map[int64]models.OutboxEntry
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{entries: make(map[int64]models.OutboxEntry)}
}

func (r *MemoryRepository) Enqueue(ctx context.Context, entry *models.OutboxEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	entry.ID = r.seq
	r.entries[entry.ID] = *entry
	return nil
}

func (r *MemoryRepository) ListPending(ctx context.Context) ([]*models.OutboxEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]*models.OutboxEntry, 0, len(r.entries))
	for id := int64(1); id <= r.seq; id++ {
		if e, ok := r.entries[id]; ok {
			c := e
			result = append(result, &c)
		}
	}
	return result, nil
}

func (r *MemoryRepository) MarkAttempt(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[id]
	if !ok {
		return common.ErrorNotFound
	}
	e.Attempts++
	r.entries[id] = e
	return nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[id]; !ok {
		return common.ErrorNotFound
	}
	delete(r.entries, id)
	return nil
}
