package settings

import (
	"context"
	"sync"

	"github.com/dpetrovs/heirvault/internal/common"
)

// MemoryRepository keeps admin settings in process memory.
type MemoryRepository struct {
	mu     sync.Mutex
	values map[string]string
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{values: make(map[string]string)}
}

func (r *MemoryRepository) Get(ctx context.Context, key string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.values[key]
	if !ok {
		return "", common.ErrorNotFound
	}
	return v, nil
}

func (r *MemoryRepository) Set(ctx context.Context, key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[key] = value
	return nil
}
