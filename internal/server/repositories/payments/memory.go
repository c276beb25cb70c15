package payments

import (
	"context"

	"github.com/dpetrovs/heirvault/internal/server/models"
	"github.com/dpetrovs/heirvault/internal/server/repositories/memstore"
)

// MemoryRepository keeps payment sessions in process memory.
type MemoryRepository struct {
	store *memstore.Store[*models.PaymentSession]
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		store: memstore.New(func(s *models.PaymentSession) *models.PaymentSession {
			c := *s
			return &c
		}),
	}
}

func (r *MemoryRepository) Create(ctx context.Context, session *models.PaymentSession) error {
	return r.store.Insert(session.ID, session)
}

func (r *MemoryRepository) GetByID(ctx context.Context, id string) (*models.PaymentSession, error) {
	return r.store.Get(id)
}

func (r *MemoryRepository) Update(ctx context.Context, session *models.PaymentSession) error {
	return r.store.Update(session.ID, session)
}
