package payments

import (
	"context"

	"github.com/dpetrovs/heirvault/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, session *models.PaymentSession) error
	GetByID(ctx context.Context, id string) (*models.PaymentSession, error)
	Update(ctx context.Context, session *models.PaymentSession) error
}
