package outbox

import (
	"context"

	"github.com/dpetrovs/heirvault/internal/server/models"
)

// Repository is the durable list of post-confirmation side effects still
// owed. The scheduler drains it; a failed entry stays for the next pass.
type Repository interface {
	Enqueue(ctx context.Context, entry *models.OutboxEntry) error
	ListPending(ctx context.Context) ([]*models.OutboxEntry, error)
	MarkAttempt(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}
