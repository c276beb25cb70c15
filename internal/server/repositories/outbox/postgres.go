// Package outbox provides the durable side-effect queue written on payment
// confirmation and drained by the scheduler.
package outbox

import (
	"context"
	"fmt"

	"github.com/dpetrovs/heirvault/internal/common"
	"github.com/dpetrovs/heirvault/internal/dbx"
	"github.com/dpetrovs/heirvault/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Enqueue(ctx context.Context, entry *models.OutboxEntry) error {
	query := `
		INSERT INTO payment_outbox (kind, session_id, vault_id, attempts, created_at)
		VALUES ($1, $2, $3, 0, $4)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query,
		entry.Kind, entry.SessionID, entry.VaultID, entry.CreatedAt,
	).Scan(&entry.ID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) ListPending(ctx context.Context) ([]*models.OutboxEntry, error) {
	query := `
		SELECT id, kind, session_id, vault_id, attempts, created_at
		FROM payment_outbox ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select outbox entries: %w", err)
	}
	defer rows.Close()

	var result []*models.OutboxEntry
	for rows.Next() {
		var e models.OutboxEntry
		if err := rows.Scan(&e.ID, &e.Kind, &e.SessionID, &e.VaultID, &e.Attempts, &e.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) MarkAttempt(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE payment_outbox SET attempts = attempts + 1 WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM payment_outbox WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
