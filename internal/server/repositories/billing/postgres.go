// Package billing provides the append-only billing log.
package billing

import (
	"context"
	"fmt"

	"github.com/dpetrovs/heirvault/internal/dbx"
	"github.com/dpetrovs/heirvault/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Append(ctx context.Context, entry *models.BillingEntry) error {
	query := `
		INSERT INTO billing_log (entry_id, vault_id, user_id, session_id, plan, amount, ledger_ref, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, query,
		entry.ID, entry.VaultID, entry.UserID, entry.SessionID,
		entry.Plan, entry.Amount, entry.LedgerRef, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) ListByVault(ctx context.Context, vaultID string) ([]*models.BillingEntry, error) {
	query := `
		SELECT entry_id, vault_id, user_id, session_id, plan, amount, ledger_ref, created_at
		FROM billing_log WHERE vault_id = $1 ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, query, vaultID)
	if err != nil {
		return nil, fmt.Errorf("failed to select billing entries: %w", err)
	}
	defer rows.Close()

	var result []*models.BillingEntry
	for rows.Next() {
		var e models.BillingEntry
		if err := rows.Scan(&e.ID, &e.VaultID, &e.UserID, &e.SessionID,
			&e.Plan, &e.Amount, &e.LedgerRef, &e.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
