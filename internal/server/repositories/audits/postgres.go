// Package audits provides persistence for per-vault audit entries.
package audits

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

func (r *PostgresRepository) Append(ctx context.Context, entry *models.AuditEntry) error {
	query := `
		INSERT INTO audit_log (entry_id, vault_id, actor_id, action, details, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.ExecContext(ctx, query,
		entry.ID, entry.VaultID, entry.ActorID, entry.Action, entry.Details, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) ListByVault(ctx context.Context, vaultID string) ([]*models.AuditEntry, error) {
	query := `
		SELECT entry_id, vault_id, actor_id, action, details, created_at
		FROM audit_log WHERE vault_id = $1 ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, query, vaultID)
	if err != nil {
		return nil, fmt.Errorf("failed to select audit entries: %w", err)
	}
	defer rows.Close()

	var result []*models.AuditEntry
	for rows.Next() {
		var e models.AuditEntry
		if err := rows.Scan(&e.ID, &e.VaultID, &e.ActorID, &e.Action, &e.Details, &e.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) DeleteByVault(ctx context.Context, vaultID string) (int, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM audit_log WHERE vault_id = $1`, vaultID)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected error: %w", err)
	}
	return int(n), nil
}
