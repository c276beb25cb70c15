// Package approvals provides persistence for per-vault unlock approval
// tallies.
package approvals

import (
	"context"
	"database/sql"
	"errors"
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

func (r *PostgresRepository) Get(ctx context.Context, vaultID string) (models.ApprovalCounts, error) {
	query := `SELECT vault_id, heir_approvals, witness_approvals FROM approval_counts WHERE vault_id = $1`

	var c models.ApprovalCounts
	err := r.db.QueryRowContext(ctx, query, vaultID).
		Scan(&c.VaultID, &c.HeirApprovals, &c.WitnessApprovals)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ApprovalCounts{}, common.ErrorNotFound
		}
		return models.ApprovalCounts{}, fmt.Errorf("db error: %w", err)
	}
	return c, nil
}

func (r *PostgresRepository) Increment(ctx context.Context, vaultID string, role models.Role) (models.ApprovalCounts, error) {
	column := "heir_approvals"
	if role == models.RoleWitness {
		column = "witness_approvals"
	}

	query := `
		INSERT INTO approval_counts (vault_id, heir_approvals, witness_approvals)
		VALUES ($1, 0, 0)
		ON CONFLICT (vault_id) DO NOTHING
	`
	if _, err := r.db.ExecContext(ctx, query, vaultID); err != nil {
		return models.ApprovalCounts{}, fmt.Errorf("db error: %w", err)
	}

	var c models.ApprovalCounts
	err := r.db.QueryRowContext(ctx,
		`UPDATE approval_counts SET `+column+` = `+column+` + 1
		 WHERE vault_id = $1
		 RETURNING vault_id, heir_approvals, witness_approvals`, vaultID).
		Scan(&c.VaultID, &c.HeirApprovals, &c.WitnessApprovals)
	if err != nil {
		return models.ApprovalCounts{}, fmt.Errorf("db error: %w", err)
	}
	return c, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, vaultID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM approval_counts WHERE vault_id = $1`, vaultID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
