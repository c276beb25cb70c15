// Package vaults provides persistence for vault records.
package vaults

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dpetrovs/heirvault/internal/common"
	"github.com/dpetrovs/heirvault/internal/dbx"
	"github.com/dpetrovs/heirvault/internal/server/models"
)

// PostgresRepository implements vault storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const vaultColumns = `vault_id, owner_id, name, description, status, plan,
	storage_quota_bytes, storage_used_bytes,
	unlock_at, inactivity_ns, required_heir_approvals, required_witness_approvals,
	created_at, updated_at, expires_at, unlocked_at, last_owner_activity_at`

func scanVault(row interface{ Scan(dest ...any) error }) (*models.VaultRecord, error) {
	var v models.VaultRecord
	var unlockAt, unlockedAt, expiresAt, lastActivity sql.NullTime
	var inactivityNs int64

	err := row.Scan(
		&v.ID, &v.OwnerID, &v.Name, &v.Description, &v.Status, &v.Plan,
		&v.StorageQuotaBytes, &v.StorageUsedBytes,
		&unlockAt, &inactivityNs,
		&v.Conditions.RequiredHeirApprovals, &v.Conditions.RequiredWitnessApprovals,
		&v.CreatedAt, &v.UpdatedAt, &expiresAt, &unlockedAt, &lastActivity,
	)
	if err != nil {
		return nil, err
	}

	v.Conditions.InactivityDuration = time.Duration(inactivityNs)
	if unlockAt.Valid {
		v.Conditions.UnlockAt = unlockAt.Time
	}
	if expiresAt.Valid {
		v.ExpiresAt = expiresAt.Time
	}
	if unlockedAt.Valid {
		v.UnlockedAt = unlockedAt.Time
	}
	if lastActivity.Valid {
		v.LastOwnerActivityAt = lastActivity.Time
	}
	return &v, nil
}

func nullTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}

// Create inserts a new vault record.
func (r *PostgresRepository) Create(ctx context.Context, vault *models.VaultRecord) error {
	query := `
		INSERT INTO vaults (` + vaultColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`
	_, err := r.db.ExecContext(ctx, query,
		vault.ID, vault.OwnerID, vault.Name, vault.Description, vault.Status, vault.Plan,
		vault.StorageQuotaBytes, vault.StorageUsedBytes,
		nullTime(vault.Conditions.UnlockAt), int64(vault.Conditions.InactivityDuration),
		vault.Conditions.RequiredHeirApprovals, vault.Conditions.RequiredWitnessApprovals,
		vault.CreatedAt, vault.UpdatedAt, nullTime(vault.ExpiresAt),
		nullTime(vault.UnlockedAt), nullTime(vault.LastOwnerActivityAt),
	)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// GetByID loads a vault record by its external identifier.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.VaultRecord, error) {
	query := `SELECT ` + vaultColumns + ` FROM vaults WHERE vault_id = $1`

	v, err := scanVault(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return v, nil
}

// Update rewrites the mutable fields of the vault record.
func (r *PostgresRepository) Update(ctx context.Context, vault *models.VaultRecord) error {
	query := `
		UPDATE vaults SET
			name = $2, description = $3, status = $4, plan = $5,
			storage_quota_bytes = $6, storage_used_bytes = $7,
			unlock_at = $8, inactivity_ns = $9,
			required_heir_approvals = $10, required_witness_approvals = $11,
			updated_at = $12, expires_at = $13, unlocked_at = $14,
			last_owner_activity_at = $15
		WHERE vault_id = $1
	`
	res, err := r.db.ExecContext(ctx, query,
		vault.ID, vault.Name, vault.Description, vault.Status, vault.Plan,
		vault.StorageQuotaBytes, vault.StorageUsedBytes,
		nullTime(vault.Conditions.UnlockAt), int64(vault.Conditions.InactivityDuration),
		vault.Conditions.RequiredHeirApprovals, vault.Conditions.RequiredWitnessApprovals,
		vault.UpdatedAt, nullTime(vault.ExpiresAt), nullTime(vault.UnlockedAt),
		nullTime(vault.LastOwnerActivityAt),
	)
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

// List returns every vault record.
func (r *PostgresRepository) List(ctx context.Context) ([]*models.VaultRecord, error) {
	query := `SELECT ` + vaultColumns + ` FROM vaults ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select vaults: %w", err)
	}
	defer rows.Close()

	var result []*models.VaultRecord
	for rows.Next() {
		v, err := scanVault(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Delete removes the vault record.
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM vaults WHERE vault_id = $1`, id)
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
