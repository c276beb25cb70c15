// Package contents provides persistence for finalized vault content items.
package contents

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

const contentColumns = `content_id, vault_id, content_type, title, mime_type,
	payload, storage_key, size_bytes, checksum, created_at, updated_at`

func scanContent(row interface{ Scan(dest ...any) error }) (*models.ContentItem, error) {
	var c models.ContentItem
	err := row.Scan(
		&c.ID, &c.VaultID, &c.Type, &c.Title, &c.MimeType,
		&c.Payload, &c.StorageKey, &c.SizeBytes, &c.Checksum,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PostgresRepository) Create(ctx context.Context, item *models.ContentItem) error {
	query := `
		INSERT INTO content_items (` + contentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.db.ExecContext(ctx, query,
		item.ID, item.VaultID, item.Type, item.Title, item.MimeType,
		item.Payload, item.StorageKey, item.SizeBytes, item.Checksum,
		item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, vaultID, id string) (*models.ContentItem, error) {
	query := `SELECT ` + contentColumns + ` FROM content_items WHERE vault_id = $1 AND content_id = $2`

	c, err := scanContent(r.db.QueryRowContext(ctx, query, vaultID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return c, nil
}

func (r *PostgresRepository) ListByVault(ctx context.Context, vaultID string) ([]*models.ContentItem, error) {
	query := `SELECT ` + contentColumns + ` FROM content_items WHERE vault_id = $1 ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, vaultID)
	if err != nil {
		return nil, fmt.Errorf("failed to select content items: %w", err)
	}
	defer rows.Close()

	var result []*models.ContentItem
	for rows.Next() {
		c, err := scanContent(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, vaultID, id string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM content_items WHERE vault_id = $1 AND content_id = $2`, vaultID, id)
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

func (r *PostgresRepository) DeleteByVault(ctx context.Context, vaultID string) (int, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM content_items WHERE vault_id = $1`, vaultID)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected error: %w", err)
	}
	return int(n), nil
}
