// Package invites provides persistence for invite tokens.
package invites

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

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const inviteColumns = `token_id, vault_id, role, status, share_index, secret_digest,
	claimed_by, claimed_at, created_at, expires_at`

func scanInvite(row interface{ Scan(dest ...any) error }) (*models.InviteToken, error) {
	var t models.InviteToken
	var claimedBy sql.NullString
	var claimedAt sql.NullTime

	err := row.Scan(
		&t.ID, &t.VaultID, &t.Role, &t.Status, &t.ShareIndex, &t.SecretDigest,
		&claimedBy, &claimedAt, &t.CreatedAt, &t.ExpiresAt,
	)
	if err != nil {
		return nil, err
	}
	if claimedBy.Valid {
		t.ClaimedBy = claimedBy.String
	}
	if claimedAt.Valid {
		t.ClaimedAt = claimedAt.Time
	}
	return &t, nil
}

func (r *PostgresRepository) Create(ctx context.Context, token *models.InviteToken) error {
	query := `
		INSERT INTO invite_tokens (` + inviteColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.db.ExecContext(ctx, query,
		token.ID, token.VaultID, token.Role, token.Status, token.ShareIndex,
		token.SecretDigest, nullString(token.ClaimedBy), nullTime(token.ClaimedAt),
		token.CreatedAt, token.ExpiresAt,
	)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.InviteToken, error) {
	query := `SELECT ` + inviteColumns + ` FROM invite_tokens WHERE token_id = $1`

	t, err := scanInvite(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return t, nil
}

func (r *PostgresRepository) Update(ctx context.Context, token *models.InviteToken) error {
	query := `
		UPDATE invite_tokens SET
			status = $2, claimed_by = $3, claimed_at = $4
		WHERE token_id = $1
	`
	res, err := r.db.ExecContext(ctx, query,
		token.ID, token.Status, nullString(token.ClaimedBy), nullTime(token.ClaimedAt),
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

func (r *PostgresRepository) ListByVault(ctx context.Context, vaultID string) ([]*models.InviteToken, error) {
	query := `SELECT ` + inviteColumns + ` FROM invite_tokens WHERE vault_id = $1 ORDER BY id`
	return r.list(ctx, query, vaultID)
}

func (r *PostgresRepository) ListPending(ctx context.Context) ([]*models.InviteToken, error) {
	query := `SELECT ` + inviteColumns + ` FROM invite_tokens WHERE status = $1 ORDER BY id`
	return r.list(ctx, query, models.InvitePending)
}

func (r *PostgresRepository) list(ctx context.Context, query string, args ...any) ([]*models.InviteToken, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select invite tokens: %w", err)
	}
	defer rows.Close()

	var result []*models.InviteToken
	for rows.Next() {
		t, err := scanInvite(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) DeleteByVault(ctx context.Context, vaultID string) (int, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM invite_tokens WHERE vault_id = $1`, vaultID)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected error: %w", err)
	}
	return int(n), nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}
