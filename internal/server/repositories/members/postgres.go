// Package members provides persistence for vault memberships. Members are
// keyed by the composite (vault_id, member_id) pair.
package members

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

const memberColumns = `member_id, vault_id, user_id, role, status, share_index,
	has_approved_unlock, downloads_today, downloads_day, display_name, created_at`

func scanMember(row interface{ Scan(dest ...any) error }) (*models.Member, error) {
	var m models.Member
	err := row.Scan(
		&m.ID, &m.VaultID, &m.UserID, &m.Role, &m.Status, &m.ShareIndex,
		&m.HasApprovedUnlock, &m.DownloadsToday, &m.DownloadsDay,
		&m.DisplayName, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PostgresRepository) Create(ctx context.Context, member *models.Member) error {
	query := `
		INSERT INTO members (` + memberColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.db.ExecContext(ctx, query,
		member.ID, member.VaultID, member.UserID, member.Role, member.Status,
		member.ShareIndex, member.HasApprovedUnlock, member.DownloadsToday,
		member.DownloadsDay, member.DisplayName, member.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Get(ctx context.Context, vaultID, memberID string) (*models.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE vault_id = $1 AND member_id = $2`

	m, err := scanMember(r.db.QueryRowContext(ctx, query, vaultID, memberID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return m, nil
}

func (r *PostgresRepository) GetByUser(ctx context.Context, vaultID, userID string) (*models.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE vault_id = $1 AND user_id = $2`

	m, err := scanMember(r.db.QueryRowContext(ctx, query, vaultID, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return m, nil
}

func (r *PostgresRepository) ListByVault(ctx context.Context, vaultID string) ([]*models.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE vault_id = $1 ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, vaultID)
	if err != nil {
		return nil, fmt.Errorf("failed to select members: %w", err)
	}
	defer rows.Close()

	var result []*models.Member
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) Update(ctx context.Context, member *models.Member) error {
	query := `
		UPDATE members SET
			role = $3, status = $4, share_index = $5, has_approved_unlock = $6,
			downloads_today = $7, downloads_day = $8, display_name = $9
		WHERE vault_id = $1 AND member_id = $2
	`
	res, err := r.db.ExecContext(ctx, query,
		member.VaultID, member.ID, member.Role, member.Status, member.ShareIndex,
		member.HasApprovedUnlock, member.DownloadsToday, member.DownloadsDay,
		member.DisplayName,
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

func (r *PostgresRepository) DeleteByVault(ctx context.Context, vaultID string) (int, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM members WHERE vault_id = $1`, vaultID)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected error: %w", err)
	}
	return int(n), nil
}
