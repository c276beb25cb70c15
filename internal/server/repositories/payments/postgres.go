// Package payments provides persistence for payment sessions.
package payments

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

const sessionColumns = `session_id, vault_id, user_id, purpose, plan, account,
	expected_amount, state, ledger_ref, error_text,
	created_at, expires_at, verified_at, closed_at`

func scanSession(row interface{ Scan(dest ...any) error }) (*models.PaymentSession, error) {
	var s models.PaymentSession
	var verifiedAt, closedAt sql.NullTime

	err := row.Scan(
		&s.ID, &s.VaultID, &s.UserID, &s.Purpose, &s.Plan, &s.Account,
		&s.ExpectedAmount, &s.State, &s.LedgerRef, &s.ErrorText,
		&s.CreatedAt, &s.ExpiresAt, &verifiedAt, &closedAt,
	)
	if err != nil {
		return nil, err
	}
	if verifiedAt.Valid {
		s.VerifiedAt = verifiedAt.Time
	}
	if closedAt.Valid {
		s.ClosedAt = closedAt.Time
	}
	return &s, nil
}

func (r *PostgresRepository) Create(ctx context.Context, session *models.PaymentSession) error {
	query := `
		INSERT INTO payment_sessions (` + sessionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`
	_, err := r.db.ExecContext(ctx, query,
		session.ID, session.VaultID, session.UserID, session.Purpose, session.Plan,
		session.Account, session.ExpectedAmount, session.State, session.LedgerRef,
		session.ErrorText, session.CreatedAt, session.ExpiresAt,
		nullTime(session.VerifiedAt), nullTime(session.ClosedAt),
	)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.PaymentSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM payment_sessions WHERE session_id = $1`

	s, err := scanSession(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return s, nil
}

func (r *PostgresRepository) Update(ctx context.Context, session *models.PaymentSession) error {
	query := `
		UPDATE payment_sessions SET
			state = $2, ledger_ref = $3, error_text = $4,
			verified_at = $5, closed_at = $6
		WHERE session_id = $1
	`
	res, err := r.db.ExecContext(ctx, query,
		session.ID, session.State, session.LedgerRef, session.ErrorText,
		nullTime(session.VerifiedAt), nullTime(session.ClosedAt),
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

func nullTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}
