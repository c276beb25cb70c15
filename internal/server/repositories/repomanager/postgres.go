// Package repomanager provides concrete RepositoryManager implementations:
// one for PostgreSQL (with goose migrations) and one fully in-memory.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dpetrovs/heirvault/internal/dbx"
	"github.com/dpetrovs/heirvault/internal/server/migrations"
	"github.com/dpetrovs/heirvault/internal/server/repositories/approvals"
	"github.com/dpetrovs/heirvault/internal/server/repositories/audits"
	"github.com/dpetrovs/heirvault/internal/server/repositories/billing"
	"github.com/dpetrovs/heirvault/internal/server/repositories/contents"
	"github.com/dpetrovs/heirvault/internal/server/repositories/invites"
	"github.com/dpetrovs/heirvault/internal/server/repositories/members"
	"github.com/dpetrovs/heirvault/internal/server/repositories/outbox"
	"github.com/dpetrovs/heirvault/internal/server/repositories/payments"
	"github.com/dpetrovs/heirvault/internal/server/repositories/settings"
	"github.com/dpetrovs/heirvault/internal/server/repositories/vaults"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// PostgresRepositoryManager vends PostgreSQL-backed repositories and exposes
// a schema migration hook.
type PostgresRepositoryManager struct {
	db *sql.DB
}

// NewPostgresRepositoryManager constructs a PostgreSQL-backed manager over
// an open connection pool.
func NewPostgresRepositoryManager(db *sql.DB) *PostgresRepositoryManager {
	return &PostgresRepositoryManager{db: db}
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, db, "."); err != nil {
		return err
	}
	return nil
}

// WithinTx runs fn inside a database transaction.
func (m *PostgresRepositoryManager) WithinTx(ctx context.Context, fn func(ctx context.Context, tx dbx.DBTX) error) error {
	return dbx.WithTx(ctx, m.db, nil, fn)
}

func (m *PostgresRepositoryManager) Vaults(db dbx.DBTX) vaults.Repository {
	return vaults.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Members(db dbx.DBTX) members.Repository {
	return members.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Invites(db dbx.DBTX) invites.Repository {
	return invites.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Contents(db dbx.DBTX) contents.Repository {
	return contents.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Approvals(db dbx.DBTX) approvals.Repository {
	return approvals.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Payments(db dbx.DBTX) payments.Repository {
	return payments.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Billing(db dbx.DBTX) billing.Repository {
	return billing.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Audits(db dbx.DBTX) audits.Repository {
	return audits.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Outbox(db dbx.DBTX) outbox.Repository {
	return outbox.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Settings(db dbx.DBTX) settings.Repository {
	return settings.NewPostgresRepository(db)
}
