package repomanager

import (
	"context"
	"database/sql"

	"github.com/dpetrovs/heirvault/internal/dbx"
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
)

// RepositoryManager vends repository implementations bound to a DBTX
// (*sql.DB, *sql.Tx, or nil for the in-memory manager).
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error

	// WithinTx runs fn inside a storage transaction when the backend
	// supports one; the in-memory manager simply invokes fn.
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx dbx.DBTX) error) error

	Vaults(db dbx.DBTX) vaults.Repository
	Members(db dbx.DBTX) members.Repository
	Invites(db dbx.DBTX) invites.Repository
	Contents(db dbx.DBTX) contents.Repository
	Approvals(db dbx.DBTX) approvals.Repository
	Payments(db dbx.DBTX) payments.Repository
	Billing(db dbx.DBTX) billing.Repository
	Audits(db dbx.DBTX) audits.Repository
	Outbox(db dbx.DBTX) outbox.Repository
	Settings(db dbx.DBTX) settings.Repository
}
