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

// MemoryRepositoryManager vends purely in-memory repositories. Used in
// tests and when no database DSN is configured. Unlike the Postgres
// manager its repositories are stateful singletons, so the DBTX argument
// is ignored.
type MemoryRepositoryManager struct {
	vaults    *vaults.MemoryRepository
	members   *members.MemoryRepository
	invites   *invites.MemoryRepository
	contents  *contents.MemoryRepository
	approvals *approvals.MemoryRepository
	payments  *payments.MemoryRepository
	billing   *billing.MemoryRepository
	audits    *audits.MemoryRepository
	outbox    *outbox.MemoryRepository
	settings  *settings.MemoryRepository
}

func NewMemoryRepositoryManager() *MemoryRepositoryManager {
	return &MemoryRepositoryManager{
		vaults:    vaults.NewMemoryRepository(),
		members:   members.NewMemoryRepository(),
		invites:   invites.NewMemoryRepository(),
		contents:  contents.NewMemoryRepository(),
		approvals: approvals.NewMemoryRepository(),
		payments:  payments.NewMemoryRepository(),
		billing:   billing.NewMemoryRepository(),
		audits:    audits.NewMemoryRepository(),
		outbox:    outbox.NewMemoryRepository(),
		settings:  settings.NewMemoryRepository(),
	}
}

func (m *MemoryRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	return nil
}

// WithinTx has no transactional backing in memory mode; fn runs directly
// and partial writes persist, which matches the documented non-atomicity
// of multi-step flows.
func (m *MemoryRepositoryManager) WithinTx(ctx context.Context, fn func(ctx context.Context, tx dbx.DBTX) error) error {
	return fn(ctx, nil)
}

func (m *MemoryRepositoryManager) Vaults(db dbx.DBTX) vaults.Repository       { return m.vaults }
func (m *MemoryRepositoryManager) Members(db dbx.DBTX) members.Repository     { return m.members }
func (m *MemoryRepositoryManager) Invites(db dbx.DBTX) invites.Repository     { return m.invites }
func (m *MemoryRepositoryManager) Contents(db dbx.DBTX) contents.Repository   { return m.contents }
func (m *MemoryRepositoryManager) Approvals(db dbx.DBTX) approvals.Repository { return m.approvals }
func (m *MemoryRepositoryManager) Payments(db dbx.DBTX) payments.Repository   { return m.payments }
func (m *MemoryRepositoryManager) Billing(db dbx.DBTX) billing.Repository     { return m.billing }
func (m *MemoryRepositoryManager) Audits(db dbx.DBTX) audits.Repository       { return m.audits }
func (m *MemoryRepositoryManager) Outbox(db dbx.DBTX) outbox.Repository       { return m.outbox }
func (m *MemoryRepositoryManager) Settings(db dbx.DBTX) settings.Repository   { return m.settings }
