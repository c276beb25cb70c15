package vaults

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dpetrovs/heirvault/internal/common"
	"github.com/dpetrovs/heirvault/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

var scanColumns = []string{
	"vault_id", "owner_id", "name", "description", "status", "plan",
	"storage_quota_bytes", "storage_used_bytes",
	"unlock_at", "inactivity_ns", "required_heir_approvals", "required_witness_approvals",
	"created_at", "updated_at", "expires_at", "unlocked_at", "last_owner_activity_at",
}

func sampleVault(now time.Time) *models.VaultRecord {
	return &models.VaultRecord{
		ID:                "v-1",
		OwnerID:           "u-1",
		Name:              "family",
		Description:       "family vault",
		Status:            models.StatusActive,
		Plan:              models.PlanPremium,
		StorageQuotaBytes: 1 << 30,
		StorageUsedBytes:  42,
		Conditions: models.UnlockConditions{
			UnlockAt:              now.Add(24 * time.Hour),
			InactivityDuration:    48 * time.Hour,
			RequiredHeirApprovals: 2,
		},
		CreatedAt:           now,
		UpdatedAt:           now,
		ExpiresAt:           now.Add(365 * 24 * time.Hour),
		LastOwnerActivityAt: now,
	}
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	v := sampleVault(now)

	mock.ExpectExec(`(?s)^\s*INSERT\s+INTO\s+vaults\s*\(.*\)\s*VALUES\s*\(\$1,.*\$17\)\s*$`).
		WithArgs(
			v.ID, v.OwnerID, v.Name, v.Description, v.Status, v.Plan,
			v.StorageQuotaBytes, v.StorageUsedBytes,
			nullTime(v.Conditions.UnlockAt), int64(v.Conditions.InactivityDuration),
			v.Conditions.RequiredHeirApprovals, v.Conditions.RequiredWitnessApprovals,
			v.CreatedAt, v.UpdatedAt, nullTime(v.ExpiresAt),
			nullTime(v.UnlockedAt), nullTime(v.LastOwnerActivityAt),
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), v); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)^\s*INSERT\s+INTO\s+vaults`).
		WillReturnError(errors.New("db down"))

	err := repo.Create(context.Background(), sampleVault(time.Now()))
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestGetByID_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	unlockAt := now.Add(24 * time.Hour)

	rows := sqlmock.NewRows(scanColumns).AddRow(
		"v-1", "u-1", "family", "family vault", "active", "premium",
		int64(1<<30), int64(42),
		unlockAt, int64(48*time.Hour), 2, 0,
		now, now, now.Add(time.Hour), nil, now,
	)

	mock.ExpectQuery(`(?s)^SELECT\s+.*FROM\s+vaults\s+WHERE\s+vault_id\s*=\s*\$1\s*$`).
		WithArgs("v-1").
		WillReturnRows(rows)

	got, err := repo.GetByID(context.Background(), "v-1")
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if got.ID != "v-1" || got.Status != models.StatusActive {
		t.Fatalf("unexpected vault: %+v", got)
	}
	if !got.Conditions.UnlockAt.Equal(unlockAt) {
		t.Fatalf("unlock_at = %v, want %v", got.Conditions.UnlockAt, unlockAt)
	}
	if got.Conditions.InactivityDuration != 48*time.Hour {
		t.Fatalf("inactivity = %v", got.Conditions.InactivityDuration)
	}
	if !got.UnlockedAt.IsZero() {
		t.Fatalf("unlocked_at should stay zero, got %v", got.UnlockedAt)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^SELECT\s+.*FROM\s+vaults\s+WHERE\s+vault_id\s*=\s*\$1\s*$`).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "ghost")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected ErrorNotFound, got %v", err)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)^\s*UPDATE\s+vaults\s+SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), sampleVault(time.Now()))
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected ErrorNotFound, got %v", err)
	}
}

func TestList_ReturnsAll(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(scanColumns).
		AddRow("v-1", "u-1", "a", "", "draft", "free", int64(0), int64(0),
			nil, int64(0), 0, 0, now, now, nil, nil, nil).
		AddRow("v-2", "u-2", "b", "", "active", "premium", int64(1), int64(0),
			nil, int64(0), 0, 0, now, now, nil, nil, nil)

	mock.ExpectQuery(`(?s)^SELECT\s+.*FROM\s+vaults\s+ORDER\s+BY\s+id\s*$`).
		WillReturnRows(rows)

	got, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 2 || got[0].ID != "v-1" || got[1].ID != "v-2" {
		t.Fatalf("unexpected vaults: %+v", got)
	}
}

func TestDelete_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)^DELETE\s+FROM\s+vaults\s+WHERE\s+vault_id\s*=\s*\$1\s*$`).
		WithArgs("ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "ghost")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected ErrorNotFound, got %v", err)
	}
}
