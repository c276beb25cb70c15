package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dpetrovs/heirvault/internal/common"
	"github.com/dpetrovs/heirvault/internal/logging"
	"github.com/dpetrovs/heirvault/internal/server/repositories/repomanager"
)

// SettingsService wraps the operator key-value store.
type SettingsService struct {
	db     *sql.DB
	rm     repomanager.RepositoryManager
	logger logging.Logger
}

func NewSettingsService(db *sql.DB, rm repomanager.RepositoryManager, logger logging.Logger) *SettingsService {
	return &SettingsService{db: db, rm: rm, logger: logger.With("module", "settings")}
}

func (s *SettingsService) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return fmt.Errorf("%w: setting key required", common.ErrorValidation)
	}
	if err := s.rm.Settings(s.db).Set(ctx, key, value); err != nil {
		return fmt.Errorf("storing setting: %w", err)
	}
	s.logger.Info(ctx, "setting updated", "key", key)
	return nil
}
