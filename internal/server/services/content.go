package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dpetrovs/heirvault/internal/common"
	"github.com/dpetrovs/heirvault/internal/logging"
	"github.com/dpetrovs/heirvault/internal/server/models"
	"github.com/dpetrovs/heirvault/internal/server/repositories/repomanager"
	"github.com/dpetrovs/heirvault/internal/timex"
)

// DownloadResult is a resolved content download. Either Payload holds the
// inline bytes or URL points at a presigned object download, never both.
type DownloadResult struct {
	Item    *models.ContentItem
	Payload []byte
	URL     string
}

// ContentService lists, serves and removes finalized vault content. Owners
// read their vault at any time; heirs and witnesses only once it is
// unlocked, subject to their plan's daily download limit.
type ContentService struct {
	db     *sql.DB
	rm     repomanager.RepositoryManager
	store  *ObjectStore
	clock  timex.Clock
	logger logging.Logger
}

func NewContentService(db *sql.DB, rm repomanager.RepositoryManager, store *ObjectStore,
	clock timex.Clock, logger logging.Logger) *ContentService {
	return &ContentService{
		db:     db,
		rm:     rm,
		store:  store,
		clock:  clock,
		logger: logger.With("module", "contents"),
	}
}

// authorize resolves the caller's access to the vault. It returns the vault
// and, for non-owners, the membership.
func (s *ContentService) authorize(ctx context.Context, callerID, vaultID string) (*models.VaultRecord, *models.Member, error) {
	vault, err := s.rm.Vaults(s.db).GetByID(ctx, vaultID)
	if err != nil {
		return nil, nil, err
	}
	if vault.Status == models.StatusDeleted {
		return nil, nil, common.ErrorNotFound
	}

	if vault.OwnerID == callerID {
		return vault, nil, nil
	}

	member, err := s.rm.Members(s.db).GetByUser(ctx, vaultID, callerID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, nil, common.ErrorUnauthorized
		}
		return nil, nil, err
	}
	if member.Status != models.MemberActive {
		return nil, nil, common.ErrorUnauthorized
	}
	if vault.Status != models.StatusUnlocked {
		return nil, nil, fmt.Errorf("%w: vault is %s", common.ErrInvalidState, vault.Status)
	}
	return vault, member, nil
}

// List returns the vault's content items without payloads.
func (s *ContentService) List(ctx context.Context, callerID, vaultID string) ([]*models.ContentItem, error) {
	if _, _, err := s.authorize(ctx, callerID, vaultID); err != nil {
		return nil, err
	}

	items, err := s.rm.Contents(s.db).ListByVault(ctx, vaultID)
	if err != nil {
		return nil, fmt.Errorf("listing contents: %w", err)
	}
	for _, it := range items {
		it.Payload = nil
	}
	return items, nil
}

// Download serves a content item. Inline payloads are returned directly;
// offloaded blobs come back as a presigned URL. Member downloads count
// against the plan's daily limit.
func (s *ContentService) Download(ctx context.Context, callerID, vaultID, contentID string) (*DownloadResult, error) {
	vault, member, err := s.authorize(ctx, callerID, vaultID)
	if err != nil {
		return nil, err
	}

	if member != nil {
		if err := s.chargeDownload(ctx, vault, member); err != nil {
			return nil, err
		}
	}

	item, err := s.rm.Contents(s.db).GetByID(ctx, vaultID, contentID)
	if err != nil {
		return nil, err
	}

	if item.StorageKey != "" {
		url, err := s.store.PresignedGetURL(ctx, item.StorageKey)
		if err != nil {
			return nil, fmt.Errorf("presigning download: %w", err)
		}
		item.Payload = nil
		return &DownloadResult{Item: item, URL: url}, nil
	}

	payload := item.Payload
	item.Payload = nil
	return &DownloadResult{Item: item, Payload: payload}, nil
}

// chargeDownload enforces and advances the member's daily download counter.
// The counter resets when the stored day differs from today.
func (s *ContentService) chargeDownload(ctx context.Context, vault *models.VaultRecord, member *models.Member) error {
	today := s.clock.Now().UTC().Format("2006-01-02")
	if member.DownloadsDay != today {
		member.DownloadsDay = today
		member.DownloadsToday = 0
	}

	if member.DownloadsToday >= vault.Plan.DailyDownloadLimit() {
		return common.ErrDownloadLimitExceeded
	}

	member.DownloadsToday++
	if err := s.rm.Members(s.db).Update(ctx, member); err != nil {
		return fmt.Errorf("recording download: %w", err)
	}
	return nil
}

// Delete removes a content item. Only the owner may delete, and only while
// the vault is in a status that accepts content changes.
func (s *ContentService) Delete(ctx context.Context, ownerID, vaultID, contentID string) error {
	vault, err := s.rm.Vaults(s.db).GetByID(ctx, vaultID)
	if err != nil {
		return err
	}
	if vault.OwnerID != ownerID {
		return common.ErrorUnauthorized
	}
	if !uploadableStatus(vault.Status) {
		return fmt.Errorf("%w: vault is %s", common.ErrInvalidState, vault.Status)
	}

	item, err := s.rm.Contents(s.db).GetByID(ctx, vaultID, contentID)
	if err != nil {
		return err
	}

	if err := s.rm.Contents(s.db).Delete(ctx, vaultID, contentID); err != nil {
		return fmt.Errorf("deleting content: %w", err)
	}

	vault.StorageUsedBytes -= item.SizeBytes
	if vault.StorageUsedBytes < 0 {
		vault.StorageUsedBytes = 0
	}
	if err := s.rm.Vaults(s.db).Update(ctx, vault); err != nil {
		s.logger.Warn(ctx, "failed to update used bytes", "vault_id", vault.ID, "error", err.Error())
	}

	if item.StorageKey != "" {
		// The record is already gone; a failed object delete only leaks
		// storage, so log and move on.
		if err := s.store.Delete(ctx, item.StorageKey); err != nil {
			s.logger.Warn(ctx, "failed to delete stored object", "storage_key", item.StorageKey, "error", err.Error())
		}
	}

	s.logger.Info(ctx, "content deleted", "vault_id", vaultID, "content_id", contentID)
	return nil
}
