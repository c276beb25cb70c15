package services

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dpetrovs/heirvault/internal/common"
	"github.com/dpetrovs/heirvault/internal/cryptox"
	"github.com/dpetrovs/heirvault/internal/logging"
	"github.com/dpetrovs/heirvault/internal/server/models"
	"github.com/dpetrovs/heirvault/internal/server/repositories/repomanager"
	"github.com/dpetrovs/heirvault/internal/timex"
)

const (
	// MaxChunkSize bounds a single upload chunk.
	MaxChunkSize = 1 << 20

	// StaleUploadAge is how long an idle upload session survives before the
	// scheduler evicts it.
	StaleUploadAge = 24 * time.Hour
)

// mimeAllowed lists the accepted MIME types per content type. Keyfiles and
// documents carry opaque encrypted bytes, so they accept the generic type
// as well.
var mimeAllowed = map[models.ContentType]map[string]bool{
	models.ContentDocument: {
		"application/pdf": true, "text/plain": true,
		"application/octet-stream": true,
	},
	models.ContentImage: {
		"image/jpeg": true, "image/png": true, "image/webp": true,
	},
	models.ContentVideo: {
		"video/mp4": true, "video/webm": true,
	},
	models.ContentAudio: {
		"audio/mpeg": true, "audio/ogg": true, "audio/wav": true,
	},
	models.ContentKeyfile: {
		"application/octet-stream": true,
	},
}

// UploadService assembles chunked uploads into content items. Sessions are
// kept in process memory; an interrupted upload is simply restarted.
type UploadService struct {
	db     *sql.DB
	rm     repomanager.RepositoryManager
	store  *ObjectStore
	clock  timex.Clock
	logger logging.Logger

	// InlineLimit is the largest finalized payload kept inline; larger
	// blobs go to object storage.
	InlineLimit int64

	mu       sync.Mutex
	sessions map[string]*models.UploadSession
	touched  map[string]time.Time
}

func NewUploadService(db *sql.DB, rm repomanager.RepositoryManager, store *ObjectStore,
	clock timex.Clock, inlineLimit int64, logger logging.Logger) *UploadService {
	return &UploadService{
		db:          db,
		rm:          rm,
		store:       store,
		clock:       clock,
		logger:      logger.With("module", "uploads"),
		InlineLimit: inlineLimit,
		sessions:    make(map[string]*models.UploadSession),
		touched:     make(map[string]time.Time),
	}
}

// Begin opens an upload session for the vault owner. The declared size is
// checked against the remaining quota up front so a doomed upload fails
// before any bytes move. The chunk count follows from the declared size and
// MaxChunkSize; a caller disagreeing about it is split on the wrong
// boundaries and is rejected before any bytes move too.
func (s *UploadService) Begin(ctx context.Context, ownerID, vaultID string, ctype models.ContentType,
	title, fileName, mimeType string, declaredSize int64, expectedChunks int) (*models.UploadSession, error) {

	if declaredSize <= 0 {
		return nil, fmt.Errorf("%w: declared size must be positive", common.ErrorValidation)
	}
	chunks := int((declaredSize + MaxChunkSize - 1) / MaxChunkSize)
	if expectedChunks != chunks {
		return nil, fmt.Errorf("%w: %d bytes take %d chunks, got %d",
			common.ErrorValidation, declaredSize, chunks, expectedChunks)
	}
	allowed, ok := mimeAllowed[ctype]
	if !ok {
		return nil, fmt.Errorf("%w: unknown content type %q", common.ErrorValidation, ctype)
	}
	if !allowed[mimeType] {
		return nil, fmt.Errorf("%w: mime type %q not allowed for %s", common.ErrorValidation, mimeType, ctype)
	}

	vault, err := s.rm.Vaults(s.db).GetByID(ctx, vaultID)
	if err != nil {
		return nil, err
	}
	if vault.OwnerID != ownerID {
		return nil, common.ErrorUnauthorized
	}
	if !uploadableStatus(vault.Status) {
		return nil, fmt.Errorf("%w: vault is %s", common.ErrInvalidState, vault.Status)
	}

	used, err := s.usedBytes(ctx, vaultID)
	if err != nil {
		return nil, err
	}
	if used+declaredSize > vault.StorageQuotaBytes {
		return nil, common.ErrQuotaExceeded
	}

	session := &models.UploadSession{
		ID:             uuid.NewString(),
		VaultID:        vaultID,
		UserID:         ownerID,
		Type:           ctype,
		Title:          title,
		FileName:       fileName,
		MimeType:       mimeType,
		DeclaredSize:   declaredSize,
		ExpectedChunks: chunks,
		Buffer:         make([]byte, 0, min(declaredSize, int64(MaxChunkSize))),
		CreatedAt:      s.clock.Now(),
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.touched[session.ID] = session.CreatedAt
	s.mu.Unlock()

	s.logger.Info(ctx, "upload started", "vault_id", vaultID, "upload_id", session.ID,
		"declared_size", declaredSize, "chunks", expectedChunks)
	return session, nil
}

func uploadableStatus(st models.VaultStatus) bool {
	switch st {
	case models.StatusNeedSetup, models.StatusSetupComplete, models.StatusActive:
		return true
	}
	return false
}

func (s *UploadService) usedBytes(ctx context.Context, vaultID string) (int64, error) {
	items, err := s.rm.Contents(s.db).ListByVault(ctx, vaultID)
	if err != nil {
		return 0, fmt.Errorf("listing contents: %w", err)
	}
	var used int64
	for _, it := range items {
		used += it.SizeBytes
	}
	return used, nil
}

// UploadChunk appends chunk number seq (1-based, strictly sequential) to the
// session buffer. Every chunk before the last must carry exactly
// MaxChunkSize bytes; the last carries the declared-size remainder, or a
// full chunk when the size divides evenly.
func (s *UploadService) UploadChunk(ctx context.Context, userID, uploadID string, seq int, data []byte) (*models.UploadSession, error) {
	if len(data) == 0 || len(data) > MaxChunkSize {
		return nil, common.ErrChunkSize
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[uploadID]
	if !ok {
		return nil, common.ErrorNotFound
	}
	if session.UserID != userID {
		return nil, common.ErrorUnauthorized
	}

	if seq != session.ReceivedChunks+1 {
		return nil, fmt.Errorf("%w: got chunk %d, want %d", common.ErrChunkOutOfOrder, seq, session.ReceivedChunks+1)
	}
	if seq > session.ExpectedChunks {
		return nil, fmt.Errorf("%w: got chunk %d of %d", common.ErrChunkOutOfOrder, seq, session.ExpectedChunks)
	}

	want := int64(MaxChunkSize)
	if seq == session.ExpectedChunks {
		if rem := session.DeclaredSize % MaxChunkSize; rem != 0 {
			want = rem
		}
	}
	if int64(len(data)) != want {
		return nil, fmt.Errorf("%w: chunk %d carries %d bytes, want %d", common.ErrChunkSize, seq, len(data), want)
	}

	session.Buffer = append(session.Buffer, data...)
	session.ReceivedChunks = seq
	s.touched[uploadID] = s.clock.Now()
	return session, nil
}

// Finish verifies the assembled upload against the caller's checksum and
// finalizes it as a content item. The quota is rechecked because other
// uploads may have completed since Begin.
func (s *UploadService) Finish(ctx context.Context, userID, uploadID, checksum string) (*models.ContentItem, error) {
	s.mu.Lock()
	session, ok := s.sessions[uploadID]
	if ok && session.UserID != userID {
		s.mu.Unlock()
		return nil, common.ErrorUnauthorized
	}
	if ok {
		delete(s.sessions, uploadID)
		delete(s.touched, uploadID)
	}
	s.mu.Unlock()

	if !ok {
		return nil, common.ErrorNotFound
	}

	if session.ReceivedChunks != session.ExpectedChunks ||
		int64(len(session.Buffer)) != session.DeclaredSize {
		return nil, common.ErrUploadIncomplete
	}
	if !cryptox.ChecksumsEqual(cryptox.ContentChecksum(session.Buffer), checksum) {
		return nil, common.ErrChecksumMismatch
	}

	vault, err := s.rm.Vaults(s.db).GetByID(ctx, session.VaultID)
	if err != nil {
		return nil, err
	}
	if !uploadableStatus(vault.Status) {
		return nil, fmt.Errorf("%w: vault is %s", common.ErrInvalidState, vault.Status)
	}
	used, err := s.usedBytes(ctx, session.VaultID)
	if err != nil {
		return nil, err
	}
	if used+session.DeclaredSize > vault.StorageQuotaBytes {
		return nil, common.ErrQuotaExceeded
	}

	now := s.clock.Now()
	item := &models.ContentItem{
		ID:        uuid.NewString(),
		VaultID:   session.VaultID,
		Type:      session.Type,
		Title:     session.Title,
		MimeType:  session.MimeType,
		SizeBytes: session.DeclaredSize,
		Checksum:  checksum,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if session.DeclaredSize > s.InlineLimit {
		key, err := s.store.Put(ctx, session.VaultID, session.Buffer)
		if err != nil {
			return nil, fmt.Errorf("offloading payload: %w", err)
		}
		item.StorageKey = key
	} else {
		item.Payload = session.Buffer
	}

	if err := s.rm.Contents(s.db).Create(ctx, item); err != nil {
		return nil, fmt.Errorf("storing content: %w", err)
	}

	// The re-summed figure also repairs a counter that drifted.
	vault.StorageUsedBytes = used + session.DeclaredSize
	if err := s.rm.Vaults(s.db).Update(ctx, vault); err != nil {
		s.logger.Warn(ctx, "failed to update used bytes", "vault_id", vault.ID, "error", err.Error())
	}

	s.logger.Info(ctx, "upload finished", "vault_id", session.VaultID, "content_id", item.ID,
		"size", item.SizeBytes, "offloaded", item.StorageKey != "")
	return item, nil
}

// Abort discards an in-progress upload session.
func (s *UploadService) Abort(ctx context.Context, userID, uploadID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[uploadID]
	if !ok {
		return common.ErrorNotFound
	}
	if session.UserID != userID {
		return common.ErrorUnauthorized
	}
	delete(s.sessions, uploadID)
	delete(s.touched, uploadID)
	return nil
}

// EvictStale drops sessions idle longer than StaleUploadAge and returns how
// many were dropped. Invoked by the scheduler.
func (s *UploadService) EvictStale(ctx context.Context) int {
	cutoff := s.clock.Now().Add(-StaleUploadAge)

	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for id, at := range s.touched {
		if at.After(cutoff) {
			continue
		}
		delete(s.sessions, id)
		delete(s.touched, id)
		evicted++
	}
	if evicted > 0 {
		s.logger.Info(ctx, "stale uploads evicted", "count", evicted)
	}
	return evicted
}
