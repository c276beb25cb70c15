package services

import (
	"context"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dpetrovs/heirvault/internal/common"
	"github.com/dpetrovs/heirvault/internal/cryptox"
	"github.com/dpetrovs/heirvault/internal/logging"
	"github.com/dpetrovs/heirvault/internal/randx"
	"github.com/dpetrovs/heirvault/internal/server/lifecycle"
	"github.com/dpetrovs/heirvault/internal/server/models"
	"github.com/dpetrovs/heirvault/internal/server/repositories/repomanager"
	"github.com/dpetrovs/heirvault/internal/timex"
)

const (
	// InviteExpiry is how long a pending invite stays claimable.
	InviteExpiry = 24 * time.Hour

	// MaxShareIndex bounds the secret-share slots of a vault.
	MaxShareIndex = 255
)

// InviteService issues, claims and revokes membership invites. Each invite
// reserves a secret-share slot at issuance so slots never collide between
// pending invites and claimed members.
type InviteService struct {
	db     *sql.DB
	rm     repomanager.RepositoryManager
	engine *lifecycle.Engine
	clock  timex.Clock
	rand   randx.Source
	logger logging.Logger
}

func NewInviteService(db *sql.DB, rm repomanager.RepositoryManager, engine *lifecycle.Engine,
	clock timex.Clock, rand randx.Source, logger logging.Logger) *InviteService {
	return &InviteService{
		db:     db,
		rm:     rm,
		engine: engine,
		clock:  clock,
		rand:   rand,
		logger: logger.With("module", "invites"),
	}
}

// Generate issues an invite for a vault in a setup or active status and
// returns the claim token to hand to the invitee out of band. Only the
// digest of the token secret is stored.
func (s *InviteService) Generate(ctx context.Context, ownerID, vaultID string, role models.Role) (*models.InviteToken, string, error) {
	if role != models.RoleHeir && role != models.RoleWitness {
		return nil, "", fmt.Errorf("%w: invites are for heirs and witnesses", common.ErrorValidation)
	}

	vault, err := s.rm.Vaults(s.db).GetByID(ctx, vaultID)
	if err != nil {
		return nil, "", err
	}
	if vault.OwnerID != ownerID {
		return nil, "", common.ErrorUnauthorized
	}
	if !invitableStatus(vault.Status) {
		return nil, "", fmt.Errorf("%w: vault is %s", common.ErrInvalidState, vault.Status)
	}

	secret, err := s.rand.Block()
	if err != nil {
		return nil, "", fmt.Errorf("generating invite secret: %w", err)
	}

	// The randomness call can block; revalidate the vault afterwards and
	// allocate the share slot against fresh state.
	vault, err = s.rm.Vaults(s.db).GetByID(ctx, vaultID)
	if err != nil {
		return nil, "", err
	}
	if !invitableStatus(vault.Status) {
		return nil, "", fmt.Errorf("%w: vault is %s", common.ErrInvalidState, vault.Status)
	}

	index, err := s.allocateShareIndex(ctx, vaultID)
	if err != nil {
		return nil, "", err
	}

	now := s.clock.Now()
	token := &models.InviteToken{
		ID:         uuid.NewString(),
		VaultID:    vaultID,
		Role:       role,
		Status:     models.InvitePending,
		ShareIndex: index,
		CreatedAt:  now,
		ExpiresAt:  now.Add(InviteExpiry),
	}
	token.SecretDigest = cryptox.DigestToken(secret, []byte(token.ID))

	if err := s.rm.Invites(s.db).Create(ctx, token); err != nil {
		return nil, "", fmt.Errorf("storing invite: %w", err)
	}

	s.logger.Info(ctx, "invite issued", "vault_id", vaultID, "invite_id", token.ID,
		"role", role, "share_index", index)
	return token, token.ID + "." + hex.EncodeToString(secret), nil
}

func invitableStatus(st models.VaultStatus) bool {
	switch st {
	case models.StatusNeedSetup, models.StatusSetupComplete, models.StatusActive:
		return true
	}
	return false
}

// allocateShareIndex returns the lowest slot in [1,MaxShareIndex] unused by
// both claimed members and non-terminal invite tokens of the vault.
func (s *InviteService) allocateShareIndex(ctx context.Context, vaultID string) (int, error) {
	used := make(map[int]bool, MaxShareIndex)

	members, err := s.rm.Members(s.db).ListByVault(ctx, vaultID)
	if err != nil {
		return 0, fmt.Errorf("listing members: %w", err)
	}
	for _, m := range members {
		used[m.ShareIndex] = true
	}

	invitedTokens, err := s.rm.Invites(s.db).ListByVault(ctx, vaultID)
	if err != nil {
		return 0, fmt.Errorf("listing invites: %w", err)
	}
	for _, t := range invitedTokens {
		if t.Status == models.InvitePending || t.Status == models.InviteClaimed {
			used[t.ShareIndex] = true
		}
	}

	for i := 1; i <= MaxShareIndex; i++ {
		if !used[i] {
			return i, nil
		}
	}
	return 0, common.ErrSharesExhausted
}

// Claim consumes a claim token and creates the membership. A Claimed token
// whose member record is missing is repaired by re-creating the member for
// the same user, so an interrupted claim can be retried.
func (s *InviteService) Claim(ctx context.Context, userID, displayName, claimToken string) (*models.Member, error) {
	inviteID, secret, err := splitClaimToken(claimToken)
	if err != nil {
		return nil, err
	}

	token, err := s.rm.Invites(s.db).GetByID(ctx, inviteID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrInvalidToken
		}
		return nil, err
	}

	digest := cryptox.DigestToken(secret, []byte(token.ID))
	if !cryptox.ChecksumsEqual(hex.EncodeToString(digest), hex.EncodeToString(token.SecretDigest)) {
		return nil, common.ErrInvalidToken
	}

	switch token.Status {
	case models.InvitePending:
	case models.InviteClaimed:
		return s.repairClaim(ctx, userID, token)
	case models.InviteExpired:
		return nil, common.ErrInviteExpired
	default:
		return nil, common.ErrInviteNotActive
	}

	now := s.clock.Now()
	if !now.Before(token.ExpiresAt) {
		token.Status = models.InviteExpired
		if err := s.rm.Invites(s.db).Update(ctx, token); err != nil {
			s.logger.Warn(ctx, "failed to expire invite", "invite_id", token.ID, "error", err.Error())
		}
		return nil, common.ErrInviteExpired
	}

	member := &models.Member{
		ID:          uuid.NewString(),
		VaultID:     token.VaultID,
		UserID:      userID,
		Role:        token.Role,
		Status:      models.MemberActive,
		ShareIndex:  token.ShareIndex,
		DisplayName: displayName,
		CreatedAt:   now,
	}

	// The token is marked first. If the member insert is lost the claimant
	// retries into repairClaim instead of double-allocating the slot.
	token.Status = models.InviteClaimed
	token.ClaimedBy = userID
	token.ClaimedAt = now
	if err := s.rm.Invites(s.db).Update(ctx, token); err != nil {
		return nil, fmt.Errorf("storing invite: %w", err)
	}
	if err := s.rm.Members(s.db).Create(ctx, member); err != nil {
		return nil, fmt.Errorf("storing member: %w", err)
	}
	if err := s.advanceSetup(ctx, token.VaultID); err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "invite claimed", "vault_id", token.VaultID, "invite_id", token.ID, "user_id", userID)
	return member, nil
}

// advanceSetup moves the vault out of NeedSetup once its first member is in
// place. Later claims find the vault already advanced and do nothing. A
// failed advance is retried through repairClaim, the same path as a lost
// member record.
func (s *InviteService) advanceSetup(ctx context.Context, vaultID string) error {
	vault, err := s.rm.Vaults(s.db).GetByID(ctx, vaultID)
	if err != nil {
		return err
	}
	if vault.Status != models.StatusNeedSetup {
		return nil
	}
	if err := s.engine.Transition(vault, models.StatusSetupComplete); err != nil {
		return err
	}
	if err := s.rm.Vaults(s.db).Update(ctx, vault); err != nil {
		return fmt.Errorf("storing vault: %w", err)
	}
	s.logger.Info(ctx, "vault setup complete", "vault_id", vaultID)
	return nil
}

// repairClaim completes a claim that marked the token but lost the member
// record. Only the original claimant may retry.
func (s *InviteService) repairClaim(ctx context.Context, userID string, token *models.InviteToken) (*models.Member, error) {
	if token.ClaimedBy != userID {
		return nil, common.ErrInviteNotActive
	}

	member, err := s.rm.Members(s.db).GetByUser(ctx, token.VaultID, userID)
	if err == nil {
		if err := s.advanceSetup(ctx, token.VaultID); err != nil {
			return nil, err
		}
		return member, nil
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, err
	}

	member = &models.Member{
		ID:         uuid.NewString(),
		VaultID:    token.VaultID,
		UserID:     userID,
		Role:       token.Role,
		Status:     models.MemberActive,
		ShareIndex: token.ShareIndex,
		CreatedAt:  s.clock.Now(),
	}
	if err := s.rm.Members(s.db).Create(ctx, member); err != nil {
		return nil, fmt.Errorf("storing member: %w", err)
	}
	if err := s.advanceSetup(ctx, token.VaultID); err != nil {
		return nil, err
	}
	s.logger.Info(ctx, "claim repaired", "vault_id", token.VaultID, "invite_id", token.ID, "user_id", userID)
	return member, nil
}

func splitClaimToken(claimToken string) (string, []byte, error) {
	id, hexSecret, ok := strings.Cut(claimToken, ".")
	if !ok || id == "" {
		return "", nil, common.ErrInvalidToken
	}
	secret, err := hex.DecodeString(hexSecret)
	if err != nil || len(secret) != randx.BlockSize {
		return "", nil, common.ErrInvalidToken
	}
	return id, secret, nil
}

// Revoke cancels a pending invite and returns its share slot to the pool.
func (s *InviteService) Revoke(ctx context.Context, ownerID, vaultID, inviteID string) error {
	vault, err := s.rm.Vaults(s.db).GetByID(ctx, vaultID)
	if err != nil {
		return err
	}
	if vault.OwnerID != ownerID {
		return common.ErrorUnauthorized
	}

	token, err := s.rm.Invites(s.db).GetByID(ctx, inviteID)
	if err != nil {
		return err
	}
	if token.VaultID != vaultID {
		return common.ErrorNotFound
	}
	if token.Status != models.InvitePending {
		return common.ErrInviteNotActive
	}

	token.Status = models.InviteRevoked
	if err := s.rm.Invites(s.db).Update(ctx, token); err != nil {
		return fmt.Errorf("storing invite: %w", err)
	}
	s.logger.Info(ctx, "invite revoked", "vault_id", vaultID, "invite_id", inviteID)
	return nil
}

// ExpirePending flips pending invites past their deadline to Expired and
// returns how many were flipped. Invoked by the scheduler.
func (s *InviteService) ExpirePending(ctx context.Context) (int, error) {
	pending, err := s.rm.Invites(s.db).ListPending(ctx)
	if err != nil {
		return 0, fmt.Errorf("listing pending invites: %w", err)
	}

	now := s.clock.Now()
	expired := 0
	for _, token := range pending {
		if now.Before(token.ExpiresAt) {
			continue
		}
		token.Status = models.InviteExpired
		if err := s.rm.Invites(s.db).Update(ctx, token); err != nil {
			s.logger.Warn(ctx, "failed to expire invite", "invite_id", token.ID, "error", err.Error())
			continue
		}
		expired++
	}
	return expired, nil
}
